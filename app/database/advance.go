package database

import (
	"database/sql"
	"errors"
	"farm-records/app/models"
	"fmt"
	"time"
)

// Daily pasture rates, in kg of dry matter.
const (
	// PastureGrowthRate is the dry matter grown per hectare per day.
	PastureGrowthRate = 65.0
	// StockConsumptionRate is the dry matter eaten per animal per day.
	StockConsumptionRate = 14.0
)

// AdvanceDay moves the simulation clock forward one day and applies the
// pasture update to every paddock: growth of area * PastureGrowthRate,
// minus consumption of StockConsumptionRate per animal in the occupying
// mob. Total dry matter is not floored at zero. The clock update and every
// paddock update run in a single transaction; on any error nothing is
// committed. Returns the new current date.
//
// Calling this twice advances the simulation twice. It is the time-step, not
// a reconciliation.
func AdvanceDay(db *sql.DB, current time.Time) (time.Time, error) {
	next := current.AddDate(0, 0, 1)

	tx, err := db.Begin()
	if err != nil {
		return time.Time{}, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE curr_date SET curr_date = $1`, next.Format(DateLayout)); err != nil {
		return time.Time{}, fmt.Errorf("advance clock: %w", err)
	}

	paddocks, err := allPaddocks(tx)
	if err != nil {
		return time.Time{}, err
	}

	for _, p := range paddocks {
		growth := p.Area * PastureGrowthRate

		consumption, err := paddockConsumption(tx, p.ID)
		if err != nil {
			return time.Time{}, err
		}

		newTotalDM := p.TotalDM + growth - consumption
		newDMPerHa := 0.0
		if p.Area > 0 {
			newDMPerHa = newTotalDM / p.Area
		}

		_, err = tx.Exec(`UPDATE paddocks SET total_dm = $1, dm_per_ha = $2 WHERE id = $3`,
			newTotalDM, newDMPerHa, p.ID)
		if err != nil {
			return time.Time{}, fmt.Errorf("update paddock %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return time.Time{}, err
	}
	return next, nil
}

// allPaddocks reads every paddock into memory before the per-paddock
// queries run; the transaction holds a single connection, so the result set
// must be drained first.
func allPaddocks(tx *sql.Tx) ([]*models.Paddock, error) {
	rows, err := tx.Query(`SELECT id, name, area, dm_per_ha, total_dm FROM paddocks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paddocks []*models.Paddock
	for rows.Next() {
		p := &models.Paddock{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Area, &p.DMPerHa, &p.TotalDM); err != nil {
			return nil, err
		}
		paddocks = append(paddocks, p)
	}
	return paddocks, rows.Err()
}

// paddockConsumption is the daily intake of the mob occupying the paddock,
// or 0 when the paddock is vacant.
func paddockConsumption(tx *sql.Tx, paddockID int) (float64, error) {
	var mobID int
	err := tx.QueryRow(`SELECT id FROM mobs WHERE paddock_id = $1`, paddockID).Scan(&mobID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM stock WHERE mob_id = $1`, mobID).Scan(&count); err != nil {
		return 0, err
	}
	return float64(count) * StockConsumptionRate, nil
}
