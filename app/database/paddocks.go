package database

import (
	"database/sql"
	"errors"
	"farm-records/app/models"
	"fmt"
)

// GetPaddockSummaries returns every paddock with its occupying mob (if any)
// and that mob's stock count, ordered by paddock name.
func GetPaddockSummaries(db *sql.DB) ([]*models.PaddockSummary, error) {
	query := `
		SELECT
			paddocks.id,
			paddocks.name,
			paddocks.area,
			paddocks.dm_per_ha,
			paddocks.total_dm,
			MIN(mobs.name) AS mob_name,
			COUNT(stock.id) AS stock_count
		FROM paddocks
		LEFT JOIN mobs ON paddocks.id = mobs.paddock_id
		LEFT JOIN stock ON mobs.id = stock.mob_id
		GROUP BY paddocks.id, paddocks.name, paddocks.area,
			paddocks.dm_per_ha, paddocks.total_dm
		ORDER BY paddocks.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.PaddockSummary
	for rows.Next() {
		s := &models.PaddockSummary{}
		var mobName sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.Area, &s.DMPerHa, &s.TotalDM,
			&mobName, &s.StockCount); err != nil {
			return nil, err
		}
		s.MobName = mobName.String
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetPaddockByID returns the paddock, or (nil, nil) when no such row exists.
func GetPaddockByID(db *sql.DB, id int) (*models.Paddock, error) {
	p := &models.Paddock{}
	query := `SELECT id, name, area, dm_per_ha, total_dm FROM paddocks WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.Area, &p.DMPerHa, &p.TotalDM)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePaddock inserts a new paddock. Callers supply total_dm already
// computed as area * dm_per_ha.
func CreatePaddock(db *sql.DB, name string, area, dmPerHa, totalDM float64) error {
	query := `INSERT INTO paddocks (name, area, dm_per_ha, total_dm) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, name, area, dmPerHa, totalDM)
	return err
}

// UpdatePaddock overwrites an existing paddock's fields by id.
func UpdatePaddock(db *sql.DB, id int, name string, area, dmPerHa, totalDM float64) error {
	query := `UPDATE paddocks SET name = $1, area = $2, dm_per_ha = $3, total_dm = $4 WHERE id = $5`
	_, err := db.Exec(query, name, area, dmPerHa, totalDM, id)
	return err
}

// DeletePaddock removes a paddock, first clearing the paddock reference on
// any mob pointing at it. Both statements run in one transaction. Deleting an
// id that does not exist is a no-op, not an error.
func DeletePaddock(db *sql.DB, id int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRow(`SELECT id FROM paddocks WHERE id = $1`, id).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`UPDATE mobs SET paddock_id = NULL WHERE paddock_id = $1`, id); err != nil {
		return fmt.Errorf("unassign mobs: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM paddocks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete paddock: %w", err)
	}

	return tx.Commit()
}
