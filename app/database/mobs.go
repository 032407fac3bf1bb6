package database

import (
	"database/sql"
	"errors"
	"farm-records/app/models"
)

// GetMobSummaries returns every mob with its paddock name (empty when
// unassigned), ordered by mob name.
func GetMobSummaries(db *sql.DB) ([]*models.MobSummary, error) {
	query := `
		SELECT mobs.id, mobs.name, paddocks.name AS paddock_name
		FROM mobs
		LEFT JOIN paddocks ON mobs.paddock_id = paddocks.id
		ORDER BY mobs.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mobs []*models.MobSummary
	for rows.Next() {
		m := &models.MobSummary{}
		var paddockName sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &paddockName); err != nil {
			return nil, err
		}
		m.PaddockName = paddockName.String
		mobs = append(mobs, m)
	}
	return mobs, rows.Err()
}

// GetMobByID returns the mob, or (nil, nil) when no such row exists.
func GetMobByID(db *sql.DB, id int) (*models.Mob, error) {
	m := &models.Mob{}
	var paddockID sql.NullInt64

	err := db.QueryRow(`SELECT id, name, paddock_id FROM mobs WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &paddockID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if paddockID.Valid {
		pid := int(paddockID.Int64)
		m.PaddockID = &pid
	}
	return m, nil
}

// GetAvailablePaddocks returns the paddocks the mob may move to: every
// paddock not occupied by a different mob, union the mob's own current
// paddock, ordered by paddock name.
func GetAvailablePaddocks(db *sql.DB, mob *models.Mob) ([]*models.Paddock, error) {
	var current sql.NullInt64
	if mob.PaddockID != nil {
		current = sql.NullInt64{Int64: int64(*mob.PaddockID), Valid: true}
	}

	query := `
		SELECT paddocks.id, paddocks.name
		FROM paddocks
		WHERE paddocks.id NOT IN (
			SELECT paddock_id FROM mobs
			WHERE paddock_id IS NOT NULL AND id != $1
		)
		OR paddocks.id = $2
		ORDER BY paddocks.name`

	rows, err := db.Query(query, mob.ID, current)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paddocks []*models.Paddock
	for rows.Next() {
		p := &models.Paddock{}
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		paddocks = append(paddocks, p)
	}
	return paddocks, rows.Err()
}

// MoveMob points the mob at the given paddock. Availability is checked by
// the handler against GetAvailablePaddocks before calling this.
func MoveMob(db *sql.DB, mobID, paddockID int) error {
	_, err := db.Exec(`UPDATE mobs SET paddock_id = $1 WHERE id = $2`, paddockID, mobID)
	return err
}
