package database

import (
	"database/sql"
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 day format used for every date column. Dates
// are stored as TEXT in both dialects and all date arithmetic happens in Go,
// so postgres and sqlite behave identically.
const DateLayout = "2006-01-02"

// GetCurrentDate reads the single simulation-clock row.
func GetCurrentDate(db *sql.DB) (time.Time, error) {
	var raw string
	err := db.QueryRow(`SELECT curr_date FROM curr_date`).Scan(&raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("read current date: %w", err)
	}

	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse current date %q: %w", raw, err)
	}
	return date, nil
}
