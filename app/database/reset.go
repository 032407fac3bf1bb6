package database

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed reset_sqlite.sql
var resetSQLite string

//go:embed reset_postgres.sql
var resetPostgres string

// Reset drops and recreates the four tables and loads the seed data,
// executing the driver's embedded script one semicolon-delimited statement at
// a time.
func Reset(db *sql.DB, driver string) error {
	script := resetSQLite
	if driver == "postgres" {
		script = resetPostgres
	}

	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("reset statement %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// EnsureSchema runs Reset when the clock table is missing, so a fresh
// database comes up seeded without a manual reset.
func EnsureSchema(db *sql.DB, driver string) error {
	var raw string
	err := db.QueryRow(`SELECT curr_date FROM curr_date`).Scan(&raw)
	if err == nil {
		return nil
	}
	return Reset(db, driver)
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}
