package config

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Config holds the full configuration surface for the farm records app.
type Config struct {
	DBDriver   string
	DBDSN      string
	ListenAddr string
}

// Load reads environment variables (optionally from a .env file) and
// materializes a Config. Missing .env files are fine; configuration can come
// from the environment directly.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDriver:   getenvWithDefault("FMS_DB_DRIVER", "sqlite"),
		DBDSN:      getenvWithDefault("FMS_DB_DSN", "file:farm-records.db"),
		ListenAddr: getenvWithDefault("FMS_LISTEN_ADDR", ":8080"),
	}
}

// OpenDB opens and pings the configured database. The default is a local
// sqlite file so the app runs with no external services; set
// FMS_DB_DRIVER=postgres and FMS_DB_DSN to a lib/pq connection string to use
// a PostgreSQL server instead.
func OpenDB(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	switch cfg.DBDriver {
	case "sqlite":
		// modernc sqlite: a single connection avoids table-lock contention
		// between the per-request handlers.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.DBDriver, err)
	}

	return db, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
