package main

import (
	"farm-records/app/config"
	"farm-records/app/database"
	"farm-records/app/server"
	"farm-records/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	log := logger.Must(logger.New())
	defer log.Sync()

	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(db, cfg.DBDriver); err != nil {
		log.Fatal("schema bootstrap failed", zap.Error(err))
	}

	log.Info("starting farm records server",
		zap.String("addr", cfg.ListenAddr),
		zap.String("driver", cfg.DBDriver))

	app := server.New(db, cfg.DBDriver)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
