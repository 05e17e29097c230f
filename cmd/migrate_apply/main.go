package main

import (
	"ledger_api/internal/config"
	"ledger_api/internal/db"
	"ledger_api/internal/logger"
)

func main() {
	cfg := config.Load()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		logger.Fatal("migrate failed", "error", err)
	}

	logger.Info("migrations applied")
}
