package main

import (
	"checkrrhh-backend/config"
	"checkrrhh-backend/internal/database"
	"checkrrhh-backend/internal/logger"
	"checkrrhh-backend/internal/repository"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	logger.Info("seeding database")

	// Separate script, so load .env here too
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system environment variables")
	}
	cfg := config.Load()
	if cfg.Database.Driver == "memory" {
		logger.Error("DB_DRIVER=memory seeds itself on API start, nothing to do")
		os.Exit(1)
	}

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.SeedAll(repository.NewCompanyRepository(db), repository.NewUserRepository(db)); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seeding done")
}
