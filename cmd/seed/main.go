package main

import (
	"context"
	"flag"
	"log"
	"time"

	"careeriq/internal/config"
	"careeriq/internal/database/migration"
	dbpostgres "careeriq/internal/database/postgres"
	"careeriq/internal/database/seeder"
	"careeriq/internal/fixtures"

	"go.uber.org/zap"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply migrations without seeding")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadDatabase()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("migrations applied")

	if *migrateOnly {
		return
	}

	data, err := fixtures.Load()
	if err != nil {
		logger.Fatal("failed to load fixtures", zap.Error(err))
	}

	r := seeder.Runner{Seeders: seeder.Defaults(data), Log: logger}
	if err := r.Run(ctx, db); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	logger.Info("catalog seeded")
}
