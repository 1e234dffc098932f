package main

import (
	"errors"
	"flag"
	"log"

	"service_station/internal/config"
	"service_station/internal/infrastructure/database"
	"service_station/internal/infrastructure/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	flag.Parse()
	args := flag.Args()

	zlog, err := logger.New("info", "console")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if len(args) < 1 {
		zlog.Fatal("usage: migrate <up|down|version>")
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		zlog.Fatal("[migrate] invalid configuration", zap.Error(err))
	}

	m, err := database.NewMigrator(cfg)
	if err != nil {
		zlog.Fatal("[migrate] failed to create migrate instance", zap.Error(err))
	}
	defer func() { _, _ = m.Close() }()

	switch command := args[0]; command {
	case "up":
		err = m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			zlog.Info("[migrate] no pending migrations")
			return
		}
		if err != nil {
			zlog.Fatal("[migrate] migration up failed", zap.Error(err))
		}
		zlog.Info("[migrate] migrations applied successfully", zap.String("driver", cfg.Driver))

	case "down":
		err = m.Steps(-1)
		if errors.Is(err, migrate.ErrNoChange) {
			zlog.Info("[migrate] no migrations to rollback")
			return
		}
		if err != nil {
			zlog.Fatal("[migrate] migration down failed", zap.Error(err))
		}
		zlog.Info("[migrate] migration rolled back successfully")

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			zlog.Info("[migrate] no migrations applied yet")
			return
		}
		if err != nil {
			zlog.Fatal("[migrate] failed to get version", zap.Error(err))
		}
		zlog.Info("[migrate] current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))

	default:
		zlog.Fatal("[migrate] unknown command", zap.String("command", command))
	}
}
