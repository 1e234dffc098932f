package database

import (
	"database/sql"
	"errors"
	"fmt"

	"service_station/internal/config"
	"service_station/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// NewMigrator builds a migrator over the embedded schema for cfg.Driver.
// It owns its own connection; Close on the migrator releases it.
func NewMigrator(cfg config.DatabaseConfig) (*migrate.Migrate, error) {
	driverName, dsn, _, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(migrations.FS, cfg.Driver)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	var drv migratedb.Driver
	switch cfg.Driver {
	case DriverPostgres:
		drv, err = migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
	default:
		drv, err = migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	}
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", src, cfg.Driver, drv)
}

// Migrate applies every pending migration.
func Migrate(cfg config.DatabaseConfig) error {
	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
