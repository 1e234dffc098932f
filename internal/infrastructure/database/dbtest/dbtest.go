// Package dbtest provides migrated throwaway databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"service_station/internal/config"
	"service_station/internal/infrastructure/database"
)

// NewSQLite returns a migrated SQLite database in a temporary directory.
func NewSQLite(t testing.TB) *database.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "service_station.db"),
	}
	if err := database.Migrate(cfg); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db, err := database.ConnectSQL(context.Background(), cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
