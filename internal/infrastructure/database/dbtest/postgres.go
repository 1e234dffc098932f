//go:build integration

package dbtest

import (
	"context"
	"testing"
	"time"

	"service_station/internal/config"
	"service_station/internal/infrastructure/database"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// NewPostgres starts a disposable PostgreSQL container and returns a migrated
// connection to it. The container is terminated when the test finishes.
func NewPostgres(t testing.TB) *database.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("service_station"),
		postgres.WithUsername("service_station"),
		postgres.WithPassword("service_station"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	cfg := config.DatabaseConfig{Driver: database.DriverPostgres, URL: connStr}
	if err := database.Migrate(cfg); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db, err := database.ConnectSQL(ctx, cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
