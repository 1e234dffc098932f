package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"service_station/internal/config"

	sq "github.com/Masterminds/squirrel"
	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB is an instrumented *sql.DB that knows its SQL dialect.
type DB struct {
	*sql.DB
	Driver string
}

// Builder returns a squirrel builder with the driver's placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	if db.Driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// ConnectSQL opens the relational store described by cfg.
//
// SQLite runs with a single connection so that transactions on the same
// file are serialized.
func ConnectSQL(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	driverName, dsn, system, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := otelsql.Open(driverName, dsn, otelsql.WithAttributes(semconv.DBSystemKey.String(system)))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	if cfg.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return &DB{DB: sqlDB, Driver: cfg.Driver}, nil
}

func dataSource(cfg config.DatabaseConfig) (driverName, dsn, system string, err error) {
	switch cfg.Driver {
	case DriverPostgres:
		return "pgx", cfg.URL, "postgresql", nil
	case DriverSQLite:
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite", cfg.SQLitePath)
		return "sqlite", dsn, "sqlite", nil
	default:
		return "", "", "", fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}
