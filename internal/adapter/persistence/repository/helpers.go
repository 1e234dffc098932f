package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"service_station/internal/domain/workflow"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// storeErr classifies a driver error. Serialization failures and deadlocks
// are concurrency conflicts; everything else is an infrastructure failure.
func storeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
		return fmt.Errorf("%w: %s", workflow.ErrConcurrentModification, pgErr.Message)
	}
	return workflow.NewStoreError(op, err)
}

// parseTime converts a scanned timestamp. PostgreSQL returns time.Time,
// SQLite returns text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		for _, layout := range []string{
			"2006-01-02 15:04:05.999999999-07:00",
			"2006-01-02 15:04:05.999999999 -0700 MST",
			time.RFC3339Nano,
			"2006-01-02 15:04:05",
		} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC()
			}
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}

func parseTimePtr(v any) *time.Time {
	t := parseTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

func nullableInt(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func intPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func nullableCents(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return workflow.ToMinorUnits(*d)
}

func amountPtr(v sql.NullInt64) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	d := workflow.FromMinorUnits(v.Int64)
	return &d
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
