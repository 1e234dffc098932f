//go:build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/infrastructure/database/dbtest"
	"service_station/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func TestOrderSQLRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderSQLRepository(dbtest.NewPostgres(t))
	now := time.Now().UTC().Truncate(time.Microsecond)

	var o entities.Order
	if err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
		var err error
		o, err = tx.Insert(ctx, newOrder(now))
		if err != nil {
			return err
		}
		_, err = tx.InsertPartItems(ctx, []entities.PartItem{{OrderID: o.ID, Name: "Clip", Brand: "ACME", UnitPrice: decimal.RequireFromString("0.10"), Quantity: 3, CreatedAt: now}})
		return err
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("money survives the round trip", func(t *testing.T) {
		snap, err := repo.GetSnapshot(ctx, o.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !snap.Order.Prepayment.Equal(decimal.RequireFromString("10.50")) {
			t.Fatalf("expected prepayment 10.50, got %s", snap.Order.Prepayment)
		}
		if len(snap.Parts) != 1 || !snap.Parts[0].LineTotal().Equal(decimal.RequireFromString("0.30")) {
			t.Fatalf("unexpected parts: %+v", snap.Parts)
		}
	})

	t.Run("one of two concurrent writers wins", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, status := range []entities.OrderStatus{entities.OrderStatusDiagnostics, entities.OrderStatusCancelled} {
			wg.Add(1)
			go func(i int, status entities.OrderStatus) {
				defer wg.Done()
				next := o
				next.Status = status
				errs[i] = repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
					_, err := tx.Update(ctx, next)
					return err
				})
			}(i, status)
		}
		wg.Wait()

		var won, lost int
		for _, err := range errs {
			switch {
			case err == nil:
				won++
			case errors.Is(err, workflow.ErrConcurrentModification):
				lost++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if won != 1 || lost != 1 {
			t.Fatalf("expected one winner and one loser, got %d and %d", won, lost)
		}
		snap, _ := repo.GetSnapshot(ctx, o.ID)
		if snap.Order.Version != o.Version+1 {
			t.Fatalf("expected version %d, got %d", o.Version+1, snap.Order.Version)
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		got, err := repo.List(ctx, entities.OrderFilter{Statuses: []entities.OrderStatus{entities.OrderStatusNew}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no orders left in New, got %d", len(got))
		}
	})
}
