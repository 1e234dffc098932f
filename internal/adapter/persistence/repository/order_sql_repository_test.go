package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/infrastructure/database/dbtest"
	"service_station/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func newOrder(now time.Time) entities.Order {
	return entities.Order{
		ClientID:      7,
		CarID:         70,
		IntakeClerkID: 1,
		Status:        entities.OrderStatusNew,
		Complaint:     "rattle",
		Mileage:       120000,
		Prepayment:    decimal.RequireFromString("10.50"),
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOrderSQLRepository_InsertAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderSQLRepository(dbtest.NewSQLite(t))
	now := time.Date(2026, 3, 1, 10, 0, 0, 123000000, time.UTC)

	var created entities.Order
	err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
		o, err := tx.Insert(ctx, newOrder(now))
		if err != nil {
			return err
		}
		created = o
		if _, err := tx.InsertDefects(ctx, []entities.Defect{{OrderID: o.ID, DefectTypeID: 3, DiagnosticianID: 2, Comment: "worn", CreatedAt: now}}); err != nil {
			return err
		}
		if _, err := tx.InsertWorkItems(ctx, []entities.WorkItem{{OrderID: o.ID, ServiceName: "Brake pads", Price: decimal.RequireFromString("45.10"), Status: entities.ExecutionStatusPending, CreatedAt: now}}); err != nil {
			return err
		}
		_, err = tx.InsertPartItems(ctx, []entities.PartItem{{OrderID: o.ID, Name: "Clip", Brand: "ACME", UnitPrice: decimal.RequireFromString("0.10"), Quantity: 3, CreatedAt: now}})
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}

	snap, err := repo.GetSnapshot(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o := snap.Order
	if o.Status != entities.OrderStatusNew || o.Version != 1 || o.Complaint != "rattle" {
		t.Fatalf("unexpected order: %+v", o)
	}
	if !o.Prepayment.Equal(decimal.RequireFromString("10.50")) {
		t.Fatalf("expected prepayment 10.50, got %s", o.Prepayment)
	}
	if o.TotalAmount != nil || o.CompletedAt != nil || o.AssignedWorkerID != nil {
		t.Fatalf("expected nil optional fields, got %+v", o)
	}
	if !o.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, o.CreatedAt)
	}
	if len(snap.Defects) != 1 || len(snap.Works) != 1 || len(snap.Parts) != 1 {
		t.Fatalf("unexpected children: %+v", snap)
	}
	if !snap.Parts[0].LineTotal().Equal(decimal.RequireFromString("0.30")) {
		t.Fatalf("expected part line total 0.30, got %s", snap.Parts[0].LineTotal())
	}
	if snap.Works[0].Confirmed || snap.Works[0].Status != entities.ExecutionStatusPending {
		t.Fatalf("unexpected work item: %+v", snap.Works[0])
	}
}

func TestOrderSQLRepository_GetSnapshotNotFound(t *testing.T) {
	repo := NewOrderSQLRepository(dbtest.NewSQLite(t))

	snap, err := repo.GetSnapshot(context.Background(), 404)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Order.ID != 0 {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}

func TestOrderSQLRepository_UpdateCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderSQLRepository(dbtest.NewSQLite(t))
	now := time.Now().UTC()

	var o entities.Order
	if err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
		var err error
		o, err = tx.Insert(ctx, newOrder(now))
		return err
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("current version wins", func(t *testing.T) {
		next := o
		next.Status = entities.OrderStatusDiagnostics
		total := decimal.RequireFromString("95.20")
		next.TotalAmount = &total
		err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
			updated, err := tx.Update(ctx, next)
			if err != nil {
				return err
			}
			if updated.Version != 2 {
				t.Fatalf("expected version 2, got %d", updated.Version)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := repo.GetSnapshot(ctx, o.ID)
		if snap.Order.Version != 2 || snap.Order.Status != entities.OrderStatusDiagnostics {
			t.Fatalf("unexpected stored order: %+v", snap.Order)
		}
		if snap.Order.TotalAmount == nil || !snap.Order.TotalAmount.Equal(total) {
			t.Fatalf("expected total 95.20, got %v", snap.Order.TotalAmount)
		}
	})

	t.Run("stale version loses", func(t *testing.T) {
		stale := o
		stale.Status = entities.OrderStatusCancelled
		err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
			_, err := tx.Update(ctx, stale)
			return err
		})
		if !errors.Is(err, workflow.ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
		snap, _ := repo.GetSnapshot(ctx, o.ID)
		if snap.Order.Status != entities.OrderStatusDiagnostics {
			t.Fatalf("expected status unchanged, got %s", snap.Order.Status)
		}
	})
}

func TestOrderSQLRepository_RunInTxRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderSQLRepository(dbtest.NewSQLite(t))
	boom := errors.New("boom")

	var id int64
	err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
		o, err := tx.Insert(ctx, newOrder(time.Now().UTC()))
		if err != nil {
			return err
		}
		id = o.ID
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	snap, err := repo.GetSnapshot(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Order.ID != 0 {
		t.Fatalf("expected rolled back insert, got %+v", snap.Order)
	}
}

func TestOrderSQLRepository_LineItems(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderSQLRepository(dbtest.NewSQLite(t))
	now := time.Now().UTC()

	var orderID, workID, partID int64
	if err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
		o, err := tx.Insert(ctx, newOrder(now))
		if err != nil {
			return err
		}
		orderID = o.ID
		works, err := tx.InsertWorkItems(ctx, []entities.WorkItem{{OrderID: o.ID, ServiceName: "Oil change", Price: decimal.RequireFromString("100"), Status: entities.ExecutionStatusPending, CreatedAt: now}})
		if err != nil {
			return err
		}
		workID = works[0].ID
		parts, err := tx.InsertPartItems(ctx, []entities.PartItem{{OrderID: o.ID, Name: "Filter", UnitPrice: decimal.RequireFromString("25"), Quantity: 2, CreatedAt: now}})
		if err != nil {
			return err
		}
		partID = parts[0].ID
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("update keeps price snapshot", func(t *testing.T) {
		worker := int64(5)
		err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
			return tx.UpdateWorkItems(ctx, []entities.WorkItem{{
				ID: workID, OrderID: orderID, WorkerID: &worker, Status: entities.ExecutionStatusInProgress,
				Confirmed: true, Price: decimal.RequireFromString("1"),
			}})
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := repo.GetSnapshot(ctx, orderID)
		w := snap.Works[0]
		if !w.Confirmed || w.Status != entities.ExecutionStatusInProgress || w.WorkerID == nil || *w.WorkerID != 5 {
			t.Fatalf("unexpected work item: %+v", w)
		}
		if !w.Price.Equal(decimal.RequireFromString("100")) {
			t.Fatalf("expected price 100, got %s", w.Price)
		}
	})

	t.Run("delete unknown item", func(t *testing.T) {
		err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
			return tx.DeletePartItem(ctx, orderID, partID+100)
		})
		if !errors.Is(err, workflow.ErrUnknownLineItem) {
			t.Fatalf("expected ErrUnknownLineItem, got %v", err)
		}
	})

	t.Run("delete item of another order", func(t *testing.T) {
		err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
			return tx.DeleteWorkItem(ctx, orderID+1, workID)
		})
		if !errors.Is(err, workflow.ErrUnknownLineItem) {
			t.Fatalf("expected ErrUnknownLineItem, got %v", err)
		}
	})

	t.Run("delete part", func(t *testing.T) {
		err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
			return tx.DeletePartItem(ctx, orderID, partID)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := repo.GetSnapshot(ctx, orderID)
		if len(snap.Parts) != 0 {
			t.Fatalf("expected no parts, got %+v", snap.Parts)
		}
	})
}

func TestOrderSQLRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderSQLRepository(dbtest.NewSQLite(t))
	now := time.Now().UTC()

	worker := int64(9)
	if err := repo.RunInTx(ctx, func(tx interfaces.IOrderTx) error {
		for i, status := range []entities.OrderStatus{entities.OrderStatusNew, entities.OrderStatusInWork, entities.OrderStatusInWork} {
			o := newOrder(now)
			o.Status = status
			o.CarID = int64(100 + i)
			if status == entities.OrderStatusInWork {
				o.AssignedWorkerID = &worker
			}
			if _, err := tx.Insert(ctx, o); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		filter entities.OrderFilter
		want   int
	}{
		{name: "all", filter: entities.OrderFilter{}, want: 3},
		{name: "by status", filter: entities.OrderFilter{Statuses: []entities.OrderStatus{entities.OrderStatusInWork}}, want: 2},
		{name: "by car", filter: entities.OrderFilter{CarID: 100}, want: 1},
		{name: "by worker", filter: entities.OrderFilter{WorkerID: worker}, want: 2},
		{name: "limit", filter: entities.OrderFilter{Limit: 1}, want: 1},
		{name: "no match", filter: entities.OrderFilter{ClientID: 999}, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d orders, got %d", tc.want, len(got))
			}
		})
	}
}
