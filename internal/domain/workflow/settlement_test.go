package workflow

import (
	"errors"
	"testing"
	"time"

	"service_station/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func readyOrder(total, prepayment string) entities.Order {
	t := dec(total)
	return entities.Order{ID: 1, Status: entities.OrderStatusReady, TotalAmount: &t, Prepayment: dec(prepayment)}
}

func TestSettle_RoundTrip(t *testing.T) {
	now := time.Now().UTC()
	o := readyOrder("150.00", "20.00")
	due := AmountDue(o)
	if !due.Equal(dec("130.00")) {
		t.Fatalf("expected due 130.00, got %s", due)
	}

	t.Run("exact amount", func(t *testing.T) {
		closed, err := Settle(o, Payment{Method: entities.PaymentMethodCash, AmountPaid: due}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed.Status != entities.OrderStatusClosed || closed.CompletedAt == nil || closed.PaymentMethod != entities.PaymentMethodCash {
			t.Fatalf("unexpected order: %+v", closed)
		}
	})

	t.Run("overpayment", func(t *testing.T) {
		if _, err := Settle(o, Payment{Method: entities.PaymentMethodCard, AmountPaid: due.Add(dec("0.01"))}, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("one cent short", func(t *testing.T) {
		_, err := Settle(o, Payment{Method: entities.PaymentMethodCard, AmountPaid: due.Sub(dec("0.01"))}, now)
		if !errors.Is(err, ErrInsufficientPayment) {
			t.Fatalf("expected ErrInsufficientPayment, got %v", err)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := Settle(o, Payment{Method: "crypto", AmountPaid: due}, now)
		if !errors.Is(err, ErrInvalidPayment) {
			t.Fatalf("expected ErrInvalidPayment, got %v", err)
		}
	})

	t.Run("not ready", func(t *testing.T) {
		o := o
		o.Status = entities.OrderStatusInWork
		_, err := Settle(o, Payment{Method: entities.PaymentMethodCash, AmountPaid: due}, now)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

func TestCloseRejected(t *testing.T) {
	now := time.Now().UTC()
	approval := entities.Order{ID: 1, Status: entities.OrderStatusApproval, Prepayment: decimal.Zero}

	t.Run("no fee closes without payment", func(t *testing.T) {
		o, err := CloseRejected(approval, decimal.Zero, nil, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrderStatusClosed || !o.TotalAmount.IsZero() || o.AmountPaid != nil {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("fee requires payment", func(t *testing.T) {
		_, err := CloseRejected(approval, dec("100.00"), nil, now)
		if !errors.Is(err, ErrInsufficientPayment) {
			t.Fatalf("expected ErrInsufficientPayment, got %v", err)
		}
	})

	t.Run("fee covered by prepayment", func(t *testing.T) {
		o := approval
		o.Prepayment = dec("100.00")
		closed, err := CloseRejected(o, dec("100.00"), nil, now)
		if err != nil || closed.Status != entities.OrderStatusClosed {
			t.Fatalf("unexpected result: %+v (%v)", closed, err)
		}
	})

	t.Run("fee paid", func(t *testing.T) {
		closed, err := CloseRejected(approval, dec("100.00"), &Payment{Method: entities.PaymentMethodCash, AmountPaid: dec("100.00")}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !AmountDue(closed).Equal(dec("100.00")) || !closed.AmountPaid.Equal(dec("100.00")) {
			t.Fatalf("unexpected order: %+v", closed)
		}
	})
}

func TestCancel(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{ID: 1, Status: entities.OrderStatusPartsSelection}
	if _, err := Cancel(o, "   ", now); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
	c, err := Cancel(o, " client left ", now)
	if err != nil || c.Status != entities.OrderStatusCancelled || c.CancelReason != "client left" {
		t.Fatalf("unexpected result: %+v (%v)", c, err)
	}
	if _, err := Cancel(c, "again", now); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestNewOrder(t *testing.T) {
	now := time.Now().UTC()
	o, err := NewOrder(OrderInput{ClientID: 1, CarID: 2, Complaint: " noise ", Mileage: 50000, Prepayment: decimal.Zero}, 3, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != entities.OrderStatusNew || o.Version != 1 || o.TotalAmount != nil || o.Complaint != "noise" {
		t.Fatalf("unexpected order: %+v", o)
	}
	bad := []OrderInput{
		{CarID: 2},
		{ClientID: 1, CarID: 2, Mileage: -1},
		{ClientID: 1, CarID: 2, Prepayment: dec("-5")},
	}
	for _, in := range bad {
		if _, err := NewOrder(in, 3, now); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder for %+v, got %v", in, err)
		}
	}
	if err := AuthorizeCreate(entities.RoleTechnician); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	if err := AuthorizeCreate(entities.RoleAdministrator); err != nil {
		t.Fatalf("expected administrator to create orders, got %v", err)
	}
}
