package workflow

import (
	"fmt"
	"strings"
	"time"

	"service_station/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type OrderInput struct {
	ClientID   int64
	CarID      int64
	Complaint  string
	Mileage    int64
	Prepayment decimal.Decimal
}

// AuthorizeCreate checks the roles allowed to open orders.
func AuthorizeCreate(role entities.Role) error {
	if role != entities.RoleIntakeClerk && role != entities.RoleAdministrator {
		return fmt.Errorf("%w: role %s may not %s orders", ErrIllegalTransition, role, ActionCreate)
	}
	return nil
}

// NewOrder validates intake data and returns an order in status New.
func NewOrder(in OrderInput, intakeClerkID int64, now time.Time) (entities.Order, error) {
	if in.ClientID <= 0 || in.CarID <= 0 {
		return entities.Order{}, fmt.Errorf("%w: client and car are required", ErrInvalidOrder)
	}
	if in.Mileage < 0 {
		return entities.Order{}, fmt.Errorf("%w: mileage must not be negative", ErrInvalidOrder)
	}
	if !ValidAmount(in.Prepayment) {
		return entities.Order{}, fmt.Errorf("%w: prepayment %s", ErrInvalidOrder, in.Prepayment)
	}
	return entities.Order{
		ClientID:      in.ClientID,
		CarID:         in.CarID,
		IntakeClerkID: intakeClerkID,
		Status:        entities.OrderStatusNew,
		Complaint:     strings.TrimSpace(in.Complaint),
		Mileage:       in.Mileage,
		Prepayment:    in.Prepayment,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Cancel moves an order to Cancelled with a mandatory reason.
func Cancel(o entities.Order, reason string, now time.Time) (entities.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return o, ErrReasonRequired
	}
	if o.Status.IsTerminal() {
		return o, fmt.Errorf("%w: order is %s", ErrIllegalTransition, o.Status)
	}
	o.Status = entities.OrderStatusCancelled
	o.CancelReason = reason
	o.UpdatedAt = now
	return o, nil
}
