package workflow

import (
	"fmt"
	"time"

	"service_station/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Payment is what the client hands over at settlement.
type Payment struct {
	Method     entities.PaymentMethod
	AmountPaid decimal.Decimal
}

func (p Payment) validate() error {
	if !p.Method.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidPayment, p.Method)
	}
	if !ValidAmount(p.AmountPaid) {
		return fmt.Errorf("%w: amount %s", ErrInvalidPayment, p.AmountPaid)
	}
	return nil
}

// AmountDue is the charge minus prepayment. The charge is the confirmed total,
// or the diagnosis fee when the client rejected everything.
func AmountDue(o entities.Order) decimal.Decimal {
	charge := decimal.Zero
	switch {
	case o.DiagnosisFee != nil:
		charge = *o.DiagnosisFee
	case o.TotalAmount != nil:
		charge = *o.TotalAmount
	}
	return charge.Sub(o.Prepayment)
}

// Settle records full payment and closes a Ready order.
func Settle(o entities.Order, p Payment, now time.Time) (entities.Order, error) {
	if o.Status != entities.OrderStatusReady {
		return o, fmt.Errorf("%w: settle requires %s, order is %s", ErrIllegalTransition, entities.OrderStatusReady, o.Status)
	}
	if err := p.validate(); err != nil {
		return o, err
	}
	return closeWithPayment(o, p, now)
}

// CloseRejected closes an order whose client rejected every line item.
// Only the diagnosis fee is charged; a payment is needed when it exceeds the prepayment.
func CloseRejected(o entities.Order, fee decimal.Decimal, p *Payment, now time.Time) (entities.Order, error) {
	if o.Status != entities.OrderStatusApproval {
		return o, fmt.Errorf("%w: reject-all requires %s, order is %s", ErrIllegalTransition, entities.OrderStatusApproval, o.Status)
	}
	zero := decimal.Zero
	o.TotalAmount = &zero
	o.DiagnosisFee = &fee

	if p == nil {
		if due := AmountDue(o); due.IsPositive() {
			return o, fmt.Errorf("%w: diagnosis fee due %s", ErrInsufficientPayment, due.StringFixed(MoneyScale))
		}
		o.Status = entities.OrderStatusClosed
		o.CompletedAt = &now
		return o, nil
	}
	if err := p.validate(); err != nil {
		return o, err
	}
	return closeWithPayment(o, *p, now)
}

func closeWithPayment(o entities.Order, p Payment, now time.Time) (entities.Order, error) {
	due := AmountDue(o)
	if p.AmountPaid.LessThan(due) {
		return o, fmt.Errorf("%w: paid %s, due %s", ErrInsufficientPayment, p.AmountPaid.StringFixed(MoneyScale), due.StringFixed(MoneyScale))
	}
	paid := p.AmountPaid
	o.PaymentMethod = p.Method
	o.AmountPaid = &paid
	o.Status = entities.OrderStatusClosed
	o.CompletedAt = &now
	return o, nil
}
