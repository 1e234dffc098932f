package usecase

import (
	"context"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Quote is what the client owes. AmountDue stays nil until the approval
// decisions have fixed the order total.
type Quote struct {
	OrderID      int64
	Status       entities.OrderStatus
	TotalAmount  *decimal.Decimal
	DiagnosisFee *decimal.Decimal
	Prepayment   decimal.Decimal
	AmountDue    *decimal.Decimal
	AmountPaid   *decimal.Decimal
}

// ISettlementUseCase covers the final payment of an order.
type ISettlementUseCase interface {
	Quote(ctx context.Context, orderID int64) (Quote, error)
	SettleOrder(ctx context.Context, orderID int64, actor entities.Actor, payment workflow.Payment, expectedVersion *int64) (entities.OrderSnapshot, error)
}

type SettlementUseCase struct {
	runner *CommandRunner
	repo   interfaces.IOrderRepository
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(runner *CommandRunner, repo interfaces.IOrderRepository) *SettlementUseCase {
	return &SettlementUseCase{runner: runner, repo: repo}
}

func (u *SettlementUseCase) Quote(ctx context.Context, orderID int64) (Quote, error) {
	snap, err := getSnapshot(ctx, u.repo, orderID)
	if err != nil {
		return Quote{}, err
	}
	o := snap.Order
	q := Quote{
		OrderID:      o.ID,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		DiagnosisFee: o.DiagnosisFee,
		Prepayment:   o.Prepayment,
		AmountPaid:   o.AmountPaid,
	}
	if o.TotalAmount != nil || o.DiagnosisFee != nil {
		due := workflow.AmountDue(o)
		q.AmountDue = &due
	}
	return q, nil
}

func (u *SettlementUseCase) SettleOrder(ctx context.Context, orderID int64, actor entities.Actor, payment workflow.Payment, expectedVersion *int64) (entities.OrderSnapshot, error) {
	cmd := command{name: "settle", orderID: orderID, actor: actor, action: workflow.ActionSettle, expectedVersion: expectedVersion}
	return u.runner.run(ctx, cmd, func(ctx context.Context, ex *execution) error {
		o, err := workflow.Settle(ex.snap.Order, payment, ex.now)
		if err != nil {
			return err
		}
		ex.detail = string(payment.Method) + " " + payment.AmountPaid.StringFixed(workflow.MoneyScale)
		ex.setOrder(workflow.ActionSettle, o)
		return nil
	})
}
