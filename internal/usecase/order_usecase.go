package usecase

import (
	"context"
	"fmt"
	"strings"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/usecase/interfaces"
)

const defaultListLimit = 100

// IOrderUseCase covers order intake, reads and the generic lifecycle commands.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, actor entities.Actor, in workflow.OrderInput) (entities.OrderSnapshot, error)
	GetOrder(ctx context.Context, orderID int64) (entities.OrderSnapshot, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Queue(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	CarHistory(ctx context.Context, carID int64) ([]entities.Order, error)
	Transition(ctx context.Context, orderID int64, actor entities.Actor, target entities.OrderStatus, expectedVersion *int64) (entities.OrderSnapshot, error)
	CancelOrder(ctx context.Context, orderID int64, actor entities.Actor, reason string, expectedVersion *int64) (entities.OrderSnapshot, error)
	AuditTrail(ctx context.Context, orderID int64) ([]entities.AuditEntry, error)
}

type OrderUseCase struct {
	runner    *CommandRunner
	repo      interfaces.IOrderRepository
	audit     interfaces.IAuditLog
	autoStart bool
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(runner *CommandRunner, repo interfaces.IOrderRepository, audit interfaces.IAuditLog, autoStartDiagnostics bool) *OrderUseCase {
	return &OrderUseCase{runner: runner, repo: repo, audit: audit, autoStart: autoStartDiagnostics}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, actor entities.Actor, in workflow.OrderInput) (entities.OrderSnapshot, error) {
	in.Complaint = strings.TrimSpace(in.Complaint)
	return u.runner.create(ctx, actor, in, u.autoStart)
}

func (u *OrderUseCase) GetOrder(ctx context.Context, orderID int64) (entities.OrderSnapshot, error) {
	return getSnapshot(ctx, u.repo, orderID)
}

func (u *OrderUseCase) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	for _, s := range filter.Statuses {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", workflow.ErrInvalidOrder, s)
		}
	}
	if filter.Limit == 0 || filter.Limit > defaultListLimit {
		filter.Limit = defaultListLimit
	}
	return u.repo.List(ctx, filter)
}

// Queue lists the orders waiting on the actor's role. Technicians only see
// orders assigned to them.
func (u *OrderUseCase) Queue(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	filter := entities.OrderFilter{Statuses: workflow.QueueStatuses(actor.Role), Limit: defaultListLimit}
	if len(filter.Statuses) == 0 {
		return []entities.Order{}, nil
	}
	if actor.Role == entities.RoleTechnician {
		filter.WorkerID = actor.ID
	}
	return u.repo.List(ctx, filter)
}

func (u *OrderUseCase) CarHistory(ctx context.Context, carID int64) ([]entities.Order, error) {
	if carID <= 0 {
		return nil, fmt.Errorf("%w: car id must be positive", workflow.ErrInvalidOrder)
	}
	return u.repo.List(ctx, entities.OrderFilter{CarID: carID, Limit: defaultListLimit})
}

// Transition applies a payload-free edge (start diagnostics, quality control,
// work completion) named by its target status.
func (u *OrderUseCase) Transition(ctx context.Context, orderID int64, actor entities.Actor, target entities.OrderStatus, expectedVersion *int64) (entities.OrderSnapshot, error) {
	machine := u.runner.Machine()
	cmd := command{
		name:            "transition",
		orderID:         orderID,
		actor:           actor,
		expectedVersion: expectedVersion,
		resolve: func(current entities.OrderStatus) (workflow.Action, error) {
			return machine.TransitionAction(current, target)
		},
	}
	return u.runner.run(ctx, cmd, func(ctx context.Context, ex *execution) error {
		if err := workflow.CheckHandoff(ex.snap, ex.action, ex.actor); err != nil {
			return err
		}
		return ex.move(ex.action)
	})
}

func (u *OrderUseCase) CancelOrder(ctx context.Context, orderID int64, actor entities.Actor, reason string, expectedVersion *int64) (entities.OrderSnapshot, error) {
	if strings.TrimSpace(reason) == "" {
		return entities.OrderSnapshot{}, workflow.ErrReasonRequired
	}
	cmd := command{name: "cancel", orderID: orderID, actor: actor, action: workflow.ActionCancel, expectedVersion: expectedVersion}
	return u.runner.run(ctx, cmd, func(ctx context.Context, ex *execution) error {
		o, err := workflow.Cancel(ex.snap.Order, reason, ex.now)
		if err != nil {
			return err
		}
		ex.detail = o.CancelReason
		ex.setOrder(workflow.ActionCancel, o)
		return nil
	})
}

func (u *OrderUseCase) AuditTrail(ctx context.Context, orderID int64) ([]entities.AuditEntry, error) {
	if _, err := getSnapshot(ctx, u.repo, orderID); err != nil {
		return nil, err
	}
	return u.audit.ListByOrder(ctx, orderID)
}

func getSnapshot(ctx context.Context, repo interfaces.IOrderRepository, orderID int64) (entities.OrderSnapshot, error) {
	snap, err := repo.GetSnapshot(ctx, orderID)
	if err != nil {
		return entities.OrderSnapshot{}, err
	}
	if snap.Order.ID == 0 {
		return entities.OrderSnapshot{}, fmt.Errorf("%w: %d", workflow.ErrOrderNotFound, orderID)
	}
	return snap, nil
}
