package usecase

import (
	"context"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// DecisionInput carries the client's choices. Payment is only read when
// every item is rejected and the order closes on the diagnosis fee.
type DecisionInput struct {
	AcceptedWorkIDs []int64
	AcceptedPartIDs []int64
	Payment         *workflow.Payment
}

type DecisionResult struct {
	Snapshot entities.OrderSnapshot
	Outcome  workflow.Outcome
}

type AssignmentInput struct {
	WorkerID int64
	Items    []workflow.ItemAssignment
}

// IApprovalUseCase covers the client decision and technician assignment.
type IApprovalUseCase interface {
	ApplyDecisions(ctx context.Context, orderID int64, actor entities.Actor, in DecisionInput, expectedVersion *int64) (DecisionResult, error)
	AssignWorkers(ctx context.Context, orderID int64, actor entities.Actor, in AssignmentInput, expectedVersion *int64) (entities.OrderSnapshot, error)
}

type ApprovalUseCase struct {
	runner       *CommandRunner
	catalog      interfaces.ICatalogRepository
	diagnosisFee decimal.Decimal
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(runner *CommandRunner, catalog interfaces.ICatalogRepository, diagnosisFee decimal.Decimal) *ApprovalUseCase {
	return &ApprovalUseCase{runner: runner, catalog: catalog, diagnosisFee: diagnosisFee}
}

// ApplyDecisions confirms the accepted items and stores the order total.
// When nothing with a price is accepted the order is closed on the diagnosis
// fee in the same transaction.
func (u *ApprovalUseCase) ApplyDecisions(ctx context.Context, orderID int64, actor entities.Actor, in DecisionInput, expectedVersion *int64) (DecisionResult, error) {
	var outcome workflow.Outcome
	cmd := command{name: "apply_decisions", orderID: orderID, actor: actor, action: workflow.ActionApplyDecisions, expectedVersion: expectedVersion}
	snap, err := u.runner.run(ctx, cmd, func(ctx context.Context, ex *execution) error {
		d, err := workflow.ApplyDecisions(ex.snap, in.AcceptedWorkIDs, in.AcceptedPartIDs)
		if err != nil {
			return err
		}
		if err := ex.tx.UpdateDefects(ctx, d.Defects); err != nil {
			return err
		}
		if err := ex.tx.UpdateWorkItems(ctx, d.Works); err != nil {
			return err
		}
		if err := ex.tx.UpdatePartItems(ctx, d.Parts); err != nil {
			return err
		}
		ex.snap.Defects, ex.snap.Works, ex.snap.Parts = d.Defects, d.Works, d.Parts
		outcome = d.Outcome

		if d.Outcome != workflow.OutcomeRejected {
			o := ex.snap.Order
			total := d.Total
			o.TotalAmount = &total
			o.DiagnosisFee = nil
			ex.setOrder(workflow.ActionApplyDecisions, o)
			return nil
		}

		if _, err := ex.machine.Authorize(ex.snap.Order.Status, workflow.ActionRejectAll, ex.actor.Role); err != nil {
			return err
		}
		o, err := workflow.CloseRejected(ex.snap.Order, u.diagnosisFee, in.Payment, ex.now)
		if err != nil {
			return err
		}
		ex.detail = "diagnosis fee " + u.diagnosisFee.StringFixed(workflow.MoneyScale)
		ex.setOrder(workflow.ActionRejectAll, o)
		return nil
	})
	if err != nil {
		return DecisionResult{}, err
	}
	return DecisionResult{Snapshot: snap, Outcome: outcome}, nil
}

// AssignWorkers sets the responsible technician and starts the work. Confirmed
// work items without an explicit technician go to the responsible one.
func (u *ApprovalUseCase) AssignWorkers(ctx context.Context, orderID int64, actor entities.Actor, in AssignmentInput, expectedVersion *int64) (entities.OrderSnapshot, error) {
	ids := []int64{in.WorkerID}
	for _, a := range in.Items {
		ids = append(ids, a.WorkerID)
	}
	workers, err := u.lookupWorkers(ctx, ids)
	if err != nil {
		return entities.OrderSnapshot{}, err
	}
	lookup := func(id int64) (entities.Worker, bool) {
		w, ok := workers[id]
		return w, ok
	}

	cmd := command{name: "assign_workers", orderID: orderID, actor: actor, action: workflow.ActionAssignWorkers, expectedVersion: expectedVersion}
	return u.runner.run(ctx, cmd, func(ctx context.Context, ex *execution) error {
		works, err := workflow.ResolveAssignment(ex.snap, in.WorkerID, in.Items, lookup)
		if err != nil {
			return err
		}
		for i := range works {
			if works[i].Confirmed && works[i].WorkerID == nil {
				main := in.WorkerID
				works[i].WorkerID = &main
			}
		}
		if err := ex.tx.UpdateWorkItems(ctx, works); err != nil {
			return err
		}
		ex.snap.Works = works

		main := in.WorkerID
		ex.snap.Order.AssignedWorkerID = &main
		return ex.move(workflow.ActionAssignWorkers)
	})
}

func (u *ApprovalUseCase) lookupWorkers(ctx context.Context, ids []int64) (map[int64]entities.Worker, error) {
	out := make(map[int64]entities.Worker, len(ids))
	for _, id := range ids {
		if _, ok := out[id]; ok || id <= 0 {
			continue
		}
		w, err := u.catalog.GetWorker(ctx, id)
		if err != nil {
			return nil, err
		}
		if w.ID != 0 {
			out[id] = w
		}
	}
	return out, nil
}
