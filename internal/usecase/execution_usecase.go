package usecase

import (
	"context"
	"fmt"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
)

// IExecutionUseCase tracks technician progress on confirmed work items.
type IExecutionUseCase interface {
	StartWorkItem(ctx context.Context, orderID int64, actor entities.Actor, itemID int64, expectedVersion *int64) (entities.OrderSnapshot, error)
	MarkWorkItemDone(ctx context.Context, orderID int64, actor entities.Actor, itemID int64, expectedVersion *int64) (entities.OrderSnapshot, error)
}

type ExecutionUseCase struct {
	runner *CommandRunner
}

var _ IExecutionUseCase = (*ExecutionUseCase)(nil)

func NewExecutionUseCase(runner *CommandRunner) *ExecutionUseCase {
	return &ExecutionUseCase{runner: runner}
}

func (u *ExecutionUseCase) StartWorkItem(ctx context.Context, orderID int64, actor entities.Actor, itemID int64, expectedVersion *int64) (entities.OrderSnapshot, error) {
	cmd := command{name: "start_work_item", orderID: orderID, actor: actor, action: workflow.ActionStartWorkItem, expectedVersion: expectedVersion}
	return u.runner.run(ctx, cmd, func(ctx context.Context, ex *execution) error {
		return ex.advanceWork(ctx, itemID, entities.ExecutionStatusInProgress)
	})
}

// MarkWorkItemDone finishes a work item. When quality control is mandatory,
// finishing the last open one moves the order to Quality_Control. Otherwise
// the order stays In_Work and the main worker either completes it or asks for
// quality control through a transition.
func (u *ExecutionUseCase) MarkWorkItemDone(ctx context.Context, orderID int64, actor entities.Actor, itemID int64, expectedVersion *int64) (entities.OrderSnapshot, error) {
	cmd := command{name: "complete_work_item", orderID: orderID, actor: actor, action: workflow.ActionCompleteWorkItem, expectedVersion: expectedVersion}
	return u.runner.run(ctx, cmd, func(ctx context.Context, ex *execution) error {
		if err := ex.advanceWork(ctx, itemID, entities.ExecutionStatusDone); err != nil {
			return err
		}
		if !ex.machine.Options().RequireQualityControl || !workflow.AllConfirmedWorkDone(ex.snap.Works) {
			return nil
		}
		return ex.move(workflow.ActionRequestQualityControl)
	})
}

func (e *execution) advanceWork(ctx context.Context, itemID int64, to entities.ExecutionStatus) error {
	i, err := workflow.FindWork(e.snap, itemID)
	if err != nil {
		return err
	}
	w := e.snap.Works[i]
	if w.WorkerID != nil && *w.WorkerID != e.actor.ID {
		return fmt.Errorf("%w: work item %d is assigned to worker %d", workflow.ErrIllegalTransition, w.ID, *w.WorkerID)
	}
	w, err = workflow.AdvanceWorkItem(w, to)
	if err != nil {
		return err
	}
	if err := e.tx.UpdateWorkItems(ctx, []entities.WorkItem{w}); err != nil {
		return err
	}
	works := make([]entities.WorkItem, len(e.snap.Works))
	copy(works, e.snap.Works)
	works[i] = w
	e.snap.Works = works
	return nil
}
