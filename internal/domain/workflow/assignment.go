package workflow

import (
	"fmt"

	"service_station/internal/domain/entities"
)

// ItemAssignment binds one work item to a technician.
type ItemAssignment struct {
	WorkItemID int64
	WorkerID   int64
}

// WorkerLookup returns the worker with id, or ok=false when it does not exist.
type WorkerLookup func(id int64) (entities.Worker, bool)

// ResolveAssignment validates a technician assignment and returns the work
// items with their per-item technicians applied. The snapshot is not modified.
func ResolveAssignment(snap entities.OrderSnapshot, mainWorkerID int64, perItem []ItemAssignment, lookup WorkerLookup) ([]entities.WorkItem, error) {
	if !snap.HasConfirmedItems() {
		return nil, ErrNoConfirmedWork
	}
	if err := checkWorker(mainWorkerID, lookup); err != nil {
		return nil, err
	}

	works := make([]entities.WorkItem, len(snap.Works))
	copy(works, snap.Works)
	for _, a := range perItem {
		i, err := FindWork(snap, a.WorkItemID)
		if err != nil {
			return nil, err
		}
		if !works[i].Confirmed {
			return nil, fmt.Errorf("%w: work item %d was not accepted", ErrUnknownLineItem, a.WorkItemID)
		}
		if err := checkWorker(a.WorkerID, lookup); err != nil {
			return nil, err
		}
		workerID := a.WorkerID
		works[i].WorkerID = &workerID
	}
	return works, nil
}

func checkWorker(id int64, lookup WorkerLookup) error {
	w, ok := lookup(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownWorker, id)
	}
	if w.Status != entities.WorkerStatusActive {
		return fmt.Errorf("%w: %d is %s", ErrUnknownWorker, id, w.Status)
	}
	return nil
}

// AllConfirmedWorkDone reports whether every confirmed work item is Done.
func AllConfirmedWorkDone(works []entities.WorkItem) bool {
	for _, w := range works {
		if w.Confirmed && w.Status != entities.ExecutionStatusDone {
			return false
		}
	}
	return true
}

// handoffActions end the technician phase of an order.
var handoffActions = map[Action]bool{
	ActionRequestQualityControl: true,
	ActionCompleteWork:          true,
	ActionPassQualityControl:    true,
}

// CheckHandoff guards the edges that end technician work: only the order's
// main worker may take them, and only once every confirmed work item is Done.
func CheckHandoff(snap entities.OrderSnapshot, action Action, actor entities.Actor) error {
	if !handoffActions[action] {
		return nil
	}
	o := snap.Order
	if o.AssignedWorkerID == nil || *o.AssignedWorkerID != actor.ID {
		return fmt.Errorf("%w: order %d is not assigned to worker %d", ErrIllegalTransition, o.ID, actor.ID)
	}
	if !AllConfirmedWorkDone(snap.Works) {
		return fmt.Errorf("%w: confirmed work items are still open", ErrIllegalTransition)
	}
	return nil
}

// AdvanceWorkItem moves a confirmed work item forward in its execution status.
func AdvanceWorkItem(w entities.WorkItem, to entities.ExecutionStatus) (entities.WorkItem, error) {
	if !w.Confirmed {
		return w, fmt.Errorf("%w: work item %d was not accepted", ErrUnknownLineItem, w.ID)
	}
	switch {
	case to == entities.ExecutionStatusInProgress && w.Status == entities.ExecutionStatusPending:
	case to == entities.ExecutionStatusDone && w.Status != entities.ExecutionStatusDone:
	default:
		return w, fmt.Errorf("%w: work item %d is %s", ErrIllegalTransition, w.ID, w.Status)
	}
	w.Status = to
	return w, nil
}
