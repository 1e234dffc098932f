package workflow

import (
	"errors"
	"testing"

	"service_station/internal/domain/entities"
)

func workers() WorkerLookup {
	known := map[int64]entities.Worker{
		7: {ID: 7, Name: "Ivan", Role: entities.RoleTechnician, Status: entities.WorkerStatusActive},
		8: {ID: 8, Name: "Petr", Role: entities.RoleTechnician, Status: entities.WorkerStatusInactive},
		9: {ID: 9, Name: "Olga", Role: entities.RoleTechnician, Status: entities.WorkerStatusActive},
	}
	return func(id int64) (entities.Worker, bool) {
		w, ok := known[id]
		return w, ok
	}
}

func TestResolveAssignment(t *testing.T) {
	decided := func() entities.OrderSnapshot {
		snap := proposalSnapshot()
		d, _ := ApplyDecisions(snap, []int64{10}, []int64{20})
		snap.Works, snap.Parts = d.Works, d.Parts
		return snap
	}

	t.Run("no confirmed work", func(t *testing.T) {
		_, err := ResolveAssignment(proposalSnapshot(), 7, nil, workers())
		if !errors.Is(err, ErrNoConfirmedWork) {
			t.Fatalf("expected ErrNoConfirmedWork, got %v", err)
		}
	})

	t.Run("unknown main worker", func(t *testing.T) {
		_, err := ResolveAssignment(decided(), 42, nil, workers())
		if !errors.Is(err, ErrUnknownWorker) {
			t.Fatalf("expected ErrUnknownWorker, got %v", err)
		}
	})

	t.Run("inactive worker", func(t *testing.T) {
		_, err := ResolveAssignment(decided(), 8, nil, workers())
		if !errors.Is(err, ErrUnknownWorker) {
			t.Fatalf("expected ErrUnknownWorker, got %v", err)
		}
	})

	t.Run("per item on rejected work", func(t *testing.T) {
		_, err := ResolveAssignment(decided(), 7, []ItemAssignment{{WorkItemID: 11, WorkerID: 9}}, workers())
		if !errors.Is(err, ErrUnknownLineItem) {
			t.Fatalf("expected ErrUnknownLineItem, got %v", err)
		}
	})

	t.Run("per item success", func(t *testing.T) {
		snap := decided()
		works, err := ResolveAssignment(snap, 7, []ItemAssignment{{WorkItemID: 10, WorkerID: 9}}, workers())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if works[0].WorkerID == nil || *works[0].WorkerID != 9 {
			t.Fatalf("expected worker 9 on item 10, got %+v", works[0])
		}
		if snap.Works[0].WorkerID != nil {
			t.Fatalf("snapshot must not be modified")
		}
	})
}

func TestAdvanceWorkItem(t *testing.T) {
	w := entities.WorkItem{ID: 1, Confirmed: true, Status: entities.ExecutionStatusPending}

	started, err := AdvanceWorkItem(w, entities.ExecutionStatusInProgress)
	if err != nil || started.Status != entities.ExecutionStatusInProgress {
		t.Fatalf("unexpected result: %+v (%v)", started, err)
	}
	if _, err := AdvanceWorkItem(started, entities.ExecutionStatusInProgress); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	done, err := AdvanceWorkItem(w, entities.ExecutionStatusDone)
	if err != nil || done.Status != entities.ExecutionStatusDone {
		t.Fatalf("unexpected result: %+v (%v)", done, err)
	}
	if _, err := AdvanceWorkItem(done, entities.ExecutionStatusDone); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	w.Confirmed = false
	if _, err := AdvanceWorkItem(w, entities.ExecutionStatusDone); !errors.Is(err, ErrUnknownLineItem) {
		t.Fatalf("expected ErrUnknownLineItem, got %v", err)
	}
	if !AllConfirmedWorkDone([]entities.WorkItem{done, {Confirmed: false}}) {
		t.Fatalf("unconfirmed items do not block completion")
	}
}

func TestCheckHandoff(t *testing.T) {
	main := int64(7)
	snap := func(status entities.ExecutionStatus) entities.OrderSnapshot {
		return entities.OrderSnapshot{
			Order: entities.Order{ID: 1, Status: entities.OrderStatusInWork, AssignedWorkerID: &main},
			Works: []entities.WorkItem{
				{ID: 10, Confirmed: true, Status: status, WorkerID: &main},
				{ID: 11, Confirmed: false, Status: entities.ExecutionStatusPending},
			},
		}
	}
	mainWorker := entities.Actor{ID: 7, Role: entities.RoleTechnician}
	stranger := entities.Actor{ID: 99, Role: entities.RoleTechnician}

	cases := []struct {
		name   string
		snap   entities.OrderSnapshot
		action Action
		actor  entities.Actor
		ok     bool
	}{
		{"complete after work", snap(entities.ExecutionStatusDone), ActionCompleteWork, mainWorker, true},
		{"quality control after work", snap(entities.ExecutionStatusDone), ActionRequestQualityControl, mainWorker, true},
		{"pass after work", snap(entities.ExecutionStatusDone), ActionPassQualityControl, mainWorker, true},
		{"complete with open work", snap(entities.ExecutionStatusInProgress), ActionCompleteWork, mainWorker, false},
		{"quality control with open work", snap(entities.ExecutionStatusPending), ActionRequestQualityControl, mainWorker, false},
		{"pass with open work", snap(entities.ExecutionStatusPending), ActionPassQualityControl, mainWorker, false},
		{"another technician", snap(entities.ExecutionStatusDone), ActionCompleteWork, stranger, false},
		{"unassigned order", entities.OrderSnapshot{Order: entities.Order{ID: 2}}, ActionRequestQualityControl, mainWorker, false},
		{"other actions pass through", snap(entities.ExecutionStatusPending), ActionStartWorkItem, stranger, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckHandoff(tc.snap, tc.action, tc.actor)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("expected ErrIllegalTransition, got %v", err)
			}
		})
	}
}
