package usecase

import (
	"context"
	"errors"
	"testing"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"

	"github.com/shopspring/decimal"
)

// toPartsSelection returns an order that has been diagnosed with one defect.
func (e testEnv) toPartsSelection(t *testing.T) entities.OrderSnapshot {
	t.Helper()
	ctx := context.Background()
	snap, err := e.orders.CreateOrder(ctx, clerk, workflow.OrderInput{ClientID: 1, CarID: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	snap, err = e.items.SubmitDiagnosis(ctx, snap.Order.ID, diagnostician, []workflow.DefectInput{{DefectTypeID: 100}}, nil)
	if err != nil {
		t.Fatalf("diagnosis: %v", err)
	}
	return snap
}

func TestLineItemUseCase_SubmitDiagnosis(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{autoStart: true})
	snap, _ := env.orders.CreateOrder(ctx, clerk, workflow.OrderInput{ClientID: 1, CarID: 2})

	cases := []struct {
		name    string
		actor   entities.Actor
		defects []workflow.DefectInput
		wantErr error
	}{
		{name: "no defects", actor: diagnostician, defects: nil, wantErr: workflow.ErrInvalidLineItem},
		{name: "unknown defect type", actor: diagnostician, defects: []workflow.DefectInput{{DefectTypeID: 999}}, wantErr: workflow.ErrInvalidLineItem},
		{name: "missing defect type", actor: diagnostician, defects: []workflow.DefectInput{{Comment: "x"}}, wantErr: workflow.ErrInvalidLineItem},
		{name: "wrong role", actor: partsClerk, defects: []workflow.DefectInput{{DefectTypeID: 100}}, wantErr: workflow.ErrIllegalTransition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.items.SubmitDiagnosis(ctx, snap.Order.ID, tc.actor, tc.defects, nil)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		got, err := env.items.SubmitDiagnosis(ctx, snap.Order.ID, diagnostician, []workflow.DefectInput{{DefectTypeID: 100, Comment: " worn "}}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Order.Status != entities.OrderStatusPartsSelection || len(got.Defects) != 1 {
			t.Fatalf("unexpected snapshot: %+v", got)
		}
		d := got.Defects[0]
		if d.ID == 0 || d.DiagnosticianID != diagnostician.ID || d.Comment != "worn" || d.Confirmed {
			t.Fatalf("unexpected defect: %+v", d)
		}
	})
}

func TestLineItemUseCase_Proposal(t *testing.T) {
	ctx := context.Background()

	t.Run("empty proposal", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := env.toPartsSelection(t)
		_, err := env.items.ProposeLineItems(ctx, snap.Order.ID, partsClerk, ProposalInput{}, nil)
		if !errors.Is(err, workflow.ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("invalid items reject the batch", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := env.toPartsSelection(t)
		bad := decimal.RequireFromString("-5")
		cases := []struct {
			name    string
			in      ProposalInput
			wantErr error
		}{
			{name: "negative price", in: ProposalInput{Works: []workflow.WorkInput{{Name: "Wash", Price: &bad}}}, wantErr: workflow.ErrInvalidLineItem},
			{name: "unknown service", in: ProposalInput{Works: []workflow.WorkInput{{ServiceID: ptr(404)}}}, wantErr: workflow.ErrInvalidLineItem},
			{name: "inactive service", in: ProposalInput{Works: []workflow.WorkInput{{ServiceID: ptr(2)}}}, wantErr: workflow.ErrInvalidLineItem},
			{name: "not enough stock", in: ProposalInput{Parts: []workflow.PartInput{{WarehouseItemID: ptr(20), Quantity: 5}}}, wantErr: workflow.ErrInvalidLineItem},
			{name: "zero quantity", in: ProposalInput{Parts: []workflow.PartInput{{Name: "Bolt", UnitPrice: &decimal.Zero}}}, wantErr: workflow.ErrInvalidLineItem},
			{name: "foreign defect", in: ProposalInput{Works: []workflow.WorkInput{{ServiceID: ptr(1), DefectID: ptr(9999)}}}, wantErr: workflow.ErrUnknownLineItem},
			{
				name: "second item invalid",
				in: ProposalInput{
					Works: []workflow.WorkInput{{ServiceID: ptr(1)}},
					Parts: []workflow.PartInput{{Name: "", UnitPrice: &decimal.Zero, Quantity: 1}},
				},
				wantErr: workflow.ErrInvalidLineItem,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := env.items.ProposeLineItems(ctx, snap.Order.ID, partsClerk, tc.in, nil)
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
		items, err := env.items.ListItems(ctx, snap.Order.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items.Works) != 0 || len(items.Parts) != 0 || items.Status != entities.OrderStatusPartsSelection {
			t.Fatalf("expected no partial writes, got %+v", items)
		}
	})

	t.Run("edits then submit", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := env.toPartsSelection(t)
		id := snap.Order.ID

		price := decimal.RequireFromString("12.34")
		snap, err := env.items.AddWorkItem(ctx, id, partsClerk, workflow.WorkInput{Name: "Diagnostics report", Price: &price}, nil)
		if err != nil {
			t.Fatalf("add work: %v", err)
		}
		snap, err = env.items.AddPartItem(ctx, id, partsClerk, workflow.PartInput{WarehouseItemID: ptr(20), Quantity: 1}, nil)
		if err != nil {
			t.Fatalf("add part: %v", err)
		}
		if snap.Order.Status != entities.OrderStatusPartsSelection || snap.Parts[0].Brand != "ACME" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		snap, err = env.items.RemovePartItem(ctx, id, partsClerk, snap.Parts[0].ID, nil)
		if err != nil {
			t.Fatalf("remove part: %v", err)
		}
		if _, err := env.items.RemoveWorkItem(ctx, id, partsClerk, 999, nil); !errors.Is(err, workflow.ErrUnknownLineItem) {
			t.Fatalf("expected ErrUnknownLineItem, got %v", err)
		}

		snap, err = env.items.ProposeLineItems(ctx, id, partsClerk, ProposalInput{}, nil)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if snap.Order.Status != entities.OrderStatusApproval || len(snap.Works) != 1 || len(snap.Parts) != 0 {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}

		items, _ := env.items.ListItems(ctx, id)
		if !items.ProposedTotal.Equal(price) || !items.ConfirmedTotal.IsZero() {
			t.Fatalf("unexpected totals: proposed %s confirmed %s", items.ProposedTotal, items.ConfirmedTotal)
		}

		if _, err := env.items.AddWorkItem(ctx, id, partsClerk, workflow.WorkInput{Name: "Late", Price: &price}, nil); !errors.Is(err, workflow.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition after submit, got %v", err)
		}
	})

	t.Run("catalog values are snapshotted", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := env.toApproval(t, "0.00")
		if !snap.Works[0].Price.Equal(decimal.RequireFromString("100.00")) || snap.Works[0].ServiceName != "Brake pad replacement" {
			t.Fatalf("unexpected work snapshot: %+v", snap.Works[0])
		}
		if !snap.Parts[0].UnitPrice.Equal(decimal.RequireFromString("25.00")) || snap.Parts[0].Quantity != 2 {
			t.Fatalf("unexpected part snapshot: %+v", snap.Parts[0])
		}
	})
}

func TestApprovalUseCase_ApplyDecisions(t *testing.T) {
	ctx := context.Background()

	t.Run("total matches recomputation", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := env.toApproval(t, "0.00")

		res, err := env.approval.ApplyDecisions(ctx, snap.Order.ID, clerk, DecisionInput{AcceptedPartIDs: []int64{snap.Parts[0].ID, snap.Parts[0].ID}}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := snap.Parts[0].UnitPrice.Mul(decimal.NewFromInt(snap.Parts[0].Quantity))
		if res.Outcome != workflow.OutcomePartiallyAccepted || !res.Snapshot.Order.TotalAmount.Equal(want) {
			t.Fatalf("expected partial %s, got %s %v", want, res.Outcome, res.Snapshot.Order.TotalAmount)
		}
		if res.Snapshot.Works[0].Confirmed || !res.Snapshot.Parts[0].Confirmed || !res.Snapshot.Defects[0].Confirmed {
			t.Fatalf("unexpected flags: %+v", res.Snapshot)
		}
	})

	t.Run("applying twice is not double counted", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := env.toApproval(t, "0.00")
		in := DecisionInput{AcceptedWorkIDs: []int64{snap.Works[0].ID}, AcceptedPartIDs: []int64{snap.Parts[0].ID}}

		first, err := env.approval.ApplyDecisions(ctx, snap.Order.ID, clerk, in, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := env.approval.ApplyDecisions(ctx, snap.Order.ID, clerk, in, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.Snapshot.Order.TotalAmount.Equal(*second.Snapshot.Order.TotalAmount) {
			t.Fatalf("expected identical totals, got %s and %s", first.Snapshot.Order.TotalAmount, second.Snapshot.Order.TotalAmount)
		}
	})

	t.Run("foreign id rejects the whole batch", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := env.toApproval(t, "0.00")

		_, err := env.approval.ApplyDecisions(ctx, snap.Order.ID, clerk, DecisionInput{AcceptedWorkIDs: []int64{snap.Works[0].ID, 12345}}, nil)
		if !errors.Is(err, workflow.ErrUnknownLineItem) {
			t.Fatalf("expected ErrUnknownLineItem, got %v", err)
		}
		after, _ := env.orders.GetOrder(ctx, snap.Order.ID)
		if after.Works[0].Confirmed || after.Order.TotalAmount != nil {
			t.Fatalf("expected no partial writes, got %+v", after)
		}
	})

	t.Run("wrong status", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := env.toPartsSelection(t)
		_, err := env.approval.ApplyDecisions(ctx, snap.Order.ID, clerk, DecisionInput{}, nil)
		if !errors.Is(err, workflow.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

func TestApprovalUseCase_AssignWorkers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, envOptions{autoStart: true})
	snap := env.toApproval(t, "0.00")
	if _, err := env.approval.ApplyDecisions(ctx, snap.Order.ID, clerk, DecisionInput{AcceptedWorkIDs: []int64{snap.Works[0].ID}}, nil); err != nil {
		t.Fatalf("decisions: %v", err)
	}

	cases := []struct {
		name    string
		in      AssignmentInput
		wantErr error
	}{
		{name: "unknown worker", in: AssignmentInput{WorkerID: 404}, wantErr: workflow.ErrUnknownWorker},
		{name: "inactive worker", in: AssignmentInput{WorkerID: 8}, wantErr: workflow.ErrUnknownWorker},
		{name: "unaccepted item", in: AssignmentInput{WorkerID: 7, Items: []workflow.ItemAssignment{{WorkItemID: 999, WorkerID: 7}}}, wantErr: workflow.ErrUnknownLineItem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.approval.AssignWorkers(ctx, snap.Order.ID, clerk, tc.in, nil)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	t.Run("rejected items stay unassigned", func(t *testing.T) {
		got, err := env.approval.AssignWorkers(ctx, snap.Order.ID, clerk, AssignmentInput{WorkerID: 7}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Order.Status != entities.OrderStatusInWork {
			t.Fatalf("expected In_Work, got %s", got.Order.Status)
		}
	})
}

func TestExecutionUseCase(t *testing.T) {
	ctx := context.Background()

	inWork := func(t *testing.T, env testEnv) entities.OrderSnapshot {
		t.Helper()
		snap := env.toApproval(t, "0.00")
		if _, err := env.approval.ApplyDecisions(ctx, snap.Order.ID, clerk, DecisionInput{AcceptedWorkIDs: []int64{snap.Works[0].ID}}, nil); err != nil {
			t.Fatalf("decisions: %v", err)
		}
		snap, err := env.approval.AssignWorkers(ctx, snap.Order.ID, clerk, AssignmentInput{WorkerID: 7}, nil)
		if err != nil {
			t.Fatalf("assign: %v", err)
		}
		return snap
	}

	t.Run("start then done", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := inWork(t, env)
		workID := snap.Works[0].ID

		got, err := env.execution.StartWorkItem(ctx, snap.Order.ID, technician, workID, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Works[0].Status != entities.ExecutionStatusInProgress || got.Order.Status != entities.OrderStatusInWork {
			t.Fatalf("unexpected snapshot: %+v", got)
		}
		if _, err := env.execution.StartWorkItem(ctx, snap.Order.ID, technician, workID, nil); !errors.Is(err, workflow.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition on restart, got %v", err)
		}
		got, err = env.execution.MarkWorkItemDone(ctx, snap.Order.ID, technician, workID, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Works[0].Status != entities.ExecutionStatusDone || got.Order.Status != entities.OrderStatusInWork {
			t.Fatalf("unexpected snapshot: %+v", got)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := inWork(t, env)
		_, err := env.execution.StartWorkItem(ctx, snap.Order.ID, technician, snap.Works[0].ID+1000, nil)
		if !errors.Is(err, workflow.ErrUnknownLineItem) {
			t.Fatalf("expected ErrUnknownLineItem, got %v", err)
		}
	})

	t.Run("other technician", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := inWork(t, env)
		_, err := env.execution.MarkWorkItemDone(ctx, snap.Order.ID, entities.Actor{ID: 70, Role: entities.RoleTechnician}, snap.Works[0].ID, nil)
		if !errors.Is(err, workflow.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("mandatory quality control", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true, qc: true})
		snap := inWork(t, env)
		got, err := env.execution.MarkWorkItemDone(ctx, snap.Order.ID, technician, snap.Works[0].ID, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Order.Status != entities.OrderStatusQualityControl {
			t.Fatalf("expected Quality_Control, got %s", got.Order.Status)
		}
		got, err = env.orders.Transition(ctx, snap.Order.ID, technician, entities.OrderStatusReady, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Order.Status != entities.OrderStatusReady {
			t.Fatalf("expected Ready, got %s", got.Order.Status)
		}
	})
}

func TestSettlementUseCase(t *testing.T) {
	ctx := context.Background()

	ready := func(t *testing.T, env testEnv, prepayment string) entities.OrderSnapshot {
		t.Helper()
		snap := env.toApproval(t, prepayment)
		if _, err := env.approval.ApplyDecisions(ctx, snap.Order.ID, clerk, DecisionInput{
			AcceptedWorkIDs: []int64{snap.Works[0].ID}, AcceptedPartIDs: []int64{snap.Parts[0].ID},
		}, nil); err != nil {
			t.Fatalf("decisions: %v", err)
		}
		snap, err := env.approval.AssignWorkers(ctx, snap.Order.ID, clerk, AssignmentInput{WorkerID: 7}, nil)
		if err != nil {
			t.Fatalf("assign: %v", err)
		}
		snap, err = env.execution.MarkWorkItemDone(ctx, snap.Order.ID, technician, snap.Works[0].ID, nil)
		if err != nil {
			t.Fatalf("done: %v", err)
		}
		snap, err = env.orders.Transition(ctx, snap.Order.ID, technician, entities.OrderStatusReady, nil)
		if err != nil {
			t.Fatalf("complete work: %v", err)
		}
		return snap
	}

	t.Run("quote before decisions has no amount due", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := env.toApproval(t, "10.00")
		q, err := env.settlement.Quote(ctx, snap.Order.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.AmountDue != nil || !q.Prepayment.Equal(decimal.RequireFromString("10.00")) {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	cases := []struct {
		name    string
		paid    string
		wantErr error
	}{
		{name: "below due", paid: "109.99", wantErr: workflow.ErrInsufficientPayment},
		{name: "exactly due", paid: "110.00"},
		{name: "above due", paid: "200.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, envOptions{autoStart: true})
			snap := ready(t, env, "40.00")

			got, err := env.settlement.SettleOrder(ctx, snap.Order.ID, clerk, workflow.Payment{Method: entities.PaymentMethodBankTransfer, AmountPaid: decimal.RequireFromString(tc.paid)}, nil)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			if got.Order.Status != entities.OrderStatusClosed || !got.Order.AmountPaid.Equal(decimal.RequireFromString(tc.paid)) {
				t.Fatalf("unexpected order: %+v", got.Order)
			}
		})
	}

	t.Run("invalid payment", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := ready(t, env, "0.00")
		_, err := env.settlement.SettleOrder(ctx, snap.Order.ID, clerk, workflow.Payment{Method: "crypto", AmountPaid: decimal.RequireFromString("150.00")}, nil)
		if !errors.Is(err, workflow.ErrInvalidPayment) {
			t.Fatalf("expected ErrInvalidPayment, got %v", err)
		}
	})

	t.Run("settle before ready", func(t *testing.T) {
		env := newTestEnv(t, envOptions{autoStart: true})
		snap := env.toApproval(t, "0.00")
		_, err := env.settlement.SettleOrder(ctx, snap.Order.ID, clerk, workflow.Payment{Method: entities.PaymentMethodCash, AmountPaid: decimal.RequireFromString("1000")}, nil)
		if !errors.Is(err, workflow.ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}
