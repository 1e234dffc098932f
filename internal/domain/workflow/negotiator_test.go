package workflow

import (
	"errors"
	"testing"

	"service_station/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func proposalSnapshot() entities.OrderSnapshot {
	return entities.OrderSnapshot{
		Order: entities.Order{ID: 1, Status: entities.OrderStatusApproval},
		Defects: []entities.Defect{
			{ID: 1, OrderID: 1, DefectTypeID: 3},
		},
		Works: []entities.WorkItem{
			{ID: 10, OrderID: 1, ServiceName: "Brake pads replacement", Price: dec("100.00"), Status: entities.ExecutionStatusPending},
			{ID: 11, OrderID: 1, ServiceName: "Wheel alignment", Price: dec("45.10"), Status: entities.ExecutionStatusPending},
		},
		Parts: []entities.PartItem{
			{ID: 20, OrderID: 1, Name: "Brake pad", UnitPrice: dec("25.00"), Quantity: 2},
			{ID: 21, OrderID: 1, Name: "Brake fluid", UnitPrice: dec("0.10"), Quantity: 3},
		},
	}
}

// recompute sums accepted items independently of ConfirmedTotal.
func recompute(snap entities.OrderSnapshot, works, parts []int64) decimal.Decimal {
	total := decimal.Zero
	for _, id := range works {
		for _, w := range snap.Works {
			if w.ID == id {
				total = total.Add(w.Price)
			}
		}
	}
	for _, id := range parts {
		for _, p := range snap.Parts {
			if p.ID == id {
				total = total.Add(p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity)))
			}
		}
	}
	return total
}

func TestApplyDecisions_Totals(t *testing.T) {
	snap := proposalSnapshot()

	cases := []struct {
		name    string
		works   []int64
		parts   []int64
		outcome Outcome
	}{
		{"accept all", []int64{10, 11}, []int64{20, 21}, OutcomeFullyAccepted},
		{"accept some", []int64{11}, []int64{21}, OutcomePartiallyAccepted},
		{"only parts", nil, []int64{20}, OutcomePartiallyAccepted},
		{"reject all", nil, nil, OutcomeRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ApplyDecisions(snap, tc.works, tc.parts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := recompute(snap, tc.works, tc.parts)
			if !d.Total.Equal(want) {
				t.Fatalf("expected total %s, got %s", want, d.Total)
			}
			if d.Outcome != tc.outcome {
				t.Fatalf("expected outcome %s, got %s", tc.outcome, d.Outcome)
			}
			if len(d.AcceptedWorks()) != len(tc.works) || len(d.AcceptedParts()) != len(tc.parts) {
				t.Fatalf("unexpected accepted sets: %+v %+v", d.AcceptedWorks(), d.AcceptedParts())
			}
			for _, def := range d.Defects {
				if !def.Confirmed {
					t.Fatalf("defects are always confirmed")
				}
			}
		})
	}

	t.Run("fixed point sum", func(t *testing.T) {
		d, _ := ApplyDecisions(snap, []int64{11}, []int64{21})
		if d.Total.StringFixed(2) != "45.40" {
			t.Fatalf("expected 45.40, got %s", d.Total.StringFixed(2))
		}
	})

	t.Run("snapshot untouched", func(t *testing.T) {
		_, _ = ApplyDecisions(snap, []int64{10}, []int64{20})
		if snap.Works[0].Confirmed || snap.Parts[0].Confirmed || snap.Defects[0].Confirmed {
			t.Fatalf("ApplyDecisions must not mutate its input")
		}
	})
}

func TestApplyDecisions_Idempotent(t *testing.T) {
	snap := proposalSnapshot()
	first, err := ApplyDecisions(snap, []int64{10, 10}, []int64{20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap.Works, snap.Parts, snap.Defects = first.Works, first.Parts, first.Defects
	second, err := ApplyDecisions(snap, []int64{10}, []int64{20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Total.Equal(second.Total) || !second.Total.Equal(dec("150.00")) {
		t.Fatalf("expected 150.00 twice, got %s and %s", first.Total, second.Total)
	}
}

func TestApplyDecisions_RejectsBatch(t *testing.T) {
	t.Run("foreign work item", func(t *testing.T) {
		_, err := ApplyDecisions(proposalSnapshot(), []int64{10, 99}, nil)
		if !errors.Is(err, ErrUnknownLineItem) {
			t.Fatalf("expected ErrUnknownLineItem, got %v", err)
		}
	})

	t.Run("foreign part item", func(t *testing.T) {
		_, err := ApplyDecisions(proposalSnapshot(), nil, []int64{77})
		if !errors.Is(err, ErrUnknownLineItem) {
			t.Fatalf("expected ErrUnknownLineItem, got %v", err)
		}
	})

	t.Run("non pending work item", func(t *testing.T) {
		snap := proposalSnapshot()
		snap.Works[1].Status = entities.ExecutionStatusDone
		_, err := ApplyDecisions(snap, []int64{11}, nil)
		if !errors.Is(err, ErrUnknownLineItem) {
			t.Fatalf("expected ErrUnknownLineItem, got %v", err)
		}
	})
}

func TestConfirmedTotal_IgnoresUnconfirmed(t *testing.T) {
	works := []entities.WorkItem{{Price: dec("10.00"), Confirmed: true}, {Price: dec("99.99")}}
	parts := []entities.PartItem{{UnitPrice: dec("2.50"), Quantity: 4, Confirmed: true}, {UnitPrice: dec("1.00"), Quantity: 1}}
	if got := ConfirmedTotal(works, parts); !got.Equal(dec("20.00")) {
		t.Fatalf("expected 20.00, got %s", got)
	}
}

func TestApplyDecisions_ZeroPricedAcceptance(t *testing.T) {
	snap := proposalSnapshot()
	snap.Works = append(snap.Works, entities.WorkItem{ID: 12, OrderID: 1, ServiceName: "Free inspection", Price: dec("0.00"), Status: entities.ExecutionStatusPending})

	d, err := ApplyDecisions(snap, []int64{12}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Total.IsZero() || d.Outcome != OutcomeRejected {
		t.Fatalf("expected rejected outcome on a zero total, got %s %s", d.Outcome, d.Total)
	}
	if !d.Works[2].Confirmed {
		t.Fatalf("expected the accepted item to stay flagged")
	}
}
