package workflow

import (
	"fmt"

	"service_station/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type Outcome string

const (
	OutcomeFullyAccepted     Outcome = "fully_accepted"
	OutcomePartiallyAccepted Outcome = "partially_accepted"
	OutcomeRejected          Outcome = "rejected"
)

// Decision is the result of applying the client's choices to a proposal.
type Decision struct {
	Total   decimal.Decimal
	Outcome Outcome
	Defects []entities.Defect
	Works   []entities.WorkItem
	Parts   []entities.PartItem
}

// AcceptedWorks returns the confirmed work items.
func (d Decision) AcceptedWorks() []entities.WorkItem {
	var out []entities.WorkItem
	for _, w := range d.Works {
		if w.Confirmed {
			out = append(out, w)
		}
	}
	return out
}

// AcceptedParts returns the confirmed part items.
func (d Decision) AcceptedParts() []entities.PartItem {
	var out []entities.PartItem
	for _, p := range d.Parts {
		if p.Confirmed {
			out = append(out, p)
		}
	}
	return out
}

// ConfirmedTotal is the only place an order total is computed:
// sum of confirmed work prices plus unit price times quantity of confirmed parts.
func ConfirmedTotal(works []entities.WorkItem, parts []entities.PartItem) decimal.Decimal {
	total := decimal.Zero
	for _, w := range works {
		if w.Confirmed {
			total = total.Add(w.Price)
		}
	}
	for _, p := range parts {
		if p.Confirmed {
			total = total.Add(p.LineTotal())
		}
	}
	return total
}

// ApplyDecisions confirms exactly the accepted items and rejects the rest.
// Any id that is not a pending item of this order rejects the whole batch.
// The snapshot is not modified.
func ApplyDecisions(snap entities.OrderSnapshot, acceptedWorkIDs, acceptedPartIDs []int64) (Decision, error) {
	works := make([]entities.WorkItem, len(snap.Works))
	copy(works, snap.Works)
	parts := make([]entities.PartItem, len(snap.Parts))
	copy(parts, snap.Parts)
	defects := make([]entities.Defect, len(snap.Defects))
	copy(defects, snap.Defects)

	acceptedWorks := make(map[int64]bool, len(acceptedWorkIDs))
	for _, id := range acceptedWorkIDs {
		i, err := FindWork(snap, id)
		if err != nil {
			return Decision{}, err
		}
		if works[i].Status != entities.ExecutionStatusPending {
			return Decision{}, fmt.Errorf("%w: work item %d is %s", ErrUnknownLineItem, id, works[i].Status)
		}
		acceptedWorks[id] = true
	}
	acceptedParts := make(map[int64]bool, len(acceptedPartIDs))
	for _, id := range acceptedPartIDs {
		if _, err := FindPart(snap, id); err != nil {
			return Decision{}, err
		}
		acceptedParts[id] = true
	}

	for i := range works {
		works[i].Confirmed = acceptedWorks[works[i].ID]
	}
	for i := range parts {
		parts[i].Confirmed = acceptedParts[parts[i].ID]
	}
	for i := range defects {
		defects[i].Confirmed = true
	}

	total := ConfirmedTotal(works, parts)
	outcome := OutcomePartiallyAccepted
	switch {
	case total.IsZero():
		outcome = OutcomeRejected
	case len(acceptedWorks) == len(works) && len(acceptedParts) == len(parts):
		outcome = OutcomeFullyAccepted
	}

	return Decision{
		Total:   total,
		Outcome: outcome,
		Defects: defects,
		Works:   works,
		Parts:   parts,
	}, nil
}
