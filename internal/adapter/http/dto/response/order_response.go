package response

import (
	"time"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/usecase"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(workflow.MoneyScale)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}

type OrderResponse struct {
	ID               int64      `json:"id"`
	ClientID         int64      `json:"client_id"`
	CarID            int64      `json:"car_id"`
	IntakeClerkID    int64      `json:"intake_clerk_id"`
	AssignedWorkerID *int64     `json:"assigned_worker_id,omitempty"`
	Status           string     `json:"status"`
	Complaint        string     `json:"complaint"`
	Mileage          int64      `json:"mileage"`
	Prepayment       string     `json:"prepayment" example:"0.00"`
	TotalAmount      *string    `json:"total_amount,omitempty" example:"150.00"`
	DiagnosisFee     *string    `json:"diagnosis_fee,omitempty"`
	PaymentMethod    string     `json:"payment_method,omitempty"`
	AmountPaid       *string    `json:"amount_paid,omitempty"`
	CancelReason     string     `json:"cancel_reason,omitempty"`
	Version          int64      `json:"version"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		ClientID:         o.ClientID,
		CarID:            o.CarID,
		IntakeClerkID:    o.IntakeClerkID,
		AssignedWorkerID: o.AssignedWorkerID,
		Status:           string(o.Status),
		Complaint:        o.Complaint,
		Mileage:          o.Mileage,
		Prepayment:       money(o.Prepayment),
		TotalAmount:      moneyPtr(o.TotalAmount),
		DiagnosisFee:     moneyPtr(o.DiagnosisFee),
		PaymentMethod:    string(o.PaymentMethod),
		AmountPaid:       moneyPtr(o.AmountPaid),
		CancelReason:     o.CancelReason,
		Version:          o.Version,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		CompletedAt:      o.CompletedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type DefectResponse struct {
	ID              int64     `json:"id"`
	DefectTypeID    int64     `json:"defect_type_id"`
	DiagnosticianID int64     `json:"diagnostician_id"`
	Comment         string    `json:"comment"`
	Confirmed       bool      `json:"confirmed"`
	CreatedAt       time.Time `json:"created_at"`
}

type WorkItemResponse struct {
	ID          int64     `json:"id"`
	ServiceID   *int64    `json:"service_id,omitempty"`
	DefectID    *int64    `json:"defect_id,omitempty"`
	ServiceName string    `json:"service_name"`
	Price       string    `json:"price"`
	WorkerID    *int64    `json:"worker_id,omitempty"`
	Status      string    `json:"status"`
	Confirmed   bool      `json:"confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

type PartItemResponse struct {
	ID              int64     `json:"id"`
	WarehouseItemID *int64    `json:"warehouse_item_id,omitempty"`
	Name            string    `json:"name"`
	Brand           string    `json:"brand"`
	UnitPrice       string    `json:"unit_price"`
	Quantity        int64     `json:"quantity"`
	LineTotal       string    `json:"line_total"`
	Confirmed       bool      `json:"confirmed"`
	CreatedAt       time.Time `json:"created_at"`
}

func fromDefects(in []entities.Defect) []DefectResponse {
	out := make([]DefectResponse, 0, len(in))
	for _, d := range in {
		out = append(out, DefectResponse{
			ID:              d.ID,
			DefectTypeID:    d.DefectTypeID,
			DiagnosticianID: d.DiagnosticianID,
			Comment:         d.Comment,
			Confirmed:       d.Confirmed,
			CreatedAt:       d.CreatedAt,
		})
	}
	return out
}

func fromWorks(in []entities.WorkItem) []WorkItemResponse {
	out := make([]WorkItemResponse, 0, len(in))
	for _, w := range in {
		out = append(out, WorkItemResponse{
			ID:          w.ID,
			ServiceID:   w.ServiceID,
			DefectID:    w.DefectID,
			ServiceName: w.ServiceName,
			Price:       money(w.Price),
			WorkerID:    w.WorkerID,
			Status:      string(w.Status),
			Confirmed:   w.Confirmed,
			CreatedAt:   w.CreatedAt,
		})
	}
	return out
}

func fromParts(in []entities.PartItem) []PartItemResponse {
	out := make([]PartItemResponse, 0, len(in))
	for _, p := range in {
		out = append(out, PartItemResponse{
			ID:              p.ID,
			WarehouseItemID: p.WarehouseItemID,
			Name:            p.Name,
			Brand:           p.Brand,
			UnitPrice:       money(p.UnitPrice),
			Quantity:        p.Quantity,
			LineTotal:       money(p.LineTotal()),
			Confirmed:       p.Confirmed,
			CreatedAt:       p.CreatedAt,
		})
	}
	return out
}

// SnapshotResponse is an order with its line items.
type SnapshotResponse struct {
	Order   OrderResponse      `json:"order"`
	Defects []DefectResponse   `json:"defects"`
	Works   []WorkItemResponse `json:"works"`
	Parts   []PartItemResponse `json:"parts"`
}

func FromSnapshot(s entities.OrderSnapshot) SnapshotResponse {
	return SnapshotResponse{
		Order:   FromOrder(s.Order),
		Defects: fromDefects(s.Defects),
		Works:   fromWorks(s.Works),
		Parts:   fromParts(s.Parts),
	}
}

type LineItemsResponse struct {
	OrderID        int64              `json:"order_id"`
	Status         string             `json:"status"`
	Defects        []DefectResponse   `json:"defects"`
	Works          []WorkItemResponse `json:"works"`
	Parts          []PartItemResponse `json:"parts"`
	ProposedTotal  string             `json:"proposed_total"`
	ConfirmedTotal string             `json:"confirmed_total"`
}

func FromLineItems(li usecase.LineItems) LineItemsResponse {
	return LineItemsResponse{
		OrderID:        li.OrderID,
		Status:         string(li.Status),
		Defects:        fromDefects(li.Defects),
		Works:          fromWorks(li.Works),
		Parts:          fromParts(li.Parts),
		ProposedTotal:  money(li.ProposedTotal),
		ConfirmedTotal: money(li.ConfirmedTotal),
	}
}

type DecisionResponse struct {
	Outcome        string           `json:"outcome" example:"fully_accepted"`
	ConfirmedTotal string           `json:"confirmed_total" example:"150.00"`
	Snapshot       SnapshotResponse `json:"snapshot"`
}

func FromDecision(r usecase.DecisionResult) DecisionResponse {
	total := decimal.Zero
	if r.Snapshot.Order.TotalAmount != nil {
		total = *r.Snapshot.Order.TotalAmount
	}
	return DecisionResponse{
		Outcome:        string(r.Outcome),
		ConfirmedTotal: money(total),
		Snapshot:       FromSnapshot(r.Snapshot),
	}
}

type QuoteResponse struct {
	OrderID      int64   `json:"order_id"`
	Status       string  `json:"status"`
	TotalAmount  *string `json:"total_amount,omitempty"`
	DiagnosisFee *string `json:"diagnosis_fee,omitempty"`
	Prepayment   string  `json:"prepayment"`
	AmountDue    *string `json:"amount_due,omitempty"`
	AmountPaid   *string `json:"amount_paid,omitempty"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	return QuoteResponse{
		OrderID:      q.OrderID,
		Status:       string(q.Status),
		TotalAmount:  moneyPtr(q.TotalAmount),
		DiagnosisFee: moneyPtr(q.DiagnosisFee),
		Prepayment:   money(q.Prepayment),
		AmountDue:    moneyPtr(q.AmountDue),
		AmountPaid:   moneyPtr(q.AmountPaid),
	}
}

type AuditEntryResponse struct {
	EntryID   string    `json:"entry_id"`
	Action    string    `json:"action"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ActorID   int64     `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAuditEntries(entries []entities.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			EntryID:   e.EntryID,
			Action:    e.Action,
			OldStatus: string(e.OldStatus),
			NewStatus: string(e.NewStatus),
			ActorID:   e.ActorID,
			ActorRole: string(e.ActorRole),
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
