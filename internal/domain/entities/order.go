package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a repair order.
//
// Forward order: New, Diagnostics, Parts_Selection, Approval, In_Work,
// Quality_Control (optional), Ready, Closed. Cancelled is reachable from any
// non-terminal status.
type OrderStatus string

const (
	OrderStatusNew            OrderStatus = "New"
	OrderStatusDiagnostics    OrderStatus = "Diagnostics"
	OrderStatusPartsSelection OrderStatus = "Parts_Selection"
	OrderStatusApproval       OrderStatus = "Approval"
	OrderStatusInWork         OrderStatus = "In_Work"
	OrderStatusQualityControl OrderStatus = "Quality_Control"
	OrderStatusReady          OrderStatus = "Ready"
	OrderStatusClosed         OrderStatus = "Closed"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// AllOrderStatuses lists every status in forward order, Cancelled last.
var AllOrderStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusDiagnostics,
	OrderStatusPartsSelection,
	OrderStatusApproval,
	OrderStatusInWork,
	OrderStatusQualityControl,
	OrderStatusReady,
	OrderStatusClosed,
	OrderStatusCancelled,
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusClosed || s == OrderStatusCancelled
}

func (s OrderStatus) Valid() bool {
	for _, v := range AllOrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// PaymentMethod is recorded at settlement.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// Order is the repair order row.
//
// Storage model (SQL):
//   - orders: one row per order, version is the compare-and-swap counter
//   - defects, work_items, part_items: child tables keyed by order_id (cascade delete)
//
// TotalAmount stays nil until the approval decisions have been applied.
type Order struct {
	ID               int64            `json:"id"`
	ClientID         int64            `json:"client_id"`
	CarID            int64            `json:"car_id"`
	IntakeClerkID    int64            `json:"intake_clerk_id"`
	AssignedWorkerID *int64           `json:"assigned_worker_id,omitempty"`
	Status           OrderStatus      `json:"status"`
	Complaint        string           `json:"complaint"`
	Mileage          int64            `json:"mileage"`
	Prepayment       decimal.Decimal  `json:"prepayment"`
	TotalAmount      *decimal.Decimal `json:"total_amount,omitempty"`
	DiagnosisFee     *decimal.Decimal `json:"diagnosis_fee,omitempty"`
	PaymentMethod    PaymentMethod    `json:"payment_method,omitempty"`
	AmountPaid       *decimal.Decimal `json:"amount_paid,omitempty"`
	CancelReason     string           `json:"cancel_reason,omitempty"`
	Version          int64            `json:"version"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
}

// OrderSnapshot is an order together with its owned child collections.
type OrderSnapshot struct {
	Order   Order
	Defects []Defect
	Works   []WorkItem
	Parts   []PartItem
}

// HasConfirmedItems reports whether at least one work or part item is confirmed.
func (s OrderSnapshot) HasConfirmedItems() bool {
	for _, w := range s.Works {
		if w.Confirmed {
			return true
		}
	}
	for _, p := range s.Parts {
		if p.Confirmed {
			return true
		}
	}
	return false
}

// OrderFilter narrows order listings. Zero values are ignored.
type OrderFilter struct {
	Statuses []OrderStatus
	ClientID int64
	CarID    int64
	WorkerID int64
	Limit    uint64
}
