package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExecutionStatus tracks technician progress on a work item.
type ExecutionStatus string

const (
	ExecutionStatusPending    ExecutionStatus = "Pending"
	ExecutionStatusInProgress ExecutionStatus = "In_Progress"
	ExecutionStatusDone       ExecutionStatus = "Done"
)

// Defect is a diagnosed fault. It is informational and implicitly accepted.
type Defect struct {
	ID              int64     `json:"id"`
	OrderID         int64     `json:"order_id"`
	DefectTypeID    int64     `json:"defect_type_id"`
	DiagnosticianID int64     `json:"diagnostician_id"`
	Comment         string    `json:"comment"`
	Confirmed       bool      `json:"confirmed"`
	CreatedAt       time.Time `json:"created_at"`
}

// WorkItem is a proposed service line. Price is a snapshot taken at creation.
type WorkItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	ServiceID   *int64          `json:"service_id,omitempty"`
	DefectID    *int64          `json:"defect_id,omitempty"`
	ServiceName string          `json:"service_name"`
	Price       decimal.Decimal `json:"price"`
	WorkerID    *int64          `json:"worker_id,omitempty"`
	Status      ExecutionStatus `json:"status"`
	Confirmed   bool            `json:"confirmed"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PartItem is a proposed part. UnitPrice, Name and Brand are snapshots.
type PartItem struct {
	ID              int64           `json:"id"`
	OrderID         int64           `json:"order_id"`
	WarehouseItemID *int64          `json:"warehouse_item_id,omitempty"`
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        int64           `json:"quantity"`
	Confirmed       bool            `json:"confirmed"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LineTotal is UnitPrice times Quantity.
func (p PartItem) LineTotal() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity))
}
