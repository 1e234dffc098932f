package workflow

import (
	"fmt"
	"strings"
	"time"

	"service_station/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type DefectInput struct {
	DefectTypeID int64
	Comment      string
}

// WorkInput describes a proposed service line. When ServiceID is set the name
// and, if Price is nil, the price are copied from the catalog entry.
type WorkInput struct {
	ServiceID *int64
	DefectID  *int64
	Name      string
	Price     *decimal.Decimal
}

// PartInput describes a proposed part. When WarehouseItemID is set the
// snapshot fields default to the warehouse item.
type PartInput struct {
	WarehouseItemID *int64
	Name            string
	Brand           string
	UnitPrice       *decimal.Decimal
	Quantity        int64
}

// ItemKind distinguishes the two priced collections.
type ItemKind string

const (
	ItemKindWork ItemKind = "work"
	ItemKindPart ItemKind = "part"
)

func NewDefect(orderID, diagnosticianID int64, in DefectInput, now time.Time) (entities.Defect, error) {
	if in.DefectTypeID <= 0 {
		return entities.Defect{}, fmt.Errorf("%w: defect type is required", ErrInvalidLineItem)
	}
	return entities.Defect{
		OrderID:         orderID,
		DefectTypeID:    in.DefectTypeID,
		DiagnosticianID: diagnosticianID,
		Comment:         strings.TrimSpace(in.Comment),
		CreatedAt:       now,
	}, nil
}

// NewWorkItem builds an unconfirmed, pending work item. svc is the catalog
// entry referenced by in.ServiceID, or nil.
func NewWorkItem(orderID int64, in WorkInput, svc *entities.Service, now time.Time) (entities.WorkItem, error) {
	name := strings.TrimSpace(in.Name)
	var price decimal.Decimal
	switch {
	case in.Price != nil:
		price = *in.Price
	case svc != nil:
		price = svc.Price
	default:
		return entities.WorkItem{}, fmt.Errorf("%w: price is required", ErrInvalidLineItem)
	}
	if svc != nil {
		if !svc.Active {
			return entities.WorkItem{}, fmt.Errorf("%w: service %d is not active", ErrInvalidLineItem, svc.ID)
		}
		if name == "" {
			name = svc.Name
		}
	}
	if name == "" {
		return entities.WorkItem{}, fmt.Errorf("%w: service name is required", ErrInvalidLineItem)
	}
	if !ValidAmount(price) {
		return entities.WorkItem{}, fmt.Errorf("%w: price %s", ErrInvalidLineItem, price)
	}

	w := entities.WorkItem{
		OrderID:     orderID,
		DefectID:    in.DefectID,
		ServiceName: name,
		Price:       price,
		Status:      entities.ExecutionStatusPending,
		CreatedAt:   now,
	}
	if svc != nil {
		id := svc.ID
		w.ServiceID = &id
	}
	return w, nil
}

// NewPartItem builds an unconfirmed part item. stock is the warehouse item
// referenced by in.WarehouseItemID, or nil; its quantity must cover the request.
func NewPartItem(orderID int64, in PartInput, stock *entities.WarehouseItem, now time.Time) (entities.PartItem, error) {
	if in.Quantity <= 0 {
		return entities.PartItem{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidLineItem)
	}
	name := strings.TrimSpace(in.Name)
	brand := strings.TrimSpace(in.Brand)
	var price decimal.Decimal
	switch {
	case in.UnitPrice != nil:
		price = *in.UnitPrice
	case stock != nil:
		price = stock.Price
	default:
		return entities.PartItem{}, fmt.Errorf("%w: unit price is required", ErrInvalidLineItem)
	}
	if stock != nil {
		if stock.Quantity < in.Quantity {
			return entities.PartItem{}, fmt.Errorf("%w: only %d of warehouse item %d in stock", ErrInvalidLineItem, stock.Quantity, stock.ID)
		}
		if name == "" {
			name = stock.Name
		}
		if brand == "" {
			brand = stock.Brand
		}
	}
	if name == "" {
		return entities.PartItem{}, fmt.Errorf("%w: part name is required", ErrInvalidLineItem)
	}
	if !ValidAmount(price) {
		return entities.PartItem{}, fmt.Errorf("%w: unit price %s", ErrInvalidLineItem, price)
	}

	p := entities.PartItem{
		OrderID:   orderID,
		Name:      name,
		Brand:     brand,
		UnitPrice: price,
		Quantity:  in.Quantity,
		CreatedAt: now,
	}
	if stock != nil {
		id := stock.ID
		p.WarehouseItemID = &id
	}
	return p, nil
}

// CheckDefectRef fails with ErrUnknownLineItem when id is set and is not a
// defect of the snapshot.
func CheckDefectRef(snap entities.OrderSnapshot, id *int64) error {
	if id == nil {
		return nil
	}
	for _, d := range snap.Defects {
		if d.ID == *id {
			return nil
		}
	}
	return fmt.Errorf("%w: defect %d", ErrUnknownLineItem, *id)
}

func FindWork(snap entities.OrderSnapshot, id int64) (int, error) {
	for i, w := range snap.Works {
		if w.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: work item %d", ErrUnknownLineItem, id)
}

func FindPart(snap entities.OrderSnapshot, id int64) (int, error) {
	for i, p := range snap.Parts {
		if p.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: part item %d", ErrUnknownLineItem, id)
}
