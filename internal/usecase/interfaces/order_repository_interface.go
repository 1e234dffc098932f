package interfaces

import (
	"context"

	"service_station/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_mock.go -package=mock_interfaces

// IOrderRepository abstracts the relational order store.
//
// Every mutating command runs inside RunInTx: the snapshot is read, validated
// and written back through IOrderTx, and Update enforces the version
// compare-and-swap. Getters return a zero-value entity when the order does
// not exist.
type IOrderRepository interface {
	RunInTx(ctx context.Context, fn func(tx IOrderTx) error) error
	GetSnapshot(ctx context.Context, id int64) (entities.OrderSnapshot, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

// IOrderTx is the transaction-scoped view of the order store.
type IOrderTx interface {
	Insert(ctx context.Context, o entities.Order) (entities.Order, error)
	LoadSnapshot(ctx context.Context, id int64) (entities.OrderSnapshot, error)
	// Update writes o if the stored version still equals o.Version and
	// returns it with the incremented version.
	Update(ctx context.Context, o entities.Order) (entities.Order, error)

	InsertDefects(ctx context.Context, defects []entities.Defect) ([]entities.Defect, error)
	UpdateDefects(ctx context.Context, defects []entities.Defect) error
	InsertWorkItems(ctx context.Context, items []entities.WorkItem) ([]entities.WorkItem, error)
	UpdateWorkItems(ctx context.Context, items []entities.WorkItem) error
	DeleteWorkItem(ctx context.Context, orderID, itemID int64) error
	InsertPartItems(ctx context.Context, items []entities.PartItem) ([]entities.PartItem, error)
	UpdatePartItems(ctx context.Context, items []entities.PartItem) error
	DeletePartItem(ctx context.Context, orderID, itemID int64) error
}
