package interfaces

import (
	"context"

	"service_station/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mock_interfaces

// ICatalogRepository is read-only access to reference data. Single-entity
// getters return a zero-value entity when the id is unknown.
type ICatalogRepository interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id int64) (entities.Service, error)
	ListDefectNodes(ctx context.Context) ([]entities.DefectNode, error)
	GetDefectType(ctx context.Context, id int64) (entities.DefectType, error)
	ListWorkers(ctx context.Context) ([]entities.Worker, error)
	GetWorker(ctx context.Context, id int64) (entities.Worker, error)
	GetWarehouseItem(ctx context.Context, id int64) (entities.WarehouseItem, error)
}

// ICatalogWriter loads reference data (seeding only).
type ICatalogWriter interface {
	UpsertService(ctx context.Context, s entities.Service) error
	UpsertDefectNode(ctx context.Context, n entities.DefectNode) error
	UpsertWorker(ctx context.Context, w entities.Worker) error
	UpsertWarehouseItem(ctx context.Context, item entities.WarehouseItem) error
}
