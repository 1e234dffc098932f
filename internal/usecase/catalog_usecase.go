package usecase

import (
	"context"
	"errors"

	"service_station/internal/domain/entities"
	"service_station/internal/usecase/interfaces"
)

var ErrWorkerNotFound = errors.New("worker not found")

// ICatalogUseCase exposes reference data to the front desk.
type ICatalogUseCase interface {
	ListServices(ctx context.Context, activeOnly bool) ([]entities.Service, error)
	DefectTaxonomy(ctx context.Context) ([]entities.DefectNode, error)
	ListWorkers(ctx context.Context, role entities.Role) ([]entities.Worker, error)
	GetWorker(ctx context.Context, id int64) (entities.Worker, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListServices(ctx context.Context, activeOnly bool) ([]entities.Service, error) {
	all, err := u.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return all, nil
	}
	out := make([]entities.Service, 0, len(all))
	for _, s := range all {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (u *CatalogUseCase) DefectTaxonomy(ctx context.Context) ([]entities.DefectNode, error) {
	return u.repo.ListDefectNodes(ctx)
}

// ListWorkers filters by role when role is not empty.
func (u *CatalogUseCase) ListWorkers(ctx context.Context, role entities.Role) ([]entities.Worker, error) {
	all, err := u.repo.ListWorkers(ctx)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return all, nil
	}
	out := make([]entities.Worker, 0, len(all))
	for _, w := range all {
		if w.Role == role {
			out = append(out, w)
		}
	}
	return out, nil
}

func (u *CatalogUseCase) GetWorker(ctx context.Context, id int64) (entities.Worker, error) {
	w, err := u.repo.GetWorker(ctx, id)
	if err != nil {
		return entities.Worker{}, err
	}
	if w.ID == 0 {
		return entities.Worker{}, ErrWorkerNotFound
	}
	return w, nil
}
