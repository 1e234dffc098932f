package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"service_station/internal/domain/entities"
	"service_station/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	catalogKeyPrefix = "catalog:"

	servicesKey    = "services"
	defectNodesKey = "defect_nodes"
	workersKey     = "workers"
)

func serviceKey(id int64) string { return fmt.Sprintf("service:%d", id) }
func defectTypeKey(id int64) string { return fmt.Sprintf("defect_type:%d", id) }

// CatalogCacheKeys lists the keys, without prefix, that hold the list views
// and the given entries. The result is meant for Invalidate.
func CatalogCacheKeys(serviceIDs, defectTypeIDs []int64) []string {
	keys := []string{servicesKey, defectNodesKey, workersKey}
	for _, id := range serviceIDs {
		keys = append(keys, serviceKey(id))
	}
	for _, id := range defectTypeIDs {
		keys = append(keys, defectTypeKey(id))
	}
	return keys
}

// CachedCatalogRepository is a read-through cache in front of a catalog
// source. Cache failures are logged and the source is queried directly.
// Warehouse stock and single-worker lookups are never cached.
type CachedCatalogRepository struct {
	source interfaces.ICatalogRepository
	cache  interfaces.ICacheStore
	ttl    time.Duration
	log    *zap.Logger
}

var _ interfaces.ICatalogRepository = (*CachedCatalogRepository)(nil)

func NewCachedCatalogRepository(source interfaces.ICatalogRepository, cache interfaces.ICacheStore, ttl time.Duration, log *zap.Logger) *CachedCatalogRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedCatalogRepository{source: source, cache: cache, ttl: ttl, log: log}
}

func (r *CachedCatalogRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	return readThrough(ctx, r, servicesKey, r.source.ListServices, func(v []entities.Service) bool { return len(v) > 0 })
}

func (r *CachedCatalogRepository) GetService(ctx context.Context, id int64) (entities.Service, error) {
	return readThrough(ctx, r, serviceKey(id), func(ctx context.Context) (entities.Service, error) {
		return r.source.GetService(ctx, id)
	}, func(v entities.Service) bool { return v.ID != 0 })
}

func (r *CachedCatalogRepository) ListDefectNodes(ctx context.Context) ([]entities.DefectNode, error) {
	return readThrough(ctx, r, defectNodesKey, r.source.ListDefectNodes, func(v []entities.DefectNode) bool { return len(v) > 0 })
}

func (r *CachedCatalogRepository) GetDefectType(ctx context.Context, id int64) (entities.DefectType, error) {
	return readThrough(ctx, r, defectTypeKey(id), func(ctx context.Context) (entities.DefectType, error) {
		return r.source.GetDefectType(ctx, id)
	}, func(v entities.DefectType) bool { return v.ID != 0 })
}

func (r *CachedCatalogRepository) ListWorkers(ctx context.Context) ([]entities.Worker, error) {
	return readThrough(ctx, r, workersKey, r.source.ListWorkers, func(v []entities.Worker) bool { return len(v) > 0 })
}

// GetWorker always reads the source: worker status gates assignment and
// must reflect deactivations immediately.
func (r *CachedCatalogRepository) GetWorker(ctx context.Context, id int64) (entities.Worker, error) {
	return r.source.GetWorker(ctx, id)
}

func (r *CachedCatalogRepository) GetWarehouseItem(ctx context.Context, id int64) (entities.WarehouseItem, error) {
	return r.source.GetWarehouseItem(ctx, id)
}

// Invalidate drops the given catalog keys. Called after seeding.
func (r *CachedCatalogRepository) Invalidate(ctx context.Context, keys ...string) error {
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, catalogKeyPrefix+k)
	}
	return r.cache.Del(ctx, full...)
}

// readThrough serves key from the cache or loads it from the source.
// Values for which keep returns false (empty lists, not found) are not cached.
func readThrough[T any](ctx context.Context, r *CachedCatalogRepository, key string, load func(context.Context) (T, error), keep func(T) bool) (T, error) {
	key = catalogKeyPrefix + key

	raw, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.Warn("[catalog][cache] get failed", zap.String("key", key), zap.Error(err))
	}
	if ok {
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return v, nil
		}
		r.log.Warn("[catalog][cache] discarding undecodable entry", zap.String("key", key))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if !keep(v) {
		return v, nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return v, nil
	}
	if err := r.cache.Set(ctx, key, string(payload), r.ttl); err != nil {
		r.log.Warn("[catalog][cache] set failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}
