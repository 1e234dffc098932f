package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"service_station/internal/domain/entities"
	"service_station/internal/infrastructure/database/dbtest"
	mock_interfaces "service_station/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogSQLRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogSQLRepository(dbtest.NewSQLite(t))

	if err := repo.UpsertService(ctx, entities.Service{ID: 1, Name: "Oil change", Price: decimal.RequireFromString("100.00"), Active: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpsertService(ctx, entities.Service{ID: 1, Name: "Oil change", Price: decimal.RequireFromString("120.50"), Active: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpsertDefectNode(ctx, entities.DefectNode{ID: 10, Name: "Brakes", Types: []entities.DefectType{{ID: 100, Name: "Worn pads"}, {ID: 101, Name: "Leaking caliper"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpsertWorker(ctx, entities.Worker{ID: 5, Name: "Ana", Role: entities.RoleTechnician}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpsertWarehouseItem(ctx, entities.WarehouseItem{ID: 20, Name: "Filter", Brand: "ACME", Price: decimal.RequireFromString("25.00"), Quantity: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("upsert overwrites service", func(t *testing.T) {
		svc, err := repo.GetService(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.Active || !svc.Price.Equal(decimal.RequireFromString("120.50")) {
			t.Fatalf("unexpected service: %+v", svc)
		}
		all, err := repo.ListServices(ctx)
		if err != nil || len(all) != 1 {
			t.Fatalf("expected one service, got %v err=%v", all, err)
		}
	})

	t.Run("defect nodes nest types", func(t *testing.T) {
		nodes, err := repo.ListDefectNodes(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(nodes) != 1 || len(nodes[0].Types) != 2 {
			t.Fatalf("unexpected nodes: %+v", nodes)
		}
		dt, err := repo.GetDefectType(ctx, 101)
		if err != nil || dt.NodeID != 10 {
			t.Fatalf("unexpected defect type: %+v err=%v", dt, err)
		}
	})

	t.Run("worker defaults to active", func(t *testing.T) {
		w, err := repo.GetWorker(ctx, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Status != entities.WorkerStatusActive || w.Role != entities.RoleTechnician {
			t.Fatalf("unexpected worker: %+v", w)
		}
	})

	t.Run("warehouse item", func(t *testing.T) {
		item, err := repo.GetWarehouseItem(ctx, 20)
		if err != nil || item.Quantity != 4 || item.Brand != "ACME" {
			t.Fatalf("unexpected item: %+v err=%v", item, err)
		}
	})

	t.Run("unknown ids return zero values", func(t *testing.T) {
		svc, err := repo.GetService(ctx, 999)
		if err != nil || svc.ID != 0 {
			t.Fatalf("expected zero service, got %+v err=%v", svc, err)
		}
		w, err := repo.GetWorker(ctx, 999)
		if err != nil || w.ID != 0 {
			t.Fatalf("expected zero worker, got %+v err=%v", w, err)
		}
		item, err := repo.GetWarehouseItem(ctx, 999)
		if err != nil || item.ID != 0 {
			t.Fatalf("expected zero item, got %+v err=%v", item, err)
		}
	})
}

func TestCachedCatalogRepository(t *testing.T) {
	ctx := context.Background()
	svc := entities.Service{ID: 1, Name: "Oil change", Price: decimal.RequireFromString("100.00"), Active: true}

	t.Run("miss loads and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockICatalogRepository(ctrl)
		cache := mock_interfaces.NewMockICacheStore(ctrl)
		repo := NewCachedCatalogRepository(source, cache, time.Minute, nil)

		cache.EXPECT().Get(gomock.Any(), "catalog:service:1").Return("", false, nil)
		source.EXPECT().GetService(gomock.Any(), int64(1)).Return(svc, nil)
		cache.EXPECT().Set(gomock.Any(), "catalog:service:1", gomock.Any(), time.Minute).Return(nil)

		got, err := repo.GetService(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != svc.Name {
			t.Fatalf("unexpected service: %+v", got)
		}
	})

	t.Run("hit skips source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockICatalogRepository(ctrl)
		cache := mock_interfaces.NewMockICacheStore(ctrl)
		repo := NewCachedCatalogRepository(source, cache, time.Minute, nil)

		raw, _ := json.Marshal(svc)
		cache.EXPECT().Get(gomock.Any(), "catalog:service:1").Return(string(raw), true, nil)

		got, err := repo.GetService(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Price.Equal(svc.Price) {
			t.Fatalf("expected price %s, got %s", svc.Price, got.Price)
		}
	})

	t.Run("cache failure falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockICatalogRepository(ctrl)
		cache := mock_interfaces.NewMockICacheStore(ctrl)
		repo := NewCachedCatalogRepository(source, cache, time.Minute, nil)

		cache.EXPECT().Get(gomock.Any(), "catalog:workers").Return("", false, errors.New("redis down"))
		source.EXPECT().ListWorkers(gomock.Any()).Return([]entities.Worker{{ID: 5}}, nil)
		cache.EXPECT().Set(gomock.Any(), "catalog:workers", gomock.Any(), time.Minute).Return(errors.New("redis down"))

		got, err := repo.ListWorkers(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected one worker, got %d", len(got))
		}
	})

	t.Run("not found is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockICatalogRepository(ctrl)
		cache := mock_interfaces.NewMockICacheStore(ctrl)
		repo := NewCachedCatalogRepository(source, cache, time.Minute, nil)

		cache.EXPECT().Get(gomock.Any(), "catalog:defect_type:9").Return("", false, nil)
		source.EXPECT().GetDefectType(gomock.Any(), int64(9)).Return(entities.DefectType{}, nil)

		got, err := repo.GetDefectType(ctx, 9)
		if err != nil || got.ID != 0 {
			t.Fatalf("expected zero defect type, got %+v err=%v", got, err)
		}
	})

	t.Run("worker status bypasses cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockICatalogRepository(ctrl)
		cache := mock_interfaces.NewMockICacheStore(ctrl)
		repo := NewCachedCatalogRepository(source, cache, time.Minute, nil)

		gomock.InOrder(
			source.EXPECT().GetWorker(gomock.Any(), int64(7)).Return(entities.Worker{ID: 7, Status: entities.WorkerStatusActive}, nil),
			source.EXPECT().GetWorker(gomock.Any(), int64(7)).Return(entities.Worker{ID: 7, Status: entities.WorkerStatusInactive}, nil),
		)

		if got, _ := repo.GetWorker(ctx, 7); got.Status != entities.WorkerStatusActive {
			t.Fatalf("expected active worker, got %+v", got)
		}
		if got, _ := repo.GetWorker(ctx, 7); got.Status != entities.WorkerStatusInactive {
			t.Fatalf("expected deactivation to be visible, got %+v", got)
		}
	})

	t.Run("source error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockICatalogRepository(ctrl)
		cache := mock_interfaces.NewMockICacheStore(ctrl)
		repo := NewCachedCatalogRepository(source, cache, time.Minute, nil)

		cache.EXPECT().Get(gomock.Any(), "catalog:services").Return("", false, nil)
		source.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("db"))

		_, err := repo.ListServices(ctx)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("warehouse stock bypasses cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockICatalogRepository(ctrl)
		cache := mock_interfaces.NewMockICacheStore(ctrl)
		repo := NewCachedCatalogRepository(source, cache, time.Minute, nil)

		source.EXPECT().GetWarehouseItem(gomock.Any(), int64(20)).Return(entities.WarehouseItem{ID: 20, Quantity: 1}, nil)

		got, err := repo.GetWarehouseItem(ctx, 20)
		if err != nil || got.Quantity != 1 {
			t.Fatalf("unexpected item: %+v err=%v", got, err)
		}
	})

	t.Run("invalidate prefixes keys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockICacheStore(ctrl)
		repo := NewCachedCatalogRepository(nil, cache, time.Minute, nil)

		cache.EXPECT().Del(gomock.Any(), "catalog:services", "catalog:workers").Return(nil)

		if err := repo.Invalidate(ctx, "services", "workers"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogCacheKeys(t *testing.T) {
	keys := CatalogCacheKeys([]int64{1}, []int64{100, 101})
	want := []string{"services", "defect_nodes", "workers", "service:1", "defect_type:100", "defect_type:101"}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, keys)
		}
	}
}
