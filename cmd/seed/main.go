package main

import (
	"context"
	"flag"
	"log"
	"time"

	"service_station/internal/adapter/persistence/repository"
	"service_station/internal/config"
	"service_station/internal/infrastructure/cache"
	"service_station/internal/infrastructure/database"
	"service_station/internal/infrastructure/logger"
	"service_station/internal/infrastructure/seed"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	path := flag.String("file", "cmd/seed/catalog.example.yaml", "catalog YAML file")
	migrateFirst := flag.Bool("migrate", false, "apply pending migrations before seeding")
	flag.Parse()

	zlog, err := logger.New("info", "console")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	catalog, err := seed.LoadFile(*path)
	if err != nil {
		zlog.Fatal("[seed] invalid catalog file", zap.String("file", *path), zap.Error(err))
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		zlog.Fatal("[seed] invalid configuration", zap.Error(err))
	}
	if *migrateFirst {
		if err := database.Migrate(cfg); err != nil {
			zlog.Fatal("[seed] migration failed", zap.Error(err))
		}
	}

	db, err := database.ConnectSQL(ctx, cfg)
	if err != nil {
		zlog.Fatal("[seed] database unavailable", zap.Error(err))
	}
	defer db.Close()

	catalogRepo := repository.NewCatalogSQLRepository(db)
	if err := seed.Apply(ctx, catalogRepo, catalog); err != nil {
		zlog.Fatal("[seed] apply failed", zap.Error(err))
	}
	zlog.Info("[seed] catalog applied",
		zap.Int("services", len(catalog.Services)),
		zap.Int("defect_nodes", len(catalog.DefectNodes)),
		zap.Int("workers", len(catalog.Workers)),
		zap.Int("warehouse_items", len(catalog.WarehouseItems)),
	)

	invalidateCache(ctx, catalog, zlog)
}

// invalidateCache drops the cached catalog views so running API instances
// see the new reference data before the TTL expires.
func invalidateCache(ctx context.Context, catalog seed.Catalog, zlog *zap.Logger) {
	redisCfg := config.LoadRedis()
	client, err := cache.ConnectRedis(ctx, redisCfg)
	if err != nil {
		zlog.Warn("[seed] redis unavailable, cached catalog expires after its TTL", zap.Error(err))
		return
	}
	if client == nil {
		return
	}
	defer client.Close()

	var serviceIDs, defectTypeIDs []int64
	for _, s := range catalog.Services {
		serviceIDs = append(serviceIDs, s.ID)
	}
	for _, n := range catalog.DefectNodes {
		for _, t := range n.Types {
			defectTypeIDs = append(defectTypeIDs, t.ID)
		}
	}

	cached := repository.NewCachedCatalogRepository(nil, cache.NewRedisStore(client), redisCfg.TTL, zlog)
	if err := cached.Invalidate(ctx, repository.CatalogCacheKeys(serviceIDs, defectTypeIDs)...); err != nil {
		zlog.Warn("[seed] cache invalidation failed", zap.Error(err))
	}
}
