package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "service_station/docs"
	"service_station/internal/adapter/http/handlers"
	"service_station/internal/adapter/http/middleware"
	"service_station/internal/adapter/persistence/repository"
	"service_station/internal/config"
	"service_station/internal/domain/workflow"
	"service_station/internal/infrastructure/cache"
	"service_station/internal/infrastructure/database"
	"service_station/internal/infrastructure/logger"
	"service_station/internal/infrastructure/messaging"
	"service_station/internal/infrastructure/session"
	"service_station/internal/infrastructure/telemetry"
	"service_station/internal/usecase"
	"service_station/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type orderHandlers struct {
	orders     *handlers.OrderHandler
	lineItems  *handlers.LineItemHandler
	approval   *handlers.ApprovalHandler
	execution  *handlers.ExecutionHandler
	settlement *handlers.SettlementHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := serve(cfg, zlog); err != nil {
		zlog.Fatal("[http] server stopped", zap.Error(err))
	}
}

func serve(cfg *config.Config, zlog *zap.Logger) error {
	ctx := context.Background()
	var closers []func(context.Context) error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](context.Background()); err != nil {
				zlog.Warn("[http] shutdown step failed", zap.Error(err))
			}
		}
	}()

	if cfg.Telemetry.Enabled {
		shutdownTracer, err := telemetry.InitTracerProvider(ctx, cfg.Telemetry.Endpoint, cfg.ServiceName, cfg.Telemetry.Version)
		if err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
		closers = append(closers, shutdownTracer)
	}
	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(cfg.ServiceName, cfg.Telemetry.Version)
	if err != nil {
		return fmt.Errorf("init meter: %w", err)
	}
	closers = append(closers, shutdownMeter)

	db, err := database.ConnectSQL(ctx, cfg.Database)
	if err != nil {
		return err
	}
	closers = append(closers, func(context.Context) error { return db.Close() })

	audit, err := newAuditLog(ctx, cfg.Audit, zlog)
	if err != nil {
		return err
	}

	var catalog interfaces.ICatalogRepository = repository.NewCatalogSQLRepository(db)
	redisClient, err := cache.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		zlog.Warn("[catalog][cache] redis unavailable, serving catalog from the database", zap.Error(err))
	} else if redisClient != nil {
		catalog = repository.NewCachedCatalogRepository(catalog, cache.NewRedisStore(redisClient), cfg.Redis.TTL, zlog)
		closers = append(closers, func(context.Context) error { return redisClient.Close() })
	}

	orderRepo := repository.NewOrderSQLRepository(db)
	machine := workflow.NewMachine(workflow.Options{RequireQualityControl: cfg.Workflow.RequireQualityControl})

	var runnerOpts []usecase.RunnerOption
	if len(cfg.Kafka.Brokers) > 0 {
		producer := messaging.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		runnerOpts = append(runnerOpts, usecase.WithEventPublisher(producer))
		closers = append(closers, func(context.Context) error { return producer.Close() })
	}
	runner := usecase.NewCommandRunner(orderRepo, audit, machine, zlog, runnerOpts...)

	oh := orderHandlers{
		orders:     handlers.NewOrderHandler(usecase.NewOrderUseCase(runner, orderRepo, audit, cfg.Workflow.AutoStartDiagnostics)),
		lineItems:  handlers.NewLineItemHandler(usecase.NewLineItemUseCase(runner, orderRepo, catalog)),
		approval:   handlers.NewApprovalHandler(usecase.NewApprovalUseCase(runner, catalog, cfg.Workflow.DiagnosisFee)),
		execution:  handlers.NewExecutionHandler(usecase.NewExecutionUseCase(runner)),
		settlement: handlers.NewSettlementHandler(usecase.NewSettlementUseCase(runner, orderRepo)),
	}
	catalogHandler := handlers.NewCatalogHandler(usecase.NewCatalogUseCase(catalog))
	auth := middleware.NewAuthMiddleware(session.NewJWTValidator(cfg.JWTSecret), zlog)

	router := gin.New()
	setMiddlewares(router, zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metricsHandler))
	addPingRoutes(router, db)

	v1 := router.Group("/v1", auth.Authenticate())
	addOrderRoutes(v1, oh)
	addCatalogRoutes(v1, catalogHandler)

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           otelhttp.NewHandler(router, cfg.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("[http] listening", zap.Int("port", cfg.Port), zap.String("db_driver", cfg.Database.Driver), zap.String("audit_backend", cfg.Audit.Backend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		zlog.Info("[http] shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newAuditLog(ctx context.Context, cfg config.AuditConfig, zlog *zap.Logger) (interfaces.IAuditLog, error) {
	switch cfg.Backend {
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		return repository.NewAuditDynamoRepository(ddb, cfg.TableName), nil
	case "log":
		return repository.NewAuditMemoryLog(zlog), nil
	default:
		return nil, fmt.Errorf("unsupported AUDIT_BACKEND %q", cfg.Backend)
	}
}

func setMiddlewares(router *gin.Engine, zlog *zap.Logger) {
	router.Use(middleware.RequestLogger(zlog))
	router.Use(middleware.Recovery(zlog))
}
