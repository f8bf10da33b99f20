package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "pipecrm/docs" // swag-generated
	"pipecrm/internal/adapter/http/handlers"
	"pipecrm/internal/adapter/persistence/gormrepo"
	"pipecrm/internal/adapter/persistence/repository"
	"pipecrm/internal/config"
	"pipecrm/internal/infrastructure/cache"
	cronrunner "pipecrm/internal/infrastructure/cron"
	"pipecrm/internal/infrastructure/database"
	"pipecrm/internal/usecase"
	"pipecrm/internal/usecase/interfaces"
)

type repositories struct {
	deals       interfaces.IDealRepository
	transitions interfaces.IStageTransitionRepository
	customers   interfaces.ICustomerRepository
	activities  interfaces.IActivityRepository
	forecasts   interfaces.IForecastRepository
}

// Run wires persistence, usecases, handlers and the optional cron runner,
// then serves HTTP until the context is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var snapshotCache interfaces.ISnapshotCache
	if cfg.Cache.Enabled {
		redisCache := cache.NewRedisSnapshotCache(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer redisCache.Close()
		snapshotCache = redisCache
		logger.Info("snapshot cache enabled", zap.String("addr", cfg.Cache.Addr))
	}

	analyticsCfg := usecase.DefaultAnalyticsConfig()
	if cfg.Cache.TTL > 0 {
		analyticsCfg.CacheTTL = cfg.Cache.TTL
	}
	if cfg.Analytics.SnapshotMonthlyHorizon > 0 {
		analyticsCfg.SnapshotMonthlyHorizon = cfg.Analytics.SnapshotMonthlyHorizon
	}
	if cfg.Analytics.SnapshotQuarterlyHorizon > 0 {
		analyticsCfg.SnapshotQuarterlyHorizon = cfg.Analytics.SnapshotQuarterlyHorizon
	}

	pipelineUseCase := usecase.NewPipelineUseCase(repos.deals, repos.transitions, logger)
	analyticsUseCase := usecase.NewAnalyticsUseCase(
		repos.deals, repos.transitions, repos.customers, repos.activities,
		repos.forecasts, snapshotCache, analyticsCfg, logger,
	)

	if cfg.Cron.Enabled {
		runner := cronrunner.NewRunner(logger, ctx)
		if _, err := runner.Add(cfg.Cron.ForecastSnapshot, "forecast-snapshot", analyticsUseCase.SnapshotForecasts); err != nil {
			return err
		}
		runner.Start()
		defer runner.Stop()
	}

	router := gin.New()
	router.Use(ginzap(logger), gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, handlers.NewPipelineHandler(pipelineUseCase), handlers.NewAnalyticsHandler(analyticsUseCase))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories, error) {
	switch cfg.Store.Driver {
	case "postgres":
		pg, err := database.ConnectPostgres(cfg.DB)
		if err != nil {
			return repositories{}, err
		}
		store := gormrepo.New(pg.Gorm)
		if err := store.AutoMigrate(); err != nil {
			return repositories{}, err
		}
		logger.Info("store ready", zap.String("driver", "postgres"))
		return repositories{
			deals:       store.Deals(),
			transitions: store.Transitions(),
			customers:   store.Customers(),
			activities:  store.Activities(),
			forecasts:   store.Forecasts(),
		}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("store ready", zap.String("driver", "dynamodb"))
		return repositories{
			deals:       repository.NewDealDynamoRepository(ddb),
			transitions: repository.NewStageTransitionDynamoRepository(ddb),
			customers:   repository.NewCustomerDynamoRepository(ddb),
			activities:  repository.NewActivityDynamoRepository(ddb),
			forecasts:   repository.NewForecastDynamoRepository(ddb),
		}, nil
	}
}

// ginzap logs one line per request through the shared zap logger.
func ginzap(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()))
	}
}
