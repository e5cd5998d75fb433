package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Henlorata/FrakHub-sub001/internal/api/http"
	"github.com/Henlorata/FrakHub-sub001/internal/api/http/handlers"
	"github.com/Henlorata/FrakHub-sub001/internal/assets"
	"github.com/Henlorata/FrakHub-sub001/internal/auth"
	"github.com/Henlorata/FrakHub-sub001/internal/config"
	"github.com/Henlorata/FrakHub-sub001/internal/events"
	"github.com/Henlorata/FrakHub-sub001/internal/observability"
	"github.com/Henlorata/FrakHub-sub001/internal/persistence"
	"github.com/Henlorata/FrakHub-sub001/internal/repository"
	"github.com/Henlorata/FrakHub-sub001/internal/repository/memrepo"
	"github.com/Henlorata/FrakHub-sub001/internal/service"
	"github.com/Henlorata/FrakHub-sub001/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userPG, err := persistence.NewPostgres(ctx, "user-scoped", cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.String("pool", "user-scoped"), zap.Error(err))
	}
	defer userPG.Close()

	adminPG, err := persistence.NewPostgres(ctx, "privileged", cfg.AdminPostgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.String("pool", "privileged"), zap.Error(err))
	}
	defer adminPG.Close()

	if adminPG.Connected() && cfg.AdminPostgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, adminPG.PoolHandle(), persistence.DefaultMigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	userStore, adminStore := buildStores(userPG, adminPG, logger)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	callerProfiles := auth.NewCachedProfileLookup(userStore.Profiles, redis.Handle(), cfg.Auth.ProfileCacheTTL(), logger)
	worker.StartProfileEventWorker(service.NewProfileEventService(dispatcher, callerProfiles, logger))

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokens, callerProfiles)
	authorizer := auth.NewAuthorizer(auth.DefaultRules(cfg.Auth.ExecutiveRanks))

	assetHost, err := assets.NewHost(cfg.Assets)
	if err != nil {
		logger.Fatal("failed to init asset host", zap.Error(err))
	}
	if !cfg.Assets.Configured() {
		logger.Warn("asset host not configured; uploads and avatar cleanup are disabled")
	}

	mutations := service.NewProfileMutationService(service.MutationDependencies{
		Store:      adminStore,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})
	adminService := service.NewAdminService(cfg.Auth, service.AdminDependencies{
		Store:      adminStore,
		Assets:     assetHost,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	assetService := service.NewAssetService(cfg.Assets, assetHost, logger)

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: cfg.Assets.MaxUploadBytes + 1024*1024,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, adminPG, redis, metrics),
		Users:          handlers.NewAdminUsersHandler(mutations, adminService),
		Assets:         handlers.NewAssetsHandler(assetService),
		AuthMiddleware: authMiddleware,
		Authorizer:     authorizer,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

// buildStores returns the user-scoped and privileged store handles. Without a
// database both share one in-memory store.
func buildStores(userPG, adminPG *persistence.Postgres, logger *zap.Logger) (*repository.Store, *repository.Store) {
	if !adminPG.Connected() {
		logger.Warn("no database configured; using in-memory store")
		store := memrepo.New().Store()
		return store, store
	}
	adminStore := repository.NewPostgresStore(adminPG.PoolHandle())
	if !userPG.Connected() {
		return adminStore, adminStore
	}
	return repository.NewPostgresStore(userPG.PoolHandle()), adminStore
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
