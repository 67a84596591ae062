// File: llcdirectory/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"llcdirectory/config"
	"llcdirectory/database"
	businessRepo "llcdirectory/database/repository/business"
	"llcdirectory/handlers"
	"llcdirectory/routes"
	"llcdirectory/services/catalog"
	"llcdirectory/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	providers, err := catalog.LoadProviders(config.AppConfig.ProvidersFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load providers: %v", err)
	}

	healthChecks := map[string]utils.HealthCheck{}

	// Business data source.
	var primary businessRepo.DataSource
	switch config.AppConfig.BusinessSource {
	case config.BusinessSourceMongo:
		if err := database.InitDB(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		primary = businessRepo.NewMongoSource(database.BusinessCollection(), logger)
		healthChecks["mongo"] = func(ctx context.Context) error {
			return database.MongoClient.Ping(ctx, nil)
		}
	default:
		primary = businessRepo.NewCSVSource(config.AppConfig.BusinessCSVPath, logger)
	}
	source := businessRepo.NewFallbackSource(primary, businessRepo.NewFixedSource(), logger)
	catalogService := catalog.NewCatalogService(providers, source, logger)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()

	// Page cache.
	var pageCache utils.PageCache
	switch config.AppConfig.CacheBackend {
	case config.CacheBackendRedis:
		client, err := utils.NewRedisClient()
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer func(c *redis.Client) { _ = c.Close() }(client)
		pageCache = utils.NewRedisPageCache(client)
		healthChecks["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	case config.CacheBackendMemory:
		memoryCache := utils.NewMemoryPageCache(config.AppConfig.CacheMaxEntries)
		memoryCache.StartSweeper(monitorCtx, time.Minute)
		pageCache = memoryCache
	}

	monitor := utils.NewHealthMonitor(healthChecks)
	monitor.Start(monitorCtx, time.Minute)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	handlerBundle := handlers.NewHandlerBundle(catalogHandler, config.AppConfig.SiteBaseURL, monitor.Handler())

	router, err := routes.NewRouter(handlerBundle, routes.RouterOptions{
		Logger:            logger,
		PageCache:         pageCache,
		CacheTTL:          time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second,
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build router: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Starting server",
		zap.String("addr", srv.Addr),
		zap.String("businessSource", config.AppConfig.BusinessSource),
		zap.String("cache", config.AppConfig.CacheBackend),
		zap.Int("providers", providers.Len()),
	)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to close MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
