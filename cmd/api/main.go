package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bengkelpos/backend/api/controllers"
	"github.com/bengkelpos/backend/api/routes"
	"github.com/bengkelpos/backend/internal/activity"
	"github.com/bengkelpos/backend/internal/auth"
	"github.com/bengkelpos/backend/internal/catalog"
	"github.com/bengkelpos/backend/internal/dashboard"
	"github.com/bengkelpos/backend/internal/products"
	"github.com/bengkelpos/backend/internal/sales"
	"github.com/bengkelpos/backend/internal/sessions"
	"github.com/bengkelpos/backend/pkg/config"
	"github.com/bengkelpos/backend/pkg/db"
	"github.com/bengkelpos/backend/pkg/logger"
	"github.com/bengkelpos/backend/pkg/metrics"
	"github.com/bengkelpos/backend/pkg/migrate"
	"github.com/bengkelpos/backend/pkg/redis"
	"github.com/bengkelpos/backend/pkg/storage"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	storageClient, err := storage.New(context.Background(), cfg.Storage, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap object storage", err)
		os.Exit(1)
	}
	defer storageClient.Close()

	gormDB := dbClient.DB()

	sessionService, err := sessions.NewService(sessions.NewRepository(gormDB), cfg.Session, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create session service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.NewRepository(gormDB), sessionService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	activityRecorder, err := activity.NewLogger(activity.NewRepository(gormDB), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create activity logger", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	productService, err := products.NewService(products.NewRepository(gormDB), activityRecorder, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	saleService, err := sales.NewService(sales.NewRepository(gormDB), activityRecorder, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create sale service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(dashboard.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	health := map[string]controllers.Pinger{
		"database": dbClient,
		"storage":  storageClient,
	}
	if redisClient != nil {
		health["redis"] = redisClient
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.New(routes.Deps{
			Config:    cfg,
			Logger:    logg,
			Metrics:   metrics.NewHTTPMetrics(prometheus.DefaultRegisterer),
			Redis:     redisClient,
			Storage:   storageClient,
			Health:    health,
			Sessions:  sessionService,
			Auth:      authService,
			Activity:  activityRecorder,
			Catalog:   catalogService,
			Products:  productService,
			Sales:     saleService,
			Dashboard: dashboardService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
