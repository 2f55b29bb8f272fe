package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresuchdata/salesops-analytics/internal/api"
	"github.com/andresuchdata/salesops-analytics/internal/cache"
	"github.com/andresuchdata/salesops-analytics/internal/config"
	"github.com/andresuchdata/salesops-analytics/internal/dataset"
	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/andresuchdata/salesops-analytics/internal/storage"
	"github.com/andresuchdata/salesops-analytics/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ref, err := cfg.Dataset.Reference(time.Now())
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Invalid dataset configuration")
	}
	seed := cfg.Dataset.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	provider := dataset.NewProvider(dataset.Options{
		Seed:          seed,
		ReferenceDate: ref,
		Days:          cfg.Dataset.Days,
	})

	dashboardCache, err := cache.NewDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Dashboard cache unavailable, continuing without it")
		dashboardCache = cache.NewNoopDashboardCache()
	}
	defer dashboardCache.Close()

	var store storage.ObjectStorage
	if cfg.Storage.Enabled {
		client, err := storage.NewMinioClient(storage.MinioConfig{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to initialize object storage")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = client.EnsureBucket(ctx)
		cancel()
		if err != nil {
			logger.Log.Warn().Err(err).Str("bucket", cfg.Storage.Bucket).Msg("Object storage bucket check failed, publishing disabled")
		} else {
			store = client
		}
	}

	// Initialize services
	services := &api.Services{
		DashboardService: service.NewDashboardService(provider, dashboardCache),
		ExportService:    service.NewExportService(provider, store, cfg.Storage.Prefix),
	}

	// Build the snapshot before accepting traffic
	provider.Get()

	// Initialize HTTP server
	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
