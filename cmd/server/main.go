package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fishing-tracker/internal/config"
	"github.com/mamadbah2/fishing-tracker/internal/repository/gcs"
	"github.com/mamadbah2/fishing-tracker/internal/repository/mongodb"
	"github.com/mamadbah2/fishing-tracker/internal/scheduler"
	"github.com/mamadbah2/fishing-tracker/internal/server/handlers"
	"github.com/mamadbah2/fishing-tracker/internal/server/router"
	backupsvc "github.com/mamadbah2/fishing-tracker/internal/service/backup"
	catchsvc "github.com/mamadbah2/fishing-tracker/internal/service/catches"
	cleanupsvc "github.com/mamadbah2/fishing-tracker/internal/service/cleanup"
	privacysvc "github.com/mamadbah2/fishing-tracker/internal/service/privacy"
	statssvc "github.com/mamadbah2/fishing-tracker/internal/service/stats"
	"github.com/mamadbah2/fishing-tracker/pkg/clients/openmeteo"
	"github.com/mamadbah2/fishing-tracker/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	blobStore, err := gcs.NewCloudStorage(context.Background(), cfg.Storage, baseLogger.Named("repo.gcs"))
	if err != nil {
		baseLogger.Fatal("failed to init blob store", zap.Error(err))
	}

	statsSvc := statssvc.NewService(mongoRepo, baseLogger.Named("svc.stats"))
	catchSvc := catchsvc.NewService(mongoRepo, baseLogger.Named("svc.catches"))
	privacySvc := privacysvc.NewService(mongoRepo, blobStore, baseLogger.Named("svc.privacy"))
	cleanupSvc := cleanupsvc.NewService(privacySvc, mongoRepo, baseLogger.Named("svc.cleanup"))
	backupSvc := backupsvc.NewService(mongoRepo, blobStore, cfg.Backup.AppVersion, baseLogger.Named("svc.backup"))

	weatherClient := openmeteo.NewClient(cfg.Weather)

	catchHandler := handlers.NewCatchHandler(catchSvc, statsSvc, baseLogger.Named("handlers.catches"))
	privacyHandler := handlers.NewPrivacyHandler(privacySvc, baseLogger.Named("handlers.privacy"))
	adminHandler := handlers.NewAdminHandler(cleanupSvc, backupSvc, baseLogger.Named("handlers.admin"))
	weatherHandler := handlers.NewWeatherHandler(weatherClient, baseLogger.Named("handlers.weather"))

	engine := router.New(catchHandler, privacyHandler, adminHandler, weatherHandler, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(cfg.Backup, backupSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
