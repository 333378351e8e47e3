package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/partnerdesk/partner-api/internal/archive"
	"github.com/partnerdesk/partner-api/internal/config"
	"github.com/partnerdesk/partner-api/internal/database"
	"github.com/partnerdesk/partner-api/internal/jobs"
	"github.com/partnerdesk/partner-api/internal/logger"
	"github.com/partnerdesk/partner-api/internal/service"
	"github.com/partnerdesk/partner-api/internal/store"
	"github.com/partnerdesk/partner-api/internal/store/filestore"
	"github.com/partnerdesk/partner-api/internal/store/ormstore"
	"go.uber.org/zap"
)

const jobTimeout = 10 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting registry daemon",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.String("store_mode", basicCfg.Store.Mode),
	)

	// Load full configuration with secrets.
	// In development: uses environment variables.
	// In staging/production: fetches from Azure Key Vault.
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Select the persistence backend
	var (
		backend   store.Backend
		fileStore *filestore.Store
	)
	switch cfg.Store.Mode {
	case config.StoreModePostgres:
		db, err := database.NewDatabase(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if cfg.App.Environment == "development" {
			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to run auto-migration: %w", err)
			}
		}
		backend = ormstore.New(db, log)
	case config.StoreModeFile:
		fileStore = filestore.New(cfg.Store.FilePath, log)
		backend = fileStore
	default:
		return fmt.Errorf("unsupported store mode: %s", cfg.Store.Mode)
	}

	svc := service.NewDatabaseService(backend, log)
	if err := svc.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect store: %w", err)
	}
	defer func() {
		if err := svc.Disconnect(); err != nil {
			log.Warn("error disconnecting store", zap.Error(err))
		}
	}()

	// Background jobs
	scheduler := jobs.NewScheduler(log)
	jobsRegistered := 0

	if cfg.Jobs.DenormSyncEnabled {
		if err := jobs.RegisterDenormSyncJob(
			scheduler,
			svc,
			log,
			cfg.Jobs.DenormSyncSchedule,
			jobTimeout,
			true, // repair drift left by earlier crashes right away
		); err != nil {
			log.Error("failed to register denorm sync job", zap.Error(err))
		} else {
			jobsRegistered++
		}
	}

	// Snapshots only make sense for the file backend
	if cfg.Jobs.SnapshotEnabled && fileStore != nil {
		archiver, err := archive.NewArchiver(&cfg.Archive, log)
		if err != nil {
			return fmt.Errorf("failed to initialize archive: %w", err)
		}
		if err := jobs.RegisterSnapshotJob(
			scheduler,
			fileStore,
			archiver,
			log,
			cfg.Jobs.SnapshotSchedule,
			jobTimeout,
		); err != nil {
			log.Error("failed to register snapshot job", zap.Error(err))
		} else {
			jobsRegistered++
		}
	}

	if jobsRegistered > 0 {
		scheduler.Start()
		log.Info("scheduler started", zap.Strings("jobs", scheduler.GetJobNames()))
	}

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	sig := <-shutdown
	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	if jobsRegistered > 0 {
		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
		log.Info("scheduler stopped")
	}

	log.Info("registry daemon stopped")
	return nil
}
