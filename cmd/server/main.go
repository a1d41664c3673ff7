// Package main is the entry point for the holidays service.
//
// Startup order:
// 1. Configuration from the environment (.env supported)
// 2. Logger
// 3. SQLite snapshot database and migrations
// 4. Jurisdiction registry and holiday service
// 5. Background jobs (cache warming, maintenance, optional publishing)
// 6. HTTP server, until SIGINT or SIGTERM
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/holidays/internal/config"
	"github.com/aristath/holidays/internal/database"
	"github.com/aristath/holidays/internal/modules/holidays"
	"github.com/aristath/holidays/internal/modules/holidays/catalog"
	"github.com/aristath/holidays/internal/modules/holidays/publisher"
	"github.com/aristath/holidays/internal/modules/holidays/store"
	"github.com/aristath/holidays/internal/scheduler"
	"github.com/aristath/holidays/internal/server"
	"github.com/aristath/holidays/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("version", version).
		Str("catalog", catalog.Version).
		Msg("Starting holidays service")

	db, err := database.New(database.Config{
		Path:    cfg.DatabasePath(),
		Profile: database.ProfileCache,
		Name:    "holidays",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	snapshots := store.New(db.Conn(), log)

	registry, err := catalog.NewRegistry()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build jurisdiction registry")
	}

	service := holidays.NewHolidayService(registry, log,
		holidays.WithStore(snapshots, cfg.CacheTTL),
		holidays.WithCatalogVersion(catalog.Version),
		holidays.WithDefaultLocale(cfg.DefaultLocale),
	)
	log.Info().Int("jurisdictions", len(service.Jurisdictions())).Msg("Holiday service initialized")

	sched := scheduler.New(log)

	warmJob := scheduler.NewWarmCacheJob(service, cfg.WarmYearsAhead, []string{cfg.DefaultLocale}, log)
	if err := sched.AddJob(cfg.WarmSchedule, warmJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register cache warm job")
	}
	if err := sched.AddJob(cfg.MaintenanceSchedule, scheduler.NewMaintenanceJob(snapshots, db, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register maintenance job")
	}

	if cfg.Publish.Enabled {
		uploader, err := publisher.NewS3Uploader(context.Background(), publisher.S3Config{
			Bucket:    cfg.Publish.Bucket,
			Region:    cfg.Publish.Region,
			Endpoint:  cfg.Publish.Endpoint,
			AccessKey: cfg.Publish.AccessKey,
			SecretKey: cfg.Publish.SecretKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 uploader")
		}

		pub := publisher.New(service, uploader, cfg.Publish.Prefix, log)
		publishJob := scheduler.NewPublishJob(pub, snapshots, cfg.WarmYearsAhead, cfg.Publish.Locales, log)
		if err := sched.AddJob(cfg.Publish.Schedule, publishJob); err != nil {
			log.Fatal().Err(err).Msg("Failed to register publish job")
		}
		log.Info().Str("bucket", uploader.Bucket()).Msg("Publishing enabled")
	}

	sched.Start()

	// Warm in the background so the server comes up immediately
	go func() {
		if err := sched.RunNow(warmJob); err != nil {
			log.Error().Err(err).Msg("Initial cache warm failed")
		}
	}()

	srv := server.New(server.Config{
		Log:     log,
		Service: service,
		DB:      db,
		Version: version,
		Port:    cfg.Port,
		DevMode: cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if err := db.WALCheckpoint("TRUNCATE"); err != nil {
		log.Warn().Err(err).Msg("Final WAL checkpoint failed")
	}

	log.Info().Msg("Server stopped")
}
