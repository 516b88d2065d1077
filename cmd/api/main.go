package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barbershop-site/internal/audit"
	"github.com/BruksfildServices01/barbershop-site/internal/cache"
	"github.com/BruksfildServices01/barbershop-site/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-site/internal/db"
	infraRepo "github.com/BruksfildServices01/barbershop-site/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-site/internal/jobs"
	"github.com/BruksfildServices01/barbershop-site/internal/logging"
	"github.com/BruksfildServices01/barbershop-site/internal/notify"
	"github.com/BruksfildServices01/barbershop-site/internal/routes"
	"github.com/BruksfildServices01/barbershop-site/internal/storage"
)

func main() {
	logging.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.NewDB(cfg)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	err := dbpkg.Seed(seedCtx, db, dbpkg.SeedOptions{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	})
	cancelSeed()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	files, err := newFileStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init storage")
	}
	janitor := storage.NewJanitor(files)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	bridge := notify.NewBridge(cfg.NotifyTimeout,
		notify.NewTelegram(cfg.TelegramAPIURL),
		notify.NewTwilio(),
	)

	sweeper := jobs.NewOrphanSweeper(
		files,
		infraRepo.NewGalleryGormRepository(db),
		infraRepo.NewMasterGormRepository(db),
		cfg.OrphanMinAge,
	)
	scheduler, err := jobs.Schedule(cfg.OrphanSweepSpec, sweeper)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to schedule jobs")
	}

	engine := routes.NewEngine(routes.Deps{
		DB:       db,
		Config:   cfg,
		Files:    files,
		Janitor:  janitor,
		Cache:    cache.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL),
		Recorder: auditDispatcher,
		Bridge:   bridge,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("storage", cfg.StorageDriver).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	janitor.Wait()
	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info().Msg("server stopped")
}

func newFileStore(cfg *config.Config) (storage.FileStore, error) {
	if cfg.StorageDriver == config.StorageS3 {
		return storage.NewS3Store(storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
	}
	return storage.NewLocalStore(cfg.UploadsDir, cfg.UploadsPublicPrefix)
}
