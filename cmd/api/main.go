package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/pressroom/newsroom-api/docs" // swagger spec registration

	"github.com/pressroom/newsroom-api/internal/api"
	"github.com/pressroom/newsroom-api/internal/core/ports"
	"github.com/pressroom/newsroom-api/internal/infrastructure/config"
	"github.com/pressroom/newsroom-api/internal/infrastructure/db/postgres"
	redisdb "github.com/pressroom/newsroom-api/internal/infrastructure/db/redis"
	"github.com/pressroom/newsroom-api/internal/infrastructure/notify"
	"github.com/pressroom/newsroom-api/internal/infrastructure/queue"
	"github.com/pressroom/newsroom-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Newsroom API
// @version         1.0
// @description     Subscription-driven publishing: journalists author articles,
// @description     editors approve them, readers follow publishers and journalists.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Postgres ---
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("closing postgres pool")
		}
	}()

	if err := postgres.Bootstrap(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("closing redis client")
		}
	}()

	// --- Notification pipeline ---
	var notifier ports.Notifier
	if cfg.SMTP.Host != "" {
		notifier = notify.NewSMTPNotifier(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)
		log.Info().Str("host", cfg.SMTP.Host).Int("port", cfg.SMTP.Port).Msg("smtp notifier enabled")
	} else {
		notifier = notify.NewLogNotifier(log)
		log.Info().Msg("no SMTP host configured, notifications will be logged only")
	}

	dispatcher := queue.NewDispatcher(cfg.Notifications.Workers, notifier, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, dispatcher, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
