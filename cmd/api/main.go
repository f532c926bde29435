// @title                       Job Tracker API
// @version                     1.0
// @description                 Track job applications per user: register, login, and manage applications behind a bearer token.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jobtrack/tracker-api/internal/api"
	"github.com/jobtrack/tracker-api/internal/core/ports"
	"github.com/jobtrack/tracker-api/internal/core/service"
	"github.com/jobtrack/tracker-api/internal/infrastructure/db/postgres"
	"github.com/jobtrack/tracker-api/internal/infrastructure/db/postgres/migrations"
	"github.com/jobtrack/tracker-api/internal/infrastructure/db/redis"
	"github.com/jobtrack/tracker-api/internal/pkg/config"
	"github.com/jobtrack/tracker-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "jobtracker-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Postgres ---
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.URL,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Up(cfg.Postgres.URL); err != nil {
		return err
	}
	log.Info().Msg("postgres ready, migrations applied")

	// --- Redis (optional) ---
	var (
		rdb     *goredis.Client
		limiter ports.AttemptLimiter
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		limiter = redis.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis ready, login limiter enabled")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, login limiter disabled")
	}

	// --- Services ---
	authService := service.NewAuthService(postgres.NewAuthRepository(db), limiter, cfg.JWTSecret, cfg.JWTTTL, log)
	jobService := service.NewJobService(postgres.NewJobRepository(db), log)

	e := api.NewRouter(api.Deps{
		AuthService: authService,
		JobService:  jobService,
		Verifier:    service.NewTokenVerifier(cfg.JWTSecret),
		DB:          db,
		Redis:       rdb,
		Logger:      log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
