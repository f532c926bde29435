package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/jobtrack/tracker-api/docs"
	"github.com/jobtrack/tracker-api/internal/api/handler"
	"github.com/jobtrack/tracker-api/internal/api/middleware"
	"github.com/jobtrack/tracker-api/internal/core/ports"
	"github.com/jobtrack/tracker-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. DB and Redis are only used by the
// readiness probe; Redis may be nil. A nil Registry means the default
// Prometheus registry.
type Deps struct {
	AuthService ports.AuthService
	JobService  ports.JobService
	Verifier    ports.TokenVerifier
	DB          handlers.SQLPinger
	Redis       *redis.Client
	Logger      zerolog.Logger
	Registry    *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Logger))
	promCfg := echoprometheus.MiddlewareConfig{
		Namespace: "jobtracker",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	metricsHandler := echoprometheus.NewHandler()
	if d.Registry != nil {
		promCfg.Registerer = d.Registry
		metricsHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Registry})
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))

	// --- Operational routes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Job routes ---
	jobHandler := handler.NewJobHandler(d.JobService)
	jobs := e.Group("/jobs", middleware.Auth(d.Verifier))
	jobs.POST("", jobHandler.Create)
	jobs.GET("", jobHandler.List)
	jobs.GET("/:id", jobHandler.Get)
	jobs.PATCH("/:id", jobHandler.Update)
	jobs.DELETE("/:id", jobHandler.Delete)

	return e
}

// requestLogger writes one access log line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
