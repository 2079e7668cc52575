package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"article-hub/internal/common/pagination"
	"article-hub/internal/config"
	pgRepo "article-hub/internal/infra/adapter/persistence/postgres"
	"article-hub/internal/infra/db"
	"article-hub/internal/infra/drafter"
	"article-hub/internal/observability/logging"
	"article-hub/internal/observability/tracing"
	"article-hub/internal/resilience/circuitbreaker"
	artUC "article-hub/internal/usecase/article"

	hhttp "article-hub/internal/handler/http"
	harticle "article-hub/internal/handler/http/article"
	"article-hub/internal/handler/http/requestid"
)

func main() {
	cfg := loadConfig()
	logger := initLogger(cfg.Log.Level)

	tp := initTracing(logger, cfg.Tracing)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, cfg, database, version)

	runServer(logger, cfg.Server, handler, version, tp)
}

// loadConfig reads defaults, the optional CONFIG_FILE and the environment.
func loadConfig() *config.AppConfig {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// initLogger installs the JSON logger as the process default.
func initLogger(level string) *slog.Logger {
	logger := logging.NewLogger(level)
	slog.SetDefault(logger)
	return logger
}

// initTracing installs the tracer provider when tracing is enabled. Returns nil otherwise.
func initTracing(logger *slog.Logger, cfg config.TracingConfig) *sdktrace.TracerProvider {
	if !cfg.Enabled {
		logger.Info("tracing disabled")
		return nil
	}
	tp, err := tracing.NewProvider(tracing.ProviderConfig{
		ServiceName: cfg.ServiceName,
		SampleRatio: cfg.SampleRatio,
	})
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("tracing enabled",
		slog.String("service_name", cfg.ServiceName),
		slog.Float64("sample_ratio", cfg.SampleRatio))
	return tp
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Open(ctx, db.LoadConfigFromEnv())
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(ctx, database); err != nil {
		_ = database.Close()
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires services, routes and the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.AppConfig, database *sql.DB, version string) http.Handler {
	paginationCfg := pagination.LoadFromEnv()

	draft := drafter.New(cfg.Drafter, drafter.WithMetrics(drafter.NewPrometheusMetrics()))
	logger.Info("draft provider selected", slog.String("provider", draft.Name()))

	artSvc, err := artUC.NewService(
		pgRepo.NewArticleRepo(database),
		draft,
		logger,
		artUC.WithPaginationConfig(paginationCfg),
	)
	if err != nil {
		logger.Error("failed to create article service", slog.Any("error", err))
		os.Exit(1)
	}

	generateLimiter := hhttp.NewRateLimiter(
		cfg.Generate.RatePerSec,
		cfg.Generate.Burst,
		hhttp.WithTrustedProxyHeaders(cfg.Server.TrustProxyHeaders),
	)
	logger.Info("generate rate limiting initialized",
		slog.Float64("rate_per_sec", cfg.Generate.RatePerSec),
		slog.Int("burst", cfg.Generate.Burst),
		slog.Bool("trust_proxy_headers", cfg.Server.TrustProxyHeaders))

	reporter, _ := draft.(artUC.HealthReporter)

	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Drafter: reporter, Version: version})
	mux.Handle("GET /health/drafter", &hhttp.DrafterHealthHandler{Reporter: reporter})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: circuitbreaker.NewDBPinger(database)})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	harticle.Register(mux, artSvc, paginationCfg, generateLimiter.Limit)

	return applyMiddleware(logger, mux, cfg.Server.MaxBodyBytes)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Recovery → Logging → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler, maxBodyBytes int64) http.Handler {
	return hhttp.Chain(handler,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(maxBodyBytes),
		hhttp.MetricsMiddleware,
	)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg config.ServerConfig, handler http.Handler, version string, tp *sdktrace.TracerProvider) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	cancel()

	if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
