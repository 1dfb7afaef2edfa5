package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "orders/internal/app"
	"orders/internal/handlers/rest/healthcheck_head"
	"orders/internal/handlers/rest/order_cancel_post"
	"orders/internal/handlers/rest/order_delete"
	"orders/internal/handlers/rest/order_get"
	"orders/internal/handlers/rest/order_logs_get"
	"orders/internal/handlers/rest/order_product_put"
	"orders/internal/handlers/rest/order_put"
	"orders/internal/handlers/rest/order_status_put"
	"orders/internal/handlers/rest/order_statuses_get"
	"orders/internal/handlers/rest/ping_get"
	"orders/internal/pkg/config"
	"orders/internal/pkg/dotenv"
	"orders/internal/pkg/grpcclient"
	"orders/internal/pkg/middlewares/caller"
	"orders/internal/pkg/middlewares/graceful_shutdown"
	"orders/internal/pkg/middlewares/metrics"
	"orders/internal/pkg/middlewares/rate_limiter"
	"orders/internal/pkg/middlewares/timeout"
	"orders/internal/pkg/middlewares/tracing"
	"orders/internal/pkg/postgres"
	tracer "orders/internal/pkg/tracing"
	"orders/migrations"
	"orders/pkg/logger"
	"orders/pkg/logger/zap_adapter"
	"orders/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting orders application")

	if err := dotenv.Load(); err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	shutdownTracer, err := tracer.InitTracer(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownHardPeriod)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			runLog.Error("failed to flush traces", logger.NewField("error", err))
		}
	}()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(ctx, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		runLog.Info("database migrations applied")
	}

	conn, err := grpcclient.NewConnClient(ctx, log, cfg.PermissionService.GRPCHost)
	if err != nil {
		return fmt.Errorf("permission service gRPC client: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			runLog.Error("failed to close gRPC connection", logger.NewField("error", err))
		}
	}()

	// фоновые задачи живут на ctx и останавливаются по сигналу
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting", logger.NewField("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting", logger.NewField("port", cfg.Server.PprofPort))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(tracing.Middleware)
	router.Use(caller.Middleware)
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, app.Messages, cfg.RateLimiterQPS, token_bucket.NewKeyedLimiter(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	// статические пути раньше /order/{id}
	router.Handle("/order", order_put.New(log, app.ServiceOrder)).Methods(http.MethodPut)
	router.Handle("/order/cancel", order_cancel_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)
	router.Handle("/order/product", order_product_put.New(log, app.ServiceOrder)).Methods(http.MethodPut)
	router.Handle("/order/status", order_status_put.New(log, app.ServiceOrder)).Methods(http.MethodPut)
	router.Handle("/order-statuses", order_statuses_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	router.Handle("/order/{id}/logs", order_logs_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	router.Handle("/order/{id}", order_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	router.Handle("/order/{id}", order_delete.New(log, app.ServiceOrder)).Methods(http.MethodDelete)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
