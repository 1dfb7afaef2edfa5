package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"orders/internal/handlers/grpc/permission_stub"
	"orders/internal/pkg/config"
	"orders/internal/pkg/dotenv"
	"orders/pkg/logger"
	"orders/pkg/logger/zap_adapter"
)

// Заглушка сервиса прав для локального запуска сервиса и воркера.
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

	if err := dotenv.Load(); err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}

	cfg, err := config.LoadPermissionStub()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if err := run(context.Background(), appLogger, cfg); err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.PermissionStub) error {
	const shutdownPeriod = 5 * time.Second

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	server := grpc.NewServer()
	permission_stub.New(log.With(logger.NewField("component", "permission-stub")), *cfg).Register(server)

	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		log.Info("permission stub starting",
			logger.NewField("port", cfg.Port),
			logger.NewField("denied", cfg.DeniedSlugs),
		)
		if err := server.Serve(listener); err != nil {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-serveErr:
		return fmt.Errorf("grpc server: %w", err)
	}

	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownPeriod):
		server.Stop()
	}

	log.Info("Permission stub stopped")
	return nil
}
