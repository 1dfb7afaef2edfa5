package grpcclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"orders/pkg/logger"
	retrierconfig "orders/pkg/retrier"
	"orders/pkg/retrier/backoff_adapter"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepalivePermitWithoutStream = false

	initialInterval = 500 * time.Millisecond
	maxInterval     = 10 * time.Second
	maxElapsedTime  = time.Minute
	randomization   = 0.5
	multiplier      = 2
)

var errNotReady = errors.New("gRPC connection is not ready")

// NewConnClient открывает соединение с host и ждёт состояния Ready.
func NewConnClient(ctx context.Context, log logger.Logger, host string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		host,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}

	grpcLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("host", host),
	)

	if err := waitReady(ctx, grpcLog, conn); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("gRPC connection: %w (failed to close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("gRPC connection: %w", err)
	}

	return conn, nil
}

func waitReady(ctx context.Context, log logger.Logger, conn *grpc.ClientConn) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		state := conn.GetState()
		log.Debug("waiting for gRPC connection",
			logger.NewField("attempt", attempt),
			logger.NewField("state", state.String()),
		)
		if state == connectivity.Ready {
			return nil
		}

		conn.Connect()
		attemptCtx, cancel := context.WithTimeout(ctx, KeepaliveTimeout)
		defer cancel()
		for state != connectivity.Ready {
			if !conn.WaitForStateChange(attemptCtx, state) {
				return errNotReady
			}
			state = conn.GetState()
			if state == connectivity.TransientFailure || state == connectivity.Shutdown {
				return fmt.Errorf("%w: %s", errNotReady, state)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("gRPC connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to establish gRPC connection: %w", err)
	}

	log.Info("gRPC connection established", logger.NewField("attempts", attempt))
	return nil
}
