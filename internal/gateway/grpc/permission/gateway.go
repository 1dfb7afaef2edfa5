package permission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"orders/internal/entities"
	"orders/internal/pkg/config"
	"orders/pkg/logger"
	retrierconfig "orders/pkg/retrier"
	"orders/pkg/retrier/backoff_adapter"
)

const (
	serviceName     = "permission-service"
	CheckMethod     = "/permission.v1.PermissionService/Check"
	checkMethodName = "Check"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	breakerHalfOpenRequests = 1
	breakerCountsInterval   = time.Minute
)

type Gateway struct {
	conn    invoker
	retrier retrier
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
	log     gatewayLogger
}

func New(conn invoker, cfg config.PermissionService, log logger.Logger) *Gateway {
	gatewayLog := log.With(logger.NewField("gateway", serviceName))

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
		OnRetry: func(attempt uint64, err error, next time.Duration) {
			gatewayLog.Warn("permission check retry",
				logger.NewField("attempt", attempt),
				logger.NewField("code", getGRPCCode(err)),
				logger.NewField("backoff", next.String()),
			)
		},
	}

	settings := gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: breakerHalfOpenRequests,
		Interval:    breakerCountsInterval,
		Timeout:     cfg.BreakerOpenDelay,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isDenialCode(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			GatewayBreakerState.WithLabelValues(name).Set(float64(to))
			gatewayLog.Warn("circuit breaker state changed",
				logger.NewField("from", from.String()),
				logger.NewField("to", to.String()),
			)
		},
	}

	return &Gateway{
		conn:    conn,
		retrier: backoff_adapter.New(retryConfig),
		breaker: gobreaker.NewCircuitBreaker(settings),
		timeout: cfg.Timeout,
		log:     gatewayLog,
	}
}

// Check спрашивает сервис прав, можно ли вызывающему выполнить операцию slug.
// Токен берётся из entities.Caller в контексте. Отказ сервиса прав
// (PermissionDenied, Unauthenticated) - это Grant без ошибки, а недоступность
// сервиса - ошибка, оборачивающая ErrUnavailable.
func (g *Gateway) Check(ctx context.Context, slug string) (entities.Grant, error) {
	caller, _ := entities.CallerFromContext(ctx)

	req, err := toRequest(slug, caller.Token)
	if err != nil {
		return entities.Grant{}, fmt.Errorf("gateway permission, build request: %w", err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	var resp *structpb.Struct
	_, err = g.breaker.Execute(func() (any, error) {
		return nil, g.executeWithMetrics(ctx, checkMethodName, func(ctx context.Context) error {
			reply := &structpb.Struct{}
			if err := g.conn.Invoke(ctx, CheckMethod, req, reply); err != nil {
				return err
			}
			resp = reply
			return nil
		})
	})
	if err != nil {
		if isDenialCode(err) {
			return entities.Grant{Allow: false, Message: status.Convert(err).Message()}, nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			g.log.Warn("permission check rejected by circuit breaker", logger.NewField("slug", slug))
		}
		return entities.Grant{}, fmt.Errorf("%w: check %s: %w", ErrUnavailable, slug, err)
	}

	grant, err := toGrant(resp)
	if err != nil {
		return entities.Grant{}, fmt.Errorf("gateway permission, check %s: %w", slug, err)
	}
	return grant, nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func isDenialCode(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.PermissionDenied || st.Code() == codes.Unauthenticated
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return codes.OK.String()
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return codes.Unknown.String()
}
