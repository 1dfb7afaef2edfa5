//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=permission_test
package permission

import (
	"context"

	"google.golang.org/grpc"
	"orders/pkg/logger"
)

// invoker - то, что нужно шлюзу от *grpc.ClientConn.
type invoker interface {
	Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type gatewayLogger interface {
	Warn(msg string, fields ...logger.Field)
}
