//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_logs_get_test
package order_logs_get

import (
	"context"

	"github.com/google/uuid"
	"orders/internal/service/order"
	"orders/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetOrderLogs(ctx context.Context, orderID uuid.UUID) order.Payload
	Reject(ctx context.Context, operation string) order.Payload
}
