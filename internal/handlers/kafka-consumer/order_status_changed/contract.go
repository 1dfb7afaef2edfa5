//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_changed_test
package order_status_changed

import (
	"orders/internal/entities"
	"orders/internal/pkg/factory/order_status"
	"orders/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type StatusHandlers interface {
	GetHandler(status entities.OrderStatusSlug) (order_status.ExecuteFn, error)
}
