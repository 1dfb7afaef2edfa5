//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"orders/internal/entities"
	"orders/pkg/logger"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetCustomer(ctx context.Context, orderID uuid.UUID) (*entities.OrderCustomer, error)
	UpdateCustomer(ctx context.Context, customerModify entities.OrderCustomerModify) (*entities.OrderCustomer, error)
	DeleteCustomers(ctx context.Context, orderID uuid.UUID) error
}

type OrderProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.OrderProduct, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entities.OrderProduct, error)
	Update(ctx context.Context, productModify entities.OrderProductModify) (*entities.OrderProduct, error)
	UpdateAmount(ctx context.Context, id uuid.UUID, amount int64, totalPrice decimal.Decimal) (*entities.OrderProduct, error)
	CancelByOrderID(ctx context.Context, orderID, statusID uuid.UUID) (int64, error)
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error

	GetShopProduct(ctx context.Context, id uuid.UUID) (*entities.ShopProduct, error)
}

type OrderStatusRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.OrderStatus, error)
	GetBySlug(ctx context.Context, slug entities.OrderStatusSlug) (*entities.OrderStatus, error)
	GetAll(ctx context.Context) ([]entities.OrderStatus, error)
}

type OrderLogRepository interface {
	Create(ctx context.Context, orderLog entities.OrderLog) (*entities.OrderLog, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entities.OrderLog, error)
	DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error
}

// PermissionGate - внешний сервис прав. Ошибка означает, что решение
// получить не удалось, и операция запрещается.
type PermissionGate interface {
	Check(ctx context.Context, slug string) (entities.Grant, error)
}

type Messages interface {
	Get(slug, locale string) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
