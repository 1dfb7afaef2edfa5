package order

import (
	"github.com/google/uuid"
	"orders/internal/entities"
)

// Payload - результат любой операции сервиса. Err нужен только транспорту,
// чтобы выбрать код ответа, наружу уходит Message.
type Payload struct {
	Success  bool
	Message  string
	Order    *entities.OrderAggregate
	Logs     []entities.OrderLog
	Statuses []entities.OrderStatus
	Err      error
}

type CancelOrderInput struct {
	OrderID uuid.UUID
	Comment *string
}

type DeleteOrderInput struct {
	OrderID uuid.UUID
}

type UpdateOrderInput struct {
	Order entities.OrderUpdate
}

type UpdateOrderProductInput struct {
	OrderProductID uuid.UUID
	Amount         int64
}

// SetOrderStatusInput: статус задаётся либо id, либо slug.
type SetOrderStatusInput struct {
	OrderID    uuid.UUID
	StatusID   uuid.UUID
	StatusSlug entities.OrderStatusSlug
	Comment    *string
}

// Имена операций. Они же slug-и для сервиса прав и префиксы сообщений.
const (
	OperationCancelOrder        = "cancelOrder"
	OperationDeleteOrder        = "deleteOrder"
	OperationUpdateOrder        = "updateOrder"
	OperationUpdateOrderProduct = "updateOrderProduct"
	OperationUpdateOrderStatus  = "updateOrderStatus"
	OperationGetOrder           = "getOrder"
	OperationGetOrderLogs       = "getOrderLogs"
	OperationGetOrderStatuses   = "getOrderStatuses"
)
