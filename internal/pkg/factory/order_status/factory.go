package order_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"orders/internal/entities"
	"orders/internal/service/order"
)

var ErrUnknownStatus = errors.New("unknown order status")

// ExecuteFn применяет пришедший снаружи статус к заказу.
type ExecuteFn func(ctx context.Context, orderID uuid.UUID, comment *string) order.Payload

type StatusHandlerFactory struct {
	orderService OrderService
}

func NewStatusHandlerFactory(orderService OrderService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		orderService: orderService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusSlug) (ExecuteFn, error) {
	switch status {
	case entities.OrderStatusCanceled:
		return f.canceledHandler, nil
	case entities.OrderStatusNew, entities.OrderStatusConfirmed, entities.OrderStatusDone:
		return f.transitionHandler(status), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
}

func (f *StatusHandlerFactory) canceledHandler(ctx context.Context, orderID uuid.UUID, comment *string) order.Payload {
	return f.orderService.CancelOrder(ctx, order.CancelOrderInput{
		OrderID: orderID,
		Comment: comment,
	})
}

func (f *StatusHandlerFactory) transitionHandler(status entities.OrderStatusSlug) ExecuteFn {
	return func(ctx context.Context, orderID uuid.UUID, comment *string) order.Payload {
		return f.orderService.SetOrderStatus(ctx, order.SetOrderStatusInput{
			OrderID:    orderID,
			StatusSlug: status,
			Comment:    comment,
		})
	}
}
