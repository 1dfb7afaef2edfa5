//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_test
package order_status

import (
	"context"

	"orders/internal/service/order"
)

type OrderService interface {
	CancelOrder(ctx context.Context, input order.CancelOrderInput) order.Payload
	SetOrderStatus(ctx context.Context, input order.SetOrderStatusInput) order.Payload
}
