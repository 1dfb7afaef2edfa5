//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_metrics_test
package order_status_metrics

import (
	"context"

	"orders/internal/entities"
)

type Repository interface {
	CountByStatus(ctx context.Context) (map[entities.OrderStatusSlug]int64, error)
}
