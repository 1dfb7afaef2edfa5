package order_status_metrics

import (
	"context"
	"fmt"
	"time"
)

type OrderStatusMetrics struct {
	repo     Repository
	interval time.Duration
}

func New(repo Repository, interval time.Duration) *OrderStatusMetrics {
	return &OrderStatusMetrics{
		repo:     repo,
		interval: interval,
	}
}

func (o *OrderStatusMetrics) TTL() time.Duration {
	return o.interval
}

func (o *OrderStatusMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.repo.CountByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count orders by status: %w", err)
	}

	// статусы без заказов тоже приходят из справочника с нулём
	for slug, count := range counts {
		OrdersByStatus.WithLabelValues(slug.String()).Set(float64(count))
	}
	return nil
}

func (o *OrderStatusMetrics) Info() string {
	return "order status metrics"
}
