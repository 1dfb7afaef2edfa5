package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_operations_total",
		Help: "Total number of order service operations by outcome",
	},
	[]string{"operation", "result"},
)

var OperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "order_operation_duration_seconds",
		Help:    "Duration of order service operations",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation"},
)

func resultLabel(p Payload) string {
	if p.Success {
		return "success"
	}

	switch p.Err {
	case ErrPermissionDenied:
		return "denied"
	case ErrInternal, ErrWriteFailed:
		return "error"
	default:
		return "rejected"
	}
}
