package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"orders/internal/pkg/middlewares/metrics"
)

var RequestTimeoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_request_timeouts_total",
		Help: "Requests whose context deadline expired before the handler returned",
	},
	[]string{"method", "route"},
)

// Middleware ограничивает время запроса. Контекст доходит до сервиса,
// транзакция и вызов сервиса прав отменяются вместе с ним.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				RequestTimeoutsTotal.WithLabelValues(r.Method, metrics.RouteTemplate(r)).Inc()
			}
		})
	}
}
