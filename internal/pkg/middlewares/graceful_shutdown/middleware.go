package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"orders/internal/generated/dto"
)

const shuttingDownMessage = "Service is shutting down"

// Middleware отклоняет новые запросы после начала остановки,
// запросы в работе дорабатывают на ongoingCtx.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() || ongoingCtx.Err() != nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(dto.ResultResponse{Message: shuttingDownMessage})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
