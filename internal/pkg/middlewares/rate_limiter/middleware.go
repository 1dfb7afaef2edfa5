package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"orders/internal/entities"
	"orders/internal/generated/dto"
	"orders/internal/handlers/rest/response"
	"orders/internal/pkg/messages"
	"orders/internal/pkg/middlewares/metrics"
	"orders/pkg/logger"
)

// Middleware считает лимит отдельно для каждого адреса клиента.
// Токен в ключ не входит: его клиент выбирает сам, и новый токен
// на каждый запрос давал бы новую полную корзину.
// X-Forwarded-For не читается, адрес берётся из соединения.
// Отказ - 429 в том же конверте {success, message}, что и операции,
// текст на языке вызывающего.
func Middleware(log handlerLogger, msgs Messages, rateLimiterQPS int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow(clientAddr(r)) {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitedTotal.WithLabelValues(r.Method, route).Inc()

			var locale string
			if caller, ok := entities.CallerFromContext(r.Context()); ok {
				locale = caller.Locale
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			response.WriteJSON(w, log, http.StatusTooManyRequests, dto.ResultResponse{
				Success: false,
				Message: msgs.Get(messages.RateLimited, locale),
			})
		})
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
