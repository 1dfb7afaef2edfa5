package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"orders/internal/service/order"
	"orders/pkg/logger"
)

type writerLogger interface {
	Error(msg string, fields ...logger.Field)
}

// StatusCode выбирает HTTP-код по виду ошибки из Payload.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, order.ErrInvalidInput),
		errors.Is(err, order.ErrInvalidAmount),
		errors.Is(err, order.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrOrderProductNotFound),
		errors.Is(err, order.ErrOrderStatusNotFound),
		errors.Is(err, order.ErrShopProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrNotEnoughStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func WriteJSON(w http.ResponseWriter, log writerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Write отдаёт Payload операции в конверте {success, message, payload?}.
func Write[T any](w http.ResponseWriter, log writerLogger, payload order.Payload, build func(order.Payload) T) {
	WriteJSON(w, log, StatusCode(payload.Err), build(payload))
}
