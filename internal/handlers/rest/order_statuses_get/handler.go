package order_statuses_get

import (
	"net/http"

	"orders/internal/handlers/rest/response"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.Write(w, h.log, h.service.GetOrderStatuses(r.Context()), response.OrderStatusesResponse)
}
