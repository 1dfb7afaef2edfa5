package order_logs_get

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"orders/internal/handlers/rest/response"
	"orders/internal/service/order"
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
	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Write(w, h.log, h.service.Reject(r.Context(), order.OperationGetOrderLogs), response.OrderLogsResponse)
		return
	}

	response.Write(w, h.log, h.service.GetOrderLogs(r.Context(), orderID), response.OrderLogsResponse)
}
