package order_put

import (
	"net/http"

	"orders/internal/generated/dto"
	"orders/internal/handlers/rest/request"
	"orders/internal/handlers/rest/response"
	"orders/internal/service/order"
	"orders/pkg/logger"
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
	var orderDTO dto.OrderUpdateRequest
	if err := request.DecodeJSON(w, r, &orderDTO); err != nil {
		h.log.Warn("update order request rejected", logger.NewField("error", err))
		response.Write(w, h.log, h.service.Reject(r.Context(), order.OperationUpdateOrder), response.OrderResponse)
		return
	}

	update, err := toOrderUpdate(orderDTO)
	if err != nil {
		h.log.Warn("update order request rejected", logger.NewField("error", err))
		response.Write(w, h.log, h.service.Reject(r.Context(), order.OperationUpdateOrder), response.OrderResponse)
		return
	}

	response.Write(w, h.log, h.service.UpdateOrder(r.Context(), order.UpdateOrderInput{Order: update}), response.OrderResponse)
}
