package order_cancel_post

import (
	"net/http"

	"github.com/google/uuid"
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
	var cancelDTO dto.OrderCancelRequest
	if err := request.DecodeJSON(w, r, &cancelDTO); err != nil {
		h.log.Warn("cancel order request rejected", logger.NewField("error", err))
		response.Write(w, h.log, h.service.Reject(r.Context(), order.OperationCancelOrder), response.OrderResponse)
		return
	}

	result := h.service.CancelOrder(r.Context(), order.CancelOrderInput{
		// uuid уже проверен валидатором
		OrderID: uuid.MustParse(cancelDTO.OrderID),
		Comment: cancelDTO.Comment,
	})
	response.Write(w, h.log, result, response.OrderResponse)
}
