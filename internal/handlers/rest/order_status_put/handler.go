package order_status_put

import (
	"net/http"

	"github.com/google/uuid"
	"orders/internal/entities"
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
	var statusDTO dto.OrderStatusUpdateRequest
	if err := request.DecodeJSON(w, r, &statusDTO); err != nil {
		h.log.Warn("update order status request rejected", logger.NewField("error", err))
		response.Write(w, h.log, h.service.Reject(r.Context(), order.OperationUpdateOrderStatus), response.OrderResponse)
		return
	}

	input := order.SetOrderStatusInput{
		OrderID: uuid.MustParse(statusDTO.OrderID),
		Comment: statusDTO.Comment,
	}
	// id статуса важнее slug
	if statusDTO.StatusID != nil {
		input.StatusID = uuid.MustParse(*statusDTO.StatusID)
	} else if statusDTO.Status != nil {
		input.StatusSlug = entities.OrderStatusSlug(*statusDTO.Status)
	}

	response.Write(w, h.log, h.service.SetOrderStatus(r.Context(), input), response.OrderResponse)
}
