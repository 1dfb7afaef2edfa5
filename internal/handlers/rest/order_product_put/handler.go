package order_product_put

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
	var productDTO dto.OrderProductUpdateRequest
	if err := request.DecodeJSON(w, r, &productDTO); err != nil {
		h.log.Warn("update order product request rejected", logger.NewField("error", err))
		response.Write(w, h.log, h.service.Reject(r.Context(), order.OperationUpdateOrderProduct), response.OrderResponse)
		return
	}

	// количество проверяет сервис, у него своё сообщение для amount <= 0
	result := h.service.UpdateOrderProduct(r.Context(), order.UpdateOrderProductInput{
		OrderProductID: uuid.MustParse(productDTO.ID),
		Amount:         productDTO.Amount,
	})
	response.Write(w, h.log, result, response.OrderResponse)
}
