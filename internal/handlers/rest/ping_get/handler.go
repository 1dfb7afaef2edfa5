package ping_get

import (
	"net/http"

	"orders/internal/generated/dto"
	"orders/internal/handlers/rest/response"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong
	response.WriteJSON(w, h.log, http.StatusOK, dto.PingResponse{Message: &message})
}
