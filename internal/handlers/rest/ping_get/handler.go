package ping_get

import (
	"encoding/json"
	"net/http"

	"cargo-relay/internal/handlers/rest/dto"
	"cargo-relay/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dto.PingResponse{Message: &message}); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
