package profile_picture_delete

import (
	"encoding/json"
	"errors"
	"net/http"

	"cargo-relay/internal/handlers/rest/dto"
	"cargo-relay/internal/service/profile"
	"cargo-relay/pkg/logger"
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
	email := r.URL.Query().Get("email")

	profileEntity, err := h.service.RemoveProfilePicture(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, profile.ErrProfileNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, profile.ErrNoProfilePicture):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	profileDTO := dto.FromProfile(profileEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(profileDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
