package profile_post

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
	var profileCreateDTO dto.ProfileCreate
	err := json.NewDecoder(r.Body).Decode(&profileCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateProfile(r.Context(), profileCreateDTO.Email, profileCreateDTO.Username)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrMissingRequiredFields),
			errors.Is(err, profile.ErrInvalidEmail),
			errors.Is(err, profile.ErrInvalidUsername):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, profile.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ProfileCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
