package profile_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"cargo-relay/internal/entities"
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
	var profileUpdateDTO dto.ProfileUpdate
	err := json.NewDecoder(r.Body).Decode(&profileUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	hasName := profileUpdateDTO.FirstName != nil && profileUpdateDTO.LastName != nil
	hasPhone := profileUpdateDTO.Phone != nil
	if !hasName && !hasPhone {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var profileEntity *entities.Profile
	if hasName {
		profileEntity, err = h.service.SetName(
			r.Context(),
			profileUpdateDTO.Email,
			*profileUpdateDTO.FirstName,
			*profileUpdateDTO.LastName,
		)
		if err != nil {
			writeServiceError(w, err)
			return
		}
	}
	if hasPhone {
		profileEntity, err = h.service.SetPhone(r.Context(), profileUpdateDTO.Email, *profileUpdateDTO.Phone)
		if err != nil {
			writeServiceError(w, err)
			return
		}
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

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profile.ErrInvalidEmail),
		errors.Is(err, profile.ErrInvalidName),
		errors.Is(err, profile.ErrInvalidPhone):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, profile.ErrProfileNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
