package profile_picture_put

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cargo-relay/internal/entities"
	"cargo-relay/internal/handlers/rest/dto"
	"cargo-relay/internal/service/profile"
	"cargo-relay/pkg/logger"
)

const (
	maxRequestMemory = 32 << 20 // 32 MiB

	picturePart = "picture"
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
	err := r.ParseMultipartForm(maxRequestMemory)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")

	file, fileHeader, err := r.FormFile(picturePart)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	image := entities.ImageUpload{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Data:        data,
	}

	profileEntity, err := h.service.SetProfilePicture(r.Context(), email, image)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, profile.ErrProfileNotFound):
			w.WriteHeader(http.StatusNotFound)
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
