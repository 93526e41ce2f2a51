package package_image_delete

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"cargo-relay/internal/handlers/rest/dto"
	"cargo-relay/internal/service/packages"
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
	vars := mux.Vars(r)
	id := vars["id"]
	imageID := vars["imageId"]

	packageEntity, err := h.service.RemoveImage(r.Context(), id, imageID)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrPackageNotCreated):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrPackageNotFound),
			errors.Is(err, packages.ErrImageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, packages.ErrMinImagesReached):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromPackage(packageEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
