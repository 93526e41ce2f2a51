package delivery_release_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"cargo-relay/internal/handlers/rest/dto"
	"cargo-relay/internal/service/delivery"
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
	var deliveryReleaseDTO dto.DeliveryReleaseRequest
	err := json.NewDecoder(r.Body).Decode(&deliveryReleaseDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryRelease, err := h.service.ReleasePackage(r.Context(), deliveryReleaseDTO.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidPackageID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound),
			errors.Is(err, packages.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, packages.ErrInvalidStatusTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryReleaseResponse{
		PackageID:     deliveryRelease.PackageID,
		CourierID:     deliveryRelease.CourierID,
		PackageStatus: deliveryRelease.PackageStatus.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
