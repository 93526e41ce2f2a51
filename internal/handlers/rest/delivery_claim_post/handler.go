package delivery_claim_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"cargo-relay/internal/entities"
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
	var deliveryClaimDTO dto.DeliveryClaimRequest
	err := json.NewDecoder(r.Body).Decode(&deliveryClaimDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	source := deliveryClaimDTO.Source.ToEntity()
	destination := deliveryClaimDTO.Destination.ToEntity()
	deliveryModifyEntity := entities.DeliveryModify{
		PackageID:   &deliveryClaimDTO.PackageID,
		CourierID:   &deliveryClaimDTO.CourierID,
		Source:      &source,
		Destination: &destination,
	}
	if deliveryClaimDTO.SeatAvailability != nil {
		deliveryModifyEntity.SeatAvailability = &deliveryClaimDTO.SeatAvailability
	}
	if deliveryClaimDTO.TravelMethods != "" {
		deliveryModifyEntity.TravelMethods = &deliveryClaimDTO.TravelMethods
	}
	if deliveryClaimDTO.TravelTime != "" {
		deliveryModifyEntity.TravelTime = &deliveryClaimDTO.TravelTime
	}

	deliveryClaim, err := h.service.ClaimPackage(r.Context(), deliveryModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidPackageID),
			errors.Is(err, delivery.ErrInvalidCourierID),
			errors.Is(err, delivery.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrConflict),
			errors.Is(err, packages.ErrInvalidStatusTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryClaimResponse{
		DeliveryID:    deliveryClaim.DeliveryID,
		PackageID:     deliveryClaim.PackageID,
		CourierID:     deliveryClaim.CourierID,
		PackageStatus: deliveryClaim.PackageStatus.String(),
		ClaimedAt:     deliveryClaim.ClaimedAt,
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
