package package_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"cargo-relay/internal/entities"
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
	id := mux.Vars(r)["id"]

	var packageUpdateDTO dto.PackageUpdate
	err := json.NewDecoder(r.Body).Decode(&packageUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packageModifyEntity := entities.PackageModify{
		ID:          &id,
		DeliverID:   packageUpdateDTO.DeliverID,
		Title:       packageUpdateDTO.Title,
		Description: packageUpdateDTO.Description,
		Weight:      packageUpdateDTO.Weight,
	}
	if packageUpdateDTO.Volume != nil {
		volume := entities.VolumeType(*packageUpdateDTO.Volume)
		packageModifyEntity.Volume = &volume
	}
	if packageUpdateDTO.Source != nil {
		source := packageUpdateDTO.Source.ToEntity()
		packageModifyEntity.Source = &source
	}
	if packageUpdateDTO.Destination != nil {
		destination := packageUpdateDTO.Destination.ToEntity()
		packageModifyEntity.Destination = &destination
	}
	if packageUpdateDTO.Status != nil {
		status := entities.PackageStatusType(*packageUpdateDTO.Status)
		packageModifyEntity.Status = &status
	}

	packageEntity, err := h.service.UpdatePackage(r.Context(), packageModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrPackageNotCreated),
			errors.Is(err, packages.ErrMissingRequiredFields),
			errors.Is(err, packages.ErrInvalidTitle),
			errors.Is(err, packages.ErrInvalidDescription),
			errors.Is(err, packages.ErrInvalidWeight),
			errors.Is(err, packages.ErrInvalidVolume),
			errors.Is(err, packages.ErrInvalidLocation),
			errors.Is(err, packages.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, packages.ErrInvalidStatusTransition):
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
