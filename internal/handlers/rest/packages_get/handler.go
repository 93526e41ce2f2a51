package packages_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packageEntities, err := h.service.GetPackages(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PackageList{
		Packages: dto.FromPackageList(packageEntities),
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

func parseFilter(r *http.Request) (entities.PackageFilter, error) {
	filter := entities.PackageFilter{}
	query := r.URL.Query()

	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.PackageStatusType(statusStr)
		filter.Status = &status
	}
	if senderID := query.Get("sender_id"); senderID != "" {
		filter.SenderID = &senderID
	}
	if deliverID := query.Get("deliver_id"); deliverID != "" {
		filter.DeliverID = &deliverID
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || limit < 0 {
			return entities.PackageFilter{}, errors.New("invalid limit")
		}
		filter.Limit = limit
	}

	return filter, nil
}
