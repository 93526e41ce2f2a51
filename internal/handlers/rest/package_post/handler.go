package package_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cargo-relay/internal/entities"
	"cargo-relay/internal/handlers/rest/dto"
	"cargo-relay/internal/service/packages"
	"cargo-relay/pkg/logger"
)

const (
	maxRequestMemory = 32 << 20 // 32 MiB

	packagePart = "package"
	imagesPart  = "images"
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

	var packageCreateDTO dto.PackageCreate
	err = json.Unmarshal([]byte(r.FormValue(packagePart)), &packageCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	images, err := readImages(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	volume := entities.VolumeType(packageCreateDTO.Volume)
	source := packageCreateDTO.Source.ToEntity()
	destination := packageCreateDTO.Destination.ToEntity()
	packageModifyEntity := entities.PackageModify{
		SenderID:    &packageCreateDTO.SenderID,
		Title:       &packageCreateDTO.Title,
		Description: &packageCreateDTO.Description,
		Weight:      &packageCreateDTO.Weight,
		Volume:      &volume,
		Source:      &source,
		Destination: &destination,
	}

	packageEntity, err := h.service.CreatePackage(r.Context(), packageModifyEntity, images)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrMissingRequiredFields),
			errors.Is(err, packages.ErrInvalidTitle),
			errors.Is(err, packages.ErrInvalidDescription),
			errors.Is(err, packages.ErrInvalidWeight),
			errors.Is(err, packages.ErrInvalidVolume),
			errors.Is(err, packages.ErrInvalidLocation),
			errors.Is(err, packages.ErrInvalidImageCount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromPackage(packageEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func readImages(r *http.Request) ([]entities.ImageUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	fileHeaders := r.MultipartForm.File[imagesPart]
	images := make([]entities.ImageUpload, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(file)
		closeErr := file.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, closeErr
		}

		images = append(images, entities.ImageUpload{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Data:        data,
		})
	}
	return images, nil
}
