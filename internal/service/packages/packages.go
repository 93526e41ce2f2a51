package packages

import (
	"context"
	"fmt"

	"cargo-relay/internal/entities"
	"github.com/google/uuid"
)

type Packages struct {
	repository Repository
	images     ImageStorage
	txManager  TxManager
}

func New(repository Repository, images ImageStorage, txManager TxManager) *Packages {
	return &Packages{
		repository: repository,
		images:     images,
		txManager:  txManager,
	}
}

func (s *Packages) CreatePackage(
	ctx context.Context,
	packageModify entities.PackageModify,
	images []entities.ImageUpload,
) (*entities.Package, error) {
	if packageModify.SenderID == nil ||
		packageModify.Title == nil ||
		packageModify.Description == nil ||
		packageModify.Weight == nil ||
		packageModify.Volume == nil ||
		packageModify.Source == nil ||
		packageModify.Destination == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := s.validateFields(&packageModify); err != nil {
		return nil, err
	}

	// Проверка количества строго до первой загрузки: при невалидном
	// наборе в storage не должно попасть ни одного файла.
	if !isValidImageCount(len(images)) {
		return nil, fmt.Errorf("%w (min: %d, max: %d)",
			ErrInvalidImageCount, entities.MinPackageImages, entities.MaxPackageImages)
	}

	imagesIDs := make([]string, 0, len(images))
	previews := make([]string, 0, len(images))
	for i, image := range images {
		fileID := uuid.NewString()

		err := s.images.Upload(ctx, fileID, image)
		if err != nil {
			// Компенсация: уже загруженные файлы этого вызова удаляем,
			// чтобы не копить сироты в bucket.
			s.deleteImages(ctx, imagesIDs)
			return nil, fmt.Errorf("upload image %d: %w", i, err)
		}

		imagesIDs = append(imagesIDs, fileID)
		previews = append(previews, s.images.PreviewURL(fileID))
	}

	status := entities.DefaultPackageStatus
	packageModify.Status = &status
	packageModify.ImagesIDs = &imagesIDs

	id, err := s.repository.Create(ctx, packageModify)
	if err != nil {
		s.deleteImages(ctx, imagesIDs)
		return nil, fmt.Errorf("create package: %w", err)
	}

	return &entities.Package{
		ID:           id,
		SenderID:     *packageModify.SenderID,
		Title:        *packageModify.Title,
		Description:  *packageModify.Description,
		Weight:       *packageModify.Weight,
		Volume:       *packageModify.Volume,
		Source:       *packageModify.Source,
		Destination:  *packageModify.Destination,
		Status:       status,
		ImagesIDs:    imagesIDs,
		PreviewsURLs: previews,
	}, nil
}

func (s *Packages) UpdatePackage(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	if packageModify.ID == nil || !isValidPackageID(*packageModify.ID) {
		return nil, ErrPackageNotCreated
	}

	if packageModify.DeliverID == nil &&
		packageModify.Title == nil &&
		packageModify.Description == nil &&
		packageModify.Weight == nil &&
		packageModify.Volume == nil &&
		packageModify.Source == nil &&
		packageModify.Destination == nil &&
		packageModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := s.validateFields(&packageModify); err != nil {
		return nil, err
	}

	var updated *entities.Package
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if packageModify.Status != nil {
			current, err := s.repository.GetByID(ctx, *packageModify.ID)
			if err != nil {
				return fmt.Errorf("get package: %w", err)
			}
			if current.Status != *packageModify.Status &&
				!current.Status.CanTransition(*packageModify.Status) {
				return fmt.Errorf("%w: %s -> %s",
					ErrInvalidStatusTransition, current.Status, *packageModify.Status)
			}

			// возврат assigned -> created отменяет claim: курьер снимается
			// тем же частичным обновлением, в той же транзакции
			if current.Status == entities.PackageInTransit && *packageModify.Status == entities.PackagePending {
				if _, err := s.repository.UnassignCourier(ctx, *packageModify.ID); err != nil {
					return fmt.Errorf("unassign courier: %w", err)
				}
				packageModify.Status = nil
				packageModify.DeliverID = nil
			}
		}

		var err error
		updated, err = s.repository.Update(ctx, packageModify)
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.hydrate(updated), nil
}

func (s *Packages) GetPackage(ctx context.Context, id string) (*entities.Package, error) {
	if !isValidPackageID(id) {
		return nil, ErrInvalidPackageID
	}

	packageEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	return s.hydrate(packageEntity), nil
}

func (s *Packages) GetPackages(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error) {
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return nil, ErrInvalidStatus
	}

	packageEntities, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get packages: %w", err)
	}

	for i := range packageEntities {
		s.hydrate(&packageEntities[i])
	}
	return packageEntities, nil
}

func (s *Packages) DeletePackage(ctx context.Context, id string) error {
	if !isValidPackageID(id) {
		return ErrPackageNotCreated
	}

	packageEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get package: %w", err)
	}

	// Файлы удаляем best-effort: ошибка отдельного blob не должна
	// блокировать удаление документа.
	s.deleteImages(ctx, packageEntity.ImagesIDs)

	err = s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	return nil
}

func (s *Packages) AddImage(ctx context.Context, id string, image entities.ImageUpload) (*entities.Package, error) {
	if !isValidPackageID(id) {
		return nil, ErrPackageNotCreated
	}

	packageEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	if len(packageEntity.ImagesIDs) >= entities.MaxPackageImages {
		return nil, ErrMaxImagesReached
	}

	fileID := uuid.NewString()
	err = s.images.Upload(ctx, fileID, image)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	imagesIDs := append(append([]string{}, packageEntity.ImagesIDs...), fileID)
	updated, err := s.repository.UpdateImages(ctx, id, imagesIDs)
	if err != nil {
		s.deleteImages(ctx, []string{fileID})
		return nil, fmt.Errorf("update images: %w", err)
	}

	return s.hydrate(updated), nil
}

func (s *Packages) RemoveImage(ctx context.Context, id string, imageID string) (*entities.Package, error) {
	if !isValidPackageID(id) {
		return nil, ErrPackageNotCreated
	}

	packageEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	if len(packageEntity.ImagesIDs) <= entities.MinPackageImages {
		return nil, ErrMinImagesReached
	}

	imagesIDs := make([]string, 0, len(packageEntity.ImagesIDs)-1)
	found := false
	for _, existingID := range packageEntity.ImagesIDs {
		if existingID == imageID {
			found = true
			continue
		}
		imagesIDs = append(imagesIDs, existingID)
	}
	if !found {
		return nil, ErrImageNotFound
	}

	updated, err := s.repository.UpdateImages(ctx, id, imagesIDs)
	if err != nil {
		return nil, fmt.Errorf("update images: %w", err)
	}

	s.deleteImages(ctx, []string{imageID})

	return s.hydrate(updated), nil
}

// AssignCourier переводит посылку created -> assigned и фиксирует курьера.
// Вызывается из delivery-сервиса внутри его транзакции.
func (s *Packages) AssignCourier(ctx context.Context, id string, courierID string) (*entities.Package, error) {
	if !isValidPackageID(id) {
		return nil, ErrInvalidPackageID
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	if !current.Status.CanTransition(entities.PackageInTransit) {
		return nil, fmt.Errorf("%w: %s -> %s",
			ErrInvalidStatusTransition, current.Status, entities.PackageInTransit)
	}

	updated, err := s.repository.AssignCourier(ctx, id, courierID)
	if err != nil {
		return nil, fmt.Errorf("assign courier: %w", err)
	}
	return s.hydrate(updated), nil
}

// UnassignCourier возвращает посылку assigned -> created и снимает курьера.
func (s *Packages) UnassignCourier(ctx context.Context, id string) (*entities.Package, error) {
	if !isValidPackageID(id) {
		return nil, ErrInvalidPackageID
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	if !current.Status.CanTransition(entities.PackagePending) {
		return nil, fmt.Errorf("%w: %s -> %s",
			ErrInvalidStatusTransition, current.Status, entities.PackagePending)
	}

	updated, err := s.repository.UnassignCourier(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unassign courier: %w", err)
	}
	return s.hydrate(updated), nil
}

func (s *Packages) CountPackagesByStatus(ctx context.Context, status entities.PackageStatusType) (int64, error) {
	if !isValidStatus(status) {
		return 0, ErrInvalidStatus
	}

	count, err := s.repository.CountByStatus(ctx, status)
	if err != nil {
		return 0, fmt.Errorf("count packages: %w", err)
	}
	return count, nil
}

func (s *Packages) validateFields(packageModify *entities.PackageModify) error {
	if packageModify.Title != nil && !isValidTitle(*packageModify.Title) {
		return ErrInvalidTitle
	}
	if packageModify.Description != nil && !isValidDescription(*packageModify.Description) {
		return ErrInvalidDescription
	}
	if packageModify.Weight != nil && !isValidWeight(*packageModify.Weight) {
		return ErrInvalidWeight
	}
	if packageModify.Volume != nil && !isValidVolume(*packageModify.Volume) {
		return ErrInvalidVolume
	}
	if packageModify.Source != nil && !isValidLocation(*packageModify.Source) {
		return ErrInvalidLocation
	}
	if packageModify.Destination != nil && !isValidLocation(*packageModify.Destination) {
		return ErrInvalidLocation
	}
	if packageModify.Status != nil && !isValidStatus(*packageModify.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// hydrate достраивает previews: по одному URL на каждый images_ids,
// в том же порядке. Отдельно они не хранятся.
func (s *Packages) hydrate(packageEntity *entities.Package) *entities.Package {
	if packageEntity == nil {
		return nil
	}

	previews := make([]string, 0, len(packageEntity.ImagesIDs))
	for _, imageID := range packageEntity.ImagesIDs {
		previews = append(previews, s.images.PreviewURL(imageID))
	}
	packageEntity.PreviewsURLs = previews
	return packageEntity
}

func (s *Packages) deleteImages(ctx context.Context, imagesIDs []string) {
	for _, imageID := range imagesIDs {
		//nolint:errcheck // best-effort, блокировать основную операцию нельзя
		_ = s.images.Delete(ctx, imageID)
	}
}
