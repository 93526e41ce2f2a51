package profile

import (
	"context"
	"fmt"

	"cargo-relay/internal/entities"
	"github.com/google/uuid"
)

type Profile struct {
	repository Repository
	images     ImageStorage
}

func New(repository Repository, images ImageStorage) *Profile {
	return &Profile{
		repository: repository,
		images:     images,
	}
}

func (s *Profile) CreateProfile(ctx context.Context, email string, username string) (string, error) {
	if !isValidEmail(email) {
		return "", ErrInvalidEmail
	}
	if !isValidName(username) {
		return "", ErrInvalidUsername
	}

	id, err := s.repository.Create(ctx, entities.ProfileModify{
		Email:    &email,
		Username: &username,
	})
	if err != nil {
		return "", fmt.Errorf("create profile: %w", err)
	}
	return id, nil
}

func (s *Profile) GetProfile(ctx context.Context, email string) (*entities.Profile, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	profileEntity, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profileEntity, nil
}

// SetName адресуется по email: сперва ищем документ, потом обновляем.
// Два запроса на сеттер, optimistic concurrency здесь нет.
func (s *Profile) SetName(ctx context.Context, email string, firstName string, lastName string) (*entities.Profile, error) {
	if !isValidName(firstName) || !isValidName(lastName) {
		return nil, ErrInvalidName
	}

	profileEntity, err := s.GetProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	updated, err := s.repository.Update(ctx, entities.ProfileModify{
		ID:        &profileEntity.ID,
		FirstName: &firstName,
		LastName:  &lastName,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile name: %w", err)
	}
	return updated, nil
}

func (s *Profile) SetPhone(ctx context.Context, email string, phone string) (*entities.Profile, error) {
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	profileEntity, err := s.GetProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	updated, err := s.repository.Update(ctx, entities.ProfileModify{
		ID:    &profileEntity.ID,
		Phone: &phone,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile phone: %w", err)
	}
	return updated, nil
}

// SetProfilePicture держит инвариант "не больше одной живой картинки":
// старый blob удаляется до загрузки нового.
func (s *Profile) SetProfilePicture(ctx context.Context, email string, image entities.ImageUpload) (*entities.Profile, error) {
	profileEntity, err := s.GetProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	if profileEntity.PictureID != nil {
		err = s.images.Delete(ctx, *profileEntity.PictureID)
		if err != nil {
			return nil, fmt.Errorf("remove previous profile picture: %w", err)
		}
	}

	fileID := uuid.NewString()
	err = s.images.Upload(ctx, fileID, image)
	if err != nil {
		return nil, fmt.Errorf("upload profile picture: %w", err)
	}
	previewURL := s.images.PreviewURL(fileID)

	updated, err := s.repository.SetPicture(ctx, profileEntity.ID, &fileID, &previewURL)
	if err != nil {
		return nil, fmt.Errorf("set profile picture: %w", err)
	}
	return updated, nil
}

func (s *Profile) RemoveProfilePicture(ctx context.Context, email string) (*entities.Profile, error) {
	profileEntity, err := s.GetProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	if profileEntity.PictureID == nil {
		return nil, ErrNoProfilePicture
	}

	err = s.images.Delete(ctx, *profileEntity.PictureID)
	if err != nil {
		return nil, fmt.Errorf("delete profile picture: %w", err)
	}

	updated, err := s.repository.SetPicture(ctx, profileEntity.ID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("clear profile picture: %w", err)
	}
	return updated, nil
}
