//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_test
package profile

import (
	"context"

	"cargo-relay/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, profileModifyEntity entities.ProfileModify) (string, error)
	GetByEmail(ctx context.Context, email string) (*entities.Profile, error)
	Update(ctx context.Context, profileModifyEntity entities.ProfileModify) (*entities.Profile, error)
	// SetPicture выставляет оба поля картинки разом; nil очищает.
	SetPicture(ctx context.Context, id string, pictureID *string, previewURL *string) (*entities.Profile, error)
}

type ImageStorage interface {
	Upload(ctx context.Context, fileID string, image entities.ImageUpload) error
	Delete(ctx context.Context, fileID string) error
	PreviewURL(fileID string) string
}
