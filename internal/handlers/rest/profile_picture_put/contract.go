//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_picture_put_test
package profile_picture_put

import (
	"context"

	"cargo-relay/internal/entities"
	"cargo-relay/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetProfilePicture(ctx context.Context, email string, image entities.ImageUpload) (*entities.Profile, error)
}
