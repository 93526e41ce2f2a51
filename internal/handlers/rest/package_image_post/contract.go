//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_image_post_test
package package_image_post

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
	AddImage(ctx context.Context, id string, image entities.ImageUpload) (*entities.Package, error)
}
