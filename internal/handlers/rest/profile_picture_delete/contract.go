//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_picture_delete_test
package profile_picture_delete

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
	RemoveProfilePicture(ctx context.Context, email string) (*entities.Profile, error)
}
