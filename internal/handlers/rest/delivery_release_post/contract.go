//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_release_post_test
package delivery_release_post

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
	ReleasePackage(ctx context.Context, packageID string) (*entities.DeliveryRelease, error)
}
