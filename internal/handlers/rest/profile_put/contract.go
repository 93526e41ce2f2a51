//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_put_test
package profile_put

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
	SetName(ctx context.Context, email string, firstName string, lastName string) (*entities.Profile, error)
	SetPhone(ctx context.Context, email string, phone string) (*entities.Profile, error)
}
