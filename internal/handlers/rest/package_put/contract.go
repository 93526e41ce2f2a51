//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_put_test
package package_put

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
	UpdatePackage(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error)
}
