package package_status_changed

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
	ProcessPackageStatusChange(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error)
}

// statusEvent - формат сообщения в топике package.status.changed.
type statusEvent struct {
	PackageID string `json:"package_id"`
	Status    string `json:"status"`
}
