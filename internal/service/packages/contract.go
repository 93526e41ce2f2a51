//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_test
package packages

import (
	"context"

	"cargo-relay/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, packageModifyEntity entities.PackageModify) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Package, error)
	GetAll(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error)
	Update(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error)
	UpdateImages(ctx context.Context, id string, imagesIDs []string) (*entities.Package, error)
	AssignCourier(ctx context.Context, id string, courierID string) (*entities.Package, error)
	UnassignCourier(ctx context.Context, id string) (*entities.Package, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status entities.PackageStatusType) (int64, error)
}

type ImageStorage interface {
	Upload(ctx context.Context, fileID string, image entities.ImageUpload) error
	Delete(ctx context.Context, fileID string) error
	PreviewURL(fileID string) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
