//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"cargo-relay/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	GetByPackageID(ctx context.Context, packageID string) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type PackageService interface {
	AssignCourier(ctx context.Context, id string, courierID string) (*entities.Package, error)
	UnassignCourier(ctx context.Context, id string) (*entities.Package, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
