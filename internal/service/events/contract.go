//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_test
package events

import (
	"context"

	"cargo-relay/internal/entities"
)

type PackageProvider interface {
	GetPackage(ctx context.Context, id string) (*entities.Package, error)
}

type DeliveryService interface {
	CleanupDeliveryForPackage(ctx context.Context, packageID string) error
}

type (
	ExecuteFn      func(ctx context.Context, packageID string) error
	HandlerFactory interface {
		GetHandler(status entities.PackageStatusType) (ExecuteFn, error)
	}
)
