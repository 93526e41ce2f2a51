package status_handle

import (
	"context"
	"errors"
	"fmt"

	"cargo-relay/internal/entities"
	deliveryservice "cargo-relay/internal/service/delivery"
	"cargo-relay/internal/service/events"
)

type StatusHandlerFactory struct {
	deliveryService events.DeliveryService
}

func NewStatusHandlerFactory(deliveryService events.DeliveryService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		deliveryService: deliveryService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.PackageStatusType) (events.ExecuteFn, error) {
	switch status {
	case entities.PackageDelivered:
		return f.deliveredHandler, nil
	case entities.PackageCancelled:
		return f.cancelledHandler, nil
	case entities.PackagePending:
		return f.revertedHandler, nil
	default:
		// assigned двигает сам REST-поток, воркеру тут делать нечего
		return nil, fmt.Errorf("%w: %s", events.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, packageID string) error {
	err := f.deliveryService.CleanupDeliveryForPackage(ctx, packageID)
	if err != nil {
		if errors.Is(err, deliveryservice.ErrDeliveryNotFound) {
			return nil
		}
		return fmt.Errorf("cleanup delivery for delivered package %s: %w", packageID, err)
	}
	return nil
}

// revertedHandler подчищает заявку после возврата посылки в created
// (снятие claim через PUT /package/{id}).
func (f *StatusHandlerFactory) revertedHandler(ctx context.Context, packageID string) error {
	err := f.deliveryService.CleanupDeliveryForPackage(ctx, packageID)
	if err != nil {
		// свежесозданная посылка заявки еще не имеет
		if errors.Is(err, deliveryservice.ErrDeliveryNotFound) {
			return nil
		}
		return fmt.Errorf("cleanup delivery for reverted package %s: %w", packageID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, packageID string) error {
	err := f.deliveryService.CleanupDeliveryForPackage(ctx, packageID)
	if err != nil {
		// посылку можно отменить и до того, как ее кто-то забрал
		if errors.Is(err, deliveryservice.ErrDeliveryNotFound) {
			return nil
		}
		return fmt.Errorf("cleanup delivery for cancelled package %s: %w", packageID, err)
	}
	return nil
}
