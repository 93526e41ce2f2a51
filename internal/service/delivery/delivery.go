package delivery

import (
	"context"
	"fmt"

	"cargo-relay/internal/entities"
)

type Delivery struct {
	repository     Repository
	packageService PackageService
	txManager      TxManager
}

func New(repository Repository, packageService PackageService, txManager TxManager) *Delivery {
	return &Delivery{
		repository:     repository,
		packageService: packageService,
		txManager:      txManager,
	}
}

// ClaimPackage создает заявку курьера и переводит посылку в assigned
// одной транзакцией: заявка без смены статуса посылки бессмысленна.
func (d *Delivery) ClaimPackage(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.DeliveryClaim, error) {
	if deliveryModify.PackageID == nil ||
		deliveryModify.CourierID == nil ||
		deliveryModify.Source == nil ||
		deliveryModify.Destination == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*deliveryModify.PackageID) {
		return nil, ErrInvalidPackageID
	}
	if !isValidID(*deliveryModify.CourierID) {
		return nil, ErrInvalidCourierID
	}
	if !isValidLocation(*deliveryModify.Source) || !isValidLocation(*deliveryModify.Destination) {
		return nil, ErrInvalidLocation
	}

	deliveryClaim := entities.DeliveryClaim{}
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		deliveryEntity, err := d.repository.Create(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		packageEntity, err := d.packageService.AssignCourier(ctx, deliveryEntity.PackageID, deliveryEntity.CourierID)
		if err != nil {
			return fmt.Errorf("assign courier to package: %w", err)
		}

		deliveryClaim = entities.DeliveryClaim{
			DeliveryID:    deliveryEntity.ID,
			PackageID:     deliveryEntity.PackageID,
			CourierID:     deliveryEntity.CourierID,
			PackageStatus: packageEntity.Status,
			ClaimedAt:     deliveryEntity.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deliveryClaim, nil
}

// ReleasePackage снимает заявку: удаляет delivery и возвращает посылку
// в created, очищая deliverID.
func (d *Delivery) ReleasePackage(ctx context.Context, packageID string) (*entities.DeliveryRelease, error) {
	if !isValidID(packageID) {
		return nil, ErrInvalidPackageID
	}

	deliveryRelease := entities.DeliveryRelease{}
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		deliveryEntity, err := d.repository.GetByPackageID(ctx, packageID)
		if err != nil {
			return fmt.Errorf("get delivery by package id: %w", err)
		}

		err = d.repository.Delete(ctx, deliveryEntity.ID)
		if err != nil {
			return fmt.Errorf("delete delivery: %w", err)
		}

		packageEntity, err := d.packageService.UnassignCourier(ctx, packageID)
		if err != nil {
			return fmt.Errorf("unassign courier from package: %w", err)
		}

		deliveryRelease = entities.DeliveryRelease{
			PackageID:     packageID,
			CourierID:     deliveryEntity.CourierID,
			PackageStatus: packageEntity.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deliveryRelease, nil
}

// CleanupDeliveryForPackage убирает заявку, не трогая посылку: для
// delivered и cancelled статус ей уже выставил вызывающий поток.
func (d *Delivery) CleanupDeliveryForPackage(ctx context.Context, packageID string) error {
	if !isValidID(packageID) {
		return ErrInvalidPackageID
	}

	deliveryEntity, err := d.repository.GetByPackageID(ctx, packageID)
	if err != nil {
		return fmt.Errorf("get delivery by package id: %w", err)
	}

	err = d.repository.Delete(ctx, deliveryEntity.ID)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	return nil
}

func (d *Delivery) UpdateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if deliveryModify.ID == nil || !isValidID(*deliveryModify.ID) {
		return nil, ErrDeliveryNotCreated
	}

	if deliveryModify.Source == nil &&
		deliveryModify.Destination == nil &&
		deliveryModify.SeatAvailability == nil &&
		deliveryModify.TravelMethods == nil &&
		deliveryModify.TravelTime == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if deliveryModify.Source != nil && !isValidLocation(*deliveryModify.Source) {
		return nil, ErrInvalidLocation
	}
	if deliveryModify.Destination != nil && !isValidLocation(*deliveryModify.Destination) {
		return nil, ErrInvalidLocation
	}

	deliveryEntity, err := d.repository.Update(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("update delivery: %w", err)
	}
	return deliveryEntity, nil
}

func (d *Delivery) DeleteDelivery(ctx context.Context, id string) error {
	if !isValidID(id) {
		return ErrDeliveryNotCreated
	}

	err := d.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	return nil
}

func (d *Delivery) GetDeliveryByPackageID(ctx context.Context, packageID string) (*entities.Delivery, error) {
	if !isValidID(packageID) {
		return nil, ErrInvalidPackageID
	}

	deliveryEntity, err := d.repository.GetByPackageID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return deliveryEntity, nil
}

func (d *Delivery) CountActiveDeliveries(ctx context.Context) (int64, error) {
	count, err := d.repository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count deliveries: %w", err)
	}
	return count, nil
}
