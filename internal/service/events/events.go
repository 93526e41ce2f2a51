package events

import (
	"context"
	"errors"
	"fmt"

	"cargo-relay/internal/entities"
	packagesservice "cargo-relay/internal/service/packages"
)

type Service struct {
	packageProvider PackageProvider
	deliveryService DeliveryService
	statusFactory   HandlerFactory
}

func New(packageProvider PackageProvider, deliveryService DeliveryService, statusFactory HandlerFactory) *Service {
	return &Service{
		packageProvider: packageProvider,
		deliveryService: deliveryService,
		statusFactory:   statusFactory,
	}
}

// ProcessPackageStatusChange обрабатывает событие из Kafka.
// Событие - лишь сигнал: актуальный статус перечитываем из хранилища.
func (s *Service) ProcessPackageStatusChange(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	if packageModify.ID == nil || packageModify.Status == nil {
		return nil, fmt.Errorf("package id and status are required")
	}

	packageEntity, err := s.packageProvider.GetPackage(ctx, *packageModify.ID)
	if err != nil {
		// событие могло пережить саму посылку
		if errors.Is(err, packagesservice.ErrPackageNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, *packageModify.ID)
		}
		return nil, fmt.Errorf("get package from store: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(packageEntity.Status)
	if err != nil {
		// статусы без обработчика просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return packageEntity, nil
		}
		return packageEntity, err
	}

	if err := executeFn(ctx, packageEntity.ID); err != nil {
		return nil, err
	}

	return packageEntity, nil
}
