package lifecycle_metrics

import (
	"context"
	"fmt"
	"time"

	"cargo-relay/internal/entities"
	"cargo-relay/pkg/logger"
)

type PackageService interface {
	CountPackagesByStatus(ctx context.Context, status entities.PackageStatusType) (int64, error)
}

type DeliveryService interface {
	CountActiveDeliveries(ctx context.Context) (int64, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// LifecycleMetrics периодически снимает счетчики посылок и заявок
// и публикует их в prometheus.
type LifecycleMetrics struct {
	log      handlerLogger
	packages PackageService
	delivery DeliveryService
	interval time.Duration
}

func New(log handlerLogger, packages PackageService, delivery DeliveryService, interval time.Duration) *LifecycleMetrics {
	return &LifecycleMetrics{
		log:      log.With(logger.NewField("task", "lifecycle metrics")),
		packages: packages,
		delivery: delivery,
		interval: interval,
	}
}

func (t *LifecycleMetrics) TTL() time.Duration {
	return t.interval
}

func (t *LifecycleMetrics) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	statuses := []entities.PackageStatusType{
		entities.PackagePending,
		entities.PackageInTransit,
		entities.PackageDelivered,
		entities.PackageCancelled,
	}

	for _, status := range statuses {
		count, err := t.packages.CountPackagesByStatus(ctx, status)
		if err != nil {
			return fmt.Errorf("count packages by status %q: %w", status, err)
		}
		PackagesByStatus.WithLabelValues(string(status)).Set(float64(count))
	}

	active, err := t.delivery.CountActiveDeliveries(ctx)
	if err != nil {
		return fmt.Errorf("count active deliveries: %w", err)
	}
	ActiveDeliveries.Set(float64(active))

	t.log.Info("Lifecycle metrics updated",
		logger.NewField("active_deliveries", active),
	)

	return nil
}

func (t *LifecycleMetrics) Info() string {
	return "lifecycle metrics"
}
