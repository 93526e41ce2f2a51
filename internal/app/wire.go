//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	imagesGateway "cargo-relay/internal/gateway/gcs/images"
	delivery_claim_post "cargo-relay/internal/handlers/rest/delivery_claim_post"
	delivery_release_post "cargo-relay/internal/handlers/rest/delivery_release_post"
	package_delete "cargo-relay/internal/handlers/rest/package_delete"
	package_get "cargo-relay/internal/handlers/rest/package_get"
	package_image_delete "cargo-relay/internal/handlers/rest/package_image_delete"
	package_image_post "cargo-relay/internal/handlers/rest/package_image_post"
	package_post "cargo-relay/internal/handlers/rest/package_post"
	package_put "cargo-relay/internal/handlers/rest/package_put"
	packages_get "cargo-relay/internal/handlers/rest/packages_get"
	profile_get "cargo-relay/internal/handlers/rest/profile_get"
	profile_picture_delete "cargo-relay/internal/handlers/rest/profile_picture_delete"
	profile_picture_put "cargo-relay/internal/handlers/rest/profile_picture_put"
	profile_post "cargo-relay/internal/handlers/rest/profile_post"
	profile_put "cargo-relay/internal/handlers/rest/profile_put"
	"cargo-relay/internal/handlers/tasks/lifecycle_metrics"
	"cargo-relay/internal/pkg/config"
	"cargo-relay/internal/pkg/factory/status_handle"

	deliveryRepo "cargo-relay/internal/repository/delivery"
	packagesRepo "cargo-relay/internal/repository/packages"
	profileRepo "cargo-relay/internal/repository/profile"
	deliveryService "cargo-relay/internal/service/delivery"
	eventsService "cargo-relay/internal/service/events"
	packagesService "cargo-relay/internal/service/packages"
	profileService "cargo-relay/internal/service/profile"

	"cargo-relay/pkg/background"
	"cargo-relay/pkg/logger"
	"cargo-relay/pkg/tx"

	"cloud.google.com/go/storage"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	MetricsInterval time.Duration
)

type Application struct {
	ServicePackages   ServicePackages
	ServiceDelivery   ServiceDelivery
	ServiceProfile    ServiceProfile
	BackgroundWorkers *background.Worker
}

type ServicePackages interface {
	package_post.Service
	package_get.Service
	packages_get.Service
	package_put.Service
	package_delete.Service
	package_image_post.Service
	package_image_delete.Service
}

type ServiceDelivery interface {
	delivery_claim_post.Service
	delivery_release_post.Service
}

type ServiceProfile interface {
	profile_post.Service
	profile_get.Service
	profile_put.Service
	profile_picture_put.Service
	profile_picture_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	mongoClient *mongo.Client,
	storageClient *storage.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideDatabase,
		provideImageGateway,
		provideMetricsInterval,

		providePackagesRepository,
		provideDeliveryRepository,
		provideProfileRepository,

		provideServicePackages,
		provideServiceDelivery,
		provideServiceProfile,

		provideLifecycleMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePackages), new(*packagesService.Packages)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceProfile), new(*profileService.Profile)),

		wire.Bind(new(packagesService.Repository), new(*packagesRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(profileService.Repository), new(*profileRepo.Repository)),
		wire.Bind(new(deliveryService.PackageService), new(*packagesService.Packages)),

		wire.Bind(new(packagesService.ImageStorage), new(*imagesGateway.ImageGateway)),
		wire.Bind(new(profileService.ImageStorage), new(*imagesGateway.ImageGateway)),

		wire.Bind(new(packagesService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(lifecycle_metrics.PackageService), new(*packagesService.Packages)),
		wire.Bind(new(lifecycle_metrics.DeliveryService), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	EventsService *eventsService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-package-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	mongoClient *mongo.Client,
	storageClient *storage.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideDatabase,
		provideImageGateway,

		providePackagesRepository,
		provideDeliveryRepository,

		provideServicePackages,
		provideServiceDelivery,

		provideStatusHandlerFabric,
		provideEventsService,

		wire.Bind(new(packagesService.Repository), new(*packagesRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.PackageService), new(*packagesService.Packages)),

		wire.Bind(new(packagesService.ImageStorage), new(*imagesGateway.ImageGateway)),

		wire.Bind(new(packagesService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(eventsService.PackageProvider), new(*packagesService.Packages)),
		wire.Bind(new(eventsService.DeliveryService), new(*deliveryService.Delivery)),
		wire.Bind(new(eventsService.HandlerFactory), new(*status_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(client *mongo.Client) *tx.Manager {
	return tx.New(client)
}

func provideDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}

func provideImageGateway(client *storage.Client, cfg *config.Config) *imagesGateway.ImageGateway {
	storageClient := imagesGateway.NewStorageClient(client, cfg.Storage.Bucket)
	return imagesGateway.New(storageClient, cfg.Storage.Bucket)
}

func providePackagesRepository(db *mongo.Database) *packagesRepo.Repository {
	return packagesRepo.New(db)
}

// provideDeliveryRepository на старте гарантирует уникальный индекс по
// package_id: без него дубликат заявки не превратится в ErrConflict.
func provideDeliveryRepository(ctx context.Context, db *mongo.Database) (*deliveryRepo.Repository, error) {
	repository := deliveryRepo.New(db)
	if err := repository.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return repository, nil
}

// provideProfileRepository на старте гарантирует уникальный индекс по email.
func provideProfileRepository(ctx context.Context, db *mongo.Database) (*profileRepo.Repository, error) {
	repository := profileRepo.New(db)
	if err := repository.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return repository, nil
}

func provideServicePackages(
	repository packagesService.Repository,
	images packagesService.ImageStorage,
	txManager packagesService.TxManager,
) *packagesService.Packages {
	return packagesService.New(repository, images, txManager)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	packageService deliveryService.PackageService,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(repository, packageService, txManager)
}

func provideServiceProfile(
	repository profileService.Repository,
	images profileService.ImageStorage,
) *profileService.Profile {
	return profileService.New(repository, images)
}

func provideMetricsInterval(cfg *config.Config) MetricsInterval {
	return MetricsInterval(cfg.Tasks.LifecycleMetricsInterval)
}

func provideStatusHandlerFabric(deliveryService eventsService.DeliveryService) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(deliveryService)
}

// provideEventsService создает eventsService для обработки событий Kafka
func provideEventsService(
	packageProvider eventsService.PackageProvider,
	deliveryService eventsService.DeliveryService,
	handlerFactory eventsService.HandlerFactory,
) *eventsService.Service {
	return eventsService.New(packageProvider, deliveryService, handlerFactory)
}

func provideLifecycleMetricsTask(
	log logger.Logger,
	packages lifecycle_metrics.PackageService,
	delivery lifecycle_metrics.DeliveryService,
	interval MetricsInterval,
) *lifecycle_metrics.LifecycleMetrics {
	return lifecycle_metrics.New(log, packages, delivery, time.Duration(interval))
}

func provideTaskList(
	lifecycleMetricsTask *lifecycle_metrics.LifecycleMetrics,
) []background.Task {
	return []background.Task{
		lifecycleMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
