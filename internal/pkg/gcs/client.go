package gcs

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"cargo-relay/internal/pkg/config"
	"cargo-relay/pkg/logger"
	retrierconfig "cargo-relay/pkg/retrier"
	"cargo-relay/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

func NewClient(ctx context.Context, log logger.Logger, cfg *config.Storage) (*storage.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	storageLog := log.With(
		logger.NewField("component", "gcs-client"),
		logger.NewField("bucket", cfg.Bucket),
	)

	err = pingBucket(ctx, storageLog, client, cfg.Bucket)
	if err != nil {
		clientCloseErr := client.Close()
		if clientCloseErr != nil {
			return nil, fmt.Errorf("storage connection: %w (failed to close: %v)", err, clientCloseErr)
		}
		return nil, fmt.Errorf("storage connection: %w", err)
	}

	return client, nil
}

func pingBucket(ctx context.Context, log logger.Logger, client *storage.Client, bucket string) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting storage connection")

		_, err := client.Bucket(bucket).Attrs(ctx)
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("storage connection failed after retries")
		return fmt.Errorf("failed to establish storage connection: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("storage connection established")
	return nil
}
