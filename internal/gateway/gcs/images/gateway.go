package images

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"

	"cargo-relay/internal/entities"
	retrierconfig "cargo-relay/pkg/retrier"
	"cargo-relay/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "image-storage"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type ImageGateway struct {
	client  client
	retrier retrier
	bucket  string
}

func New(client client, bucket string) *ImageGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &ImageGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		bucket:  bucket,
	}
}

func (g *ImageGateway) Upload(ctx context.Context, fileID string, image entities.ImageUpload) error {
	err := g.executeWithMetrics(ctx, "WriteObject", func(ctx context.Context) error {
		return g.client.WriteObject(ctx, fileID, image.ContentType, image.Data)
	})
	if err != nil {
		return fmt.Errorf("gateway images, upload: %s: %w", fileID, err)
	}
	return nil
}

func (g *ImageGateway) Delete(ctx context.Context, fileID string) error {
	err := g.executeWithMetrics(ctx, "DeleteObject", func(ctx context.Context) error {
		err := g.client.DeleteObject(ctx, fileID)
		// повторное удаление — не ошибка
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway images, delete: %s: %w", fileID, err)
	}
	return nil
}

func (g *ImageGateway) PreviewURL(fileID string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, fileID)
}

func isRetryableStatus(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.Code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func (g *ImageGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.Code)
	}
	return "UNKNOWN"
}
