package images

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// StorageClient оборачивает bucket handle под интерфейс client,
// чтобы гейтвей можно было тестировать без реального стора.
type StorageClient struct {
	bucket *storage.BucketHandle
}

func NewStorageClient(client *storage.Client, bucket string) *StorageClient {
	return &StorageClient{
		bucket: client.Bucket(bucket),
	}
}

func (s *StorageClient) WriteObject(ctx context.Context, name string, contentType string, data []byte) error {
	writer := s.bucket.Object(name).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		closeErr := writer.Close()
		if closeErr != nil {
			return fmt.Errorf("write object: %w (failed to close: %v)", err, closeErr)
		}
		return fmt.Errorf("write object: %w", err)
	}

	// ошибки аплоада всплывают на Close
	if err := writer.Close(); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	return nil
}

func (s *StorageClient) DeleteObject(ctx context.Context, name string) error {
	return s.bucket.Object(name).Delete(ctx)
}
