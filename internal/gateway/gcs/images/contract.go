//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=images_test
package images

import (
	"context"
)

type client interface {
	WriteObject(ctx context.Context, name string, contentType string, data []byte) error
	DeleteObject(ctx context.Context, name string) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
