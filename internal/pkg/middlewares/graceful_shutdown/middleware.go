package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware отклоняет новые запросы после того, как сервис начал остановку.
// baseCtx — контекст из BaseContext сервера, закрывается при shutdown.
func Middleware(shuttingDown *atomic.Bool, baseCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if baseCtx.Err() != nil && shuttingDown.Load() {
				http.Error(w, "service is shutting down", http.StatusServiceUnavailable)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
