package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает 204, пока сервис принимает трафик,
// и 503 после начала graceful shutdown.
type Handler struct {
	shuttingDown *atomic.Bool
}

func New(shuttingDown *atomic.Bool) *Handler {
	return &Handler{shuttingDown: shuttingDown}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.shuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
