package metrics

import (
	"net/http"
	"strconv"
	"time"

	"cargo-relay/pkg/logger"
	"github.com/gorilla/mux"
)

// Middleware снимает длительность и статус каждого запроса
// и пишет access-лог.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)

			// Шаблон mux-роута вместо конкретного path, чтобы не раздувать
			// кардинальность лейблов
			route := r.URL.Path
			if muxRoute := mux.CurrentRoute(r); muxRoute != nil {
				if template, err := muxRoute.GetPathTemplate(); err == nil {
					route = template
				}
			}

			HTTPRequestDuration.WithLabelValues(r.Method, route, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, statusCode).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", statusCode),
				logger.NewField("duration", duration.String()),
			).Info("HTTP request")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
