package server

import (
	"net/http"
	"strconv"
	"time"

	"realty-catalog/internal/common/logger"
	"realty-catalog/internal/common/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestLogger logs every request with a trace id (taken from X-Trace-ID
// when the caller supplies a valid one) and records per-route metrics.
func RequestLogger(log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get("X-Trace-ID")
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}

			reqLogger := log.WithFields(map[string]interface{}{
				"trace_id":    traceID,
				"http_method": r.Method,
				"http_path":   r.URL.Path,
			})

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}
			metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()

			reqLogger.Info("request finished", map[string]interface{}{
				"status_code": ww.Status(),
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}
