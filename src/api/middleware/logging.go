package middleware

import (
	"net/http"
	"time"

	"stockholdings/src/utils"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// AccessLog puts a request scoped logrus entry on the context and writes one
// line per request once it completes. 4xx responses log at warn, 5xx at error.
func AccessLog(logger *logrus.Logger, skipPaths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			entry := logger.WithFields(logrus.Fields{
				"request_id": GetRequestID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
			})
			r = r.WithContext(utils.WithLogger(r.Context(), entry))

			if skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := entry.WithFields(logrus.Fields{
				"status":        status,
				"duration_ms":   time.Since(start).Milliseconds(),
				"response_size": ww.BytesWritten(),
				"remote_addr":   r.RemoteAddr,
			})

			switch {
			case status >= http.StatusInternalServerError:
				fields.Error("Request completed")
			case status >= http.StatusBadRequest:
				fields.Warn("Request completed")
			default:
				fields.Info("Request completed")
			}
		})
	}
}
