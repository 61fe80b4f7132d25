package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/courtside/courtside/internal/common"
	"github.com/courtside/courtside/internal/logging"
	"github.com/google/uuid"
)

// Logging assigns a request id (reusing a sane X-Request-ID from the caller),
// echoes it in the response and writes one access-log line per request.
func Logging(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := strings.TrimSpace(r.Header.Get(common.RequestIDHeaderName))
			if requestID == "" || len(requestID) > 128 {
				requestID = uuid.NewString()
			}
			w.Header().Set(common.RequestIDHeaderName, requestID)

			ctx := logging.WithRequestID(r.Context(), requestID)
			wrapped := &ResponseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r.WithContext(ctx))

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.Status(),
				"size", wrapped.Size(),
				"duration", time.Since(start),
				"client_ip", ClientIP(r),
			}

			switch status := wrapped.Status(); {
			case status >= 500:
				logger.Error(ctx, "http request", args...)
			case status >= 400:
				logger.Warn(ctx, "http request", args...)
			default:
				logger.Info(ctx, "http request", args...)
			}
		})
	}
}

// ClientIP returns the host part of the connection's remote address.
// Forwarding headers are ignored since any caller can set them.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
