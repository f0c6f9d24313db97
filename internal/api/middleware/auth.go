package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sumonben/hotelmanagement/internal/api/handlers"
)

type userIDKey struct{}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth extracts the authenticated user id from the X-User-ID header set
// by the API gateway and stores it in the request context. Requests
// without a valid header are rejected.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				logger.Warn("%s %s - missing X-User-ID header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "authentication required")
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - invalid X-User-ID header: %q", r.Method, r.URL.Path, raw)
				handlers.RespondUnauthorized(w, "invalid user identity")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id placed by Auth
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
