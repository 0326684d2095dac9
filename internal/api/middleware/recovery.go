package middleware

import (
	"log/slog"
	"net/http"

	"github.com/engreg/engreg/internal/api/response"
)

// Recovery is middleware that recovers from panics and returns a 500
// problem payload without leaking internal detail.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(r.Context())
				slog.Error("panic recovered", "error", err, "requestId", requestID, "path", r.URL.Path)
				response.Err(w, http.StatusInternalServerError, response.CodeInternal,
					"Internal Server Error", "Unexpected error occurred", r.URL.Path, requestID)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
