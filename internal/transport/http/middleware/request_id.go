package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"talento/internal/requestctx"
)

const requestIDHeader = "X-Request-Id"

// RequestID takes the caller's id when present, otherwise mints one,
// and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), requestID)))
	})
}
