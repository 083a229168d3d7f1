package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/kfly8/muxbuilder"
)

// RequestIDHeader is the response header RequestID echoes the generated ID in.
const RequestIDHeader = "X-Request-Id"

// RequestID adds a uuid to the request context under muxbuilder.RequestIDKey
// and echoes it in the RequestIDHeader response header.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), muxbuilder.RequestIDKey, id)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext returns the ID RequestID stashed in ctx, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(muxbuilder.RequestIDKey).(string)
	return id
}
