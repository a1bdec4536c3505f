package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"regdesk/pkg/requestcontext"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns every request an ID, honouring one supplied by an
// upstream proxy, and echoes it back in the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestTime captures the current time at the start of the request so every
// timestamp written during it agrees.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), timeNow())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
