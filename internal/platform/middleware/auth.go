package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	dErrors "regdesk/pkg/domain-errors"
	"regdesk/pkg/platform/httputil"
	"regdesk/pkg/requestcontext"
)

// SessionValidator checks an admin bearer token: signature, expiry, and the
// revocation list.
type SessionValidator interface {
	Validate(r *http.Request, token string) (jti string, err error)
}

// SessionValidatorFunc adapts a function to the SessionValidator interface.
type SessionValidatorFunc func(r *http.Request, token string) (string, error)

func (f SessionValidatorFunc) Validate(r *http.Request, token string) (string, error) {
	return f(r, token)
}

// RequireAdmin guards admin-only routes. Requests must present
// "Authorization: Bearer <token>" with a live session token.
func RequireAdmin(validator SessionValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "admin access without bearer token",
					"path", r.URL.Path,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid Authorization header"))
				return
			}

			jti, err := validator.Validate(r, token)
			if err != nil {
				logger.WarnContext(ctx, "admin access with rejected token",
					"error", err,
					"path", r.URL.Path,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithAdminJTI(ctx, jti)))
		})
	}
}
