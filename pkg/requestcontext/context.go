// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them, services read them, and tests
// inject them without running the full middleware chain.
package requestcontext

import (
	"context"
	"time"
)

type (
	requestIDKey   struct{}
	requestTimeKey struct{}
	adminJTIKey    struct{}
)

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now retrieves the request-scoped time from context. All operations within
// one request see the same "now", so a record's submitted_at matches its
// log lines. Falls back to time.Now() outside HTTP (workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// AdminJTI retrieves the token ID of the authenticated admin session, set by
// the admin auth middleware. Empty outside admin routes.
func AdminJTI(ctx context.Context) string {
	if jti, ok := ctx.Value(adminJTIKey{}).(string); ok {
		return jti
	}
	return ""
}

// WithAdminJTI injects the admin session token ID into the context.
func WithAdminJTI(ctx context.Context, jti string) context.Context {
	return context.WithValue(ctx, adminJTIKey{}, jti)
}
