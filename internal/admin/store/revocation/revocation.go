// Package revocation tracks admin session tokens that were logged out
// before their expiry. Entries only need to live as long as the token they
// shadow, so every implementation takes a TTL on revoke.
package revocation

import (
	"context"
	"fmt"
	"time"

	"regdesk/pkg/platform/sentinel"
)

// List is the token revocation list consulted on every admin request.
type List interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

func validateTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive: %w", sentinel.ErrInvalidState)
	}
	return nil
}
