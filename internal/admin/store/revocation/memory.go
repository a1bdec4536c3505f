package revocation

import (
	"context"
	"sync"
	"time"
)

// InMemory is the single-instance revocation list used when no Redis URL is
// configured. Expired entries are dropped lazily on the next write.
type InMemory struct {
	mu      sync.RWMutex
	revoked map[string]time.Time

	// now is swappable for tests.
	now func() time.Time
}

func NewInMemory() *InMemory {
	return &InMemory{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (l *InMemory) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for key, expiry := range l.revoked {
		if expiry.Before(now) {
			delete(l.revoked, key)
		}
	}
	l.revoked[jti] = now.Add(ttl)
	return nil
}

func (l *InMemory) IsRevoked(_ context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	expiry, ok := l.revoked[jti]
	if !ok {
		return false, nil
	}
	return expiry.After(l.now()), nil
}
