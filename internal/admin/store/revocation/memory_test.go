package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_RevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	l := NewInMemory()

	revoked, err := l.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, l.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = l.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = l.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemory_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	l := NewInMemory()

	current := time.Now()
	l.now = func() time.Time { return current }

	require.NoError(t, l.Revoke(ctx, "jti-1", time.Minute))

	current = current.Add(2 * time.Minute)
	revoked, err := l.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "revocation must not outlive the token it shadows")

	// The next write sweeps the expired entry.
	require.NoError(t, l.Revoke(ctx, "jti-2", time.Minute))
	l.mu.RLock()
	_, stillThere := l.revoked["jti-1"]
	l.mu.RUnlock()
	assert.False(t, stillThere)
}

func TestInMemory_RejectsNonPositiveTTL(t *testing.T) {
	l := NewInMemory()
	assert.Error(t, l.Revoke(context.Background(), "jti-1", 0))
	assert.Error(t, l.Revoke(context.Background(), "jti-1", -time.Minute))
}

func TestInMemory_EmptyJTIIsNoop(t *testing.T) {
	ctx := context.Background()
	l := NewInMemory()

	require.NoError(t, l.Revoke(ctx, "", time.Hour))
	revoked, err := l.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}
