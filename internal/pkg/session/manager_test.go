// internal/pkg/session/manager_test.go
package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	xerrors "fieldserve/internal/pkg/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, ttl time.Duration) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewManager(client, ttl), mr
}

func TestCreateAndResolve(t *testing.T) {
	m, _ := newTestManager(t, time.Hour)
	ctx := context.Background()

	sess, err := m.Create(ctx, 42, 7, "owner1", "owner")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)

	got, err := m.Resolve(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, int64(7), got.CompanyID)
	assert.Equal(t, "owner1", got.Username)
	assert.Equal(t, "owner", got.Role)
}

func TestResolveUnknownToken(t *testing.T) {
	m, _ := newTestManager(t, time.Hour)

	_, err := m.Resolve(context.Background(), "01JUNKTOKEN0000000000000000")
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)

	_, err = m.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)
}

func TestResolveAfterTTL(t *testing.T) {
	m, mr := newTestManager(t, time.Minute)
	ctx := context.Background()

	sess, err := m.Create(ctx, 1, 1, "owner1", "owner")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = m.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)
}

// A stale payload whose ExpiresAt has passed is rejected and the key is
// cleaned up even when the redis TTL did not fire.
func TestResolvePayloadExpiry(t *testing.T) {
	m, mr := newTestManager(t, time.Hour)
	ctx := context.Background()

	stale := Data{
		Token:     "01STALE00000000000000000000",
		UserID:    1,
		CompanyID: 1,
		Username:  "owner1",
		Role:      "owner",
		IssuedAt:  time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	raw, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, mr.Set(sessionKey(stale.Token), string(raw)))

	_, err = m.Resolve(ctx, stale.Token)
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)
	assert.False(t, mr.Exists(sessionKey(stale.Token)))
}

func TestDestroyIsIdempotent(t *testing.T) {
	m, _ := newTestManager(t, time.Hour)
	ctx := context.Background()

	sess, err := m.Create(ctx, 1, 1, "owner1", "owner")
	require.NoError(t, err)

	require.NoError(t, m.Destroy(ctx, sess.Token))
	require.NoError(t, m.Destroy(ctx, sess.Token))
	require.NoError(t, m.Destroy(ctx, ""))

	_, err = m.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, xerrors.ErrSessionExpired)
}

func TestTokensAreUnique(t *testing.T) {
	m, _ := newTestManager(t, time.Hour)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		sess, err := m.Create(ctx, 1, 1, "owner1", "owner")
		require.NoError(t, err)
		require.False(t, seen[sess.Token])
		seen[sess.Token] = true
	}
}
