// internal/pkg/session/manager.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	xerrors "fieldserve/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

// Manager issues opaque session tokens and resolves them back to their
// payload. Redis is the only store; expiry is enforced both by the key TTL
// and by the ExpiresAt field on the payload.
type Manager struct {
	client *redis.Client
	ttl    time.Duration
}

func NewManager(client *redis.Client, ttl time.Duration) *Manager {
	return &Manager{client: client, ttl: ttl}
}

// Create stores a new session and returns its opaque token.
func (m *Manager) Create(ctx context.Context, userID, companyID int64, username, role string) (*Data, error) {
	now := time.Now()
	data := &Data{
		Token:     ulid.Make().String(),
		UserID:    userID,
		CompanyID: companyID,
		Username:  username,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := m.client.Set(ctx, sessionKey(data.Token), raw, m.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session in redis: %w", err)
	}

	return data, nil
}

// Resolve looks a token up and returns its payload, or ErrSessionExpired
// when the token is unknown or past its expiry.
func (m *Manager) Resolve(ctx context.Context, token string) (*Data, error) {
	if token == "" {
		return nil, xerrors.ErrSessionExpired
	}

	raw, err := m.client.Get(ctx, sessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, xerrors.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	// Redis TTL should have expired the key already; the payload check
	// keeps a stale read from resurrecting a dead session.
	if time.Now().After(data.ExpiresAt) {
		_ = m.client.Del(ctx, sessionKey(token)).Err()
		return nil, xerrors.ErrSessionExpired
	}

	return &data, nil
}

// Destroy removes a session. Destroying a missing token is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return "session:" + token
}
