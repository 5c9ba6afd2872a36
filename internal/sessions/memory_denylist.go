package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryDenylist is an in-process fallback used in tests and single-node runs.
type MemoryDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{revoked: make(map[string]time.Time)}
}

func (m *MemoryDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.revoked[token] = time.Now().Add(ttl)
	return nil
}

func (m *MemoryDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.revoked[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(m.revoked, token)
		return false, nil
	}

	return true, nil
}
