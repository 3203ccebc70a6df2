package store

import (
	"context"
	"sync"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

// MemoryStore is a map-backed SnapshotStore for dev setups and tests.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]domain.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]domain.CartLine)}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) ([]domain.CartLine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lines, ok := m.snapshots[sessionID]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	out := make([]domain.CartLine, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out, nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, lines []domain.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]domain.CartLine, len(lines))
	for i, l := range lines {
		cp[i] = l.Clone()
	}
	m.snapshots[sessionID] = cp
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, sessionID)
	return nil
}
