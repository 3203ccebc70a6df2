package store

import (
	"context"
	"errors"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

// SnapshotStore persists the full cart line set for a session. Consumers
// define this interface; Redis is just one implementation.
type SnapshotStore interface {
	Load(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []domain.CartLine) error
	Delete(ctx context.Context, sessionID string) error
}

var (
	// ErrSnapshotNotFound means no cart was ever saved for the session.
	ErrSnapshotNotFound = errors.New("cart snapshot not found")
	// ErrSnapshotCorrupt means a snapshot exists but cannot be decoded.
	ErrSnapshotCorrupt = errors.New("cart snapshot corrupt")
)
