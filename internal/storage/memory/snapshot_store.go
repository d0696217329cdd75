package memory

import (
	"context"
	"sort"
	"sync"

	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/storage"
)

// SnapshotStore is an in-memory implementation of storage.SnapshotStore.
type SnapshotStore struct {
	mu        sync.RWMutex
	byAddress map[string][]*domain.ProfileSnapshot
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		byAddress: make(map[string][]*domain.ProfileSnapshot),
	}
}

// Insert appends a snapshot row.
func (s *SnapshotStore) Insert(_ context.Context, snap *domain.ProfileSnapshot) error {
	if snap == nil || snap.Address == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapCopy := *snap
	s.byAddress[snap.Address] = append(s.byAddress[snap.Address], &snapCopy)
	return nil
}

// GetByAddress retrieves all snapshots for an address, ordered by
// derivation time ASC.
func (s *SnapshotStore) GetByAddress(_ context.Context, address string) ([]*domain.ProfileSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byAddress[address]
	out := make([]*domain.ProfileSnapshot, 0, len(stored))
	for _, snap := range stored {
		snapCopy := *snap
		out = append(out, &snapCopy)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DerivedAt.Before(out[j].DerivedAt)
	})
	return out, nil
}

var _ storage.SnapshotStore = (*SnapshotStore)(nil)
