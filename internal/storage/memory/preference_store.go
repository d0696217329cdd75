package memory

import (
	"context"
	"sync"

	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/storage"
)

// PreferenceStore is an in-memory implementation of
// storage.PreferenceStore, used for tests and fixture runs.
type PreferenceStore struct {
	mu      sync.RWMutex
	records map[string]*domain.CurationPreferences // keyed by address
}

// NewPreferenceStore creates a new in-memory preference store.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{
		records: make(map[string]*domain.CurationPreferences),
	}
}

// Load retrieves the preferences for address. Returns ErrNotFound if no
// record exists.
func (s *PreferenceStore) Load(_ context.Context, address string) (*domain.CurationPreferences, error) {
	if address == "" {
		return nil, storage.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.records[address]
	if !exists {
		return nil, storage.ErrNotFound
	}

	prefsCopy := copyPreferences(p)
	return &prefsCopy, nil
}

// Save overwrites the record for address unconditionally.
func (s *PreferenceStore) Save(_ context.Context, address string, prefs *domain.CurationPreferences) error {
	if address == "" || prefs == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prefsCopy := copyPreferences(prefs)
	s.records[address] = &prefsCopy
	return nil
}

// copyPreferences deep-copies a record so callers cannot mutate stored
// state through shared slices.
func copyPreferences(p *domain.CurationPreferences) domain.CurationPreferences {
	return domain.CurationPreferences{
		PinnedItemIDs: append([]string{}, p.PinnedItemIDs...),
		SectionOrder:  append([]domain.SectionKey{}, p.SectionOrder...),
		RoleTags:      append([]domain.RoleTag{}, p.RoleTags...),
	}
}

var _ storage.PreferenceStore = (*PreferenceStore)(nil)
