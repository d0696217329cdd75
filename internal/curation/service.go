package curation

import (
	"context"
	"errors"
	"fmt"

	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/storage"
)

// Service applies curation operations against a preference store. Every
// loaded record passes through Sanitize, so callers always see invariant-
// respecting preferences regardless of what is on disk.
type Service struct {
	store storage.PreferenceStore
}

// NewService creates a curation service over the given store.
func NewService(store storage.PreferenceStore) *Service {
	return &Service{store: store}
}

// Load returns the sanitized preferences for address. A missing record
// yields the documented defaults, not an error; only infrastructure
// failures propagate.
func (s *Service) Load(ctx context.Context, address string) (domain.CurationPreferences, error) {
	stored, err := s.store.Load(ctx, address)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Default(), nil
		}
		return domain.CurationPreferences{}, fmt.Errorf("load preferences: %w", err)
	}
	return Sanitize(*stored), nil
}

// Save sanitizes and overwrites the preferences for address.
func (s *Service) Save(ctx context.Context, address string, prefs domain.CurationPreferences) (domain.CurationPreferences, error) {
	clean := Sanitize(prefs)
	if err := s.store.Save(ctx, address, &clean); err != nil {
		return domain.CurationPreferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return clean, nil
}

// TogglePin toggles a featured-item pin and persists the result.
func (s *Service) TogglePin(ctx context.Context, address, itemID string) (domain.CurationPreferences, error) {
	prefs, err := s.Load(ctx, address)
	if err != nil {
		return domain.CurationPreferences{}, err
	}
	prefs.PinnedItemIDs = TogglePin(prefs.PinnedItemIDs, itemID)
	return s.Save(ctx, address, prefs)
}

// ToggleRole toggles a role tag and persists the result.
func (s *Service) ToggleRole(ctx context.Context, address string, role domain.RoleTag) (domain.CurationPreferences, error) {
	prefs, err := s.Load(ctx, address)
	if err != nil {
		return domain.CurationPreferences{}, err
	}
	prefs.RoleTags = ToggleRole(prefs.RoleTags, role)
	return s.Save(ctx, address, prefs)
}

// MoveSection moves a section one step and persists the result.
func (s *Service) MoveSection(ctx context.Context, address string, key domain.SectionKey, direction int) (domain.CurationPreferences, error) {
	prefs, err := s.Load(ctx, address)
	if err != nil {
		return domain.CurationPreferences{}, err
	}
	prefs.SectionOrder = MoveSection(prefs.SectionOrder, key, direction)
	return s.Save(ctx, address, prefs)
}
