package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/storage"
)

// PreferenceStore implements storage.PreferenceStore using PostgreSQL.
// Each address maps to one JSONB record holding the preference wire shape
// {pinnedItemIds, sectionOrder, roleTags}.
type PreferenceStore struct {
	pool *Pool
}

// NewPreferenceStore creates a new PreferenceStore.
func NewPreferenceStore(pool *Pool) *PreferenceStore {
	return &PreferenceStore{pool: pool}
}

// Compile-time interface check.
var _ storage.PreferenceStore = (*PreferenceStore)(nil)

// Load retrieves the preferences for address. Returns ErrNotFound if no
// record exists.
func (s *PreferenceStore) Load(ctx context.Context, address string) (*domain.CurationPreferences, error) {
	if address == "" {
		return nil, storage.ErrInvalidInput
	}

	query := `
		SELECT preferences
		FROM curation_preferences
		WHERE address = $1
	`

	var raw []byte
	err := s.pool.QueryRow(ctx, query, address).Scan(&raw)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("load curation preferences: %w", err)
	}

	var prefs domain.CurationPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		// A corrupt stored record is handled upstream as defaults; here
		// it surfaces as not-found rather than an error.
		return nil, storage.ErrNotFound
	}
	return &prefs, nil
}

// Save overwrites the record for address unconditionally
// (last-writer-wins, no merge).
func (s *PreferenceStore) Save(ctx context.Context, address string, prefs *domain.CurationPreferences) error {
	if address == "" || prefs == nil {
		return storage.ErrInvalidInput
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal curation preferences: %w", err)
	}

	query := `
		INSERT INTO curation_preferences (address, preferences, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (address)
		DO UPDATE SET preferences = EXCLUDED.preferences, updated_at = NOW()
	`

	if _, err := s.pool.Exec(ctx, query, address, raw); err != nil {
		return fmt.Errorf("save curation preferences: %w", err)
	}
	return nil
}
