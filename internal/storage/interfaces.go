package storage

import (
	"context"

	"injective-creator-hub/internal/domain"
)

// PreferenceStore provides durable key-value access to curation
// preference records, one record per account address. Writes are
// last-writer-wins: there is no merge and no optimistic concurrency,
// which is acceptable for a single-owner preference record.
type PreferenceStore interface {
	// Load retrieves the preferences stored for address.
	// Returns ErrNotFound when no record exists.
	Load(ctx context.Context, address string) (*domain.CurationPreferences, error)

	// Save overwrites the record for address unconditionally.
	Save(ctx context.Context, address string, prefs *domain.CurationPreferences) error
}

// SnapshotStore provides access to the append-only profile snapshot
// archive. One row is appended per derivation run.
type SnapshotStore interface {
	// Insert appends a snapshot row.
	Insert(ctx context.Context, s *domain.ProfileSnapshot) error

	// GetByAddress retrieves all snapshots for an address, ordered by
	// derivation time ASC.
	GetByAddress(ctx context.Context, address string) ([]*domain.ProfileSnapshot, error)
}
