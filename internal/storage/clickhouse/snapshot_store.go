package clickhouse

import (
	"context"
	"fmt"
	"time"

	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/storage"
)

// SnapshotStore implements storage.SnapshotStore using ClickHouse.
// The archive is append-only; MergeTree does not enforce uniqueness and
// none is needed, since every derivation run is a distinct row.
type SnapshotStore struct {
	conn *Conn
}

// NewSnapshotStore creates a new SnapshotStore.
func NewSnapshotStore(conn *Conn) *SnapshotStore {
	return &SnapshotStore{conn: conn}
}

// Compile-time interface check.
var _ storage.SnapshotStore = (*SnapshotStore)(nil)

// Insert appends a snapshot row.
func (s *SnapshotStore) Insert(ctx context.Context, snap *domain.ProfileSnapshot) error {
	if snap == nil || snap.Address == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO profile_snapshots (
			address, derived_at,
			nfts_minted, collections_created, unique_dapps_interacted,
			campaigns_participated, days_active, total_transactions,
			badge_earned, event_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	badge := uint8(0)
	if snap.BadgeEarned {
		badge = 1
	}

	err := s.conn.Exec(ctx, query,
		snap.Address, snap.DerivedAt,
		uint32(snap.Metrics.NftsMinted),
		uint32(snap.Metrics.CollectionsCreated),
		uint32(snap.Metrics.UniqueDappsInteracted),
		uint32(snap.Metrics.CampaignsParticipated),
		uint32(snap.Metrics.DaysActive),
		uint32(snap.Metrics.TotalTransactions),
		badge,
		uint32(snap.EventCount),
	)
	if err != nil {
		return fmt.Errorf("insert profile snapshot: %w", err)
	}
	return nil
}

// GetByAddress retrieves all snapshots for an address, ordered by
// derivation time ASC.
func (s *SnapshotStore) GetByAddress(ctx context.Context, address string) ([]*domain.ProfileSnapshot, error) {
	query := `
		SELECT
			address, derived_at,
			nfts_minted, collections_created, unique_dapps_interacted,
			campaigns_participated, days_active, total_transactions,
			badge_earned, event_count
		FROM profile_snapshots
		WHERE address = ?
		ORDER BY derived_at ASC
	`

	rows, err := s.conn.Query(ctx, query, address)
	if err != nil {
		return nil, fmt.Errorf("query profile snapshots: %w", err)
	}
	defer rows.Close()

	var out []*domain.ProfileSnapshot
	for rows.Next() {
		var snap domain.ProfileSnapshot
		var derivedAt time.Time
		var nfts, collections, dapps, campaigns, days, total, events uint32
		var badge uint8
		if err := rows.Scan(
			&snap.Address, &derivedAt,
			&nfts, &collections, &dapps, &campaigns, &days, &total,
			&badge, &events,
		); err != nil {
			return nil, fmt.Errorf("scan profile snapshot: %w", err)
		}
		snap.DerivedAt = derivedAt
		snap.Metrics = domain.ContributionMetrics{
			NftsMinted:            int(nfts),
			CollectionsCreated:    int(collections),
			UniqueDappsInteracted: int(dapps),
			CampaignsParticipated: int(campaigns),
			DaysActive:            int(days),
			TotalTransactions:     int(total),
		}
		snap.BadgeEarned = badge == 1
		snap.EventCount = int(events)
		out = append(out, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile snapshots: %w", err)
	}

	return out, nil
}
