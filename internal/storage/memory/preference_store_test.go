package memory

import (
	"context"
	"errors"
	"testing"

	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/storage"
)

func TestPreferenceStore_SaveAndLoad(t *testing.T) {
	store := NewPreferenceStore()
	ctx := context.Background()

	prefs := &domain.CurationPreferences{
		PinnedItemIDs: []string{"0xaaa-nft-0"},
		SectionOrder: []domain.SectionKey{
			domain.SectionIdentity, domain.SectionMetrics, domain.SectionFeatured,
			domain.SectionActivity, domain.SectionLinks, domain.SectionShare,
		},
		RoleTags: []domain.RoleTag{domain.RoleArtist},
	}

	if err := store.Save(ctx, "inj1abc", prefs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load(ctx, "inj1abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.PinnedItemIDs) != 1 || got.PinnedItemIDs[0] != "0xaaa-nft-0" {
		t.Errorf("PinnedItemIDs = %v", got.PinnedItemIDs)
	}
	if len(got.RoleTags) != 1 || got.RoleTags[0] != domain.RoleArtist {
		t.Errorf("RoleTags = %v", got.RoleTags)
	}
}

func TestPreferenceStore_NotFound(t *testing.T) {
	store := NewPreferenceStore()

	_, err := store.Load(context.Background(), "inj1missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPreferenceStore_SaveOverwrites(t *testing.T) {
	store := NewPreferenceStore()
	ctx := context.Background()

	first := &domain.CurationPreferences{PinnedItemIDs: []string{"a"}}
	second := &domain.CurationPreferences{PinnedItemIDs: []string{"b", "c"}}

	if err := store.Save(ctx, "inj1abc", first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, "inj1abc", second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load(ctx, "inj1abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.PinnedItemIDs) != 2 {
		t.Errorf("overwrite failed, PinnedItemIDs = %v", got.PinnedItemIDs)
	}
}

func TestPreferenceStore_LoadReturnsCopy(t *testing.T) {
	store := NewPreferenceStore()
	ctx := context.Background()

	if err := store.Save(ctx, "inj1abc", &domain.CurationPreferences{PinnedItemIDs: []string{"a"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, _ := store.Load(ctx, "inj1abc")
	got.PinnedItemIDs[0] = "mutated"

	again, _ := store.Load(ctx, "inj1abc")
	if again.PinnedItemIDs[0] != "a" {
		t.Error("stored record was mutated through a loaded copy")
	}
}

func TestPreferenceStore_InvalidInput(t *testing.T) {
	store := NewPreferenceStore()
	ctx := context.Background()

	if err := store.Save(ctx, "", &domain.CurationPreferences{}); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty address, got %v", err)
	}
	if err := store.Save(ctx, "inj1abc", nil); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for nil prefs, got %v", err)
	}
}
