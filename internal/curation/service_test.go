package curation

import (
	"context"
	"reflect"
	"testing"

	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/storage/memory"
)

func TestService_LoadMissingReturnsDefaults(t *testing.T) {
	svc := NewService(memory.NewPreferenceStore())

	got, err := svc.Load(context.Background(), "inj1fresh")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestService_SaveSanitizes(t *testing.T) {
	svc := NewService(memory.NewPreferenceStore())
	ctx := context.Background()

	dirty := domain.CurationPreferences{
		PinnedItemIDs: []string{"a", "b", "c", "d", "e", "f", "g"},
		SectionOrder:  []domain.SectionKey{domain.SectionShare}, // wrong length
		RoleTags:      []domain.RoleTag{domain.RoleArtist, domain.RoleArtist},
	}

	saved, err := svc.Save(ctx, "inj1abc", dirty)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(saved.PinnedItemIDs) != domain.MaxPinnedItems {
		t.Errorf("pins = %v, want clamped to %d", saved.PinnedItemIDs, domain.MaxPinnedItems)
	}
	if !reflect.DeepEqual(saved.SectionOrder, Default().SectionOrder) {
		t.Errorf("section order = %v, want default fallback", saved.SectionOrder)
	}
	if len(saved.RoleTags) != 1 {
		t.Errorf("roles = %v, want deduped", saved.RoleTags)
	}

	// The sanitized record is what persists.
	loaded, err := svc.Load(ctx, "inj1abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("loaded %+v differs from saved %+v", loaded, saved)
	}
}

func TestService_TogglePinRoundTrip(t *testing.T) {
	svc := NewService(memory.NewPreferenceStore())
	ctx := context.Background()

	after, err := svc.TogglePin(ctx, "inj1abc", "0xaaa-nft-0")
	if err != nil {
		t.Fatalf("TogglePin failed: %v", err)
	}
	if len(after.PinnedItemIDs) != 1 {
		t.Fatalf("pins = %v, want one pin", after.PinnedItemIDs)
	}

	after, err = svc.TogglePin(ctx, "inj1abc", "0xaaa-nft-0")
	if err != nil {
		t.Fatalf("TogglePin failed: %v", err)
	}
	if len(after.PinnedItemIDs) != 0 {
		t.Errorf("pins = %v, want empty after second toggle", after.PinnedItemIDs)
	}
}

func TestService_MoveSectionPersists(t *testing.T) {
	svc := NewService(memory.NewPreferenceStore())
	ctx := context.Background()

	moved, err := svc.MoveSection(ctx, "inj1abc", domain.SectionIdentity, 1)
	if err != nil {
		t.Fatalf("MoveSection failed: %v", err)
	}
	if moved.SectionOrder[1] != domain.SectionIdentity {
		t.Errorf("order = %v, want identity moved down", moved.SectionOrder)
	}

	loaded, err := svc.Load(ctx, "inj1abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.SectionOrder, moved.SectionOrder) {
		t.Errorf("persisted order %v differs from returned %v", loaded.SectionOrder, moved.SectionOrder)
	}
}

func TestService_ToggleRole(t *testing.T) {
	svc := NewService(memory.NewPreferenceStore())
	ctx := context.Background()

	after, err := svc.ToggleRole(ctx, "inj1abc", domain.RoleDeveloper)
	if err != nil {
		t.Fatalf("ToggleRole failed: %v", err)
	}
	if len(after.RoleTags) != 1 || after.RoleTags[0] != domain.RoleDeveloper {
		t.Errorf("roles = %v", after.RoleTags)
	}
}
