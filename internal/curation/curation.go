// Package curation owns the semantics of per-address display
// preferences: defaults, clamping of stored records, and the pin/reorder/
// role-toggle operations. Persistence lives behind storage.PreferenceStore;
// this package never touches a backend directly.
package curation

import "injective-creator-hub/internal/domain"

// defaultSectionOrder is the canonical section sequence for new profiles.
var defaultSectionOrder = []domain.SectionKey{
	domain.SectionIdentity,
	domain.SectionMetrics,
	domain.SectionFeatured,
	domain.SectionActivity,
	domain.SectionLinks,
	domain.SectionShare,
}

// Default returns the preferences record every address starts from: no
// pins, no role tags, sections in canonical order.
func Default() domain.CurationPreferences {
	return domain.CurationPreferences{
		PinnedItemIDs: []string{},
		SectionOrder:  append([]domain.SectionKey{}, defaultSectionOrder...),
		RoleTags:      []domain.RoleTag{},
	}
}

// Sanitize clamps a loaded record to the invariants: pins to the first
// MaxPinnedItems unique entries, roles to the first MaxRoleTags unique
// entries, and the section order kept only when it is a permutation of the
// current section set. Anything else, a duplicate key, an unknown key, or
// a length mismatch from a record predating a section schema change, is
// discarded for the default rather than guessing a merge. This loses the
// user's ordering, which is a known trade-off, not an error path.
func Sanitize(p domain.CurationPreferences) domain.CurationPreferences {
	out := domain.CurationPreferences{
		PinnedItemIDs: dedupeStrings(p.PinnedItemIDs, domain.MaxPinnedItems),
		RoleTags:      dedupeRoles(p.RoleTags, domain.MaxRoleTags),
	}

	if isSectionPermutation(p.SectionOrder) {
		out.SectionOrder = append([]domain.SectionKey{}, p.SectionOrder...)
	} else {
		out.SectionOrder = append([]domain.SectionKey{}, defaultSectionOrder...)
	}
	return out
}

// isSectionPermutation reports whether order holds every known section key
// exactly once.
func isSectionPermutation(order []domain.SectionKey) bool {
	if len(order) != len(defaultSectionOrder) {
		return false
	}
	seen := make(map[domain.SectionKey]struct{}, len(order))
	for _, k := range order {
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
	}
	for _, k := range defaultSectionOrder {
		if _, ok := seen[k]; !ok {
			return false
		}
	}
	return true
}

// MoveSection swaps key with its neighbor in the given direction
// (-1 = up, +1 = down) and returns a new slice. Moves that would leave the
// bounds, unknown keys, and directions other than ±1 return an unchanged
// copy.
func MoveSection(order []domain.SectionKey, key domain.SectionKey, direction int) []domain.SectionKey {
	out := append([]domain.SectionKey{}, order...)
	if direction != -1 && direction != 1 {
		return out
	}

	idx := -1
	for i, k := range out {
		if k == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out
	}

	j := idx + direction
	if j < 0 || j >= len(out) {
		return out
	}

	out[idx], out[j] = out[j], out[idx]
	return out
}

// TogglePin removes id when present, otherwise appends it and clamps to
// MaxPinnedItems. The clamp keeps the head of the list, so an append past
// the cap is refused rather than evicting an older pin.
func TogglePin(pinned []string, id string) []string {
	out := make([]string, 0, len(pinned)+1)
	removed := false
	for _, p := range pinned {
		if p == id {
			removed = true
			continue
		}
		out = append(out, p)
	}
	if removed {
		return out
	}

	out = append(out, id)
	if len(out) > domain.MaxPinnedItems {
		out = out[:domain.MaxPinnedItems]
	}
	return out
}

// ToggleRole removes role when present, otherwise appends it and clamps to
// MaxRoleTags, with the same refuse-the-newest cap behavior as TogglePin.
func ToggleRole(roles []domain.RoleTag, role domain.RoleTag) []domain.RoleTag {
	out := make([]domain.RoleTag, 0, len(roles)+1)
	removed := false
	for _, r := range roles {
		if r == role {
			removed = true
			continue
		}
		out = append(out, r)
	}
	if removed {
		return out
	}

	out = append(out, role)
	if len(out) > domain.MaxRoleTags {
		out = out[:domain.MaxRoleTags]
	}
	return out
}

func dedupeStrings(in []string, limit int) []string {
	out := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

func dedupeRoles(in []domain.RoleTag, limit int) []domain.RoleTag {
	out := make([]domain.RoleTag, 0, limit)
	seen := make(map[domain.RoleTag]struct{}, len(in))
	for _, r := range in {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}
