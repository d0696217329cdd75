package domain

// RoleTag is a self-assigned creator role.
type RoleTag string

// Known role tags, in display order.
const (
	RoleArtist     RoleTag = "Artist"
	RoleDeveloper  RoleTag = "Developer"
	RoleWriter     RoleTag = "Writer"
	RoleAmbassador RoleTag = "Ambassador"
	RoleCollector  RoleTag = "Collector"
	RoleBuilder    RoleTag = "Builder"
)

// SectionKey identifies one profile section for ordering.
type SectionKey string

const (
	SectionIdentity SectionKey = "identity"
	SectionMetrics  SectionKey = "metrics"
	SectionFeatured SectionKey = "featured"
	SectionActivity SectionKey = "activity"
	SectionLinks    SectionKey = "links"
	SectionShare    SectionKey = "share"
)

// Curation caps.
const (
	MaxPinnedItems = 5
	MaxRoleTags    = 3
)

// CurationPreferences is the owner-editable display configuration for one
// address. It is the only entity with persistent mutable state: created
// with defaults on first access, overwritten in place on save, never
// deleted. The JSON shape is the persisted wire format and must stay
// structurally stable.
type CurationPreferences struct {
	PinnedItemIDs []string     `json:"pinnedItemIds"`
	SectionOrder  []SectionKey `json:"sectionOrder"`
	RoleTags      []RoleTag    `json:"roleTags"`
}
