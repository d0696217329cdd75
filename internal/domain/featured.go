package domain

// FeaturedKind distinguishes showcased artifact types.
type FeaturedKind string

const (
	FeaturedNFT        FeaturedKind = "nft"
	FeaturedCollection FeaturedKind = "collection"
)

// FeaturedCandidate is one showcase item derived from NFT-related
// transactions. The list is recomputed on every run and never persisted;
// only its IDs may be referenced by pinned curation state.
type FeaturedCandidate struct {
	ID          string       `json:"id"`
	Kind        FeaturedKind `json:"kind"`
	Title       string       `json:"title"`
	ImageRef    string       `json:"imageRef"`
	ExternalRef string       `json:"externalRef"`
}
