package domain

// ContributionMetrics are the six aggregate counters derived from an
// account's eligible transactions. All counters are non-negative and
// recomputed fresh on every derivation run. DaysActive is the only
// time-relative counter (measured against the derivation clock); the rest
// are pure functions of the transaction set.
type ContributionMetrics struct {
	NftsMinted            int `json:"nftsMinted"`
	CollectionsCreated    int `json:"collectionsCreated"`
	UniqueDappsInteracted int `json:"uniqueDappsInteracted"`
	CampaignsParticipated int `json:"campaignsParticipated"`
	DaysActive            int `json:"daysActive"`
	TotalTransactions     int `json:"totalTransactions"`
}
