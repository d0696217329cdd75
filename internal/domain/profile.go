package domain

import "time"

// LinkedWallet tags the wallet a profile was derived for with its network.
type LinkedWallet struct {
	Address     string `json:"address"`
	Network     string `json:"network"`
	NetworkName string `json:"networkName"`
}

// BadgeCriterion is one threshold check of the badge evaluation, kept for
// rendering the checklist next to the verdict.
type BadgeCriterion struct {
	Name      string `json:"name"`
	Threshold string `json:"threshold"`
	Actual    string `json:"actual"`
	Pass      bool   `json:"pass"`
}

// BadgeResult is the reputation verdict with its supporting checklist.
// Earned is true only when every criterion passes.
type BadgeResult struct {
	Earned   bool             `json:"earned"`
	Criteria []BadgeCriterion `json:"criteria"`
}

// CreatorProfile is one assembled profile snapshot. It is a value, not an
// identity: every derivation run produces a fresh snapshot and nothing
// mutates it afterwards.
type CreatorProfile struct {
	Address           string              `json:"address"`
	LinkedWallets     []LinkedWallet      `json:"linkedWallets"`
	Metrics           ContributionMetrics `json:"contributionMetrics"`
	ActivityLog       []ClassifiedEvent   `json:"activityLog"`
	FeaturedWork      []FeaturedCandidate `json:"featuredWork"`
	Badge             BadgeResult         `json:"badge"`
	FirstActivityDate string              `json:"firstActivityDate"`
	Preferences       CurationPreferences `json:"curation"`
	DerivedAt         time.Time           `json:"derivedAt"`
}

// ProfileSnapshot is the archived summary of one derivation run, stored in
// the append-only snapshot archive.
type ProfileSnapshot struct {
	Address     string
	DerivedAt   time.Time
	Metrics     ContributionMetrics
	BadgeEarned bool
	EventCount  int
}
