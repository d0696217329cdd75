// Package badge evaluates the Injective-native reputation badge.
package badge

import (
	"fmt"

	"injective-creator-hub/internal/domain"
)

// Thresholds are the minimums a profile must meet to earn the badge.
// They are configuration, not rule logic: callers decide the values and
// the evaluator only applies them.
type Thresholds struct {
	MinNftsMinted      int
	MinDappsInteracted int
	MinTransactions    int
	MinDaysActive      int
}

// DefaultThresholds are the production badge minimums.
var DefaultThresholds = Thresholds{
	MinNftsMinted:      5,
	MinDappsInteracted: 3,
	MinTransactions:    50,
	MinDaysActive:      30,
}

// Evaluate applies the thresholds to the metrics. The badge is earned only
// when ALL four criteria meet or exceed their threshold; there is no
// partial credit. The per-criterion checklist is returned alongside the
// verdict for rendering.
func Evaluate(m domain.ContributionMetrics, th Thresholds) domain.BadgeResult {
	criteria := []domain.BadgeCriterion{
		{
			Name:      "NFTs minted",
			Threshold: fmt.Sprintf(">= %d", th.MinNftsMinted),
			Actual:    fmt.Sprintf("%d", m.NftsMinted),
			Pass:      m.NftsMinted >= th.MinNftsMinted,
		},
		{
			Name:      "Unique dapps interacted",
			Threshold: fmt.Sprintf(">= %d", th.MinDappsInteracted),
			Actual:    fmt.Sprintf("%d", m.UniqueDappsInteracted),
			Pass:      m.UniqueDappsInteracted >= th.MinDappsInteracted,
		},
		{
			Name:      "Total transactions",
			Threshold: fmt.Sprintf(">= %d", th.MinTransactions),
			Actual:    fmt.Sprintf("%d", m.TotalTransactions),
			Pass:      m.TotalTransactions >= th.MinTransactions,
		},
		{
			Name:      "Days active",
			Threshold: fmt.Sprintf(">= %d", th.MinDaysActive),
			Actual:    fmt.Sprintf("%d", m.DaysActive),
			Pass:      m.DaysActive >= th.MinDaysActive,
		},
	}

	earned := true
	for _, c := range criteria {
		if !c.Pass {
			earned = false
			break
		}
	}

	return domain.BadgeResult{Earned: earned, Criteria: criteria}
}
