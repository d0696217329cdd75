// Package derive folds an account's raw transaction list into the
// displayable pieces of a creator profile: aggregate contribution
// metrics, a classified activity log, and featured-work candidates.
// Everything here is a pure function of its inputs; the only wall-clock
// dependency is the injected `now` used for the days-active counter.
package derive

import (
	"time"

	"injective-creator-hub/internal/classify"
	"injective-creator-hub/internal/domain"
)

// Metrics computes the six contribution counters from a raw transaction
// list. Transactions without both a hash and a parsable timestamp are
// excluded. Every message on a transaction is classified for the event
// counters, while dapp uniqueness only counts protocols of messages that
// match the bridge/contract marker set. DaysActive is measured from the
// earliest eligible timestamp to now, floored at zero.
func Metrics(txs []domain.RawTransaction, now time.Time) domain.ContributionMetrics {
	var m domain.ContributionMetrics
	dapps := make(map[string]struct{})
	var earliest time.Time

	for i := range txs {
		tx := &txs[i]
		if !tx.Eligible() {
			continue
		}
		m.TotalTransactions++

		ts, _ := domain.ParseTimestamp(tx.BlockTimestamp)
		if earliest.IsZero() || ts.Before(earliest) {
			earliest = ts
		}

		for _, mt := range tx.MessageTypes {
			switch classify.EventType(mt) {
			case domain.EventNFTMint:
				m.NftsMinted++
			case domain.EventCollectionCreated:
				m.CollectionsCreated++
			case domain.EventCampaignParticipation:
				m.CampaignsParticipated++
			}
			if classify.IsDappInteraction(mt) {
				dapps[classify.Protocol(mt)] = struct{}{}
			}
		}
	}

	m.UniqueDappsInteracted = len(dapps)
	m.DaysActive = daysActive(earliest, now)
	return m
}

// daysActive returns whole days between the earliest activity and now.
// Zero when there was no eligible activity or the earliest timestamp is
// in the future.
func daysActive(earliest, now time.Time) int {
	if earliest.IsZero() {
		return 0
	}
	days := int(now.Sub(earliest).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// FirstActivity returns the earliest eligible timestamp, or the zero time
// when the list holds no eligible transaction.
func FirstActivity(txs []domain.RawTransaction) time.Time {
	var earliest time.Time
	for i := range txs {
		tx := &txs[i]
		if !tx.Eligible() {
			continue
		}
		ts, _ := domain.ParseTimestamp(tx.BlockTimestamp)
		if earliest.IsZero() || ts.Before(earliest) {
			earliest = ts
		}
	}
	return earliest
}
