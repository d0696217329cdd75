package derive

import (
	"fmt"
	"sort"

	"injective-creator-hub/internal/classify"
	"injective-creator-hub/internal/domain"
)

// ActivityLog builds the classified activity feed from a raw transaction
// list. One row per eligible transaction, classified from its first
// message type only; later messages on the same transaction do not
// produce extra rows. Rows are sorted newest-first by timestamp with ties
// kept in input order. limit > 0 caps the result after sorting; 0 means
// uncapped.
func ActivityLog(txs []domain.RawTransaction, limit int) []domain.ClassifiedEvent {
	events := make([]domain.ClassifiedEvent, 0, len(txs))

	ordinal := 0
	for i := range txs {
		tx := &txs[i]
		if !tx.Eligible() {
			continue
		}

		first := ""
		if len(tx.MessageTypes) > 0 {
			first = tx.MessageTypes[0]
		}

		gas := tx.GasUsed
		if gas == "" {
			gas = "0"
		}

		// Missing status code means the outcome is unknown; an unknown
		// outcome is reported as failed, never success.
		status := domain.StatusFailed
		if tx.Code != nil && *tx.Code == 0 {
			status = domain.StatusSuccess
		}

		events = append(events, domain.ClassifiedEvent{
			ID:        fmt.Sprintf("%s-%d", tx.Hash, ordinal),
			EventType: classify.EventType(first),
			Protocol:  classify.Protocol(first),
			Timestamp: tx.BlockTimestamp,
			TxHash:    tx.Hash,
			GasUsed:   gas,
			Status:    status,
			Details:   first,
		})
		ordinal++
	}

	// Reverse-chronological order is a contract of the log, not an
	// artifact of input order. Stable sort keeps ties in input order.
	sort.SliceStable(events, func(i, j int) bool {
		ti, _ := domain.ParseTimestamp(events[i].Timestamp)
		tj, _ := domain.ParseTimestamp(events[j].Timestamp)
		return ti.After(tj)
	})

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events
}
