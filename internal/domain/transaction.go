package domain

import "time"

// RawTransaction is one account transaction as returned by the explorer
// indexer. Fields are best-effort: the indexer routinely omits gas, code,
// or even the timestamp, so every consumer must go through Eligible first.
type RawTransaction struct {
	Hash           string   // transaction hash
	BlockTimestamp string   // ISO timestamp (RFC3339)
	GasUsed        string   // gas used, "" when absent
	Code           *int     // status code, nil when absent; 0 means success
	MessageTypes   []string // message type URLs in message order
}

// Eligible reports whether the transaction carries enough data to take
// part in a derivation run: a non-empty hash and a parsable timestamp.
// Ineligible transactions are filtered, never treated as errors.
func (t *RawTransaction) Eligible() bool {
	if t.Hash == "" {
		return false
	}
	_, err := ParseTimestamp(t.BlockTimestamp)
	return err == nil
}

// ParseTimestamp parses an indexer block timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
