package stub

import (
	"context"

	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/indexer"
)

// Fetcher implements indexer.TransactionFetcher for tests and fixture
// runs. Histories are keyed by address; unknown addresses yield an empty
// history, mirroring the explorer's behavior for fresh accounts.
type Fetcher struct {
	Histories map[string][]domain.RawTransaction
	Err       error // returned by every call when set
}

// NewFetcher creates a new stub fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Histories: make(map[string][]domain.RawTransaction),
	}
}

// AccountTxs returns the configured history for address, truncated to
// limit when limit is positive.
func (f *Fetcher) AccountTxs(_ context.Context, address string, limit int) ([]domain.RawTransaction, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	txs := f.Histories[address]
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}

	out := make([]domain.RawTransaction, len(txs))
	copy(out, txs)
	return out, nil
}

var _ indexer.TransactionFetcher = (*Fetcher)(nil)
