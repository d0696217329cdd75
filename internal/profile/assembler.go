// Package profile assembles creator profile snapshots. The assembler is
// pure orchestration: it fetches raw history through the injected
// collaborator, runs the derivation pipeline, merges the badge verdict
// and curation preferences, and returns one immutable snapshot.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"injective-creator-hub/internal/address"
	"injective-creator-hub/internal/badge"
	"injective-creator-hub/internal/curation"
	"injective-creator-hub/internal/derive"
	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/indexer"
)

// ErrProfileNotFound is returned when the input identifier cannot be
// resolved to a valid account address. An empty transaction history is
// NOT this error: fresh accounts get a zero-metrics profile.
var ErrProfileNotFound = errors.New("profile not found")

// Assembler derives creator profiles.
type Assembler struct {
	fetcher    indexer.TransactionFetcher
	curation   *curation.Service
	thresholds badge.Thresholds
	txLimit    int
	logLimit   int
	clock      func() time.Time
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithThresholds overrides the badge thresholds.
func WithThresholds(th badge.Thresholds) Option {
	return func(a *Assembler) {
		a.thresholds = th
	}
}

// WithTxLimit sets how many transactions are requested per derivation.
func WithTxLimit(n int) Option {
	return func(a *Assembler) {
		a.txLimit = n
	}
}

// WithActivityLogLimit caps the activity log rows (0 = uncapped).
func WithActivityLogLimit(n int) Option {
	return func(a *Assembler) {
		a.logLimit = n
	}
}

// WithClock injects the derivation clock, for deterministic output.
func WithClock(clock func() time.Time) Option {
	return func(a *Assembler) {
		a.clock = clock
	}
}

// NewAssembler creates an Assembler over the given collaborators.
func NewAssembler(fetcher indexer.TransactionFetcher, curationSvc *curation.Service, opts ...Option) *Assembler {
	a := &Assembler{
		fetcher:    fetcher,
		curation:   curationSvc,
		thresholds: badge.DefaultThresholds,
		txLimit:    indexer.DefaultTxLimit,
		logLimit:   50,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Derive produces one profile snapshot for the given identifier.
// Returns ErrProfileNotFound when the identifier is not a valid
// Injective address; fetch and preference-store failures propagate.
func (a *Assembler) Derive(ctx context.Context, input string) (*domain.CreatorProfile, error) {
	addr, err := address.Normalize(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, input)
	}

	txs, err := a.fetcher.AccountTxs(ctx, addr, a.txLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch transaction history: %w", err)
	}

	prefs, err := a.curation.Load(ctx, addr)
	if err != nil {
		return nil, err
	}

	now := a.clock()
	metrics := derive.Metrics(txs, now)

	firstActivity := now
	if t := derive.FirstActivity(txs); !t.IsZero() {
		firstActivity = t
	}

	return &domain.CreatorProfile{
		Address: addr,
		LinkedWallets: []domain.LinkedWallet{
			{Address: addr, Network: "injective", NetworkName: "Injective"},
		},
		Metrics:           metrics,
		ActivityLog:       derive.ActivityLog(txs, a.logLimit),
		FeaturedWork:      derive.FeaturedWork(txs),
		Badge:             badge.Evaluate(metrics, a.thresholds),
		FirstActivityDate: firstActivity.UTC().Format(time.RFC3339),
		Preferences:       prefs,
		DerivedAt:         now.UTC(),
	}, nil
}

// Snapshot condenses a derived profile into its archive row.
func Snapshot(p *domain.CreatorProfile) *domain.ProfileSnapshot {
	return &domain.ProfileSnapshot{
		Address:     p.Address,
		DerivedAt:   p.DerivedAt,
		Metrics:     p.Metrics,
		BadgeEarned: p.Badge.Earned,
		EventCount:  len(p.ActivityLog),
	}
}
