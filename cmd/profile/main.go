// Package main derives one creator profile and prints it as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"injective-creator-hub/internal/address"
	"injective-creator-hub/internal/badge"
	"injective-creator-hub/internal/curation"
	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/indexer"
	"injective-creator-hub/internal/indexer/stub"
	"injective-creator-hub/internal/profile"
	"injective-creator-hub/internal/storage/memory"
)

func main() {
	// Parse flags
	explorerURL := flag.String("explorer-url", "https://sentry.explorer.grpc-web.injective.network", "Injective explorer base URL")
	useFixtures := flag.Bool("use-fixtures", false, "Derive from a local fixture file instead of the explorer")
	fixtureFile := flag.String("fixture-file", "", "JSON file with raw transactions (requires --use-fixtures)")
	txLimit := flag.Int("tx-limit", indexer.DefaultTxLimit, "Transactions fetched per derivation")
	logLimit := flag.Int("log-limit", 50, "Activity log rows (0 = uncapped)")
	fixedClock := flag.String("at", "", "Derivation time as RFC3339 (default: now)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: profile [flags] <inj-address>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	addr := flag.Arg(0)

	ctx := context.Background()

	// Resolve fetcher based on mode
	var fetcher indexer.TransactionFetcher
	if *useFixtures {
		f, err := loadFixtureFetcher(addr, *fixtureFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading fixtures: %v\n", err)
			os.Exit(1)
		}
		fetcher = f
	} else {
		fetcher = indexer.NewClient(*explorerURL)
	}

	opts := []profile.Option{
		profile.WithThresholds(badge.DefaultThresholds),
		profile.WithTxLimit(*txLimit),
		profile.WithActivityLogLimit(*logLimit),
	}

	// Fixed clock for deterministic output
	if *fixedClock != "" {
		at, err := time.Parse(time.RFC3339, *fixedClock)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --at: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, profile.WithClock(func() time.Time { return at }))
	}

	assembler := profile.NewAssembler(fetcher, curation.NewService(memory.NewPreferenceStore()), opts...)

	p, err := assembler.Derive(ctx, addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deriving profile: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding profile: %v\n", err)
		os.Exit(1)
	}
}

// loadFixtureFetcher reads raw transactions from a JSON file and serves
// them for the given address. An empty path yields an empty history.
func loadFixtureFetcher(addr, path string) (*stub.Fetcher, error) {
	fetcher := stub.NewFetcher()
	if path == "" {
		return fetcher, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}

	var txs []domain.RawTransaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("decode fixture file: %w", err)
	}

	// The assembler fetches by the normalized address.
	if normalized, err := address.Normalize(addr); err == nil {
		addr = normalized
	}
	fetcher.Histories[addr] = txs
	return fetcher, nil
}
