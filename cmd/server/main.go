// Package main provides the creator hub API service:
// - Profile derivation: GET /api/profile/{address} (+ snapshot history)
// - Curation: load/save preferences, pin/role/section operations
// - Observability: /healthz and Prometheus /metrics
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"injective-creator-hub/internal/address"
	"injective-creator-hub/internal/badge"
	"injective-creator-hub/internal/curation"
	"injective-creator-hub/internal/domain"
	"injective-creator-hub/internal/indexer"
	"injective-creator-hub/internal/observability"
	"injective-creator-hub/internal/profile"
	"injective-creator-hub/internal/storage"
	chstore "injective-creator-hub/internal/storage/clickhouse"
	"injective-creator-hub/internal/storage/memory"
	"injective-creator-hub/internal/storage/migrations"
	pgstore "injective-creator-hub/internal/storage/postgres"
)

// Server holds the service components.
type Server struct {
	assembler     *profile.Assembler
	curation      *curation.Service
	snapshotStore storage.SnapshotStore
	metrics       *observability.Metrics
	logger        *log.Logger
}

func main() {
	// Load .env file if exists
	loadEnvFile()

	// Parse flags (env vars as defaults)
	explorerURL := flag.String("explorer-url", envOr("EXPLORER_URL", "https://sentry.explorer.grpc-web.injective.network"), "Injective explorer base URL")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "ClickHouse connection string")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage instead of PostgreSQL/ClickHouse")
	listenAddr := flag.String("listen-addr", ":8080", "API HTTP address")
	metricsAddr := flag.String("metrics-addr", ":9090", "Prometheus metrics HTTP address")
	txLimit := flag.Int("tx-limit", indexer.DefaultTxLimit, "Transactions fetched per derivation")
	logLimit := flag.Int("log-limit", 50, "Activity log rows per profile (0 = uncapped)")
	minNfts := flag.Int("badge-min-nfts", badge.DefaultThresholds.MinNftsMinted, "Badge: minimum NFTs minted")
	minDapps := flag.Int("badge-min-dapps", badge.DefaultThresholds.MinDappsInteracted, "Badge: minimum unique dApps")
	minTxs := flag.Int("badge-min-txs", badge.DefaultThresholds.MinTransactions, "Badge: minimum transactions")
	minDays := flag.Int("badge-min-days", badge.DefaultThresholds.MinDaysActive, "Badge: minimum days active")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	// Validate required flags
	if !*useMemory && (*postgresDSN == "" || *clickhouseDSN == "") {
		logger.Fatal("--postgres-dsn and --clickhouse-dsn are required (use --use-memory for in-memory storage)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create stores
	prefStore, snapStore, cleanup, err := createStores(ctx, *postgresDSN, *clickhouseDSN, *useMemory)
	if err != nil {
		logger.Fatalf("Failed to create stores: %v", err)
	}
	defer cleanup()

	metrics := observability.NewMetrics("")

	fetcher := &instrumentedFetcher{
		inner:   indexer.NewClient(*explorerURL),
		metrics: metrics,
	}

	curationSvc := curation.NewService(prefStore)

	server := &Server{
		assembler: profile.NewAssembler(fetcher, curationSvc,
			profile.WithThresholds(badge.Thresholds{
				MinNftsMinted:      *minNfts,
				MinDappsInteracted: *minDapps,
				MinTransactions:    *minTxs,
				MinDaysActive:      *minDays,
			}),
			profile.WithTxLimit(*txLimit),
			profile.WithActivityLogLimit(*logLimit),
		),
		curation:      curationSvc,
		snapshotStore: snapStore,
		metrics:       metrics,
		logger:        logger,
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Metrics server
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observability.Handler())
		logger.Printf("Starting metrics server on %s", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
			logger.Printf("Metrics server error: %v", err)
		}
	}()

	// API server
	api := &http.Server{
		Addr:              *listenAddr,
		Handler:           server.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := api.Shutdown(shutdownCtx); err != nil {
			logger.Printf("Shutdown error: %v", err)
		}
		cancel()
	}()

	logger.Printf("Starting API server on %s (explorer: %s)", *listenAddr, *explorerURL)
	if err := api.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("API server error: %v", err)
	}

	logger.Println("Shutdown complete")
}

// createStores creates the preference and snapshot stores.
func createStores(ctx context.Context, postgresDSN, clickhouseDSN string, useMemory bool) (storage.PreferenceStore, storage.SnapshotStore, func(), error) {
	if useMemory {
		return memory.NewPreferenceStore(), memory.NewSnapshotStore(), func() {}, nil
	}

	// PostgreSQL
	pool, err := pgstore.NewPool(ctx, postgresDSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("postgres migrations: %w", err)
	}

	// ClickHouse
	chConn, err := chstore.NewConn(ctx, clickhouseDSN)
	if err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("connect to clickhouse: %w", err)
	}
	if err := migrations.RunClickhouseMigrations(ctx, chConn); err != nil {
		chConn.Close()
		pool.Close()
		return nil, nil, nil, fmt.Errorf("clickhouse migrations: %w", err)
	}

	cleanup := func() {
		chConn.Close()
		pool.Close()
	}

	return pgstore.NewPreferenceStore(pool), chstore.NewSnapshotStore(chConn), cleanup, nil
}

// routes builds the API mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/profile/{address}", s.handleGetProfile)
	mux.HandleFunc("GET /api/profile/{address}/history", s.handleGetHistory)
	mux.HandleFunc("GET /api/curation/{address}", s.handleGetCuration)
	mux.HandleFunc("PUT /api/curation/{address}", s.handlePutCuration)
	mux.HandleFunc("POST /api/curation/{address}/pin/{id}", s.handleTogglePin)
	mux.HandleFunc("POST /api/curation/{address}/role/{role}", s.handleToggleRole)
	mux.HandleFunc("POST /api/curation/{address}/section/{key}/{direction}", s.handleMoveSection)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", observability.Handler())

	return mux
}

// handleGetProfile derives and returns the full profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	p, err := s.assembler.Derive(r.Context(), r.PathValue("address"))
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			s.metrics.DerivationFailures.WithLabelValues("not_found").Inc()
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.metrics.DerivationFailures.WithLabelValues("upstream").Inc()
		s.logger.Printf("Derivation failed: %v", err)
		writeError(w, http.StatusBadGateway, "profile derivation failed")
		return
	}

	s.metrics.ProfilesDerived.Inc()
	s.metrics.DerivationDuration.Observe(time.Since(start).Seconds())
	if p.Badge.Earned {
		s.metrics.BadgesEarned.Inc()
	}

	// Best-effort archive: failures are logged, never fail the request.
	if err := s.snapshotStore.Insert(r.Context(), profile.Snapshot(p)); err != nil {
		s.metrics.SnapshotArchiveError.Inc()
		s.logger.Printf("Snapshot archive failed for %s: %v", p.Address, err)
	} else {
		s.metrics.SnapshotsArchived.Inc()
	}

	writeJSON(w, http.StatusOK, p)
}

// handleGetHistory returns the archived snapshots for an address.
func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	addr, err := address.Normalize(r.PathValue("address"))
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	snaps, err := s.snapshotStore.GetByAddress(r.Context(), addr)
	if err != nil {
		s.metrics.StoreErrors.WithLabelValues("snapshot").Inc()
		s.logger.Printf("Snapshot history failed for %s: %v", addr, err)
		writeError(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	if snaps == nil {
		snaps = []*domain.ProfileSnapshot{}
	}

	writeJSON(w, http.StatusOK, snaps)
}

// handleGetCuration returns the sanitized preferences for an address.
func (s *Server) handleGetCuration(w http.ResponseWriter, r *http.Request) {
	addr, err := address.Normalize(r.PathValue("address"))
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	s.metrics.CurationLoads.Inc()
	prefs, err := s.curation.Load(r.Context(), addr)
	if err != nil {
		s.metrics.StoreErrors.WithLabelValues("preference").Inc()
		s.logger.Printf("Preference load failed for %s: %v", addr, err)
		writeError(w, http.StatusInternalServerError, "preferences unavailable")
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

// handlePutCuration sanitizes and overwrites the preferences.
func (s *Server) handlePutCuration(w http.ResponseWriter, r *http.Request) {
	addr, err := address.Normalize(r.PathValue("address"))
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	var prefs domain.CurationPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid preferences payload")
		return
	}

	saved, err := s.curation.Save(r.Context(), addr, prefs)
	if err != nil {
		s.metrics.StoreErrors.WithLabelValues("preference").Inc()
		s.logger.Printf("Preference save failed for %s: %v", addr, err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	s.metrics.CurationSaves.WithLabelValues("put").Inc()
	writeJSON(w, http.StatusOK, saved)
}

// handleTogglePin toggles one featured-item pin.
func (s *Server) handleTogglePin(w http.ResponseWriter, r *http.Request) {
	addr, err := address.Normalize(r.PathValue("address"))
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	itemID := r.PathValue("id")
	if itemID == "" {
		writeError(w, http.StatusBadRequest, "item id is required")
		return
	}

	prefs, err := s.curation.TogglePin(r.Context(), addr, itemID)
	if err != nil {
		s.metrics.StoreErrors.WithLabelValues("preference").Inc()
		s.logger.Printf("Pin toggle failed for %s: %v", addr, err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	s.metrics.CurationSaves.WithLabelValues("pin").Inc()
	writeJSON(w, http.StatusOK, prefs)
}

// handleToggleRole toggles one role tag.
func (s *Server) handleToggleRole(w http.ResponseWriter, r *http.Request) {
	addr, err := address.Normalize(r.PathValue("address"))
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	role, ok := parseRole(r.PathValue("role"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown role tag")
		return
	}

	prefs, err := s.curation.ToggleRole(r.Context(), addr, role)
	if err != nil {
		s.metrics.StoreErrors.WithLabelValues("preference").Inc()
		s.logger.Printf("Role toggle failed for %s: %v", addr, err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	s.metrics.CurationSaves.WithLabelValues("role").Inc()
	writeJSON(w, http.StatusOK, prefs)
}

// handleMoveSection moves a section one step up or down. Out-of-bounds
// moves and unknown keys are no-ops, mirroring the curation semantics.
func (s *Server) handleMoveSection(w http.ResponseWriter, r *http.Request) {
	addr, err := address.Normalize(r.PathValue("address"))
	if err != nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	var direction int
	switch r.PathValue("direction") {
	case "up":
		direction = -1
	case "down":
		direction = 1
	default:
		writeError(w, http.StatusBadRequest, "direction must be up or down")
		return
	}

	key := domain.SectionKey(strings.ToLower(r.PathValue("key")))
	prefs, err := s.curation.MoveSection(r.Context(), addr, key, direction)
	if err != nil {
		s.metrics.StoreErrors.WithLabelValues("preference").Inc()
		s.logger.Printf("Section move failed for %s: %v", addr, err)
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}

	s.metrics.CurationSaves.WithLabelValues("section").Inc()
	writeJSON(w, http.StatusOK, prefs)
}

// knownRoles maps lower-cased path segments to role tags.
var knownRoles = map[string]domain.RoleTag{
	"artist":     domain.RoleArtist,
	"developer":  domain.RoleDeveloper,
	"writer":     domain.RoleWriter,
	"ambassador": domain.RoleAmbassador,
	"collector":  domain.RoleCollector,
	"builder":    domain.RoleBuilder,
}

func parseRole(segment string) (domain.RoleTag, bool) {
	role, ok := knownRoles[strings.ToLower(segment)]
	return role, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// instrumentedFetcher wraps the explorer client with call metrics.
type instrumentedFetcher struct {
	inner   indexer.TransactionFetcher
	metrics *observability.Metrics
}

func (f *instrumentedFetcher) AccountTxs(ctx context.Context, addr string, limit int) ([]domain.RawTransaction, error) {
	start := time.Now()
	txs, err := f.inner.AccountTxs(ctx, addr, limit)
	f.metrics.IndexerCallLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		f.metrics.IndexerCallErrors.Inc()
	}
	return txs, err
}

var _ indexer.TransactionFetcher = (*instrumentedFetcher)(nil)

// envOr returns the env var value or a default.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadEnvFile loads environment variables from .env file if it exists.
func loadEnvFile() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return // File doesn't exist, use system env vars
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Don't override existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
