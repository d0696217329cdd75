// Package indexer fetches account transaction history from the Injective
// explorer indexer. It is the I/O collaborator of the derivation core:
// the core never fetches anything itself, it receives the already-shaped
// transaction list this package produces.
package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"injective-creator-hub/internal/domain"
)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// DefaultTxLimit bounds one history fetch. The indexer caps
	// responses anyway; the derivation core behaves correctly for any
	// list size, so this is a bandwidth choice, not a correctness one.
	DefaultTxLimit = 100
)

// TransactionFetcher retrieves the raw transaction history for an
// account address.
type TransactionFetcher interface {
	AccountTxs(ctx context.Context, address string, limit int) ([]domain.RawTransaction, error)
}

// Client implements TransactionFetcher against the explorer REST API.
type Client struct {
	baseURL string
	client  *http.Client
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new explorer client for the given base URL,
// e.g. https://sentry.explorer.grpc-web.injective.network.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile-time interface check.
var _ TransactionFetcher = (*Client)(nil)

// StatusError is returned when the explorer responds with a non-200
// status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("explorer returned status %d: %s", e.StatusCode, e.Body)
}

// AccountTxs fetches up to limit transactions for address, newest first
// as the explorer returns them. limit <= 0 falls back to DefaultTxLimit.
func (c *Client) AccountTxs(ctx context.Context, address string, limit int) ([]domain.RawTransaction, error) {
	if limit <= 0 {
		limit = DefaultTxLimit
	}

	endpoint := fmt.Sprintf("%s/api/explorer/v1/accountTxs/%s?limit=%d",
		c.baseURL, url.PathEscape(address), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create accountTxs request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch account txs: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("read accountTxs response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 256)}
	}

	var payload accountTxsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode accountTxs response: %w", err)
	}

	txs := make([]domain.RawTransaction, 0, len(payload.Data))
	for i := range payload.Data {
		txs = append(txs, payload.Data[i].toRaw())
	}
	return txs, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
