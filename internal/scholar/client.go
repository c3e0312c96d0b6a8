// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar queries the Semantic Scholar paper search API for per-year
// match counts.
package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/keyword-trends/internal/httputil"
	"github.com/pdiddy/keyword-trends/pkg/types"
)

// apiBase is the Semantic Scholar paper search endpoint. Declared as a var
// so tests can substitute an httptest server.
var apiBase = "https://api.semanticscholar.org/graph/v1/paper/search"

// Client fetches per-year paper counts. One Client is built per run; its
// limiter paces all requests, retries included, to the configured minimum
// inter-request delay.
type Client struct {
	http    *http.Client
	cfg     types.RunConfig
	limiter *rate.Limiter
}

// NewClient builds a Client from the run configuration.
func NewClient(cfg types.RunConfig) *Client {
	pacing := cfg.PacingDelay
	if pacing <= 0 {
		pacing = time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(pacing), 1),
	}
}

// countResponse is the slice of the search response this tool relies on: a
// numeric total. A missing field decodes as zero and means zero results.
type countResponse struct {
	Total int `json:"total"`
}

// CountForYear returns the number of papers matching the keyword published
// in the given year. Connection failures, 429 and 5xx responses are retried
// up to the configured attempts, then surfaced as *TransientError; other
// 4xx responses come back immediately as *RequestError.
func (c *Client) CountForYear(ctx context.Context, keyword string, year int) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	params := url.Values{
		"query": {keyword},
		"year":  {strconv.Itoa(year)},
		// Only the total matters; ask for as little as the API allows.
		"limit":  {"1"},
		"fields": {"paperId"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}

	attempts := c.cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	resp, err := httputil.DoWithRetry(ctx, c.http, req, attempts, c.cfg.RetryDelay)
	if err != nil {
		return 0, &TransientError{Year: year, Attempts: attempts, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to decoding.
	case httputil.Retryable(resp.StatusCode):
		return 0, &TransientError{
			Year:     year,
			Attempts: attempts,
			Err:      fmt.Errorf("API returned HTTP %d", resp.StatusCode),
		}
	default:
		return 0, &RequestError{Year: year, Keyword: keyword, StatusCode: resp.StatusCode}
	}

	var cr countResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return 0, fmt.Errorf("year %d: parsing response: %w", year, err)
	}
	if cr.Total < 0 {
		return 0, fmt.Errorf("year %d: API returned negative total %d", year, cr.Total)
	}
	return cr.Total, nil
}
