// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the bounded-retry HTTP helper used by the
// Semantic Scholar client.
package httputil

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Defaults used when the caller passes zero values. DefaultRetryDelay is a
// var so tests can shrink it to avoid real sleeps.
var DefaultRetryDelay = 2 * time.Second

const defaultMaxAttempts = 3

// Retryable reports whether an HTTP status is worth another attempt:
// rate limiting and server-side failures are, everything else is not.
func Retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// DoWithRetry executes an HTTP request up to maxAttempts times, retrying
// connection failures and retryable statuses (429, 5xx) with a linearly
// growing delay: baseDelay after the first failure, 2×baseDelay after the
// second, and so on.
//
// Zero maxAttempts or baseDelay select the defaults (3 attempts, 2 s). On a
// retried status the response body is drained and closed before sleeping.
// If the context is cancelled during a wait the function returns ctx.Err().
// After the last attempt the outcome is returned as-is: either the
// connection error, or the response with its retryable status still set,
// so the caller can classify the failure.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxAttempts int, baseDelay time.Duration) (*http.Response, error) {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = DefaultRetryDelay
	}

	var resp *http.Response
	var err error
	for attempt := 1; ; attempt++ {
		resp, err = client.Do(req.Clone(ctx))
		if err == nil && !Retryable(resp.StatusCode) {
			return resp, nil
		}

		if attempt >= maxAttempts {
			return resp, err
		}

		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * baseDelay):
		}
	}
}
