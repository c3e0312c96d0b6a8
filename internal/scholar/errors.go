// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import "fmt"

// TransientError reports a network or server-side failure that persisted
// through every retry attempt. The aggregator aborts the run on it.
type TransientError struct {
	Year     int
	Attempts int
	Err      error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("year %d: giving up after %d attempts: %v", e.Year, e.Attempts, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// RequestError reports a client-side rejection (4xx other than 429), such as
// an invalid API key. It is never retried.
type RequestError struct {
	Year       int
	Keyword    string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("year %d, keyword %q: API rejected request with HTTP %d", e.Year, e.Keyword, e.StatusCode)
}
