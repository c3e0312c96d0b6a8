// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for keyword-trends:
// the run configuration and the per-year trend series.
package types

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// MinYear is the earliest year accepted in a range. The index holds almost
// nothing before it, and it catches transposed-digit typos.
const MinYear = 1900

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "keyword-trends/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RunConfig holds everything a single analysis run needs. It is built once,
// either from command-line arguments or from the interactive prompts, then
// validated before any network call is made.
type RunConfig struct {
	HTTPConfig `yaml:",inline"`

	// Keyword is the search term whose per-year paper counts are collected.
	Keyword string `json:"keyword" yaml:"keyword"`

	// StartYear and EndYear bound the range, inclusive on both ends.
	StartYear int `json:"start_year" yaml:"start_year"`
	EndYear   int `json:"end_year" yaml:"end_year"`

	// OutputDir is the directory for the CSV and chart files (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// GenerateChart controls whether the histogram PNG is rendered.
	GenerateChart bool `json:"generate_chart" yaml:"generate_chart"`

	// DisplayChart controls whether the rendered chart is opened in a viewer.
	DisplayChart bool `json:"display_chart" yaml:"display_chart"`

	// Quiet suppresses per-year progress lines and the summary block.
	Quiet bool `json:"quiet" yaml:"quiet"`

	// APIKey is an optional Semantic Scholar API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxAttempts is the number of tries per year before the run aborts (default 3).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// RetryDelay is the base wait between retries; the wait grows linearly
	// with the attempt number (default 2s).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`

	// PacingDelay is the minimum wait between consecutive API requests (default 1s).
	PacingDelay time.Duration `json:"pacing_delay" yaml:"pacing_delay"`
}

// Validate checks the run parameters before any network call. The year
// ceiling is next year so in-press publication counts stay reachable.
func (c RunConfig) Validate() error {
	if strings.TrimSpace(c.Keyword) == "" {
		return fmt.Errorf("keyword must not be empty")
	}
	maxYear := time.Now().Year() + 1
	if c.StartYear < MinYear || c.StartYear > maxYear {
		return fmt.Errorf("start year %d outside valid range %d-%d", c.StartYear, MinYear, maxYear)
	}
	if c.EndYear < MinYear || c.EndYear > maxYear {
		return fmt.Errorf("end year %d outside valid range %d-%d", c.EndYear, MinYear, maxYear)
	}
	if c.StartYear > c.EndYear {
		return fmt.Errorf("start year %d is after end year %d", c.StartYear, c.EndYear)
	}
	return nil
}

// SafeKeyword returns the keyword reduced to a filename-safe slug: letters,
// digits, hyphens and underscores are kept, spaces become underscores, and
// everything else is dropped.
func (c RunConfig) SafeKeyword() string {
	var b strings.Builder
	for _, r := range c.Keyword {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == ' ' {
			b.WriteRune(r)
		}
	}
	slug := strings.TrimSpace(b.String())
	return strings.ReplaceAll(slug, " ", "_")
}

// CSVPath returns the output path for the results CSV.
func (c RunConfig) CSVPath() string {
	name := fmt.Sprintf("%s_%d_%d_results.csv", c.SafeKeyword(), c.StartYear, c.EndYear)
	return filepath.Join(c.outputDir(), name)
}

// ChartPath returns the output path for the histogram PNG.
func (c RunConfig) ChartPath() string {
	name := fmt.Sprintf("%s_%d_%d_histogram.png", c.SafeKeyword(), c.StartYear, c.EndYear)
	return filepath.Join(c.outputDir(), name)
}

func (c RunConfig) outputDir() string {
	if c.OutputDir == "" {
		return "."
	}
	return c.OutputDir
}

// Years returns the number of years in the range, inclusive.
func (c RunConfig) Years() int {
	return c.EndYear - c.StartYear + 1
}
