// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trend walks a year range, collects per-year paper counts, and
// derives the run summary.
package trend

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/keyword-trends/pkg/types"
)

// Counter abstracts the per-year count lookup so tests can stub the API.
// *scholar.Client satisfies it.
type Counter interface {
	CountForYear(ctx context.Context, keyword string, year int) (int, error)
}

// Analyze fetches the count for every year in the configured range, ascending,
// and returns the assembled Analysis. Progress lines go to w; pass io.Discard
// for quiet runs.
//
// Any per-year failure aborts the whole run: a series with holes reads like a
// real downturn in the trend, so no partial result escapes.
func Analyze(ctx context.Context, counter Counter, cfg types.RunConfig, w io.Writer) (types.Analysis, error) {
	series := make([]types.YearCount, 0, cfg.Years())

	for year := cfg.StartYear; year <= cfg.EndYear; year++ {
		fmt.Fprintf(w, "Searching for papers in %d...\n", year)

		count, err := counter.CountForYear(ctx, cfg.Keyword, year)
		if err != nil {
			return types.Analysis{}, fmt.Errorf("aggregation aborted: %w", err)
		}

		fmt.Fprintf(w, "Found %d papers in %d\n", count, year)
		series = append(series, types.YearCount{Year: year, Count: count})
	}

	return types.NewAnalysis(cfg.Keyword, cfg.StartYear, cfg.EndYear, series), nil
}
