// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/keyword-trends/pkg/types"
)

// FormatSummary writes the human-readable summary block to w.
func FormatSummary(a types.Analysis, w io.Writer) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Analysis summary for %q (%d-%d)\n", a.Keyword, a.StartYear, a.EndYear)
	fmt.Fprintf(w, "Total papers found: %d\n", a.Total)
	fmt.Fprintf(w, "Average papers per year: %.1f\n", a.Average)
	fmt.Fprintf(w, "Peak year: %d with %d papers\n", a.PeakYear, a.PeakCount)
	fmt.Fprintln(w, rule)
}

// FormatYAML writes the full analysis, series included, as YAML to w. It is
// the machine-readable counterpart of FormatSummary.
func FormatYAML(a types.Analysis, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return enc.Close()
}
