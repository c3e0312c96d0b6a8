// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report turns a finished analysis into its artifacts: the results
// CSV, the histogram chart, and the console/YAML summaries.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/keyword-trends/pkg/types"
)

// csvHeader is the fixed two-column header of the results file.
var csvHeader = []string{"year", "paper_count"}

// WriteCSV writes the trend series to path, creating the parent directory if
// needed. An existing file at path is overwritten; the CSV is idempotent per
// run, so clobbering is the intended behavior.
func WriteCSV(a types.Analysis, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, yc := range a.Series {
		if err := w.Write([]string{strconv.Itoa(yc.Year), strconv.Itoa(yc.Count)}); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
