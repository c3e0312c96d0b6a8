// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/pdiddy/keyword-trends/pkg/types"
)

// Canvas size for the saved PNG. 12x8 inches matches print reproduction at
// the library's default raster density.
const (
	chartWidth  = 12 * vg.Inch
	chartHeight = 8 * vg.Inch
)

var (
	barFill   = color.RGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff}
	barStroke = color.RGBA{R: 0x00, G: 0x64, B: 0x00, A: 0xff}
)

// RenderChart draws the trend series as a bar chart and saves it to path as
// a PNG. One bar per year, the year on the X axis, the count on the Y axis,
// and the exact count printed above each bar.
func RenderChart(a types.Analysis, path string) error {
	if len(a.Series) == 0 {
		return fmt.Errorf("rendering chart: empty series")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", path, err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Semantic Scholar results for %q (%d-%d)", a.Keyword, a.StartYear, a.EndYear)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of academic papers"
	p.Add(plotter.NewGrid())

	values := make(plotter.Values, len(a.Series))
	yearLabels := make([]string, len(a.Series))
	for i, yc := range a.Series {
		values[i] = float64(yc.Count)
		yearLabels[i] = strconv.Itoa(yc.Year)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	bars.Color = barFill
	bars.LineStyle.Color = barStroke
	bars.LineStyle.Width = vg.Points(1)
	p.Add(bars)
	p.NominalX(yearLabels...)

	// Slant the year labels so long ranges stay legible.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	labels, err := countLabels(a.Series)
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	p.Add(labels)

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("saving chart %s: %w", path, err)
	}
	return nil
}

// countLabels builds the per-bar count annotations. Bars sit at integer X
// positions, so each label is centered at its bar's index, nudged above the
// bar top by 1% of the peak.
func countLabels(series []types.YearCount) (*plotter.Labels, error) {
	peak := 0
	for _, yc := range series {
		if yc.Count > peak {
			peak = yc.Count
		}
	}
	offset := float64(peak) * 0.01

	xy := make(plotter.XYs, len(series))
	text := make([]string, len(series))
	for i, yc := range series {
		xy[i].X = float64(i)
		xy[i].Y = float64(yc.Count) + offset
		text[i] = strconv.Itoa(yc.Count)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xy, Labels: text})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	return labels, nil
}
