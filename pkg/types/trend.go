// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// YearCount is one point of the trend series: the number of indexed papers
// matching the keyword in a single year.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"paper_count" yaml:"paper_count"`
}

// Analysis is the result of one run: the ordered trend series plus summary
// statistics derived from it. The derived fields are computed in NewAnalysis
// and nowhere else, so they are always consistent with the series.
type Analysis struct {
	// Keyword and the year range the series covers.
	Keyword   string `json:"keyword" yaml:"keyword"`
	StartYear int    `json:"start_year" yaml:"start_year"`
	EndYear   int    `json:"end_year" yaml:"end_year"`

	// Series holds one YearCount per year, ascending.
	Series []YearCount `json:"series" yaml:"series"`

	// Total is the sum of all counts in the series.
	Total int `json:"total_papers" yaml:"total_papers"`

	// Average is Total divided by the number of years, unrounded.
	Average float64 `json:"average_papers_per_year" yaml:"average_papers_per_year"`

	// PeakYear is the earliest year holding the maximum count; PeakCount is
	// that count.
	PeakYear  int `json:"peak_year" yaml:"peak_year"`
	PeakCount int `json:"peak_papers" yaml:"peak_papers"`
}

// NewAnalysis builds an Analysis from a series, computing the summary fields.
// The series is assumed ordered ascending by year, as the aggregator produces it.
func NewAnalysis(keyword string, startYear, endYear int, series []YearCount) Analysis {
	a := Analysis{
		Keyword:   keyword,
		StartYear: startYear,
		EndYear:   endYear,
		Series:    series,
	}
	if len(series) == 0 {
		return a
	}

	a.PeakYear = series[0].Year
	a.PeakCount = series[0].Count
	for _, yc := range series {
		a.Total += yc.Count
		// Strict comparison keeps the earliest year on ties.
		if yc.Count > a.PeakCount {
			a.PeakYear = yc.Year
			a.PeakCount = yc.Count
		}
	}
	a.Average = float64(a.Total) / float64(len(series))
	return a
}
