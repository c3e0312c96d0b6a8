// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trend

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pdiddy/keyword-trends/pkg/types"
)

// stubCounter serves canned counts and records the order of requested years.
type stubCounter struct {
	counts  map[int]int
	failOn  int
	failErr error
	calls   []int
}

func (s *stubCounter) CountForYear(_ context.Context, _ string, year int) (int, error) {
	s.calls = append(s.calls, year)
	if s.failErr != nil && year == s.failOn {
		return 0, s.failErr
	}
	return s.counts[year], nil
}

func rangeCfg(start, end int) types.RunConfig {
	return types.RunConfig{Keyword: "blockchain", StartYear: start, EndYear: end}
}

func TestAnalyzeSeriesShape(t *testing.T) {
	counter := &stubCounter{counts: map[int]int{2020: 100, 2021: 200, 2022: 150}}

	a, err := Analyze(context.Background(), counter, rangeCfg(2020, 2022), io.Discard)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(a.Series) != 3 {
		t.Fatalf("len(Series) = %d, want 3", len(a.Series))
	}
	for i := 1; i < len(a.Series); i++ {
		if a.Series[i].Year <= a.Series[i-1].Year {
			t.Errorf("series not strictly ascending at index %d", i)
		}
	}
	if a.Series[0] != (types.YearCount{Year: 2020, Count: 100}) {
		t.Errorf("Series[0] = %+v", a.Series[0])
	}
}

func TestAnalyzeSummaryScenario(t *testing.T) {
	// blockchain 2020-2022 with counts 100/200/150.
	counter := &stubCounter{counts: map[int]int{2020: 100, 2021: 200, 2022: 150}}

	a, err := Analyze(context.Background(), counter, rangeCfg(2020, 2022), io.Discard)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if a.Total != 450 {
		t.Errorf("Total = %d, want 450", a.Total)
	}
	if a.Average != 150.0 {
		t.Errorf("Average = %f, want 150.0", a.Average)
	}
	if a.PeakYear != 2021 || a.PeakCount != 200 {
		t.Errorf("peak = %d/%d, want 2021/200", a.PeakYear, a.PeakCount)
	}
}

func TestAnalyzeAscendingCallOrder(t *testing.T) {
	counter := &stubCounter{counts: map[int]int{}}

	if _, err := Analyze(context.Background(), counter, rangeCfg(2018, 2021), io.Discard); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	want := []int{2018, 2019, 2020, 2021}
	if len(counter.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", counter.calls, want)
	}
	for i, y := range want {
		if counter.calls[i] != y {
			t.Errorf("calls[%d] = %d, want %d", i, counter.calls[i], y)
		}
	}
}

func TestAnalyzeSingleYear(t *testing.T) {
	counter := &stubCounter{counts: map[int]int{2023: 12}}

	a, err := Analyze(context.Background(), counter, rangeCfg(2023, 2023), io.Discard)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(a.Series) != 1 || a.Total != 12 || a.Average != 12.0 || a.PeakYear != 2023 {
		t.Errorf("unexpected analysis: %+v", a)
	}
}

func TestAnalyzeAbortsOnFailure(t *testing.T) {
	counter := &stubCounter{
		counts:  map[int]int{2020: 10, 2021: 20, 2022: 30},
		failOn:  2021,
		failErr: fmt.Errorf("boom"),
	}

	_, err := Analyze(context.Background(), counter, rangeCfg(2020, 2022), io.Discard)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %q, want wrapped cause", err.Error())
	}
	// The failing year must stop the loop; later years are never requested.
	for _, y := range counter.calls {
		if y > 2021 {
			t.Errorf("year %d requested after failure", y)
		}
	}
}

func TestAnalyzeProgressOutput(t *testing.T) {
	counter := &stubCounter{counts: map[int]int{2020: 5}}
	var buf strings.Builder

	if _, err := Analyze(context.Background(), counter, rangeCfg(2020, 2020), &buf); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Searching for papers in 2020") {
		t.Errorf("missing search line in %q", out)
	}
	if !strings.Contains(out, "Found 5 papers in 2020") {
		t.Errorf("missing found line in %q", out)
	}
}

func TestAnalyzePeakTieBreaksEarliest(t *testing.T) {
	counter := &stubCounter{counts: map[int]int{2020: 200, 2021: 200, 2022: 50}}

	a, err := Analyze(context.Background(), counter, rangeCfg(2020, 2022), io.Discard)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.PeakYear != 2020 {
		t.Errorf("PeakYear = %d, want 2020 (earliest on tie)", a.PeakYear)
	}
}
