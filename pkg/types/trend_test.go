// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestNewAnalysisSummary(t *testing.T) {
	a := NewAnalysis("blockchain", 2020, 2022, []YearCount{
		{Year: 2020, Count: 100},
		{Year: 2021, Count: 200},
		{Year: 2022, Count: 150},
	})

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

func TestNewAnalysisUnroundedAverage(t *testing.T) {
	a := NewAnalysis("x", 2020, 2022, []YearCount{
		{Year: 2020, Count: 1},
		{Year: 2021, Count: 1},
		{Year: 2022, Count: 0},
	})

	want := 2.0 / 3.0
	if a.Average != want {
		t.Errorf("Average = %v, want %v (no rounding)", a.Average, want)
	}
}

func TestNewAnalysisPeakTie(t *testing.T) {
	a := NewAnalysis("x", 2020, 2022, []YearCount{
		{Year: 2020, Count: 50},
		{Year: 2021, Count: 90},
		{Year: 2022, Count: 90},
	})

	if a.PeakYear != 2021 {
		t.Errorf("PeakYear = %d, want 2021 (earliest year on a tie)", a.PeakYear)
	}
}

func TestNewAnalysisAllZero(t *testing.T) {
	a := NewAnalysis("x", 2020, 2021, []YearCount{
		{Year: 2020, Count: 0},
		{Year: 2021, Count: 0},
	})

	if a.Total != 0 || a.Average != 0 {
		t.Errorf("Total/Average = %d/%f, want 0/0", a.Total, a.Average)
	}
	if a.PeakYear != 2020 || a.PeakCount != 0 {
		t.Errorf("peak = %d/%d, want 2020/0", a.PeakYear, a.PeakCount)
	}
}

func TestNewAnalysisEmptySeries(t *testing.T) {
	a := NewAnalysis("x", 2020, 2019, nil)

	if a.Total != 0 || a.Average != 0 || a.PeakYear != 0 {
		t.Errorf("empty series must leave summary fields zero: %+v", a)
	}
}
