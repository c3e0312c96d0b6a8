// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validCfg() RunConfig {
	return RunConfig{
		Keyword:   "machine learning",
		StartYear: 2020,
		EndYear:   2023,
	}
}

func TestValidate(t *testing.T) {
	maxYear := time.Now().Year() + 1

	tests := []struct {
		name    string
		mutate  func(*RunConfig)
		wantErr string
	}{
		{"valid", func(c *RunConfig) {}, ""},
		{"single year range", func(c *RunConfig) { c.EndYear = c.StartYear }, ""},
		{"empty keyword", func(c *RunConfig) { c.Keyword = "" }, "keyword"},
		{"whitespace keyword", func(c *RunConfig) { c.Keyword = "   " }, "keyword"},
		{"start after end", func(c *RunConfig) { c.StartYear = 2024; c.EndYear = 2020 }, "after end year"},
		{"start before floor", func(c *RunConfig) { c.StartYear = 1776 }, "outside valid range"},
		{"end too far ahead", func(c *RunConfig) { c.EndYear = maxYear + 1 }, "outside valid range"},
		{"next year allowed", func(c *RunConfig) { c.EndYear = maxYear }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validCfg()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSafeKeyword(t *testing.T) {
	tests := []struct {
		keyword string
		want    string
	}{
		{"blockchain", "blockchain"},
		{"machine learning", "machine_learning"},
		{"COVID-19 vaccines", "COVID-19_vaccines"},
		{"what? really!", "what_really"},
		{"  padded  ", "padded"},
		{"a/b\\c", "abc"},
	}
	for _, tt := range tests {
		cfg := RunConfig{Keyword: tt.keyword}
		if got := cfg.SafeKeyword(); got != tt.want {
			t.Errorf("SafeKeyword(%q) = %q, want %q", tt.keyword, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	cfg := RunConfig{Keyword: "deep learning", StartYear: 2018, EndYear: 2024, OutputDir: "results"}

	if got, want := cfg.CSVPath(), filepath.Join("results", "deep_learning_2018_2024_results.csv"); got != want {
		t.Errorf("CSVPath() = %q, want %q", got, want)
	}
	if got, want := cfg.ChartPath(), filepath.Join("results", "deep_learning_2018_2024_histogram.png"); got != want {
		t.Errorf("ChartPath() = %q, want %q", got, want)
	}
}

func TestOutputPathsDefaultDir(t *testing.T) {
	cfg := RunConfig{Keyword: "x", StartYear: 2020, EndYear: 2021}
	if got := cfg.CSVPath(); got != "x_2020_2021_results.csv" {
		t.Errorf("CSVPath() = %q", got)
	}
}

func TestYears(t *testing.T) {
	cfg := RunConfig{StartYear: 2020, EndYear: 2023}
	if got := cfg.Years(); got != 4 {
		t.Errorf("Years() = %d, want 4", got)
	}
	cfg.EndYear = 2020
	if got := cfg.Years(); got != 1 {
		t.Errorf("Years() = %d, want 1", got)
	}
}
