// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/pdiddy/keyword-trends/pkg/types"
)

// promptRunConfig gathers the keyword, year range, and output options
// interactively. Each input is validated inline, so the form reprompts
// instead of aborting on a bad value. Flag values arrive as defaults in cfg
// and are kept wherever the prompts do not override them.
func promptRunConfig(cfg types.RunConfig) (types.RunConfig, error) {
	maxYear := time.Now().Year() + 1

	var keyword, startStr, endStr string

	queryForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search term").
				Description("Keyword to analyze, e.g. \"quantum computing\"").
				Value(&keyword).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("search term cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start year").
				Placeholder("2020").
				Value(&startStr).
				Validate(yearInRange(types.MinYear, maxYear)),
			huh.NewInput().
				Title("End year").
				Placeholder("2023").
				Value(&endStr).
				Validate(func(s string) error {
					// The start year field is already filled when this runs.
					start, err := parseYear(strings.TrimSpace(startStr))
					if err != nil {
						start = types.MinYear
					}
					return yearInRange(start, maxYear)(s)
				}),
		),
	)
	if err := queryForm.Run(); err != nil {
		return cfg, err
	}

	cfg.Keyword = strings.TrimSpace(keyword)
	cfg.StartYear, _ = parseYear(strings.TrimSpace(startStr))
	cfg.EndYear, _ = parseYear(strings.TrimSpace(endStr))

	generateChart := true
	outputDir := cfg.OutputDir
	showProgress := !cfg.Quiet

	optionsForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate histogram chart?").
				Affirmative("Yes").
				Negative("No").
				Value(&generateChart),
			huh.NewInput().
				Title("Output directory").
				Placeholder(".").
				Value(&outputDir),
			huh.NewConfirm().
				Title("Show progress messages?").
				Value(&showProgress),
		),
	)
	if err := optionsForm.Run(); err != nil {
		return cfg, err
	}

	cfg.GenerateChart = generateChart
	if strings.TrimSpace(outputDir) != "" {
		cfg.OutputDir = strings.TrimSpace(outputDir)
	}
	cfg.Quiet = !showProgress

	cfg.DisplayChart = false
	if generateChart {
		display := true
		displayForm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Display the chart when done?").
					Value(&display),
			),
		)
		if err := displayForm.Run(); err != nil {
			return cfg, err
		}
		cfg.DisplayChart = display
	}

	return cfg, nil
}

// yearInRange returns a huh validator accepting integer years in [min, max].
func yearInRange(min, max int) func(string) error {
	return func(s string) error {
		year, err := parseYear(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a valid year, e.g. 2020")
		}
		if year < min || year > max {
			return fmt.Errorf("year must be between %d and %d", min, max)
		}
		return nil
	}
}
