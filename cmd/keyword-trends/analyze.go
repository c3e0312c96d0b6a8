// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/keyword-trends/internal/report"
	"github.com/pdiddy/keyword-trends/internal/scholar"
	"github.com/pdiddy/keyword-trends/internal/secrets"
	"github.com/pdiddy/keyword-trends/internal/trend"
	"github.com/pdiddy/keyword-trends/pkg/types"
)

// newCounter builds the per-year count source. Swappable in tests.
var newCounter = func(cfg types.RunConfig) trend.Counter {
	return scholar.NewClient(cfg)
}

func init() {
	rootCmd.Flags().String("output-dir", ".", "output directory for the CSV and chart files")
	rootCmd.Flags().Bool("no-chart", false, "skip histogram generation")
	rootCmd.Flags().Bool("no-display", false, "generate the chart file but do not open a viewer")
	rootCmd.Flags().Bool("quiet", false, "suppress progress messages and the summary block")
	rootCmd.Flags().Bool("yaml", false, "print the run summary as YAML to stdout")
	rootCmd.Flags().String("api-key", "", "Semantic Scholar API key (optional, also read from .secrets/)")
}

// runAnalyze drives a whole run: build and validate the configuration,
// aggregate the per-year counts, then produce the summary, CSV, and chart.
func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildRunConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	progress := io.Writer(cmd.OutOrStdout())
	if cfg.Quiet {
		progress = io.Discard
	}

	analysis, err := trend.Analyze(cmd.Context(), newCounter(cfg), cfg, progress)
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		report.FormatSummary(analysis, cmd.OutOrStdout())
	}
	if yamlOut, _ := cmd.Flags().GetBool("yaml"); yamlOut {
		if err := report.FormatYAML(analysis, cmd.OutOrStdout()); err != nil {
			return err
		}
	}

	csvPath := cfg.CSVPath()
	if err := report.WriteCSV(analysis, csvPath); err != nil {
		return err
	}
	fmt.Fprintf(progress, "Results saved to %s\n", csvPath)

	if !cfg.GenerateChart {
		return nil
	}
	chartPath := cfg.ChartPath()
	if err := report.RenderChart(analysis, chartPath); err != nil {
		// The CSV survives a chart failure; data export is the primary output.
		return fmt.Errorf("chart rendering failed (CSV kept at %s): %w", csvPath, err)
	}
	fmt.Fprintf(progress, "Histogram saved to %s\n", chartPath)

	if cfg.DisplayChart {
		if err := report.OpenViewer(chartPath); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
	}
	return nil
}

// buildRunConfig assembles the run configuration from flags, config-file
// defaults, and either the three positional arguments or the interactive
// prompts. Both paths converge here, before Validate.
func buildRunConfig(cmd *cobra.Command, args []string) (types.RunConfig, error) {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	noChart, _ := cmd.Flags().GetBool("no-chart")
	noDisplay, _ := cmd.Flags().GetBool("no-display")
	quiet, _ := cmd.Flags().GetBool("quiet")
	apiKey, _ := cmd.Flags().GetString("api-key")

	cfg := types.RunConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		OutputDir:     outputDir,
		GenerateChart: !noChart,
		DisplayChart:  !noChart && !noDisplay,
		Quiet:         quiet,
		APIKey:        secrets.Key(loadedSecrets, secrets.SemanticScholarKey, apiKey),
		MaxAttempts:   viper.GetInt("retry.max_attempts"),
		RetryDelay:    viper.GetDuration("retry.delay"),
		PacingDelay:   viper.GetDuration("pacing.delay"),
	}

	switch len(args) {
	case 3:
		cfg.Keyword = args[0]
		start, err := parseYear(args[1])
		if err != nil {
			return cfg, fmt.Errorf("start year: %w", err)
		}
		end, err := parseYear(args[2])
		if err != nil {
			return cfg, fmt.Errorf("end year: %w", err)
		}
		cfg.StartYear, cfg.EndYear = start, end
		return cfg, nil
	case 0:
		if !isInteractive() {
			return cfg, fmt.Errorf("no arguments given and stdin is not a terminal; provide keyword, start year, and end year")
		}
		return promptRunConfig(cfg)
	default:
		return cfg, fmt.Errorf("provide keyword, start year, and end year, or no arguments for interactive mode")
	}
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid year", s)
	}
	return year, nil
}

// isInteractive reports whether stdin is a terminal. Swappable in tests.
var isInteractive = func() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
