// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the keyword-trends CLI: it queries the
// Semantic Scholar API for per-year paper counts of a keyword, writes a CSV,
// and renders a histogram chart.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/keyword-trends/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd runs the analysis directly; the tool has one job.
var rootCmd = &cobra.Command{
	Use:   "keyword-trends [keyword start_year end_year]",
	Short: "Analyze academic keyword trends via the Semantic Scholar API",
	Long: `keyword-trends counts the academic papers matching a keyword for every year
in a range, using the Semantic Scholar paper search API. The per-year counts
are written to a CSV file and drawn as an annotated histogram PNG, and a
summary (total, average, peak year) is printed.

Run with no arguments to be prompted interactively for the keyword, year
range, and output options.`,
	Args: cobra.MaximumNArgs(3),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
	RunE: runAnalyze,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./keyword-trends.yaml or ~/.config/keyword-trends/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("keyword-trends")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "keyword-trends"))
		}
	}

	viper.SetDefault("http.timeout", 10*time.Second)
	viper.SetDefault("http.user_agent", "keyword-trends/"+version)
	viper.SetDefault("retry.max_attempts", 3)
	viper.SetDefault("retry.delay", 2*time.Second)
	viper.SetDefault("pacing.delay", time.Second)

	viper.SetEnvPrefix("KEYWORD_TRENDS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
