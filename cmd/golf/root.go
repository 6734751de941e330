// ABOUTME: Root Cobra command for golf CLI.
// ABOUTME: Loads config, opens the club metadata store, and shares formatting helpers.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperreed/golf/internal/clubs"
	"github.com/harperreed/golf/internal/config"
	"github.com/harperreed/golf/internal/processor"
)

var (
	cfg     *config.Config
	store   *clubs.Store
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "golf",
	Short: "Launch-monitor session analytics",
	Long: `Golf is a CLI tool for analyzing launch-monitor session exports.

It ingests per-session CSV files (Uneekor Refine format), computes
shot-quality metrics, and aggregates them into session and club
summaries with rolling trends.

QUICK START:

  $ golf import ~/Downloads/refine_export.csv --date 2025-01-20
  $ golf club assign session_2025_01_20 "7 Iron" --notes "Range work"
  $ golf summary                   # Per-session statistics
  $ golf trend quality_score       # Rolling 3-session trend
  $ golf compare                   # Club-vs-club comparison

SESSIONS & CLUBS:

  $ golf sessions                  # List sessions and assignments
  $ golf club list                 # Standard and custom clubs
  $ golf club add "2 Iron" --category iron --carry 205 \
        --launch 11,15 --spin 3800,4600
  $ golf club remove session_2025_01_20

MCP INTEGRATION:

  Run 'golf mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "golf": { "command": "golf", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Session CSVs live in ~/.local/share/golf (override with data_dir in
  ~/.config/golf/config.json). Club assignments persist to a
  club_metadata.json sidecar next to the session files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadProcessor builds a processor over the configured data directory
// and loads every session export.
func loadProcessor() (*processor.Processor, error) {
	proc := processor.New(cfg.GetDataDir(), store, processor.WithLogger(slog.Default()))
	if err := proc.LoadSessions(processor.DefaultPattern); err != nil {
		return nil, err
	}
	return proc, nil
}

// fmtFloat renders an aggregate value, mapping NaN (undefined
// statistic) to a placeholder.
func fmtFloat(v float64, prec int) string {
	if math.IsNaN(v) {
		return "--"
	}
	return fmt.Sprintf("%.*f", prec, v)
}

// fmtPct renders a 0-1 rate as a percentage.
func fmtPct(v float64) string {
	if math.IsNaN(v) {
		return "--"
	}
	return fmt.Sprintf("%.0f%%", v*100)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
