// ABOUTME: CLI command for importing a session CSV export.
// ABOUTME: Copies the export into the data directory under the canonical session name.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	importDate string
	importYes  bool
)

var importCmd = &cobra.Command{
	Use:     "import <csv>",
	Aliases: []string{"add"},
	Short:   "Import a session CSV export",
	Long: `Import a launch-monitor CSV export into the data directory.

The file is copied to <data_dir>/session_YYYY_MM_DD.csv. The session
date defaults to today; pass --date to backfill an older session.

EXAMPLES:

  golf import ~/Downloads/refine_export.csv
  golf import range_data.csv --date 2025-01-20
  golf import range_data.csv -d 2025-01-20 --yes   # overwrite silently`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		if !strings.EqualFold(filepath.Ext(source), ".csv") {
			return fmt.Errorf("file must be a CSV: %s", source)
		}
		if _, err := os.Stat(source); err != nil {
			return fmt.Errorf("file not found: %s", source)
		}

		sessionDate := time.Now()
		if importDate != "" {
			var err error
			sessionDate, err = time.Parse("2006-01-02", importDate)
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD, got: %s", importDate)
			}
		}

		dataDir := cfg.GetDataDir()
		if err := os.MkdirAll(dataDir, 0750); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		sessionID := "session_" + sessionDate.Format("2006_01_02")
		dest := filepath.Join(dataDir, sessionID+".csv")

		if _, err := os.Stat(dest); err == nil && !importYes {
			fmt.Printf("A session already exists for %s. Overwrite? [y/N] ", sessionDate.Format("2006-01-02"))
			reader := bufio.NewReader(os.Stdin)
			response, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read response: %w", err)
			}
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Import canceled.")
				return nil
			}
		}

		if err := copyFile(source, dest); err != nil {
			return fmt.Errorf("failed to copy session file: %w", err)
		}

		color.Green("✓ Imported %s", sessionID)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(dest))
		fmt.Println("\nAssign a club with:")
		fmt.Printf("  golf club assign %s \"7 Iron\"\n", sessionID)

		return nil
	},
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func init() {
	importCmd.Flags().StringVarP(&importDate, "date", "d", "", "session date (YYYY-MM-DD), defaults to today")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "overwrite an existing session without prompting")
	rootCmd.AddCommand(importCmd)
}
