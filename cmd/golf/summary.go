// ABOUTME: CLI command for session summary statistics.
// ABOUTME: Renders the per-session aggregate table with composite quality scores.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/golf/internal/processor"
)

var (
	summarySession string
	summaryClub    string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-session summary statistics",
	Long: `Show aggregated statistics for every session: carry and dispersion,
strike quality, launch numbers, shot-shape rates, and the composite
quality score. Only valid shots (carry > 50y, ball speed > 60mph)
feed the statistics.

EXAMPLES:

  golf summary                          # All sessions
  golf summary --session session_2025_01_20
  golf summary --club "7 Iron"          # Only 7-iron sessions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := loadProcessor()
		if err != nil {
			return err
		}

		summaries, err := proc.Summarize(processor.Filter{
			SessionID: summarySession,
			Club:      summaryClub,
		})
		if err != nil {
			return err
		}

		if len(summaries) == 0 {
			fmt.Println("No valid shots matched.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s %s %s %s %s %s %s\n",
			padRight("Date", 10), padRight("Club", 10),
			padRight("Carry", 7), padRight("Std", 6),
			padRight("Offline", 8), padRight("Strike", 7),
			padRight("Shots", 6), "Quality")
		for _, s := range summaries {
			club := "-"
			if s.Club != nil {
				club = *s.Club
			}
			fmt.Printf("%s %s %s %s %s %s %s %s %s\n",
				s.SessionDate.Format("2006-01-02"),
				padRight(truncate(club, 10), 10),
				padRight(fmtFloat(s.MedianCarry, 1), 7),
				padRight(fmtFloat(s.CarryStd, 1), 6),
				padRight(fmtFloat(s.AvgOffline, 1), 8),
				padRight(fmtPct(s.StrikeQualityRate), 7),
				padRight(fmt.Sprintf("%d", s.ValidShots), 6),
				fmtFloat(s.QualityScore, 2),
				faint.Sprint(s.SessionID))
		}

		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summarySession, "session", "s", "", "filter by session ID")
	summaryCmd.Flags().StringVarP(&summaryClub, "club", "c", "", "filter by club")
	rootCmd.AddCommand(summaryCmd)
}
