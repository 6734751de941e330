// ABOUTME: CLI command for club-vs-club comparison.
// ABOUTME: One row per assigned club, ordered by descending median carry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare performance across clubs",
	Long: `Compare aggregated performance across clubs. Only valid shots from
sessions with an assigned club are counted; rows are ordered by
descending median carry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := loadProcessor()
		if err != nil {
			return err
		}

		comparisons, err := proc.CompareClubs()
		if err != nil {
			return err
		}

		if len(comparisons) == 0 {
			fmt.Println("No sessions have clubs assigned yet.")
			fmt.Println("Assign with: golf club assign <session_id> <club>")
			return nil
		}

		fmt.Printf("%s %s %s %s %s %s %s\n",
			padRight("Club", 12), padRight("Carry", 7),
			padRight("Std", 6), padRight("Offline", 8),
			padRight("Strike", 7), padRight("Sessions", 9), "Shots")
		for _, c := range comparisons {
			fmt.Printf("%s %s %s %s %s %s %d\n",
				padRight(truncate(c.Club, 12), 12),
				padRight(fmtFloat(c.MedianCarry, 1), 7),
				padRight(fmtFloat(c.CarryStd, 1), 6),
				padRight(fmtFloat(c.AvgOffline, 1), 8),
				padRight(fmtPct(c.StrikeQualityRate), 7),
				padRight(fmt.Sprintf("%d", c.NumSessions), 9),
				c.TotalShots)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
