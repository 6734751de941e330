// ABOUTME: CLI command for rolling trends of summary metrics.
// ABOUTME: Renders per-session values alongside the trailing moving average.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/golf/internal/processor"
)

var (
	trendWindow int
	trendClub   string
)

var trendCmd = &cobra.Command{
	Use:   "trend <metric>",
	Short: "Show a rolling trend of a summary metric",
	Long: `Show a summary metric per session together with its trailing moving
average. The window counts sessions, not calendar days; the first
window-1 sessions have no trend value.

METRICS:

  ` + strings.Join(processor.TrendMetrics, ", ") + `

EXAMPLES:

  golf trend quality_score
  golf trend carry_std --window 5
  golf trend median_carry --club "7 Iron"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := args[0]

		proc, err := loadProcessor()
		if err != nil {
			return err
		}

		points, err := proc.Trend(metric, trendWindow, trendClub)
		if err != nil {
			return err
		}

		if len(points) == 0 {
			fmt.Println("No valid shots matched.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s %s\n",
			padRight("Date", 10), padRight(metric, 14), "trend")
		for _, pt := range points {
			fmt.Printf("%s %s %s %s\n",
				pt.SessionDate.Format("2006-01-02"),
				padRight(fmtFloat(pt.Value, 2), 14),
				padRight(fmtFloat(pt.Trend, 2), 8),
				faint.Sprint(pt.SessionID))
		}

		return nil
	},
}

func init() {
	trendCmd.Flags().IntVarP(&trendWindow, "window", "w", 3, "rolling window in sessions")
	trendCmd.Flags().StringVarP(&trendClub, "club", "c", "", "filter by club")
	rootCmd.AddCommand(trendCmd)
}
