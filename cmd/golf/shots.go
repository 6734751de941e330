// ABOUTME: CLI command for shot-level output.
// ABOUTME: Dumps valid shots (carry, lateral offset, shape) for scatter-style analysis.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/golf/internal/processor"
)

var (
	shotsSession string
	shotsClub    string
)

var shotsCmd = &cobra.Command{
	Use:   "shots",
	Short: "List valid shots for dispersion analysis",
	Long: `List every valid shot with carry, signed lateral offset (right
positive, left negative), shape, ball speed, and launch angle.

EXAMPLES:

  golf shots                              # All valid shots
  golf shots --session session_2025_01_20
  golf shots --club Driver`,
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := loadProcessor()
		if err != nil {
			return err
		}

		points, err := proc.ShotDistribution(processor.Filter{
			SessionID: shotsSession,
			Club:      shotsClub,
		})
		if err != nil {
			return err
		}

		if len(points) == 0 {
			fmt.Println("No valid shots matched.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s %s %s %s %s\n",
			padRight("Date", 10), padRight("Carry", 7),
			padRight("Side", 7), padRight("Ball", 6),
			padRight("Launch", 7), "Shape")
		for _, pt := range points {
			fmt.Printf("%s %s %s %s %s %s %s\n",
				pt.SessionDate.Format("2006-01-02"),
				padRight(fmtFloatPtr(pt.Carry, 1), 7),
				padRight(fmtFloatPtr(pt.SideDist, 1), 7),
				padRight(fmtFloatPtr(pt.BallSpeed, 1), 6),
				padRight(fmtFloatPtr(pt.LaunchAngle, 1), 7),
				padRight(pt.ShotType, 10),
				faint.Sprint(pt.SessionID))
		}

		return nil
	},
}

// fmtFloatPtr renders a nullable measurement, mapping missing to the
// same placeholder the monitor uses.
func fmtFloatPtr(v *float64, prec int) string {
	if v == nil {
		return "--"
	}
	return fmt.Sprintf("%.*f", prec, *v)
}

func init() {
	shotsCmd.Flags().StringVarP(&shotsSession, "session", "s", "", "filter by session ID")
	shotsCmd.Flags().StringVarP(&shotsClub, "club", "c", "", "filter by club")
	rootCmd.AddCommand(shotsCmd)
}
