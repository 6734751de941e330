// ABOUTME: CLI command for listing loaded sessions.
// ABOUTME: Shows assignment status and flags sessions missing a club.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/golf/internal/clubs"
	"github.com/harperreed/golf/internal/processor"
)

var sessionsAll bool

var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"ls"},
	Short:   "List sessions and club assignments",
	Long: `List every loaded session with its date, club assignment, shot
count, and notes. Sessions without a club are highlighted; assign one
with 'golf club assign'.

EXAMPLES:

  golf sessions          # All sessions
  golf sessions --all    # Include per-club usage counts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := loadProcessor()
		if err != nil {
			return err
		}

		sessions, err := proc.Sessions()
		if err != nil {
			return err
		}

		// Median carries feed club suggestions for unassigned sessions.
		carries := make(map[string]float64)
		if summaries, err := proc.Summarize(processor.Filter{}); err == nil {
			for _, s := range summaries {
				carries[s.SessionID] = s.MedianCarry
			}
		}

		faint := color.New(color.Faint)
		missing := 0
		for _, sess := range sessions {
			club := "unassigned"
			if sess.Club != nil {
				club = *sess.Club
			} else {
				missing++
			}

			notes := ""
			if sess.Notes != nil && *sess.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*sess.Notes, 40))
			}
			if sess.Club == nil {
				if mc, ok := carries[sess.ID]; ok {
					if suggested := clubs.SuggestClub(mc); suggested != "" {
						notes += faint.Sprintf(" carry suggests %s", suggested)
					}
				}
			}

			line := fmt.Sprintf("%s %s %s %3d shots%s",
				sess.Date.Format("2006-01-02"),
				faint.Sprint(padRight(sess.ID, 24)),
				padRight(club, 12),
				sess.Shots,
				notes)
			if sess.Club == nil {
				color.Yellow("%s", line)
			} else {
				fmt.Println(line)
			}
		}

		if missing > 0 {
			fmt.Println()
			color.Yellow("%d session(s) missing a club assignment", missing)
			fmt.Println("Assign with: golf club assign <session_id> <club>")
		}

		if sessionsAll {
			used, err := proc.ClubsUsed()
			if err != nil {
				return err
			}
			if len(used) > 0 {
				fmt.Println("\nUsage by club:")
				for _, club := range used {
					fmt.Printf("  %s %d sessions\n",
						padRight(club, 12), len(store.SessionsFor(club)))
				}
			}
		}

		return nil
	},
}

func init() {
	sessionsCmd.Flags().BoolVar(&sessionsAll, "all", false, "show per-club usage counts")
	rootCmd.AddCommand(sessionsCmd)
}
