// ABOUTME: CLI commands for club metadata management.
// ABOUTME: List known clubs, assign/remove session clubs, define custom clubs.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/golf/internal/clubs"
)

var clubCmd = &cobra.Command{
	Use:   "club",
	Short: "Manage club metadata",
	Long: `Manage the club metadata sidecar: session-to-club assignments,
session notes, and custom club specifications.`,
}

var clubListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known clubs",
	Long:  `List all known clubs (standard and custom) with their specifications.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		custom := make(map[string]struct{})
		for _, name := range store.CustomClubs() {
			custom[name] = struct{}{}
		}

		for _, name := range store.KnownClubs() {
			spec, ok := store.SpecFor(name)
			if !ok {
				continue
			}
			tag := ""
			if _, isCustom := custom[name]; isCustom {
				tag = faint.Sprint(" (custom)")
			}
			fmt.Printf("%s %s ~%.0fy  launch %g-%g°  spin %g-%g rpm%s\n",
				padRight(name, 12),
				padRight(string(spec.Category), 7),
				spec.TypicalCarry,
				spec.LaunchRange[0], spec.LaunchRange[1],
				spec.SpinRange[0], spec.SpinRange[1],
				tag)
		}
		return nil
	},
}

var assignNotes string

var clubAssignCmd = &cobra.Command{
	Use:   "assign <session_id> <club>",
	Short: "Assign a club to a session",
	Long: `Assign a club to a session and persist it to the metadata sidecar.

Unknown club names are stored with a warning; define them first with
'golf club add' to silence it.

EXAMPLES:

  golf club assign session_2025_01_20 "7 Iron"
  golf club assign session_2025_01_20 Driver --notes "New swing thought"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, club := args[0], args[1]

		if club == "" {
			return fmt.Errorf("club name must not be empty")
		}
		if _, known := store.SpecFor(club); !known {
			color.Yellow("Warning: %q is not a known club (see 'golf club list')", club)
		}

		if err := store.Assign(sessionID, club, assignNotes); err != nil {
			return fmt.Errorf("failed to assign club: %w", err)
		}

		color.Green("✓ Assigned %q to %s", club, sessionID)
		if assignNotes != "" {
			fmt.Printf("  %s\n", color.New(color.Faint).Sprint(assignNotes))
		}
		return nil
	},
}

var removeYes bool

var clubRemoveCmd = &cobra.Command{
	Use:   "remove <session_id>",
	Short: "Remove a session's club assignment",
	Long: `Remove the club assignment and notes from a session. Removing a
session that has no assignment is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		club, ok := store.Club(sessionID)
		if !ok {
			fmt.Printf("Session %s has no club assigned.\n", sessionID)
			return nil
		}

		if !removeYes {
			fmt.Printf("Remove %q from %s? [y/N] ", club, sessionID)
			reader := bufio.NewReader(os.Stdin)
			response, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read response: %w", err)
			}
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Canceled.")
				return nil
			}
		}

		if err := store.Remove(sessionID); err != nil {
			return fmt.Errorf("failed to remove assignment: %w", err)
		}

		color.Yellow("✗ Removed %q from %s", club, sessionID)
		return nil
	},
}

var (
	addClubCategory string
	addClubCarry    float64
	addClubLaunch   string
	addClubSpin     string
)

var clubAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Define a custom club",
	Long: `Define a custom club specification. Custom clubs shadow standard
clubs of the same name.

EXAMPLES:

  golf club add "2 Iron" --category iron --carry 205 \
      --launch 11,15 --spin 3800,4600`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		if !clubs.IsValidCategory(addClubCategory) {
			return fmt.Errorf("category must be one of: wood, hybrid, iron, wedge")
		}

		launch, err := parseRange(addClubLaunch)
		if err != nil {
			return fmt.Errorf("invalid --launch range: %w", err)
		}
		spin, err := parseRange(addClubSpin)
		if err != nil {
			return fmt.Errorf("invalid --spin range: %w", err)
		}

		spec := clubs.Spec{
			Category:     clubs.Category(addClubCategory),
			TypicalCarry: addClubCarry,
			LaunchRange:  launch,
			SpinRange:    spin,
		}
		if err := store.AddCustomClub(name, spec); err != nil {
			return fmt.Errorf("failed to add custom club: %w", err)
		}

		color.Green("✓ Added custom club %q", name)
		if clubs.IsStandard(name) {
			color.Yellow("  Shadows the standard %s definition", name)
		}
		fmt.Printf("  %s ~%.0fy  launch %g-%g°  spin %g-%g rpm\n",
			spec.Category, spec.TypicalCarry,
			launch[0], launch[1], spin[0], spin[1])
		return nil
	},
}

// parseRange parses a "min,max" flag value.
func parseRange(s string) ([2]float64, error) {
	var r [2]float64
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return r, fmt.Errorf("expected min,max got %q", s)
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return r, fmt.Errorf("bad number %q", part)
		}
		r[i] = v
	}
	if r[0] > r[1] {
		return r, fmt.Errorf("min %g greater than max %g", r[0], r[1])
	}
	return r, nil
}

func init() {
	clubAssignCmd.Flags().StringVarP(&assignNotes, "notes", "n", "", "session notes")
	clubRemoveCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip confirmation prompt")
	clubAddCmd.Flags().StringVar(&addClubCategory, "category", "", "club category: wood, hybrid, iron, wedge")
	clubAddCmd.Flags().Float64Var(&addClubCarry, "carry", 0, "typical carry distance in yards")
	clubAddCmd.Flags().StringVar(&addClubLaunch, "launch", "", "optimal launch angle range, min,max degrees")
	clubAddCmd.Flags().StringVar(&addClubSpin, "spin", "", "optimal spin range, min,max rpm")
	_ = clubAddCmd.MarkFlagRequired("category")
	_ = clubAddCmd.MarkFlagRequired("carry")
	_ = clubAddCmd.MarkFlagRequired("launch")
	_ = clubAddCmd.MarkFlagRequired("spin")

	clubCmd.AddCommand(clubListCmd)
	clubCmd.AddCommand(clubAssignCmd)
	clubCmd.AddCommand(clubRemoveCmd)
	clubCmd.AddCommand(clubAddCmd)
	rootCmd.AddCommand(clubCmd)
}
