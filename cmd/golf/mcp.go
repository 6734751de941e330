// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/golf/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "golf": {
        "command": "golf",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_session_summary    Aggregated statistics per session
  get_club_comparison    Club-vs-club performance
  get_trend              Rolling mean of a summary metric
  get_shot_distribution  Shot-level rows for dispersion analysis
  list_sessions          Loaded sessions and assignments
  assign_club            Assign a club to a session
  list_clubs             Known clubs and specifications

AVAILABLE RESOURCES:

  golf://summary    Per-session summaries plus latest session
  golf://clubs      Club assignments and unassigned sessions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := loadProcessor()
		if err != nil {
			return err
		}

		server, err := mcp.NewServer(proc, store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
