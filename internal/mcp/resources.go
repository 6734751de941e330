// ABOUTME: MCP resource implementations for golf session data.
// ABOUTME: Provides golf://summary and golf://clubs resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/golf/internal/processor"
)

func (s *Server) registerResources() {
	// golf://summary - per-session summaries plus the latest session
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "golf://summary",
		Name:        "Session Summary Dashboard",
		Description: "Aggregated statistics for every session plus the latest session ID",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// golf://clubs - known clubs and their session assignments
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "golf://clubs",
		Name:        "Club Assignments",
		Description: "Known clubs, session assignments, and sessions still missing a club",
		MIMEType:    "application/json",
	}, s.handleClubsResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summaries, err := s.proc.Summarize(processor.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize sessions: %w", err)
	}

	latest, err := s.proc.LatestSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to get latest session: %w", err)
	}

	rows := make([]summaryRow, len(summaries))
	for i, sum := range summaries {
		rows[i] = toSummaryRow(sum)
	}

	result := map[string]interface{}{
		"latest_session": latest,
		"sessions":       rows,
	}

	return jsonResource("golf://summary", result)
}

func (s *Server) handleClubsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	missing, err := s.proc.SessionsMissingClub()
	if err != nil {
		return nil, fmt.Errorf("failed to find unassigned sessions: %w", err)
	}

	used, err := s.proc.ClubsUsed()
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs used: %w", err)
	}

	result := map[string]interface{}{
		"known_clubs":           s.store.KnownClubs(),
		"clubs_used":            used,
		"assignments":           s.store.Assignments(),
		"sessions_missing_club": missing,
	}

	return jsonResource("golf://clubs", result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
