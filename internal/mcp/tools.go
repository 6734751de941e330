// ABOUTME: MCP tool implementations for golf session analytics.
// ABOUTME: Exposes summaries, comparisons, trends, and club assignment.
package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/golf/internal/models"
	"github.com/harperreed/golf/internal/processor"
)

func (s *Server) registerTools() {
	// get_session_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_session_summary",
		Description: "Get aggregated statistics per session, optionally filtered by session ID or club",
	}, s.handleGetSessionSummary)

	// get_club_comparison
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_club_comparison",
		Description: "Compare performance across clubs with at least one assigned session",
	}, s.handleGetClubComparison)

	// get_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Get a summary metric per session with its rolling mean",
	}, s.handleGetTrend)

	// get_shot_distribution
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_shot_distribution",
		Description: "Get shot-level rows (carry, lateral offset, shape) for scatter analysis",
	}, s.handleGetShotDistribution)

	// list_sessions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List loaded sessions with their club assignments",
	}, s.handleListSessions)

	// assign_club
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "assign_club",
		Description: "Assign a club (and optional notes) to a session",
	}, s.handleAssignClub)

	// list_clubs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_clubs",
		Description: "List known clubs (standard and custom) with their specifications",
	}, s.handleListClubs)
}

// Tool input/output types

type summaryInput struct {
	SessionID string `json:"session_id,omitempty" jsonschema:"Filter to one session (e.g. session_2025_01_20)"`
	Club      string `json:"club,omitempty" jsonschema:"Filter to one club (e.g. 7 Iron)"`
}

type summaryRow struct {
	SessionID         string   `json:"session_id"`
	SessionDate       string   `json:"session_date"`
	Club              *string  `json:"club"`
	MedianCarry       *float64 `json:"median_carry"`
	CarryStd          *float64 `json:"carry_std"`
	MedianTotal       *float64 `json:"median_total"`
	AvgOffline        *float64 `json:"avg_offline"`
	DirectionalStd    *float64 `json:"directional_std"`
	StrikeQualityRate *float64 `json:"strike_quality_rate"`
	AvgSmash          *float64 `json:"avg_smash"`
	AvgBallSpeed      *float64 `json:"avg_ball_speed"`
	AvgLaunchAngle    *float64 `json:"avg_launch_angle"`
	AvgBackspin       *float64 `json:"avg_backspin"`
	SliceRate         *float64 `json:"slice_rate"`
	HookRate          *float64 `json:"hook_rate"`
	StraightRate      *float64 `json:"straight_rate"`
	OptimalLaunchRate *float64 `json:"optimal_launch_rate"`
	ValidShots        int      `json:"valid_shots"`
	QualityScore      *float64 `json:"quality_score"`
}

type comparisonRow struct {
	Club              string   `json:"club"`
	MedianCarry       *float64 `json:"median_carry"`
	CarryStd          *float64 `json:"carry_std"`
	AvgOffline        *float64 `json:"avg_offline"`
	DirectionalStd    *float64 `json:"directional_std"`
	StrikeQualityRate *float64 `json:"strike_quality_rate"`
	AvgBallSpeed      *float64 `json:"avg_ball_speed"`
	TotalShots        int      `json:"total_shots"`
	NumSessions       int      `json:"num_sessions"`
}

type trendInput struct {
	Metric string `json:"metric" jsonschema:"Summary metric name such as median_carry or quality_score"`
	Window int    `json:"window,omitempty" jsonschema:"Rolling window in sessions (default 3)"`
	Club   string `json:"club,omitempty" jsonschema:"Filter to one club"`
}

type trendRow struct {
	SessionID   string   `json:"session_id"`
	SessionDate string   `json:"session_date"`
	Value       *float64 `json:"value"`
	Trend       *float64 `json:"trend"`
}

type shotInput struct {
	SessionID string `json:"session_id,omitempty" jsonschema:"Filter to one session"`
	Club      string `json:"club,omitempty" jsonschema:"Filter to one club"`
}

type shotRow struct {
	Carry       *float64 `json:"carry"`
	SideDist    *float64 `json:"side_dist_signed"`
	ShotType    string   `json:"type"`
	BallSpeed   *float64 `json:"ball_speed"`
	LaunchAngle *float64 `json:"launch_angle"`
	SessionID   string   `json:"session_id"`
	SessionDate string   `json:"session_date"`
	Club        *string  `json:"club"`
}

type sessionRow struct {
	SessionID   string  `json:"session_id"`
	SessionDate string  `json:"session_date"`
	Club        *string `json:"club"`
	Notes       *string `json:"notes"`
	Shots       int     `json:"shots"`
}

type assignClubInput struct {
	SessionID string `json:"session_id" jsonschema:"Session ID (e.g. session_2025_01_20)"`
	Club      string `json:"club" jsonschema:"Club name (e.g. 7 Iron)"`
	Notes     string `json:"notes,omitempty" jsonschema:"Optional session notes"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type clubRow struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	TypicalCarry float64 `json:"typical_carry"`
	LaunchMin    float64 `json:"launch_min"`
	LaunchMax    float64 `json:"launch_max"`
	SpinMin      float64 `json:"spin_min"`
	SpinMax      float64 `json:"spin_max"`
	Custom       bool    `json:"custom"`
}

// nanToNull converts NaN aggregates to nil so rows marshal cleanly.
func nanToNull(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func toSummaryRow(s models.SessionSummary) summaryRow {
	return summaryRow{
		SessionID:         s.SessionID,
		SessionDate:       s.SessionDate.Format("2006-01-02"),
		Club:              s.Club,
		MedianCarry:       nanToNull(s.MedianCarry),
		CarryStd:          nanToNull(s.CarryStd),
		MedianTotal:       nanToNull(s.MedianTotal),
		AvgOffline:        nanToNull(s.AvgOffline),
		DirectionalStd:    nanToNull(s.DirectionalStd),
		StrikeQualityRate: nanToNull(s.StrikeQualityRate),
		AvgSmash:          nanToNull(s.AvgSmash),
		AvgBallSpeed:      nanToNull(s.AvgBallSpeed),
		AvgLaunchAngle:    nanToNull(s.AvgLaunchAngle),
		AvgBackspin:       nanToNull(s.AvgBackspin),
		SliceRate:         nanToNull(s.SliceRate),
		HookRate:          nanToNull(s.HookRate),
		StraightRate:      nanToNull(s.StraightRate),
		OptimalLaunchRate: nanToNull(s.OptimalLaunchRate),
		ValidShots:        s.ValidShots,
		QualityScore:      nanToNull(s.QualityScore),
	}
}

// Tool handlers

func (s *Server) handleGetSessionSummary(ctx context.Context, req *mcp.CallToolRequest, input summaryInput) (*mcp.CallToolResult, any, error) {
	summaries, err := s.proc.Summarize(processor.Filter{SessionID: input.SessionID, Club: input.Club})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarize sessions: %w", err)
	}

	if len(summaries) == 0 {
		return nil, map[string]interface{}{"message": "No valid shots matched."}, nil
	}

	rows := make([]summaryRow, len(summaries))
	for i, sum := range summaries {
		rows[i] = toSummaryRow(sum)
	}
	return nil, rows, nil
}

func (s *Server) handleGetClubComparison(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	comparisons, err := s.proc.CompareClubs()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compare clubs: %w", err)
	}

	if len(comparisons) == 0 {
		return nil, map[string]interface{}{"message": "No sessions have clubs assigned."}, nil
	}

	rows := make([]comparisonRow, len(comparisons))
	for i, c := range comparisons {
		rows[i] = comparisonRow{
			Club:              c.Club,
			MedianCarry:       nanToNull(c.MedianCarry),
			CarryStd:          nanToNull(c.CarryStd),
			AvgOffline:        nanToNull(c.AvgOffline),
			DirectionalStd:    nanToNull(c.DirectionalStd),
			StrikeQualityRate: nanToNull(c.StrikeQualityRate),
			AvgBallSpeed:      nanToNull(c.AvgBallSpeed),
			TotalShots:        c.TotalShots,
			NumSessions:       c.NumSessions,
		}
	}
	return nil, rows, nil
}

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input trendInput) (*mcp.CallToolResult, any, error) {
	if input.Window <= 0 {
		input.Window = 3
	}

	points, err := s.proc.Trend(input.Metric, input.Window, input.Club)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute trend: %w", err)
	}

	rows := make([]trendRow, len(points))
	for i, pt := range points {
		rows[i] = trendRow{
			SessionID:   pt.SessionID,
			SessionDate: pt.SessionDate.Format("2006-01-02"),
			Value:       nanToNull(pt.Value),
			Trend:       nanToNull(pt.Trend),
		}
	}
	return nil, rows, nil
}

func (s *Server) handleGetShotDistribution(ctx context.Context, req *mcp.CallToolRequest, input shotInput) (*mcp.CallToolResult, any, error) {
	points, err := s.proc.ShotDistribution(processor.Filter{SessionID: input.SessionID, Club: input.Club})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get shot distribution: %w", err)
	}

	rows := make([]shotRow, len(points))
	for i, pt := range points {
		rows[i] = shotRow{
			Carry:       pt.Carry,
			SideDist:    pt.SideDist,
			ShotType:    pt.ShotType,
			BallSpeed:   pt.BallSpeed,
			LaunchAngle: pt.LaunchAngle,
			SessionID:   pt.SessionID,
			SessionDate: pt.SessionDate.Format("2006-01-02"),
			Club:        pt.Club,
		}
	}
	return nil, rows, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	sessions, err := s.proc.Sessions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	rows := make([]sessionRow, len(sessions))
	for i, sess := range sessions {
		rows[i] = sessionRow{
			SessionID:   sess.ID,
			SessionDate: sess.Date.Format("2006-01-02"),
			Club:        sess.Club,
			Notes:       sess.Notes,
			Shots:       sess.Shots,
		}
	}
	return nil, rows, nil
}

func (s *Server) handleAssignClub(ctx context.Context, req *mcp.CallToolRequest, input assignClubInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.SessionID == "" || input.Club == "" {
		return nil, simpleOutput{}, fmt.Errorf("session_id and club are required")
	}

	if err := s.store.Assign(input.SessionID, input.Club, input.Notes); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to assign club: %w", err)
	}

	// Reload so the shot table picks up the new club tag.
	if err := s.proc.LoadSessions(processor.DefaultPattern); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to reload sessions: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Assigned %q to %s", input.Club, input.SessionID),
	}, nil
}

func (s *Server) handleListClubs(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	custom := make(map[string]struct{})
	for _, name := range s.store.CustomClubs() {
		custom[name] = struct{}{}
	}

	var rows []clubRow
	for _, name := range s.store.KnownClubs() {
		spec, ok := s.store.SpecFor(name)
		if !ok {
			continue
		}
		_, isCustom := custom[name]
		rows = append(rows, clubRow{
			Name:         name,
			Category:     string(spec.Category),
			TypicalCarry: spec.TypicalCarry,
			LaunchMin:    spec.LaunchRange[0],
			LaunchMax:    spec.LaunchRange[1],
			SpinMin:      spec.SpinRange[0],
			SpinMax:      spec.SpinRange[1],
			Custom:       isCustom,
		})
	}
	return nil, rows, nil
}
