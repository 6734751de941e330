// ABOUTME: Aggregate row types produced by the processor.
// ABOUTME: Session summaries, club comparisons, trend points, shot distribution points.
package models

import "time"

// SessionSummary holds aggregated statistics for one
// (session, session date, club) group, computed over valid shots.
// Aggregate floats use NaN when a statistic is undefined for the
// group (e.g. standard deviation of fewer than two shots).
type SessionSummary struct {
	SessionID   string    `json:"session_id"`
	SessionDate time.Time `json:"session_date"`
	Club        *string   `json:"club"`

	MedianCarry    float64 `json:"median_carry"`
	CarryStd       float64 `json:"carry_std"`
	MedianTotal    float64 `json:"median_total"`
	AvgOffline     float64 `json:"avg_offline"`
	DirectionalStd float64 `json:"directional_std"`

	StrikeQualityRate float64 `json:"strike_quality_rate"`
	AvgSmash          float64 `json:"avg_smash"`

	AvgBallSpeed   float64 `json:"avg_ball_speed"`
	AvgLaunchAngle float64 `json:"avg_launch_angle"`
	AvgBackspin    float64 `json:"avg_backspin"`

	SliceRate    float64 `json:"slice_rate"`
	HookRate     float64 `json:"hook_rate"`
	StraightRate float64 `json:"straight_rate"`

	OptimalLaunchRate float64 `json:"optimal_launch_rate"`
	ValidShots        int     `json:"valid_shots"`
	QualityScore      float64 `json:"quality_score"`
}

// ClubComparison holds cross-session statistics for one club,
// computed over valid shots with that club assigned.
type ClubComparison struct {
	Club              string  `json:"club"`
	MedianCarry       float64 `json:"median_carry"`
	CarryStd          float64 `json:"carry_std"`
	AvgOffline        float64 `json:"avg_offline"`
	DirectionalStd    float64 `json:"directional_std"`
	StrikeQualityRate float64 `json:"strike_quality_rate"`
	AvgBallSpeed      float64 `json:"avg_ball_speed"`
	TotalShots        int     `json:"total_shots"`
	NumSessions       int     `json:"num_sessions"`
}

// TrendPoint is one session's value of a summary metric plus its
// rolling mean. Trend is NaN for the first window-1 sessions.
type TrendPoint struct {
	SessionID   string    `json:"session_id"`
	SessionDate time.Time `json:"session_date"`
	Value       float64   `json:"value"`
	Trend       float64   `json:"trend"`
}

// ShotPoint is the shot-level output row for scatter-style consumers.
type ShotPoint struct {
	Carry       *float64  `json:"carry"`
	SideDist    *float64  `json:"side_dist_signed"`
	ShotType    string    `json:"type"`
	BallSpeed   *float64  `json:"ball_speed"`
	LaunchAngle *float64  `json:"launch_angle"`
	SessionID   string    `json:"session_id"`
	SessionDate time.Time `json:"session_date"`
	Club        *string   `json:"club"`
}
