// ABOUTME: Shot model for launch-monitor data.
// ABOUTME: One record per ball strike with nullable measurements and quality flags.
package models

import "time"

// Shot represents a single recorded ball strike from a launch-monitor
// session export. Measurements the monitor could not capture are nil,
// never zero.
type Shot struct {
	Carry         *float64
	Total         *float64
	BallSpeed     *float64
	SmashFactor   *float64
	ClubSpeed     *float64
	LaunchAngle   *float64
	SideAngle     *float64
	SideDist      *float64 // signed: right positive, left negative
	BackSpin      *float64
	FlightTimeSec *float64
	ShotType      string // free-text shape category, e.g. "Slice", "Draw"

	SessionID   string
	SessionDate time.Time
	Club        *string
	Notes       *string

	// Derived quality flags. A flag whose inputs are missing is false.
	ValidShot     bool
	QualityStrike bool
	Mishit        bool
	OptimalLaunch bool
}

// HasClub reports whether the shot's session has an assigned club.
func (s *Shot) HasClub() bool {
	return s.Club != nil && *s.Club != ""
}
