// ABOUTME: Tests for MCP tool and resource handlers.
// ABOUTME: Exercises handlers directly over fixture session data.
package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/golf/internal/clubs"
	"github.com/harperreed/golf/internal/processor"
)

const fixtureCSV = `Carry,Total,Ball Speed,Smash Factor,Club Speed,Launch Angle,Side Angle,Side Dist,Back Spin,Flight Time,Type
150.0,162.0,110.0,1.30,84.6,16.0°,0.8°,3.0R,5500,5.5 s,Straight
160.0,171.0,112.0,1.32,84.8,16.5°,1.1°,2.0L,5200,5.7 s,Straight
--,--,--,--,--,--,--,--,--,--,Mishit
`

const driverCSV = `Carry,Total,Ball Speed,Smash Factor,Club Speed,Launch Angle,Side Angle,Side Dist,Back Spin,Flight Time,Type
240.0,262.0,152.0,1.45,104.8,13.5°,2.0°,12.0R,2500,6.4 s,Slice
`

// newTestServer loads two fixture sessions, the first assigned to a
// 7 Iron, the second left unassigned.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "session_2025_01_13.csv", fixtureCSV)
	writeFixture(t, dir, "session_2025_01_20.csv", driverCSV)

	store, err := clubs.Open(filepath.Join(t.TempDir(), "club_metadata.json"))
	require.NoError(t, err)
	require.NoError(t, store.Assign("session_2025_01_13", "7 Iron", "range work"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	proc := processor.New(dir, store, processor.WithLogger(logger))
	require.NoError(t, proc.LoadSessions(processor.DefaultPattern))

	server, err := NewServer(proc, store)
	require.NoError(t, err)
	return server
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestGetSessionSummary(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleGetSessionSummary(context.Background(), nil, summaryInput{})
	require.NoError(t, err)

	rows, ok := out.([]summaryRow)
	require.True(t, ok, "expected summary rows, got %T", out)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "session_2025_01_13", first.SessionID)
	assert.Equal(t, "2025-01-13", first.SessionDate)
	require.NotNil(t, first.Club)
	assert.Equal(t, "7 Iron", *first.Club)
	assert.Equal(t, 2, first.ValidShots)
	require.NotNil(t, first.MedianCarry)
	assert.InDelta(t, 155.0, *first.MedianCarry, 1e-9)
	require.NotNil(t, first.QualityScore)

	// Single-shot session: spread statistics were NaN and must
	// marshal as nulls.
	second := rows[1]
	assert.Nil(t, second.Club)
	assert.Nil(t, second.CarryStd)
	assert.Nil(t, second.QualityScore)
	require.NotNil(t, second.MedianCarry)
	assert.InDelta(t, 240.0, *second.MedianCarry, 1e-9)

	data, err := json.Marshal(rows)
	require.NoError(t, err, "rows must marshal without NaN errors")
	assert.Contains(t, string(data), `"carry_std":null`)
}

func TestGetSessionSummaryFiltered(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleGetSessionSummary(context.Background(), nil, summaryInput{Club: "7 Iron"})
	require.NoError(t, err)
	rows, ok := out.([]summaryRow)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "session_2025_01_13", rows[0].SessionID)

	_, out, err = s.handleGetSessionSummary(context.Background(), nil, summaryInput{Club: "Putter"})
	require.NoError(t, err)
	msg, ok := out.(map[string]interface{})
	require.True(t, ok, "empty result should be a message, got %T", out)
	assert.Contains(t, msg["message"], "No valid shots")
}

func TestGetClubComparison(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleGetClubComparison(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	rows, ok := out.([]comparisonRow)
	require.True(t, ok)
	require.Len(t, rows, 1, "session without a club must not appear")
	assert.Equal(t, "7 Iron", rows[0].Club)
	assert.Equal(t, 2, rows[0].TotalShots)
	assert.Equal(t, 1, rows[0].NumSessions)
}

func TestGetTrend(t *testing.T) {
	s := newTestServer(t)

	// Window 0 falls back to the default window of 3, so two
	// sessions are both warmup points.
	_, out, err := s.handleGetTrend(context.Background(), nil, trendInput{Metric: "median_carry"})
	require.NoError(t, err)
	rows, ok := out.([]trendRow)
	require.True(t, ok)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Nil(t, r.Trend)
		assert.NotNil(t, r.Value)
	}

	_, out, err = s.handleGetTrend(context.Background(), nil, trendInput{Metric: "median_carry", Window: 1})
	require.NoError(t, err)
	rows = out.([]trendRow)
	require.NotNil(t, rows[0].Trend)
	assert.InDelta(t, *rows[0].Value, *rows[0].Trend, 1e-9)

	_, _, err = s.handleGetTrend(context.Background(), nil, trendInput{Metric: "longest_drive"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown trend metric")
}

func TestGetShotDistribution(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleGetShotDistribution(context.Background(), nil, shotInput{})
	require.NoError(t, err)
	rows, ok := out.([]shotRow)
	require.True(t, ok)
	require.Len(t, rows, 3, "placeholder row is not a valid shot")

	_, out, err = s.handleGetShotDistribution(context.Background(), nil, shotInput{SessionID: "session_2025_01_20"})
	require.NoError(t, err)
	rows = out.([]shotRow)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].SideDist)
	assert.InDelta(t, 12.0, *rows[0].SideDist, 1e-9)
	assert.Equal(t, "Slice", rows[0].ShotType)
}

func TestListSessions(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleListSessions(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	rows, ok := out.([]sessionRow)
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, "session_2025_01_13", rows[0].SessionID)
	assert.Equal(t, 3, rows[0].Shots, "session counts include invalid shots")
	require.NotNil(t, rows[0].Notes)
	assert.Equal(t, "range work", *rows[0].Notes)
	assert.Nil(t, rows[1].Club)
}

func TestAssignClub(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleAssignClub(context.Background(), nil, assignClubInput{SessionID: "session_2025_01_20"})
	require.Error(t, err, "club is required")

	_, out, err := s.handleAssignClub(context.Background(), nil, assignClubInput{
		SessionID: "session_2025_01_20",
		Club:      "Driver",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "Driver")

	// The reload retags loaded shots with the new assignment.
	_, listed, err := s.handleListSessions(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	rows := listed.([]sessionRow)
	require.NotNil(t, rows[1].Club)
	assert.Equal(t, "Driver", *rows[1].Club)
}

func TestListClubs(t *testing.T) {
	s := newTestServer(t)

	_, out, err := s.handleListClubs(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	rows, ok := out.([]clubRow)
	require.True(t, ok)
	require.Len(t, rows, len(clubs.StandardClubs))

	var driver *clubRow
	for i := range rows {
		if rows[i].Name == "Driver" {
			driver = &rows[i]
		}
		assert.False(t, rows[i].Custom)
	}
	require.NotNil(t, driver)
	assert.Equal(t, "wood", driver.Category)
	assert.InDelta(t, 250, driver.TypicalCarry, 1e-9)

	require.NoError(t, s.store.AddCustomClub("Big Stick", clubs.Spec{
		Category:     clubs.CategoryWood,
		TypicalCarry: 265,
		LaunchRange:  [2]float64{11, 15},
		SpinRange:    [2]float64{2000, 2600},
	}))

	_, out, err = s.handleListClubs(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	rows = out.([]clubRow)
	require.Len(t, rows, len(clubs.StandardClubs)+1)
	for _, r := range rows {
		if r.Name == "Big Stick" {
			assert.True(t, r.Custom)
		}
	}
}

func TestSummaryResource(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleSummaryResource(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "golf://summary", res.Contents[0].URI)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)

	var payload struct {
		LatestSession string       `json:"latest_session"`
		Sessions      []summaryRow `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &payload))
	assert.Equal(t, "session_2025_01_20", payload.LatestSession)
	assert.Len(t, payload.Sessions, 2)
}

func TestClubsResource(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleClubsResource(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)

	var payload struct {
		KnownClubs          []string          `json:"known_clubs"`
		ClubsUsed           []string          `json:"clubs_used"`
		Assignments         map[string]string `json:"assignments"`
		SessionsMissingClub []string          `json:"sessions_missing_club"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &payload))
	assert.Contains(t, payload.KnownClubs, "Driver")
	assert.Equal(t, []string{"7 Iron"}, payload.ClubsUsed)
	assert.Equal(t, "7 Iron", payload.Assignments["session_2025_01_13"])
	assert.Equal(t, []string{"session_2025_01_20"}, payload.SessionsMissingClub)
}

func TestNanToNull(t *testing.T) {
	assert.Nil(t, nanToNull(math.NaN()))

	v := nanToNull(1.5)
	require.NotNil(t, v)
	assert.Equal(t, 1.5, *v)

	zero := nanToNull(0)
	require.NotNil(t, zero, "zero is a real value, not missing")
}
