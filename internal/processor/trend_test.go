// ABOUTME: Tests for the rolling-trend calculator.
// ABOUTME: Verifies the trailing window, NaN warmup points, and input validation.
package processor

import (
	"math"
	"strconv"
	"testing"
)

// fiveSessionDir builds five single-shot sessions with median carries
// 110, 120, 130, 140, 150 in date order.
func fiveSessionDir(t *testing.T) *Processor {
	t.Helper()
	dir := t.TempDir()
	dates := []string{"2025_01_05", "2025_01_12", "2025_01_19", "2025_01_26", "2025_02_02"}
	for i, date := range dates {
		carry := strconv.Itoa(110 + 10*i)
		writeSessionCSV(t, dir, date,
			row(carry, "100", "1.3", "0.0", "14", "3000", "Straight"),
		)
	}
	return newLoadedProcessor(t, dir, newTestStore(t))
}

func TestTrendTrailingWindow(t *testing.T) {
	p := fiveSessionDir(t)

	points, err := p.Trend("median_carry", 3, "")
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}

	wantValues := []float64{110, 120, 130, 140, 150}
	wantTrends := []float64{math.NaN(), math.NaN(), 120, 130, 140}
	for i, pt := range points {
		if !approx(pt.Value, wantValues[i]) {
			t.Errorf("point %d value = %v, want %v", i, pt.Value, wantValues[i])
		}
		if math.IsNaN(wantTrends[i]) {
			if !math.IsNaN(pt.Trend) {
				t.Errorf("point %d trend = %v, want NaN warmup", i, pt.Trend)
			}
		} else if !approx(pt.Trend, wantTrends[i]) {
			t.Errorf("point %d trend = %v, want %v", i, pt.Trend, wantTrends[i])
		}
	}
}

func TestTrendWindowOne(t *testing.T) {
	p := fiveSessionDir(t)

	points, err := p.Trend("median_carry", 1, "")
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	for i, pt := range points {
		if !approx(pt.Trend, pt.Value) {
			t.Errorf("point %d: window 1 trend %v should equal value %v", i, pt.Trend, pt.Value)
		}
	}
}

func TestTrendWindowLargerThanData(t *testing.T) {
	p := fiveSessionDir(t)

	points, err := p.Trend("median_carry", 10, "")
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	for i, pt := range points {
		if !math.IsNaN(pt.Trend) {
			t.Errorf("point %d trend = %v, want NaN when window exceeds data", i, pt.Trend)
		}
	}
}

func TestTrendValidation(t *testing.T) {
	p := fiveSessionDir(t)

	if _, err := p.Trend("median_carry", 0, ""); err == nil {
		t.Error("expected error for non-positive window")
	}
	if _, err := p.Trend("longest_drive", 3, ""); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestTrendMetricCoverage(t *testing.T) {
	p := fiveSessionDir(t)

	for _, metric := range TrendMetrics {
		if _, err := p.Trend(metric, 2, ""); err != nil {
			t.Errorf("Trend(%q): %v", metric, err)
		}
	}
}

func TestTrendClubFilter(t *testing.T) {
	dir := t.TempDir()
	writeSessionCSV(t, dir, "2025_01_05",
		row("150", "110", "1.3", "0.0", "16", "5500", "Straight"),
	)
	writeSessionCSV(t, dir, "2025_01_12",
		row("240", "150", "1.45", "0.0", "13", "2500", "Straight"),
	)

	store := newTestStore(t)
	if err := store.Assign("session_2025_01_05", "7 Iron", ""); err != nil {
		t.Fatal(err)
	}
	if err := store.Assign("session_2025_01_12", "Driver", ""); err != nil {
		t.Fatal(err)
	}
	p := newLoadedProcessor(t, dir, store)

	points, err := p.Trend("median_carry", 1, "Driver")
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if len(points) != 1 || points[0].SessionID != "session_2025_01_12" {
		t.Errorf("club filter returned %v", points)
	}
}
