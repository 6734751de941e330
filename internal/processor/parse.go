// ABOUTME: Field cleaning for raw launch-monitor CSV values.
// ABOUTME: Normalizes placeholder tokens, degree marks, unit suffixes, and signed side distance.
package processor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/harperreed/golf/internal/models"
)

// notMeasured is the placeholder the monitor emits for fields it
// could not capture.
const notMeasured = "--"

var sideDistRe = regexp.MustCompile(`(\d+\.?\d*)`)

// parseFloat converts a raw field to a float, treating the
// not-measured placeholder and anything unparseable as missing.
func parseFloat(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == notMeasured {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseAngle strips a trailing degree mark before the numeric cast.
func parseAngle(raw string) *float64 {
	return parseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "°"))
}

// parseFlightTime strips the seconds unit suffix before the numeric
// cast.
func parseFlightTime(raw string) *float64 {
	return parseFloat(strings.TrimSuffix(strings.TrimSpace(raw), " s"))
}

// parseSideDist converts a magnitude-plus-direction field into a
// signed offset: right is positive, left is negative, no direction
// letter means dead straight (zero). A direction letter with no
// parseable magnitude is missing.
func parseSideDist(raw string) *float64 {
	s := strings.TrimSpace(raw)
	var sign float64
	switch {
	case strings.Contains(s, "R"):
		sign = 1
	case strings.Contains(s, "L"):
		sign = -1
	default:
		zero := 0.0
		return &zero
	}
	m := sideDistRe.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	v *= sign
	return &v
}

// Flag thresholds. The optimal-launch window is fixed rather than
// club-adjusted; club specs only inform display.
const (
	validCarryMin    = 50
	validBallSpdMin  = 60
	qualitySmashMin  = 1.25
	mishitCarryMax   = 30
	optimalLaunchMin = 12
	optimalLaunchMax = 18
	optimalSpinMin   = 2000
	optimalSpinMax   = 4000
)

// enrich computes the quality flags on a shot. A flag whose inputs
// failed to parse is false, never an error.
func enrich(s *models.Shot) {
	s.ValidShot = gt(s.Carry, validCarryMin) && gt(s.BallSpeed, validBallSpdMin)
	s.QualityStrike = gt(s.SmashFactor, qualitySmashMin)
	s.Mishit = lt(s.Carry, mishitCarryMax)
	s.OptimalLaunch = between(s.LaunchAngle, optimalLaunchMin, optimalLaunchMax) &&
		between(s.BackSpin, optimalSpinMin, optimalSpinMax)
}

func gt(v *float64, bound float64) bool {
	return v != nil && *v > bound
}

func lt(v *float64, bound float64) bool {
	return v != nil && *v < bound
}

func between(v *float64, lo, hi float64) bool {
	return v != nil && *v >= lo && *v <= hi
}
