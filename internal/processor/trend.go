// ABOUTME: Rolling-trend calculator over session summary metrics.
// ABOUTME: Trailing moving average in session order; no calendar gap filling.
package processor

import (
	"fmt"
	"math"

	"github.com/harperreed/golf/internal/models"
)

// TrendMetrics lists the summary metrics the trend calculator accepts,
// named by their summary-row JSON names.
var TrendMetrics = []string{
	"median_carry", "carry_std", "median_total",
	"avg_offline", "directional_std",
	"strike_quality_rate", "avg_smash",
	"avg_ball_speed", "avg_launch_angle", "avg_backspin",
	"slice_rate", "hook_rate", "straight_rate",
	"optimal_launch_rate", "valid_shots", "quality_score",
}

func metricValue(s models.SessionSummary, metric string) (float64, bool) {
	switch metric {
	case "median_carry":
		return s.MedianCarry, true
	case "carry_std":
		return s.CarryStd, true
	case "median_total":
		return s.MedianTotal, true
	case "avg_offline":
		return s.AvgOffline, true
	case "directional_std":
		return s.DirectionalStd, true
	case "strike_quality_rate":
		return s.StrikeQualityRate, true
	case "avg_smash":
		return s.AvgSmash, true
	case "avg_ball_speed":
		return s.AvgBallSpeed, true
	case "avg_launch_angle":
		return s.AvgLaunchAngle, true
	case "avg_backspin":
		return s.AvgBackspin, true
	case "slice_rate":
		return s.SliceRate, true
	case "hook_rate":
		return s.HookRate, true
	case "straight_rate":
		return s.StraightRate, true
	case "optimal_launch_rate":
		return s.OptimalLaunchRate, true
	case "valid_shots":
		return float64(s.ValidShots), true
	case "quality_score":
		return s.QualityScore, true
	}
	return 0, false
}

// Trend computes the session summary (optionally club-filtered) in
// ascending date order and attaches a trailing moving average of the
// chosen metric over window sessions. The first window-1 points have
// a NaN trend.
func (p *Processor) Trend(metric string, window int, club string) ([]models.TrendPoint, error) {
	if window < 1 {
		return nil, fmt.Errorf("trend window must be positive, got %d", window)
	}
	if _, ok := metricValue(models.SessionSummary{}, metric); !ok {
		return nil, fmt.Errorf("unknown trend metric %q", metric)
	}

	summaries, err := p.Summarize(Filter{Club: club})
	if err != nil {
		return nil, err
	}

	points := make([]models.TrendPoint, len(summaries))
	for i, s := range summaries {
		v, _ := metricValue(s, metric)
		points[i] = models.TrendPoint{
			SessionID:   s.SessionID,
			SessionDate: s.SessionDate,
			Value:       v,
			Trend:       math.NaN(),
		}
	}

	for i := window - 1; i < len(points); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += points[j].Value
		}
		points[i].Trend = sum / float64(window)
	}
	return points, nil
}
