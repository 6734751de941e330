// ABOUTME: Aggregation engine for enriched shot data.
// ABOUTME: Session summaries, club comparison, composite quality score, session queries.
package processor

import (
	"math"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/harperreed/golf/internal/models"
)

// Filter narrows a query to one session and/or one club. Empty
// strings leave the dimension unfiltered.
type Filter struct {
	SessionID string
	Club      string
}

func (f Filter) match(s *models.Shot) bool {
	if f.SessionID != "" && s.SessionID != f.SessionID {
		return false
	}
	if f.Club != "" && (s.Club == nil || *s.Club != f.Club) {
		return false
	}
	return true
}

// group accumulates the valid shots of one (session, date, club)
// combination.
type group struct {
	sessionID string
	date      time.Time
	club      *string
	shots     []*models.Shot
}

// Summarize computes summary statistics for every (session, date,
// club) group passing the filter. Only valid shots feed the
// statistics; groups keep ascending date order.
func (p *Processor) Summarize(f Filter) ([]models.SessionSummary, error) {
	if p.shots == nil {
		return nil, ErrNotLoaded
	}

	groups := make(map[string]*group)
	for i := range p.shots {
		s := &p.shots[i]
		if !f.match(s) || !s.ValidShot {
			continue
		}
		key := s.SessionID + "\x00"
		if s.Club != nil {
			key += *s.Club
		}
		g, ok := groups[key]
		if !ok {
			g = &group{sessionID: s.SessionID, date: s.SessionDate, club: s.Club}
			groups[key] = g
		}
		g.shots = append(g.shots, s)
	}

	summaries := make([]models.SessionSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, summarizeGroup(g))
	}

	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if !a.SessionDate.Equal(b.SessionDate) {
			return a.SessionDate.Before(b.SessionDate)
		}
		if a.SessionID != b.SessionID {
			return a.SessionID < b.SessionID
		}
		return clubKey(a.Club) < clubKey(b.Club)
	})
	return summaries, nil
}

func clubKey(club *string) string {
	if club == nil {
		return ""
	}
	return "\x01" + *club
}

func summarizeGroup(g *group) models.SessionSummary {
	n := float64(len(g.shots))

	carries := collect(g.shots, func(s *models.Shot) *float64 { return s.Carry })
	sides := collect(g.shots, func(s *models.Shot) *float64 { return s.SideDist })

	absSides := make([]float64, len(sides))
	for i, v := range sides {
		absSides[i] = math.Abs(v)
	}

	sum := models.SessionSummary{
		SessionID:   g.sessionID,
		SessionDate: g.date,
		Club:        g.club,

		MedianCarry:    median(carries),
		CarryStd:       stddev(carries),
		MedianTotal:    median(collect(g.shots, func(s *models.Shot) *float64 { return s.Total })),
		AvgOffline:     mean(absSides),
		DirectionalStd: stddev(sides),

		StrikeQualityRate: rate(g.shots, func(s *models.Shot) bool { return s.QualityStrike }),
		AvgSmash:          mean(collect(g.shots, func(s *models.Shot) *float64 { return s.SmashFactor })),

		AvgBallSpeed:   mean(collect(g.shots, func(s *models.Shot) *float64 { return s.BallSpeed })),
		AvgLaunchAngle: mean(collect(g.shots, func(s *models.Shot) *float64 { return s.LaunchAngle })),
		AvgBackspin:    mean(collect(g.shots, func(s *models.Shot) *float64 { return s.BackSpin })),

		SliceRate:    rate(g.shots, shapeIs("Slice")),
		HookRate:     rate(g.shots, shapeIs("Hook")),
		StraightRate: rate(g.shots, shapeIs("Straight")),

		OptimalLaunchRate: rate(g.shots, func(s *models.Shot) bool { return s.OptimalLaunch }),
		ValidShots:        int(n),
	}
	sum.QualityScore = qualityScore(sum)
	return sum
}

// qualityScore blends distance consistency, directional consistency,
// strike quality, and shot-shape straightness into a 0-1 composite.
// NaN inputs (degenerate groups) propagate.
func qualityScore(s models.SessionSummary) float64 {
	score := (1-s.CarryStd/100)*0.3 +
		(1-s.DirectionalStd/100)*0.3 +
		s.StrikeQualityRate*0.2 +
		(1-(s.SliceRate+s.HookRate))*0.2
	return clip(score, 0, 1)
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CompareClubs aggregates valid shots with a non-null club into one
// row per club, ordered by descending median carry.
func (p *Processor) CompareClubs() ([]models.ClubComparison, error) {
	if p.shots == nil {
		return nil, ErrNotLoaded
	}

	byClub := make(map[string][]*models.Shot)
	sessions := make(map[string]map[string]struct{})
	for i := range p.shots {
		s := &p.shots[i]
		if !s.ValidShot || !s.HasClub() {
			continue
		}
		club := *s.Club
		byClub[club] = append(byClub[club], s)
		if sessions[club] == nil {
			sessions[club] = make(map[string]struct{})
		}
		sessions[club][s.SessionID] = struct{}{}
	}

	comparisons := make([]models.ClubComparison, 0, len(byClub))
	for club, shots := range byClub {
		carries := collect(shots, func(s *models.Shot) *float64 { return s.Carry })
		sides := collect(shots, func(s *models.Shot) *float64 { return s.SideDist })
		absSides := make([]float64, len(sides))
		for i, v := range sides {
			absSides[i] = math.Abs(v)
		}

		comparisons = append(comparisons, models.ClubComparison{
			Club:              club,
			MedianCarry:       median(carries),
			CarryStd:          stddev(carries),
			AvgOffline:        mean(absSides),
			DirectionalStd:    stddev(sides),
			StrikeQualityRate: rate(shots, func(s *models.Shot) bool { return s.QualityStrike }),
			AvgBallSpeed:      mean(collect(shots, func(s *models.Shot) *float64 { return s.BallSpeed })),
			TotalShots:        len(shots),
			NumSessions:       len(sessions[club]),
		})
	}

	sort.Slice(comparisons, func(i, j int) bool {
		a, b := comparisons[i], comparisons[j]
		if a.MedianCarry != b.MedianCarry {
			// NaN medians sink to the bottom.
			if math.IsNaN(a.MedianCarry) {
				return false
			}
			if math.IsNaN(b.MedianCarry) {
				return true
			}
			return a.MedianCarry > b.MedianCarry
		}
		return a.Club < b.Club
	})
	return comparisons, nil
}

// ShotDistribution returns the valid shot-level rows passing the
// filter, for scatter-style consumers.
func (p *Processor) ShotDistribution(f Filter) ([]models.ShotPoint, error) {
	if p.shots == nil {
		return nil, ErrNotLoaded
	}

	var points []models.ShotPoint
	for i := range p.shots {
		s := &p.shots[i]
		if !s.ValidShot || !f.match(s) {
			continue
		}
		points = append(points, models.ShotPoint{
			Carry:       s.Carry,
			SideDist:    s.SideDist,
			ShotType:    s.ShotType,
			BallSpeed:   s.BallSpeed,
			LaunchAngle: s.LaunchAngle,
			SessionID:   s.SessionID,
			SessionDate: s.SessionDate,
			Club:        s.Club,
		})
	}
	return points, nil
}

// SessionInfo describes one loaded session for listings.
type SessionInfo struct {
	ID    string
	Date  time.Time
	Club  *string
	Notes *string
	Shots int
}

// Sessions returns the distinct loaded sessions in ascending date
// order.
func (p *Processor) Sessions() ([]SessionInfo, error) {
	if p.shots == nil {
		return nil, ErrNotLoaded
	}

	byID := make(map[string]*SessionInfo)
	for i := range p.shots {
		s := &p.shots[i]
		info, ok := byID[s.SessionID]
		if !ok {
			info = &SessionInfo{ID: s.SessionID, Date: s.SessionDate, Club: s.Club, Notes: s.Notes}
			byID[s.SessionID] = info
		}
		info.Shots++
	}

	sessions := make([]SessionInfo, 0, len(byID))
	for _, info := range byID {
		sessions = append(sessions, *info)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].Date.Equal(sessions[j].Date) {
			return sessions[i].Date.Before(sessions[j].Date)
		}
		return sessions[i].ID < sessions[j].ID
	})
	return sessions, nil
}

// ClubsUsed returns the sorted set of clubs present in the loaded
// data.
func (p *Processor) ClubsUsed() ([]string, error) {
	if p.shots == nil {
		return nil, ErrNotLoaded
	}

	seen := make(map[string]struct{})
	for i := range p.shots {
		if p.shots[i].HasClub() {
			seen[*p.shots[i].Club] = struct{}{}
		}
	}
	clubs := make([]string, 0, len(seen))
	for club := range seen {
		clubs = append(clubs, club)
	}
	sort.Strings(clubs)
	return clubs, nil
}

// SessionsMissingClub returns the sorted session IDs loaded without a
// club assignment.
func (p *Processor) SessionsMissingClub() ([]string, error) {
	if p.shots == nil {
		return nil, ErrNotLoaded
	}

	seen := make(map[string]struct{})
	for i := range p.shots {
		s := &p.shots[i]
		if s.Club == nil {
			seen[s.SessionID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// LatestSessionID returns the lexicographically greatest session ID,
// which under the date-encoded naming convention is the most recent.
func (p *Processor) LatestSessionID() (string, error) {
	if p.shots == nil {
		return "", ErrNotLoaded
	}

	latest := ""
	for i := range p.shots {
		if p.shots[i].SessionID > latest {
			latest = p.shots[i].SessionID
		}
	}
	return latest, nil
}

// Statistics helpers. Missing values are excluded before any
// computation; statistics of empty (or for stddev, single-element)
// inputs are NaN.

func collect(shots []*models.Shot, get func(*models.Shot) *float64) []float64 {
	out := make([]float64, 0, len(shots))
	for _, s := range shots {
		if v := get(s); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func rate(shots []*models.Shot, pred func(*models.Shot) bool) float64 {
	if len(shots) == 0 {
		return math.NaN()
	}
	count := 0
	for _, s := range shots {
		if pred(s) {
			count++
		}
	}
	return float64(count) / float64(len(shots))
}

func shapeIs(shape string) func(*models.Shot) bool {
	return func(s *models.Shot) bool {
		return strings.Contains(s.ShotType, shape)
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.StdDev(xs, nil)
}

// median returns the middle value, averaging the two middle values for
// even-length input.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
