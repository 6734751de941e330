// ABOUTME: Session loader for launch-monitor CSV exports.
// ABOUTME: Discovers session files, parses shots, tags session identity and club metadata.
package processor

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/golf/internal/clubs"
	"github.com/harperreed/golf/internal/models"
)

// DefaultPattern matches session exports named by date.
const DefaultPattern = "session_*.csv"

const sessionDateLayout = "2006_01_02"

// requiredColumns are the CSV columns every session file must carry.
var requiredColumns = []string{
	"Carry", "Total", "Ball Speed", "Smash Factor", "Club Speed",
	"Launch Angle", "Side Angle", "Side Dist", "Back Spin",
	"Flight Time", "Type",
}

// Processor loads, cleans, and aggregates launch-monitor data across
// sessions. Each load replaces the previous shot table.
type Processor struct {
	dataDir string
	store   *clubs.Store
	logger  *slog.Logger

	shots []models.Shot
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the structured logger used during loads.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// New creates a Processor over a data directory and club metadata
// store.
func New(dataDir string, store *clubs.Store, opts ...Option) *Processor {
	p := &Processor{
		dataDir: dataDir,
		store:   store,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Shots returns the loaded, enriched shot table.
func (p *Processor) Shots() []models.Shot {
	return p.shots
}

// LoadSessions discovers session files matching pattern, parses and
// enriches every shot, and replaces the processor's shot table. An
// empty match set is ErrNoSessions; a file with a malformed name or
// missing columns fails the whole load.
func (p *Processor) LoadSessions(pattern string) error {
	if pattern == "" {
		pattern = DefaultPattern
	}

	files, err := filepath.Glob(filepath.Join(p.dataDir, pattern))
	if err != nil {
		return fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no files matching %q in %s", ErrNoSessions, pattern, p.dataDir)
	}
	sort.Strings(files)

	var shots []models.Shot
	for _, file := range files {
		fileShots, err := p.loadFile(file)
		if err != nil {
			return err
		}
		p.logger.Debug("loaded session file",
			slog.String("file", filepath.Base(file)),
			slog.Int("shots", len(fileShots)))
		shots = append(shots, fileShots...)
	}

	p.shots = shots
	p.logger.Info("sessions loaded",
		slog.Int("files", len(files)),
		slog.Int("shots", len(shots)))
	return nil
}

// loadFile parses one session CSV and tags every row with session
// identity, date, and club metadata.
func (p *Processor) loadFile(path string) ([]models.Shot, error) {
	base := filepath.Base(path)
	sessionID := strings.TrimSuffix(base, filepath.Ext(base))

	dateStr := strings.TrimPrefix(sessionID, "session_")
	sessionDate, err := time.Parse(sessionDateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parse session date from %q: %w", base, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", base, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", base, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", base)
	}

	colIdx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("read %s: missing required column %q", base, col)
		}
	}

	var club, notes *string
	if c, ok := p.store.Club(sessionID); ok {
		club = &c
	}
	if n, ok := p.store.Notes(sessionID); ok {
		notes = &n
	}

	shots := make([]models.Shot, 0, len(records)-1)
	for _, rec := range records[1:] {
		field := func(col string) string { return rec[colIdx[col]] }

		shot := models.Shot{
			Carry:         parseFloat(field("Carry")),
			Total:         parseFloat(field("Total")),
			BallSpeed:     parseFloat(field("Ball Speed")),
			SmashFactor:   parseFloat(field("Smash Factor")),
			ClubSpeed:     parseFloat(field("Club Speed")),
			LaunchAngle:   parseAngle(field("Launch Angle")),
			SideAngle:     parseAngle(field("Side Angle")),
			SideDist:      parseSideDist(field("Side Dist")),
			BackSpin:      parseFloat(field("Back Spin")),
			FlightTimeSec: parseFlightTime(field("Flight Time")),
			ShotType:      strings.TrimSpace(field("Type")),
			SessionID:     sessionID,
			SessionDate:   sessionDate,
			Club:          club,
			Notes:         notes,
		}
		enrich(&shot)
		shots = append(shots, shot)
	}

	return shots, nil
}
