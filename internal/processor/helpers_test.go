// ABOUTME: Shared test helpers for processor tests.
// ABOUTME: Builds session CSV fixtures and loaded processors over temp directories.
package processor

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/golf/internal/clubs"
)

const csvHeader = "Carry,Total,Ball Speed,Smash Factor,Club Speed,Launch Angle,Side Angle,Side Dist,Back Spin,Flight Time,Type"

// row builds one CSV shot row with sensible defaults for the columns
// a test does not care about.
func row(carry, ballSpeed, smash, sideDist, launch, spin, shotType string) string {
	return strings.Join([]string{
		carry, "0", ballSpeed, smash, "90", launch, "0.5°", sideDist, spin, "5.9 s", shotType,
	}, ",")
}

// writeSessionCSV writes a session export named for the given
// YYYY_MM_DD date into dir.
func writeSessionCSV(t *testing.T, dir, date string, rows ...string) {
	t.Helper()
	content := csvHeader + "\n" + strings.Join(rows, "\n") + "\n"
	path := filepath.Join(dir, "session_"+date+".csv")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
}

// newTestStore creates a club metadata store persisted under the test
// temp dir.
func newTestStore(t *testing.T) *clubs.Store {
	t.Helper()
	store, err := clubs.Open(filepath.Join(t.TempDir(), "club_metadata.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

// quietLogger discards processor log output in tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newLoadedProcessor loads every session fixture in dir.
func newLoadedProcessor(t *testing.T, dir string, store *clubs.Store) *Processor {
	t.Helper()
	p := New(dir, store, WithLogger(quietLogger()))
	if err := p.LoadSessions(DefaultPattern); err != nil {
		t.Fatalf("LoadSessions: %v", err)
	}
	return p
}
