// ABOUTME: Club metadata store backed by the club_metadata.json sidecar.
// ABOUTME: Maps sessions to clubs and notes, holds custom club specs, rewrites on every mutation.
package clubs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Backend abstracts the durable byte store behind the metadata file.
// This allows swapping implementations (e.g., for testing).
type Backend interface {
	// Load returns the stored bytes, or nil when nothing has been
	// stored yet.
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileBackend persists metadata to a single JSON file on disk.
type FileBackend struct {
	path string
}

// Compile-time check that FileBackend implements Backend.
var _ Backend = (*FileBackend)(nil)

// NewFileBackend creates a file backend at the given path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the metadata file, returning nil bytes when it does not
// exist yet.
func (b *FileBackend) Load() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Save writes the metadata file, creating parent directories as
// needed.
func (b *FileBackend) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0750); err != nil {
		return fmt.Errorf("create metadata directory: %w", err)
	}
	return os.WriteFile(b.path, data, 0600)
}

// metadata is the on-disk shape of the sidecar file.
type metadata struct {
	Sessions    map[string]string `json:"sessions"`
	CustomClubs map[string]Spec   `json:"custom_clubs"`
	Notes       map[string]string `json:"notes"`
}

// Store holds session-to-club assignments and custom club specs.
// The whole store is loaded at construction and rewritten on every
// mutation. Single process, single writer.
type Store struct {
	backend Backend
	meta    metadata
}

// Open creates a Store persisted to the JSON file at path.
func Open(path string) (*Store, error) {
	return NewStore(NewFileBackend(path))
}

// NewStore creates a Store over the given backend. A backend with no
// stored data yields an empty store; malformed stored data is an
// error.
func NewStore(backend Backend) (*Store, error) {
	data, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("load club metadata: %w", err)
	}

	s := &Store{backend: backend}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.meta); err != nil {
			return nil, fmt.Errorf("parse club metadata: %w", err)
		}
	}
	if s.meta.Sessions == nil {
		s.meta.Sessions = make(map[string]string)
	}
	if s.meta.CustomClubs == nil {
		s.meta.CustomClubs = make(map[string]Spec)
	}
	if s.meta.Notes == nil {
		s.meta.Notes = make(map[string]string)
	}
	return s, nil
}

// save rewrites the entire store through the backend.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode club metadata: %w", err)
	}
	if err := s.backend.Save(data); err != nil {
		return fmt.Errorf("save club metadata: %w", err)
	}
	return nil
}

// Club returns the club assigned to a session.
func (s *Store) Club(sessionID string) (string, bool) {
	club, ok := s.meta.Sessions[sessionID]
	return club, ok
}

// Notes returns the notes recorded for a session.
func (s *Store) Notes(sessionID string) (string, bool) {
	notes, ok := s.meta.Notes[sessionID]
	return notes, ok
}

// Assign associates a club (and optional notes) with a session and
// persists immediately. The club name is not validated here; callers
// decide whether unknown names are acceptable.
func (s *Store) Assign(sessionID, club, notes string) error {
	s.meta.Sessions[sessionID] = club
	if notes != "" {
		s.meta.Notes[sessionID] = notes
	}
	return s.save()
}

// Remove deletes a session's club assignment and notes. Removing an
// absent session is not an error.
func (s *Store) Remove(sessionID string) error {
	delete(s.meta.Sessions, sessionID)
	delete(s.meta.Notes, sessionID)
	return s.save()
}

// AddCustomClub inserts or overwrites a custom club specification and
// persists immediately.
func (s *Store) AddCustomClub(name string, spec Spec) error {
	s.meta.CustomClubs[name] = spec
	return s.save()
}

// SpecFor returns the specification for a club name. Custom clubs
// take precedence over standard ones.
func (s *Store) SpecFor(name string) (Spec, bool) {
	if spec, ok := s.meta.CustomClubs[name]; ok {
		return spec, true
	}
	spec, ok := StandardClubs[name]
	return spec, ok
}

// KnownClubs returns the sorted union of standard and custom club
// names.
func (s *Store) KnownClubs() []string {
	seen := make(map[string]struct{}, len(StandardClubs)+len(s.meta.CustomClubs))
	for name := range StandardClubs {
		seen[name] = struct{}{}
	}
	for name := range s.meta.CustomClubs {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CustomClubs returns the sorted custom club names.
func (s *Store) CustomClubs() []string {
	names := make([]string, 0, len(s.meta.CustomClubs))
	for name := range s.meta.CustomClubs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SessionsFor returns the sorted session IDs assigned to a club.
func (s *Store) SessionsFor(club string) []string {
	var ids []string
	for id, c := range s.meta.Sessions {
		if c == club {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// ClubsAssigned returns the sorted set of clubs with at least one
// session assigned.
func (s *Store) ClubsAssigned() []string {
	seen := make(map[string]struct{})
	for _, club := range s.meta.Sessions {
		seen[club] = struct{}{}
	}
	clubs := make([]string, 0, len(seen))
	for club := range seen {
		clubs = append(clubs, club)
	}
	sort.Strings(clubs)
	return clubs
}

// Assignments returns a copy of the session-to-club mapping.
func (s *Store) Assignments() map[string]string {
	out := make(map[string]string, len(s.meta.Sessions))
	for id, club := range s.meta.Sessions {
		out[id] = club
	}
	return out
}
