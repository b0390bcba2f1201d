// ABOUTME: YAML-backed store for the last viewed page
// ABOUTME: Lets `datepage page --next` continue from where the previous run stopped

package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harper/datepage/internal/atomicfile"
	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/config"
	"github.com/harper/datepage/internal/paginate"
)

// Page is the persisted pagination state.
type Page struct {
	Date       time.Time
	Unit       calendar.Unit
	Multiplier int
	Direction  paginate.Direction
	UpdatedAt  time.Time
}

// FromPager captures the pager's current inputs.
func FromPager(p *paginate.Pager, now time.Time) *Page {
	s := p.State()
	return &Page{
		Date:       s.Date,
		Unit:       s.Unit,
		Multiplier: s.Multiplier,
		Direction:  s.Direction,
		UpdatedAt:  now,
	}
}

// Options converts the page back into pager options.
func (pg *Page) Options() []paginate.Option {
	return []paginate.Option{
		paginate.WithDate(pg.Date),
		paginate.WithUnit(pg.Unit.String()),
		paginate.WithMultiplier(pg.Multiplier),
		paginate.WithDirection(pg.Direction),
	}
}

// pageEntry is the on-disk form of a Page.
type pageEntry struct {
	Date       string `yaml:"date"`
	Unit       string `yaml:"unit"`
	Multiplier int    `yaml:"multiplier"`
	Direction  string `yaml:"direction"`
	UpdatedAt  string `yaml:"updated_at,omitempty"`
}

// toModel converts a pageEntry to a Page.
func (e *pageEntry) toModel() (*Page, error) {
	date, err := time.Parse(time.RFC3339Nano, e.Date)
	if err != nil {
		return nil, fmt.Errorf("parse page date %q: %w", e.Date, err)
	}
	unit, err := calendar.ParseUnit(e.Unit)
	if err != nil {
		return nil, fmt.Errorf("parse page unit: %w", err)
	}
	dir, err := paginate.ParseDirection(e.Direction)
	if err != nil {
		return nil, fmt.Errorf("parse page direction: %w", err)
	}
	if e.Multiplier < 1 {
		return nil, fmt.Errorf("%w: page multiplier %d", calendar.ErrInvalidArgument, e.Multiplier)
	}

	pg := &Page{Date: date, Unit: unit, Multiplier: e.Multiplier, Direction: dir}
	if e.UpdatedAt != "" {
		t, err := time.Parse(time.RFC3339, e.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse page updated_at %q: %w", e.UpdatedAt, err)
		}
		pg.UpdatedAt = t
	}
	return pg, nil
}

// fromModel converts a Page to a pageEntry.
func fromModel(pg *Page) pageEntry {
	entry := pageEntry{
		Date:       pg.Date.Format(time.RFC3339Nano),
		Unit:       pg.Unit.String(),
		Multiplier: pg.Multiplier,
		Direction:  pg.Direction.String(),
	}
	if !pg.UpdatedAt.IsZero() {
		entry.UpdatedAt = pg.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return entry
}

// Store reads and writes the page state file.
type Store struct {
	dataDir string
}

// NewStore creates a store rooted at dataDir. The directory is created on first save.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Path returns the state file path.
func (s *Store) Path() string {
	return filepath.Join(s.dataDir, config.StateFilename)
}

// Load returns the saved page, or nil if nothing has been saved yet.
func (s *Store) Load() (*Page, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var entry pageEntry
	if err := yaml.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	return entry.toModel()
}

// Save writes the page atomically.
func (s *Store) Save(pg *Page) error {
	data, err := yaml.Marshal(fromModel(pg))
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(s.dataDir, config.DefaultDirPerms); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return atomicfile.WriteFile(s.Path(), data, 0o644)
}

// Clear removes the saved page. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}
