package record

import (
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ball-arena/arena"
	"github.com/lixenwraith/ball-arena/core"
)

const (
	recordObject   = "record"
	recordProperty = "career"
)

// Career is the persisted match history and player preferences
type Career struct {
	Matches     int  `yaml:"matches"`
	AlliesWins  int  `yaml:"allies_wins"`
	EnemiesWins int  `yaml:"enemies_wins"`
	Rounds      int  `yaml:"rounds"`
	Muted       bool `yaml:"muted"`
}

// Wins returns the match count won by a team
func (c Career) Wins(t core.Team) int {
	if t == core.TeamAllies {
		return c.AlliesWins
	}
	return c.EnemiesWins
}

// Store keeps a Career in gdata storage
// A nil manager degrades to memory only
type Store struct {
	mu      sync.Mutex
	data    *gdata.Manager
	career  Career
	decided bool
}

// Open creates a store for appName; storage errors are logged and degrade to memory
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("record: storage unavailable: %v (memory only)", err)
		m = nil
	}
	s, err := NewStore(m)
	if err != nil {
		log.Printf("record: %v (starting fresh)", err)
	}
	return s
}

// NewStore loads any saved career; the returned store is usable even on error
func NewStore(m *gdata.Manager) (*Store, error) {
	s := &Store{data: m}
	return s, s.load()
}

func (s *Store) load() error {
	if s.data == nil || !s.data.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}
	raw, err := s.data.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}
	var c Career
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	s.career = c
	return nil
}

// Career returns a copy of the current record
func (s *Store) Career() Career {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.career
}

// Observe records a finished match on the first snapshot where it is decided
// Returns true when a match was recorded
func (s *Store) Observe(snap *arena.Snapshot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !snap.MatchDecided {
		s.decided = false
		return false, nil
	}
	if s.decided {
		return false, nil
	}
	s.decided = true

	s.career.Matches++
	if snap.Champion == core.TeamAllies {
		s.career.AlliesWins++
	} else {
		s.career.EnemiesWins++
	}
	s.career.Rounds += snap.Wins[core.TeamAllies] + snap.Wins[core.TeamEnemies]
	return true, s.saveLocked()
}

// SetMuted stores the audio preference
func (s *Store) SetMuted(muted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.career.Muted == muted {
		return nil
	}
	s.career.Muted = muted
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if s.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(s.career)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := s.data.SaveObjectProp(recordObject, recordProperty, raw); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}
