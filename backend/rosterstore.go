// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package backend

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/roster.yaml
var defaultRoster []byte

// Roster is the set of teams and pitchers available to play.
type Roster struct {
	Teams    []*Team    `yaml:"teams"`
	Pitchers []*Pitcher `yaml:"pitchers"`
}

// ParseRoster decodes and validates a roster file.
func ParseRoster(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}
	if len(r.Teams) == 0 || len(r.Pitchers) == 0 {
		return nil, fmt.Errorf("%w: at least one team and one pitcher are required", ErrInvalidRoster)
	}
	seen := make(map[string]bool)
	for _, t := range r.Teams {
		t.normalize()
		if err := t.validate(); err != nil {
			return nil, err
		}
		if seen["team/"+t.ID] {
			return nil, fmt.Errorf("%w: duplicate team %s", ErrInvalidRoster, t.ID)
		}
		seen["team/"+t.ID] = true
	}
	for _, p := range r.Pitchers {
		p.normalize()
		if err := p.validate(); err != nil {
			return nil, err
		}
		if seen["pitcher/"+p.ID] {
			return nil, fmt.Errorf("%w: duplicate pitcher %s", ErrInvalidRoster, p.ID)
		}
		seen["pitcher/"+p.ID] = true
	}
	return &r, nil
}

// RosterStore loads the roster and attaches outcome tables to pitchers.
type RosterStore struct {
	DataDir string
	tables  *TableStore

	mu     sync.RWMutex
	roster *Roster
}

// NewRosterStore creates a new RosterStore.
func NewRosterStore(dataDir string, tables *TableStore) *RosterStore {
	return &RosterStore{
		DataDir: dataDir,
		tables:  tables,
	}
}

// LoadRoster reads <dataDir>/roster.yaml, or the built-in roster when there
// is none.
func (rs *RosterStore) LoadRoster() error {
	data, err := os.ReadFile(filepath.Join(rs.DataDir, RosterFileName))
	if errors.Is(err, os.ErrNotExist) {
		data = defaultRoster
	} else if err != nil {
		return err
	}
	r, err := ParseRoster(data)
	if err != nil {
		return err
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.roster = r
	return nil
}

func (rs *RosterStore) get() (*Roster, error) {
	rs.mu.RLock()
	r := rs.roster
	rs.mu.RUnlock()
	if r != nil {
		return r, nil
	}
	if err := rs.LoadRoster(); err != nil {
		return nil, err
	}
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.roster, nil
}

// Teams returns the teams in roster order.
func (rs *RosterStore) Teams() ([]*Team, error) {
	r, err := rs.get()
	if err != nil {
		return nil, err
	}
	return r.Teams, nil
}

// Pitchers returns the pitchers in roster order, without their tables.
func (rs *RosterStore) Pitchers() ([]*Pitcher, error) {
	r, err := rs.get()
	if err != nil {
		return nil, err
	}
	return r.Pitchers, nil
}

// Team returns the team with the given ID, or os.ErrNotExist.
func (rs *RosterStore) Team(id string) (*Team, error) {
	teams, err := rs.Teams()
	if err != nil {
		return nil, err
	}
	for _, t := range teams {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, os.ErrNotExist
}

// Pitcher returns a copy of the pitcher with the given ID and its outcome
// table, or os.ErrNotExist.
func (rs *RosterStore) Pitcher(id string) (*Pitcher, error) {
	pitchers, err := rs.Pitchers()
	if err != nil {
		return nil, err
	}
	for _, p := range pitchers {
		if p.ID != id {
			continue
		}
		table, err := rs.tables.LoadTable(id)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("no outcome table for %s: %w", id, err)
			}
			return nil, err
		}
		if err := table.Covers(p.Repertoire); err != nil {
			return nil, fmt.Errorf("outcome table for %s: %w", id, err)
		}
		c := *p
		c.Table = table
		return &c, nil
	}
	return nil, os.ErrNotExist
}
