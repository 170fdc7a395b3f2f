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
	"errors"
	"fmt"
	"math"

	"github.com/ttbt-io/strikezone/backend/engine"
)

// ErrInvalidRoster is returned when a roster file fails validation.
var ErrInvalidRoster = errors.New("invalid roster")

// Player is the record shared by batters and pitchers.
type Player struct {
	ID        string `yaml:"id" json:"id"`
	FirstName string `yaml:"firstName" json:"firstName"`
	LastName  string `yaml:"lastName" json:"lastName"`
	TeamCity  string `yaml:"teamCity,omitempty" json:"teamCity,omitempty"`
	TeamName  string `yaml:"teamName,omitempty" json:"teamName,omitempty"`
	Position  string `yaml:"position,omitempty" json:"position,omitempty"`
}

// Name returns the player's full name.
func (p Player) Name() string {
	return p.FirstName + " " + p.LastName
}

func (p Player) String() string {
	return fmt.Sprintf("%s, %s for the %s %s", p.Name(), p.Position, p.TeamCity, p.TeamName)
}

// BattingCapability holds what a player brings to the plate.
type BattingCapability struct {
	BatAvg float64 `yaml:"batAvg" json:"batAvg"`
}

// PitchingCapability holds what a player brings to the mound. The table is
// loaded from the TableStore, not from the roster file.
type PitchingCapability struct {
	Repertoire engine.Repertoire   `yaml:"repertoire" json:"repertoire"`
	Table      engine.OutcomeTable `yaml:"-" json:"-"`
}

// Batter is a player in a batting lineup.
type Batter struct {
	Player            `yaml:",inline"`
	BattingCapability `yaml:",inline"`
}

// Pitcher is a player the user can pitch as.
type Pitcher struct {
	Player             `yaml:",inline"`
	PitchingCapability `yaml:",inline"`
}

// Team is an opponent and its batting order.
type Team struct {
	ID     string   `yaml:"id" json:"id"`
	City   string   `yaml:"city" json:"city"`
	Name   string   `yaml:"name" json:"name"`
	Lineup []Batter `yaml:"lineup" json:"lineup"`
}

func (t Team) String() string {
	return t.City + " " + t.Name
}

func (t *Team) normalize() {
	for i := range t.Lineup {
		b := &t.Lineup[i]
		if b.TeamCity == "" {
			b.TeamCity = t.City
		}
		if b.TeamName == "" {
			b.TeamName = t.Name
		}
	}
}

func (t *Team) validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: team %q has no id", ErrInvalidRoster, t)
	}
	if len(t.Lineup) == 0 {
		return fmt.Errorf("%w: team %s has an empty lineup", ErrInvalidRoster, t.ID)
	}
	for _, b := range t.Lineup {
		if math.IsNaN(b.BatAvg) || b.BatAvg < 0 || b.BatAvg > 1 {
			return fmt.Errorf("%w: %s: batting average %v out of range", ErrInvalidRoster, b.Name(), b.BatAvg)
		}
	}
	return nil
}

func (p *Pitcher) normalize() {
	if p.Position == "" {
		p.Position = "Pitcher"
	}
}

func (p *Pitcher) validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: pitcher %q has no id", ErrInvalidRoster, p.Name())
	}
	if len(p.Repertoire) == 0 {
		return fmt.Errorf("%w: pitcher %s has no pitch types", ErrInvalidRoster, p.ID)
	}
	for _, pt := range p.Repertoire {
		if !engine.Repertoire(engine.PitchTypes).Contains(pt) {
			return fmt.Errorf("%w: pitcher %s: unknown pitch type %q", ErrInvalidRoster, p.ID, pt)
		}
	}
	return nil
}
