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

package engine

import (
	"fmt"
	"math"
)

const (
	// LeagueAverage is the league batting average. Batters above it get
	// more hits than the table says, batters below it get fewer.
	LeagueAverage = 0.245
	// DifficultyExponent controls how fast hit weights grow for batters
	// above the league average.
	DifficultyExponent = 8
)

// Probability is one entry of a Distribution.
type Probability struct {
	Outcome OutcomeKind `json:"outcome"`
	Percent float64     `json:"percent"`
}

// Distribution is the normalized outcome distribution of a single pitch, in
// canonical outcome order. Percents sum to 100.
type Distribution []Probability

// Get returns the percent for o, or 0 if o is absent.
func (d Distribution) Get(o OutcomeKind) float64 {
	for _, p := range d {
		if p.Outcome == o {
			return p.Percent
		}
	}
	return 0
}

// Sum returns the sum of all percents.
func (d Distribution) Sum() float64 {
	var s float64
	for _, p := range d {
		s += p.Percent
	}
	return s
}

// Resolver turns a pitch into an outcome Distribution for a given batter.
// The zero value is not usable; use NewResolver or DefaultResolver.
type Resolver struct {
	LeagueAverage      float64
	DifficultyExponent float64
}

// DefaultResolver uses LeagueAverage and DifficultyExponent.
var DefaultResolver = NewResolver()

// NewResolver returns a Resolver with the default tuning.
func NewResolver() Resolver {
	return Resolver{
		LeagueAverage:      LeagueAverage,
		DifficultyExponent: DifficultyExponent,
	}
}

// Resolve uses DefaultResolver.
func Resolve(p PitchType, z Zone, batterSkill float64, rep Repertoire, table OutcomeTable) (Distribution, error) {
	return DefaultResolver.Resolve(p, z, batterSkill, rep, table)
}

// SkillFactor returns the multiplier applied to hit weights for a batter.
func (r Resolver) SkillFactor(batterSkill float64) float64 {
	return 1.0 + 10.0*(batterSkill-r.LeagueAverage)
}

// Resolve looks up the weights for the pitch, scales base hits by the
// batter's skill and normalizes the result to percents. The table is not
// modified.
func (r Resolver) Resolve(p PitchType, z Zone, batterSkill float64, rep Repertoire, table OutcomeTable) (Distribution, error) {
	if !rep.Contains(p) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPitchType, p)
	}
	if math.IsNaN(batterSkill) || batterSkill < 0 || batterSkill > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBatterSkill, batterSkill)
	}
	raw, ok := table.Lookup(p, z)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownZone, p, z)
	}
	w := raw.Clone()
	r.adjust(w, r.SkillFactor(batterSkill))
	return normalize(w)
}

// adjust scales the base hit weights in place. A zero hit weight is raised
// to factor times the smallest weight in the map. The zero itself is part of
// that minimum, so such weights stay zero.
func (r Resolver) adjust(w Weights, factor float64) {
	for _, o := range Outcomes {
		if !o.IsHit() {
			continue
		}
		v, ok := w[o]
		if !ok {
			continue
		}
		switch {
		case factor > 1.0 && v == 0:
			w[o] = factor * minWeight(w)
		case factor > 1.0:
			w[o] = math.Pow(factor, r.DifficultyExponent) * v
		case factor < 1.0:
			w[o] = math.Max(0, v*factor)
		}
	}
}

func minWeight(w Weights) float64 {
	m := math.Inf(1)
	for _, v := range w {
		m = math.Min(m, v)
	}
	return m
}

// normalize only considers the canonical outcomes. Weights that sum to zero
// or overflow are degenerate.
func normalize(w Weights) (Distribution, error) {
	var sum float64
	for _, o := range Outcomes {
		sum += w[o]
	}
	if sum == 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return nil, ErrDegenerateDistribution
	}
	d := make(Distribution, 0, len(w))
	for _, o := range Outcomes {
		v, ok := w[o]
		if !ok {
			continue
		}
		d = append(d, Probability{Outcome: o, Percent: v * 100 / sum})
	}
	return d, nil
}
