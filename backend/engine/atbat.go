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
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	ballsForWalk        = 4
	strikesForStrikeout = 3
)

// Count is the balls and strikes of the current at-bat.
type Count struct {
	Balls   int `json:"balls"`
	Strikes int `json:"strikes"`
}

func (c Count) String() string {
	return fmt.Sprintf("%d-%d", c.Balls, c.Strikes)
}

// State is the state of an at-bat.
type State int

const (
	AwaitingPitch State = iota
	Terminal
)

func (s State) String() string {
	if s == Terminal {
		return "terminal"
	}
	return "awaiting_pitch"
}

// Pitch is a pitch request: what was thrown and where.
type Pitch struct {
	Type PitchType `json:"type"`
	Zone Zone      `json:"zone"`
}

// String returns the short form used in pitch histories, e.g. "F2", "B12".
func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Type.Code(), p.Zone.Number())
}

// PitchRecord is one entry of an at-bat's history.
type PitchRecord struct {
	Pitch   Pitch       `json:"pitch"`
	Outcome OutcomeKind `json:"outcome"`
}

// PitchResult is what ThrowPitch reports back to the caller.
type PitchResult struct {
	Pitch    Pitch                 `json:"pitch"`
	Outcome  OutcomeKind           `json:"outcome"`
	Terminal bool                  `json:"terminal"`
	Result   PlateAppearanceResult `json:"result,omitempty"`
	Count    Count                 `json:"count"`
}

// AtBat runs the pitches of a single plate appearance. It is not safe for
// concurrent use and is discarded once terminal.
type AtBat struct {
	id         string
	repertoire Repertoire
	table      OutcomeTable
	resolver   Resolver
	sampler    *Sampler
	logger     zerolog.Logger

	state   State
	count   Count
	result  PlateAppearanceResult
	history []PitchRecord
	zone    *StrikeZone
}

// AtBatOption configures an AtBat.
type AtBatOption func(*AtBat)

// WithResolver overrides the default resolver tuning.
func WithResolver(r Resolver) AtBatOption {
	return func(ab *AtBat) { ab.resolver = r }
}

// WithSampler overrides the process-wide sampler.
func WithSampler(s *Sampler) AtBatOption {
	return func(ab *AtBat) { ab.sampler = s }
}

// WithLogger attaches a logger. Pitches are logged at debug level.
func WithLogger(l zerolog.Logger) AtBatOption {
	return func(ab *AtBat) { ab.logger = l }
}

// NewAtBat starts an at-bat against a pitcher with the given repertoire and
// outcome table. The table is shared and never modified.
func NewAtBat(rep Repertoire, table OutcomeTable, opts ...AtBatOption) *AtBat {
	ab := &AtBat{
		id:         uuid.NewString(),
		repertoire: rep,
		table:      table,
		resolver:   DefaultResolver,
		logger:     zerolog.Nop(),
		zone:       NewStrikeZone(),
	}
	for _, opt := range opts {
		opt(ab)
	}
	if ab.sampler == nil {
		ab.sampler = NewSampler(nil)
	}
	ab.logger = ab.logger.With().Str("at_bat", ab.id).Logger()
	return ab
}

// ID returns the at-bat's unique ID.
func (ab *AtBat) ID() string { return ab.id }

// State returns the current state.
func (ab *AtBat) State() State { return ab.state }

// Count returns the current count.
func (ab *AtBat) Count() Count { return ab.count }

// Result returns how the at-bat ended, or ResultNone while it is in progress.
func (ab *AtBat) Result() PlateAppearanceResult { return ab.result }

// History returns the pitches thrown so far, oldest first.
func (ab *AtBat) History() []PitchRecord { return slices.Clone(ab.history) }

// StrikeZone returns the display model of this at-bat.
func (ab *AtBat) StrikeZone() *StrikeZone { return ab.zone }

// ThrowPitch throws one pitch to a batter with the given batting average.
// Resolution errors leave the at-bat untouched so the caller can retry with
// another pitch.
func (ab *AtBat) ThrowPitch(p PitchType, z Zone, batterSkill float64) (PitchResult, error) {
	if ab.state == Terminal {
		return PitchResult{}, ErrAtBatOver
	}
	dist, err := ab.resolver.Resolve(p, z, batterSkill, ab.repertoire, ab.table)
	if err != nil {
		return PitchResult{}, err
	}
	outcome := ab.sampler.Sample(dist)
	pitch := Pitch{Type: p, Zone: z}
	ab.history = append(ab.history, PitchRecord{Pitch: pitch, Outcome: outcome})
	ab.apply(outcome)

	// The zone was validated by the lookup above.
	_ = ab.zone.Record(z, outcome.ZoneEvent())

	ab.logger.Debug().
		Str("pitch", pitch.String()).
		Str("outcome", string(outcome)).
		Stringer("count", ab.count).
		Str("result", string(ab.result)).
		Msg("pitch thrown")

	return PitchResult{
		Pitch:    pitch,
		Outcome:  outcome,
		Terminal: ab.state == Terminal,
		Result:   ab.result,
		Count:    ab.count,
	}, nil
}

func (ab *AtBat) apply(o OutcomeKind) {
	switch o {
	case Ball:
		ab.count.Balls++
		if ab.count.Balls == ballsForWalk {
			ab.end(ResultWalk)
		}
	case CalledStrike, SwingingStrike:
		ab.count.Strikes++
		if ab.count.Strikes == strikesForStrikeout {
			ab.end(ResultStrikeout)
		}
	case FoulBall:
		// A foul ball never strikes the batter out.
		if ab.count.Strikes < strikesForStrikeout-1 {
			ab.count.Strikes++
		}
	default:
		if o.Terminal() {
			ab.end(PlateAppearanceResult(o))
		}
	}
}

func (ab *AtBat) end(r PlateAppearanceResult) {
	ab.state = Terminal
	ab.result = r
}
