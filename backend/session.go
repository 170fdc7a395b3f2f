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
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/ttbt-io/strikezone/backend/engine"
)

// Outcome is what RecordResult reports after a plate appearance.
type Outcome struct {
	Result    engine.PlateAppearanceResult
	Points    int
	Score     int
	Visit     *MoundVisit
	Milestone string
}

// Session is one game: a pitcher against an opposing lineup until the
// pitcher runs out of mound visits.
type Session struct {
	ID               string
	Pitcher          *Pitcher
	Opponent         *Team
	Score            int
	MoundVisits      int
	MoundVisitBreak  int
	OutcomeHistory   []engine.PlateAppearanceResult
	PlateAppearances int

	totalVisits  int
	battingIndex int
	resolver     engine.Resolver
	sampler      *engine.Sampler
	metrics      *Metrics
	logger       zerolog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithMoundVisits sets the number of mound visits the pitcher starts with.
func WithMoundVisits(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.MoundVisits = n
		}
	}
}

// WithTuning overrides the resolver tuning.
func WithTuning(r engine.Resolver) SessionOption {
	return func(s *Session) { s.resolver = r }
}

// WithSampler overrides the process-wide sampler.
func WithSampler(smp *engine.Sampler) SessionOption {
	return func(s *Session) { s.sampler = smp }
}

// WithMetrics records the game's events in m.
func WithMetrics(m *Metrics) SessionOption {
	return func(s *Session) { s.metrics = m }
}

// WithSessionLogger sets the session's logger.
func WithSessionLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// NewSession starts a game. The pitcher's table must cover every pitch type
// of the repertoire in every zone.
func NewSession(p *Pitcher, opponent *Team, opts ...SessionOption) (*Session, error) {
	if p == nil || opponent == nil {
		return nil, fmt.Errorf("a pitcher and an opposing team are required")
	}
	if len(opponent.Lineup) == 0 {
		return nil, fmt.Errorf("%s has an empty lineup", opponent)
	}
	if err := p.Table.Covers(p.Repertoire); err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}
	s := &Session{
		ID:              uuid.NewString(),
		Pitcher:         p,
		Opponent:        opponent,
		MoundVisits:     DefaultMoundVisits,
		MoundVisitBreak: MoundVisitBreak,
		resolver:        engine.DefaultResolver,
		logger:          WithComponent("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sampler == nil {
		s.sampler = engine.NewSampler(nil)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	s.totalVisits = s.MoundVisits
	s.logger = s.logger.With().Str("session", s.ID).Logger()
	s.logger.Info().
		Str("pitcher", p.ID).
		Str("opponent", opponent.ID).
		Int("moundVisits", s.MoundVisits).
		Msg("game started")
	return s, nil
}

// Metrics returns the game's metrics.
func (s *Session) Metrics() *Metrics {
	return s.metrics
}

// NextBatter returns the next batter in the opposing lineup, wrapping
// around after the last one.
func (s *Session) NextBatter() Batter {
	if s.battingIndex >= len(s.Opponent.Lineup) {
		s.battingIndex = 0
	}
	b := s.Opponent.Lineup[s.battingIndex]
	s.battingIndex++
	s.MoundVisitBreak--
	return b
}

// NewAtBat starts an at-bat for the session's pitcher.
func (s *Session) NewAtBat() *engine.AtBat {
	return engine.NewAtBat(s.Pitcher.Repertoire, s.Pitcher.Table,
		engine.WithResolver(s.resolver),
		engine.WithSampler(s.sampler),
		engine.WithLogger(s.logger),
	)
}

// Pitch throws one pitch to b and records it.
func (s *Session) Pitch(ab *engine.AtBat, b Batter, p engine.PitchType, z engine.Zone) (engine.PitchResult, error) {
	res, err := ab.ThrowPitch(p, z, b.BatAvg)
	if err != nil {
		s.metrics.ObserveRejectedPitch(err)
		return res, err
	}
	s.metrics.ObservePitch(res)
	return res, nil
}

// RecordResult scores a finished plate appearance and decides whether the
// manager visits the mound.
func (s *Session) RecordResult(r engine.PlateAppearanceResult) Outcome {
	points := Points(r)
	s.OutcomeHistory = append(s.OutcomeHistory, r)
	s.Score += points
	s.PlateAppearances++
	s.metrics.ObservePlateAppearance(r, s.Score)

	out := Outcome{Result: r, Points: points, Score: s.Score}
	recent := recentResults(s.OutcomeHistory)

	if visitTriggered(recent, s.MoundVisitBreak) {
		if reason, ok := visitReason(recent, s.Score); ok {
			out.Visit = &MoundVisit{
				Reason:    reason,
				Tone:      visitTone(s.MoundVisits, s.totalVisits),
				Remaining: s.MoundVisits - 1,
				Score:     s.Score,
				Pitcher:   s.Pitcher.Player,
			}
			s.MoundVisits--
			s.MoundVisitBreak = MoundVisitBreak
			s.metrics.ObserveMoundVisit()
		}
	} else if m, ok := milestones[s.PlateAppearances]; ok {
		out.Milestone = m
	}

	s.logger.Info().
		Str("result", string(r)).
		Int("points", points).
		Int("score", s.Score).
		Int("moundVisits", s.MoundVisits).
		Bool("visit", out.Visit != nil).
		Msg("plate appearance")
	return out
}

// Over reports whether the pitcher has been pulled.
func (s *Session) Over() bool {
	return s.MoundVisits <= 0
}

// BattersFaced returns the number of completed plate appearances.
func (s *Session) BattersFaced() int {
	return len(s.OutcomeHistory)
}
