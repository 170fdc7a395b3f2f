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

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/ttbt-io/strikezone/backend/engine"
)

// Metrics counts what happened during one game. Each game gets its own
// registry so that the end-of-game summary only covers that game.
type Metrics struct {
	registry         *prometheus.Registry
	pitches          *prometheus.CounterVec
	outcomes         *prometheus.CounterVec
	rejected         *prometheus.CounterVec
	plateAppearances *prometheus.CounterVec
	moundVisits      prometheus.Counter
	score            prometheus.Gauge
}

// NewMetrics creates the game's collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "strikezone_pitches_total",
			Help: "Total number of pitches thrown by pitch type and zone",
		}, []string{"pitch_type", "zone"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "strikezone_pitch_outcomes_total",
			Help: "Total number of pitch outcomes by outcome",
		}, []string{"outcome"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "strikezone_rejected_pitches_total",
			Help: "Total number of pitch requests that could not be resolved, by reason",
		}, []string{"reason"}),
		plateAppearances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "strikezone_plate_appearances_total",
			Help: "Total number of completed plate appearances by result",
		}, []string{"result"}),
		moundVisits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "strikezone_mound_visits_total",
			Help: "Total number of mound visits",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "strikezone_score",
			Help: "Current player score",
		}),
	}
	m.registry.MustRegister(m.pitches, m.outcomes, m.rejected, m.plateAppearances, m.moundVisits, m.score)
	return m
}

// Registry returns the registry holding the game's collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObservePitch records a resolved pitch.
func (m *Metrics) ObservePitch(res engine.PitchResult) {
	m.pitches.WithLabelValues(string(res.Pitch.Type), string(res.Pitch.Zone)).Inc()
	m.outcomes.WithLabelValues(string(res.Outcome)).Inc()
}

// ObserveRejectedPitch records a pitch request that failed to resolve.
func (m *Metrics) ObserveRejectedPitch(err error) {
	m.rejected.WithLabelValues(rejectReason(err)).Inc()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, engine.ErrUnknownPitchType):
		return "unknown_pitch_type"
	case errors.Is(err, engine.ErrUnknownZone):
		return "unknown_zone"
	case errors.Is(err, engine.ErrDegenerateDistribution):
		return "degenerate_distribution"
	case errors.Is(err, engine.ErrInvalidBatterSkill):
		return "invalid_batter_skill"
	case errors.Is(err, engine.ErrAtBatOver):
		return "at_bat_over"
	default:
		return "unknown"
	}
}

// ObservePlateAppearance records a completed plate appearance and the score
// after it.
func (m *Metrics) ObservePlateAppearance(r engine.PlateAppearanceResult, score int) {
	m.plateAppearances.WithLabelValues(string(r)).Inc()
	m.score.Set(float64(score))
}

// ObserveMoundVisit records a mound visit.
func (m *Metrics) ObserveMoundVisit() {
	m.moundVisits.Inc()
}

// WriteTextfile writes the game's metrics in the Prometheus text format.
func (m *Metrics) WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, m.registry); err != nil {
		return fmt.Errorf("prometheus.WriteToTextfile: %w", err)
	}
	return nil
}

// Summary is the end-of-game report.
type Summary struct {
	Pitches          int
	Rejected         int
	MoundVisits      int
	Score            int
	Outcomes         map[engine.OutcomeKind]int
	PlateAppearances map[engine.PlateAppearanceResult]int
}

// Summary gathers the collectors into a Summary.
func (m *Metrics) Summary() (Summary, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return Summary{}, fmt.Errorf("registry.Gather: %w", err)
	}
	s := Summary{
		Outcomes:         make(map[engine.OutcomeKind]int),
		PlateAppearances: make(map[engine.PlateAppearanceResult]int),
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch mf.GetName() {
			case "strikezone_pitches_total":
				s.Pitches += counterValue(metric)
			case "strikezone_rejected_pitches_total":
				s.Rejected += counterValue(metric)
			case "strikezone_pitch_outcomes_total":
				s.Outcomes[engine.OutcomeKind(labelValue(metric, "outcome"))] += counterValue(metric)
			case "strikezone_plate_appearances_total":
				s.PlateAppearances[engine.PlateAppearanceResult(labelValue(metric, "result"))] += counterValue(metric)
			case "strikezone_mound_visits_total":
				s.MoundVisits += counterValue(metric)
			case "strikezone_score":
				s.Score = int(metric.GetGauge().GetValue())
			}
		}
	}
	return s, nil
}

func counterValue(m *dto.Metric) int {
	return int(m.GetCounter().GetValue())
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
