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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedZones maps each outcome to a zone where it is certain, so at-bats can
// be driven pitch by pitch without randomness.
var scriptedZones = map[OutcomeKind]Zone{
	CalledStrike:   "zone1",
	SwingingStrike: "zone2",
	Ball:           "zone11",
	FoulBall:       "zone3",
	InPlayOut:      "zone4",
	Single:         "zone5",
	Double:         "zone6",
	Triple:         "zone7",
	Homerun:        "zone8",
	HitByPitch:     "zone13",
}

func scriptedTable() OutcomeTable {
	zones := make(map[Zone]Weights)
	for o, z := range scriptedZones {
		zones[z] = Weights{o: 100}
	}
	return OutcomeTable{Fastball: zones}
}

func throwAll(t *testing.T, ab *AtBat, outcomes ...OutcomeKind) PitchResult {
	t.Helper()
	var res PitchResult
	for _, o := range outcomes {
		var err error
		res, err = ab.ThrowPitch(Fastball, scriptedZones[o], LeagueAverage)
		require.NoError(t, err)
		require.Equal(t, o, res.Outcome)
	}
	return res
}

func TestAtBat_Walk(t *testing.T) {
	ab := NewAtBat(Repertoire{Fastball}, scriptedTable())

	res := throwAll(t, ab, Ball, Ball, Ball)
	assert.False(t, res.Terminal)
	assert.Equal(t, Count{Balls: 3}, res.Count)
	assert.Equal(t, AwaitingPitch, ab.State())

	res = throwAll(t, ab, Ball)
	assert.True(t, res.Terminal)
	assert.Equal(t, ResultWalk, res.Result)
	assert.Equal(t, Terminal, ab.State())
	assert.Equal(t, ResultWalk, ab.Result())
}

func TestAtBat_Strikeout(t *testing.T) {
	ab := NewAtBat(Repertoire{Fastball}, scriptedTable())

	res := throwAll(t, ab, CalledStrike, CalledStrike)
	assert.False(t, res.Terminal)

	res = throwAll(t, ab, CalledStrike)
	assert.True(t, res.Terminal)
	assert.Equal(t, ResultStrikeout, res.Result)
	assert.Equal(t, Count{Strikes: 3}, res.Count)
}

func TestAtBat_SwingingStrikeout(t *testing.T) {
	ab := NewAtBat(Repertoire{Fastball}, scriptedTable())
	res := throwAll(t, ab, SwingingStrike, CalledStrike, SwingingStrike)
	assert.Equal(t, ResultStrikeout, res.Result)
}

func TestAtBat_FoulWithTwoStrikes(t *testing.T) {
	ab := NewAtBat(Repertoire{Fastball}, scriptedTable())

	res := throwAll(t, ab, FoulBall, FoulBall)
	assert.Equal(t, Count{Strikes: 2}, res.Count)

	res = throwAll(t, ab, FoulBall, FoulBall, FoulBall)
	assert.False(t, res.Terminal)
	assert.Equal(t, Count{Strikes: 2}, res.Count)
	assert.Equal(t, AwaitingPitch, ab.State())

	res = throwAll(t, ab, SwingingStrike)
	assert.Equal(t, ResultStrikeout, res.Result)
}

func TestAtBat_TerminalOutcomesEndImmediately(t *testing.T) {
	counts := [][]OutcomeKind{
		nil,
		{Ball, Ball, Ball},
		{CalledStrike, CalledStrike},
		{Ball, Ball, Ball, FoulBall, CalledStrike},
	}
	for _, o := range []OutcomeKind{Single, Double, Triple, Homerun, HitByPitch, InPlayOut} {
		for _, before := range counts {
			ab := NewAtBat(Repertoire{Fastball}, scriptedTable())
			throwAll(t, ab, before...)
			countBefore := ab.Count()

			res := throwAll(t, ab, o)
			assert.True(t, res.Terminal, "%s after %v", o, before)
			assert.Equal(t, PlateAppearanceResult(o), res.Result)
			assert.Equal(t, countBefore, res.Count, "count must not change on %s", o)
		}
	}
}

func TestAtBat_NoPitchesAfterTerminal(t *testing.T) {
	ab := NewAtBat(Repertoire{Fastball}, scriptedTable())
	throwAll(t, ab, Homerun)

	_, err := ab.ThrowPitch(Fastball, scriptedZones[Ball], LeagueAverage)
	assert.ErrorIs(t, err, ErrAtBatOver)
	assert.Len(t, ab.History(), 1)
}

func TestAtBat_InvalidPitchLeavesStateUnchanged(t *testing.T) {
	ab := NewAtBat(Repertoire{Fastball}, scriptedTable())
	throwAll(t, ab, Ball, CalledStrike)

	tests := []struct {
		name  string
		pitch PitchType
		zone  Zone
		want  error
	}{
		{"UnknownPitchType", Breaking, "zone1", ErrUnknownPitchType},
		{"UnknownZone", Fastball, "zone9", ErrUnknownZone},
		{"BadZone", Fastball, "zone42", ErrUnknownZone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ab.ThrowPitch(tc.pitch, tc.zone, LeagueAverage)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, Count{Balls: 1, Strikes: 1}, ab.Count())
			assert.Equal(t, AwaitingPitch, ab.State())
			assert.Len(t, ab.History(), 2)
		})
	}
}

func TestAtBat_History(t *testing.T) {
	ab := NewAtBat(Repertoire{Fastball}, scriptedTable())
	throwAll(t, ab, Ball, FoulBall, Single)

	want := []PitchRecord{
		{Pitch: Pitch{Type: Fastball, Zone: "zone11"}, Outcome: Ball},
		{Pitch: Pitch{Type: Fastball, Zone: "zone3"}, Outcome: FoulBall},
		{Pitch: Pitch{Type: Fastball, Zone: "zone5"}, Outcome: Single},
	}
	assert.Equal(t, want, ab.History())

	h := ab.History()
	h[0].Outcome = Homerun
	assert.Equal(t, Ball, ab.History()[0].Outcome, "History must return a copy")

	assert.Equal(t, "F11", want[0].Pitch.String())
}

func TestAtBat_UpdatesStrikeZone(t *testing.T) {
	ab := NewAtBat(Repertoire{Fastball}, scriptedTable())
	throwAll(t, ab, CalledStrike, SwingingStrike, FoulBall, Ball, FoulBall, HitByPitch)

	sz := ab.StrikeZone()
	assert.Equal(t, ZoneCounts{Strikes: 1}, sz.Counts("zone1"))
	assert.Equal(t, ZoneCounts{Strikes: 1}, sz.Counts("zone2"))
	assert.Equal(t, ZoneCounts{Strikes: 2}, sz.Counts("zone3"))
	assert.Equal(t, ZoneCounts{Balls: 1}, sz.Counts("zone11"))
	assert.Equal(t, ZoneCounts{Balls: 1}, sz.Counts("zone13"))
}

func TestAtBat_HitsDoNotMarkStrikeZone(t *testing.T) {
	for _, o := range []OutcomeKind{InPlayOut, Single, Double, Triple, Homerun} {
		ab := NewAtBat(Repertoire{Fastball}, scriptedTable())
		throwAll(t, ab, o)
		assert.True(t, ab.StrikeZone().Empty(), "%s", o)
	}
}

func TestAtBat_ScenarioWithFixedDraw(t *testing.T) {
	table := OutcomeTable{Fastball: {"zone3": {CalledStrike: 50, Ball: 50}}}
	src := &drawSource{draws: []int{17, 50, 51}}
	ab := NewAtBat(Repertoire{Fastball}, table, WithSampler(NewSampler(src)))

	res, err := ab.ThrowPitch(Fastball, "zone3", 0.245)
	require.NoError(t, err)
	assert.Equal(t, CalledStrike, res.Outcome)

	res, err = ab.ThrowPitch(Fastball, "zone3", 0.245)
	require.NoError(t, err)
	assert.Equal(t, CalledStrike, res.Outcome)

	res, err = ab.ThrowPitch(Fastball, "zone3", 0.245)
	require.NoError(t, err)
	assert.Equal(t, Ball, res.Outcome)
	assert.Equal(t, Count{Balls: 1, Strikes: 2}, res.Count)
}

func TestAtBat_UniqueIDs(t *testing.T) {
	a := NewAtBat(Repertoire{Fastball}, scriptedTable())
	b := NewAtBat(Repertoire{Fastball}, scriptedTable())
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}
