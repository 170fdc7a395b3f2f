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

// drawSource replays fixed draws in [1,99], cycling when exhausted.
type drawSource struct {
	draws []int
	i     int
}

func (s *drawSource) IntN(n int) int {
	d := s.draws[s.i%len(s.draws)]
	s.i++
	return d - drawMin
}

func TestSample_SingleOutcome(t *testing.T) {
	Seed(1234)
	d := Distribution{{Outcome: Homerun, Percent: 100}}
	for i := 0; i < 10000; i++ {
		require.Equal(t, Homerun, Sample(d))
	}
}

func TestSample_Ranges(t *testing.T) {
	d := Distribution{
		{Outcome: CalledStrike, Percent: 50},
		{Outcome: Ball, Percent: 50},
	}

	tests := []struct {
		draw int
		want OutcomeKind
	}{
		{1, CalledStrike},
		{25, CalledStrike},
		{50, CalledStrike},
		{51, Ball},
		{99, Ball},
	}
	for _, tc := range tests {
		s := NewSampler(&drawSource{draws: []int{tc.draw}})
		assert.Equal(t, tc.want, s.Sample(d), "draw %d", tc.draw)
	}
}

func TestSample_ClampsTailToLastOutcome(t *testing.T) {
	// Rounded widths: 33 + 33 + 0 = 66, leaving 67..99 uncovered.
	d := Distribution{
		{Outcome: CalledStrike, Percent: 33.4},
		{Outcome: Ball, Percent: 33.4},
		{Outcome: Single, Percent: 0.4},
	}
	for _, draw := range []int{66, 67, 80, 99} {
		s := NewSampler(&drawSource{draws: []int{draw}})
		assert.Equal(t, Ball, s.Sample(d), "draw %d", draw)
	}
	s := NewSampler(&drawSource{draws: []int{33}})
	assert.Equal(t, CalledStrike, s.Sample(d))
}

func TestSample_RoundsHalfToEven(t *testing.T) {
	// 2.5 rounds to 2, so draw 3 belongs to the second outcome.
	d := Distribution{
		{Outcome: FoulBall, Percent: 2.5},
		{Outcome: InPlayOut, Percent: 97.5},
	}
	s := NewSampler(&drawSource{draws: []int{2, 3}})
	assert.Equal(t, FoulBall, s.Sample(d))
	assert.Equal(t, InPlayOut, s.Sample(d))
}

func TestSample_SkipsZeroWidthEntries(t *testing.T) {
	d := Distribution{
		{Outcome: CalledStrike, Percent: 0},
		{Outcome: Triple, Percent: 0.2},
		{Outcome: Ball, Percent: 99.8},
	}
	s := NewSampler(&drawSource{draws: []int{1, 50, 99}})
	for i := 0; i < 3; i++ {
		assert.Equal(t, Ball, s.Sample(d))
	}
}

func TestSample_NoWidthFallsBackToLikeliest(t *testing.T) {
	d := Distribution{
		{Outcome: CalledStrike, Percent: 0.3},
		{Outcome: Ball, Percent: 0.4},
	}
	s := NewSampler(&drawSource{draws: []int{10}})
	assert.Equal(t, Ball, s.Sample(d))
}

func TestSeed_IsDeterministic(t *testing.T) {
	d := Distribution{
		{Outcome: CalledStrike, Percent: 20},
		{Outcome: Ball, Percent: 30},
		{Outcome: FoulBall, Percent: 25},
		{Outcome: Single, Percent: 25},
	}
	run := func() []OutcomeKind {
		Seed(2021)
		out := make([]OutcomeKind, 200)
		for i := range out {
			out[i] = Sample(d)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestSample_DrawsStayInRange(t *testing.T) {
	src := NewSampler(nil)
	Seed(5)
	d := Distribution{
		{Outcome: CalledStrike, Percent: 1},
		{Outcome: Ball, Percent: 98},
		{Outcome: Homerun, Percent: 1},
	}
	seen := map[OutcomeKind]bool{}
	for i := 0; i < 20000; i++ {
		seen[src.Sample(d)] = true
	}
	assert.True(t, seen[CalledStrike])
	assert.True(t, seen[Ball])
	// Homerun owns 100, which is never drawn.
	assert.False(t, seen[Homerun])
}
