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
	"math"
	"math/rand/v2"
	"sync"
)

// Source is the randomness provider for the sampler.
type Source interface {
	// IntN returns a random int in [0, n).
	IntN(n int) int
}

// lockedSource is the process-wide Source.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *lockedSource) seed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var globalSource = &lockedSource{
	rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
}

// Seed reseeds the process-wide random source. Two runs seeded alike draw
// the same outcomes for the same pitches.
func Seed(seed uint64) {
	globalSource.seed(seed)
}

// GlobalSource returns the process-wide random source.
func GlobalSource() Source {
	return globalSource
}

const (
	drawMin = 1
	drawMax = 99
)

// Sampler draws outcomes from a Distribution.
type Sampler struct {
	src Source
}

// NewSampler returns a Sampler drawing from src. A nil src means the
// process-wide source.
func NewSampler(src Source) *Sampler {
	if src == nil {
		src = globalSource
	}
	return &Sampler{src: src}
}

// Sample uses the process-wide source.
func Sample(d Distribution) OutcomeKind {
	return NewSampler(nil).Sample(d)
}

// Sample draws one outcome. Each entry owns a run of integers in [1,99] as
// wide as its rounded percent, laid out in order from 1. When the rounded
// widths do not reach 99, the last entry with a non-zero width owns the rest.
func (s *Sampler) Sample(d Distribution) OutcomeKind {
	return pick(d, drawMin+s.src.IntN(drawMax-drawMin+1))
}

// pick returns the outcome owning draw r.
func pick(d Distribution, r int) OutcomeKind {
	var (
		last OutcomeKind
		next = drawMin
	)
	for _, p := range d {
		width := int(math.RoundToEven(p.Percent))
		if width <= 0 {
			continue
		}
		if r < next+width {
			return p.Outcome
		}
		next += width
		last = p.Outcome
	}
	if last != "" {
		return last
	}
	return likeliest(d)
}

func likeliest(d Distribution) OutcomeKind {
	var best Probability
	for _, p := range d {
		if best.Outcome == "" || p.Percent > best.Percent {
			best = p
		}
	}
	return best.Outcome
}
