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

// OutcomeKind is the result of a single pitch as seen by the batter.
// The string values are the keys used in POPZ table files.
type OutcomeKind string

// Pitch Outcomes
const (
	CalledStrike   OutcomeKind = "Called Strike"
	SwingingStrike OutcomeKind = "Swinging Strike"
	Ball           OutcomeKind = "Ball"
	FoulBall       OutcomeKind = "Foul Ball"
	InPlayOut      OutcomeKind = "In Play Out"
	Single         OutcomeKind = "Single"
	Double         OutcomeKind = "Double"
	Triple         OutcomeKind = "Triple"
	Homerun        OutcomeKind = "Homerun"
	HitByPitch     OutcomeKind = "Hit By Pitch"
)

// Outcomes lists every OutcomeKind in canonical order. Distributions and the
// sampler's range partition follow this order.
var Outcomes = []OutcomeKind{
	CalledStrike,
	SwingingStrike,
	Ball,
	FoulBall,
	InPlayOut,
	Single,
	Double,
	Triple,
	Homerun,
	HitByPitch,
}

var outcomeIndex = func() map[OutcomeKind]int {
	m := make(map[OutcomeKind]int, len(Outcomes))
	for i, o := range Outcomes {
		m[o] = i
	}
	return m
}()

// Valid reports whether o is one of the known outcomes.
func (o OutcomeKind) Valid() bool {
	_, ok := outcomeIndex[o]
	return ok
}

// CountsAgainstBatter reports whether o only moves the count.
func (o OutcomeKind) CountsAgainstBatter() bool {
	switch o {
	case CalledStrike, SwingingStrike, Ball, FoulBall:
		return true
	}
	return false
}

// BatterFavorable reports whether o ends the at-bat in the batter's favor.
func (o OutcomeKind) BatterFavorable() bool {
	switch o {
	case Single, Double, Triple, Homerun, HitByPitch:
		return true
	}
	return false
}

// IsHit reports whether o is a base hit. Only base hits are scaled by the
// batter's skill; a hit by pitch is not.
func (o OutcomeKind) IsHit() bool {
	switch o {
	case Single, Double, Triple, Homerun:
		return true
	}
	return false
}

// Terminal reports whether o ends the at-bat on its own, regardless of count.
func (o OutcomeKind) Terminal() bool {
	return o.BatterFavorable() || o == InPlayOut
}

// EventClass is the kind of marker a pitch leaves on the strike zone display.
type EventClass int

const (
	NoEvent EventClass = iota
	StrikeEvent
	BallEvent
)

func (c EventClass) String() string {
	switch c {
	case StrikeEvent:
		return "strike"
	case BallEvent:
		return "ball"
	}
	return "none"
}

// ZoneEvent classifies o for the strike zone display.
func (o OutcomeKind) ZoneEvent() EventClass {
	switch o {
	case CalledStrike, SwingingStrike, FoulBall:
		return StrikeEvent
	case Ball, HitByPitch:
		return BallEvent
	}
	return NoEvent
}

// PlateAppearanceResult is how an at-bat ended.
type PlateAppearanceResult string

// Plate Appearance Results
const (
	ResultNone      PlateAppearanceResult = ""
	ResultWalk      PlateAppearanceResult = "Walk"
	ResultStrikeout PlateAppearanceResult = "Strikeout"
	ResultSingle    PlateAppearanceResult = PlateAppearanceResult(Single)
	ResultDouble    PlateAppearanceResult = PlateAppearanceResult(Double)
	ResultTriple    PlateAppearanceResult = PlateAppearanceResult(Triple)
	ResultHomerun   PlateAppearanceResult = PlateAppearanceResult(Homerun)
	ResultHBP       PlateAppearanceResult = PlateAppearanceResult(HitByPitch)
	ResultInPlayOut PlateAppearanceResult = PlateAppearanceResult(InPlayOut)
)

// IsBaseHit reports whether r put the batter on base with a hit.
func (r PlateAppearanceResult) IsBaseHit() bool {
	switch r {
	case ResultSingle, ResultDouble, ResultTriple, ResultHomerun:
		return true
	}
	return false
}
