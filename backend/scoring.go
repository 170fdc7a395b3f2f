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
	"github.com/ttbt-io/strikezone/backend/engine"
)

// ScoreTable holds the points awarded for each plate appearance result.
// Results that favor the batter cost points.
var ScoreTable = map[engine.PlateAppearanceResult]int{
	engine.ResultSingle:    -1000,
	engine.ResultDouble:    -2000,
	engine.ResultTriple:    -3000,
	engine.ResultHomerun:   -6000,
	engine.ResultHBP:       -1500,
	engine.ResultWalk:      -1000,
	engine.ResultStrikeout: 3000,
	engine.ResultInPlayOut: 2000,
}

// ScoreOrder lists the results of ScoreTable for display.
var ScoreOrder = []engine.PlateAppearanceResult{
	engine.ResultSingle,
	engine.ResultDouble,
	engine.ResultTriple,
	engine.ResultHomerun,
	engine.ResultHBP,
	engine.ResultWalk,
	engine.ResultStrikeout,
	engine.ResultInPlayOut,
}

// Points returns the points for r. Unknown results score nothing.
func Points(r engine.PlateAppearanceResult) int {
	return ScoreTable[r]
}
