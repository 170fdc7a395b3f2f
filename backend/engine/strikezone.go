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
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

//go:embed data/strikezone_blank.txt
var blankStrikeZone string

// Padding of the diagram in data/strikezone_blank.txt.
const (
	rowPad = 0
	colPad = 8
)

// Position is a cell of the strike zone diagram.
type Position struct {
	Row int
	Col int
}

// ballMarkers holds where each zone's ball count is drawn. The strike count
// goes one row below.
var ballMarkers = map[Zone]Position{
	"zone1":  {rowPad + 5, colPad + 11},
	"zone2":  {rowPad + 5, colPad + 18},
	"zone3":  {rowPad + 5, colPad + 25},
	"zone4":  {rowPad + 8, colPad + 11},
	"zone5":  {rowPad + 8, colPad + 18},
	"zone6":  {rowPad + 8, colPad + 25},
	"zone7":  {rowPad + 11, colPad + 11},
	"zone8":  {rowPad + 11, colPad + 18},
	"zone9":  {rowPad + 11, colPad + 25},
	"zone11": {rowPad + 2, colPad + 3},
	"zone12": {rowPad + 2, colPad + 33},
	"zone13": {rowPad + 14, colPad + 3},
	"zone14": {rowPad + 14, colPad + 33},
}

// ZoneCounts is the number of balls and strikes thrown into a zone.
type ZoneCounts struct {
	Balls   int `json:"balls"`
	Strikes int `json:"strikes"`
}

// StrikeZone tracks where balls and strikes were thrown during one at-bat
// and draws them on a text diagram: "O<n>" for balls, "X<n>" for strikes.
type StrikeZone struct {
	counts map[Zone]*ZoneCounts
}

// NewStrikeZone returns an empty StrikeZone.
func NewStrikeZone() *StrikeZone {
	sz := &StrikeZone{counts: make(map[Zone]*ZoneCounts, len(Zones))}
	for _, z := range Zones {
		sz.counts[z] = &ZoneCounts{}
	}
	return sz
}

// Record counts one event in zone z. NoEvent is ignored.
func (sz *StrikeZone) Record(z Zone, c EventClass) error {
	zc, ok := sz.counts[z]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownZone, z)
	}
	switch c {
	case StrikeEvent:
		zc.Strikes++
	case BallEvent:
		zc.Balls++
	}
	return nil
}

// Counts returns the counters of zone z.
func (sz *StrikeZone) Counts(z Zone) ZoneCounts {
	if zc, ok := sz.counts[z]; ok {
		return *zc
	}
	return ZoneCounts{}
}

// Empty reports whether nothing has been recorded yet.
func (sz *StrikeZone) Empty() bool {
	for _, zc := range sz.counts {
		if zc.Balls > 0 || zc.Strikes > 0 {
			return false
		}
	}
	return true
}

// Position returns the diagram cell of the ball marker of zone z. The strike
// marker is on the next row, same column.
func (sz *StrikeZone) Position(z Zone) (Position, bool) {
	p, ok := ballMarkers[z]
	return p, ok
}

// Render draws the diagram with the current counters.
func (sz *StrikeZone) Render() string {
	grid := newGrid(blankStrikeZone)
	for _, z := range Zones {
		zc := sz.counts[z]
		p := ballMarkers[z]
		if zc.Balls > 0 {
			grid.put(p.Row, p.Col, "O"+strconv.Itoa(zc.Balls))
		}
		if zc.Strikes > 0 {
			grid.put(p.Row+1, p.Col, "X"+strconv.Itoa(zc.Strikes))
		}
	}
	return grid.String()
}

func (sz *StrikeZone) String() string {
	return sz.Render()
}

// Legend draws the diagram with each zone's number at its ball marker.
func Legend() string {
	grid := newGrid(blankStrikeZone)
	for _, z := range Zones {
		p := ballMarkers[z]
		grid.put(p.Row, p.Col, strconv.Itoa(z.Number()))
	}
	return grid.String()
}

type grid [][]byte

func newGrid(s string) grid {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	g := make(grid, len(lines))
	for i, l := range lines {
		g[i] = []byte(l)
	}
	return g
}

// put overwrites the cells starting at (row, col) with s, growing the row
// with spaces when needed.
func (g grid) put(row, col int, s string) {
	if row < 0 || row >= len(g) || col < 0 {
		return
	}
	for len(g[row]) < col+len(s) {
		g[row] = append(g[row], ' ')
	}
	copy(g[row][col:], s)
}

func (g grid) String() string {
	var sb strings.Builder
	for _, l := range g {
		sb.Write(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}
