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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyGolden compares actual with testdata/<name>. With UPDATE_GOLDENS=true
// it rewrites the file instead.
func verifyGolden(t *testing.T, name, actual string) {
	t.Helper()
	goldenPath := filepath.Join("testdata", name)

	if os.Getenv("UPDATE_GOLDENS") == "true" {
		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expectedBytes, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("Failed to read golden file %s: %v", goldenPath, err)
	}
	expected := string(expectedBytes)
	if actual != expected {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(expected),
			B:        difflib.SplitLines(actual),
			FromFile: "Expected",
			ToFile:   "Actual",
			Context:  3,
		})
		t.Errorf("Render mismatch for %s:\n%s", name, diff)
	}
}

func TestStrikeZone_Counters(t *testing.T) {
	sz := NewStrikeZone()
	assert.True(t, sz.Empty())

	for _, z := range Zones {
		assert.Equal(t, ZoneCounts{}, sz.Counts(z))
	}

	require.NoError(t, sz.Record("zone5", StrikeEvent))
	require.NoError(t, sz.Record("zone5", StrikeEvent))
	require.NoError(t, sz.Record("zone5", BallEvent))
	require.NoError(t, sz.Record("zone12", BallEvent))
	require.NoError(t, sz.Record("zone12", NoEvent))

	assert.False(t, sz.Empty())
	assert.Equal(t, ZoneCounts{Balls: 1, Strikes: 2}, sz.Counts("zone5"))
	assert.Equal(t, ZoneCounts{Balls: 1}, sz.Counts("zone12"))
	assert.Equal(t, ZoneCounts{}, sz.Counts("zone1"))
}

func TestStrikeZone_UnknownZone(t *testing.T) {
	sz := NewStrikeZone()
	assert.ErrorIs(t, sz.Record("zone10", BallEvent), ErrUnknownZone)
	assert.True(t, sz.Empty())
	_, ok := sz.Position("zone10")
	assert.False(t, ok)
}

func TestStrikeZone_Positions(t *testing.T) {
	sz := NewStrikeZone()
	tests := []struct {
		zone Zone
		want Position
	}{
		{"zone1", Position{Row: 5, Col: 19}},
		{"zone2", Position{Row: 5, Col: 26}},
		{"zone3", Position{Row: 5, Col: 33}},
		{"zone4", Position{Row: 8, Col: 19}},
		{"zone5", Position{Row: 8, Col: 26}},
		{"zone6", Position{Row: 8, Col: 33}},
		{"zone7", Position{Row: 11, Col: 19}},
		{"zone8", Position{Row: 11, Col: 26}},
		{"zone9", Position{Row: 11, Col: 33}},
		{"zone11", Position{Row: 2, Col: 11}},
		{"zone12", Position{Row: 2, Col: 41}},
		{"zone13", Position{Row: 14, Col: 11}},
		{"zone14", Position{Row: 14, Col: 41}},
	}
	for _, tc := range tests {
		got, ok := sz.Position(tc.zone)
		require.True(t, ok, tc.zone)
		assert.Equal(t, tc.want, got, tc.zone)
	}
}

func TestStrikeZone_RenderMarkers(t *testing.T) {
	sz := NewStrikeZone()
	require.NoError(t, sz.Record("zone7", BallEvent))
	require.NoError(t, sz.Record("zone7", StrikeEvent))

	lines := strings.Split(sz.Render(), "\n")
	p, _ := sz.Position("zone7")
	assert.Equal(t, "O1", lines[p.Row][p.Col:p.Col+2])
	assert.Equal(t, "X1", lines[p.Row+1][p.Col:p.Col+2])
}

func TestStrikeZone_RenderEmptyIsBlank(t *testing.T) {
	assert.Equal(t, blankStrikeZone, NewStrikeZone().Render())
}

func TestStrikeZone_RenderGolden(t *testing.T) {
	sz := NewStrikeZone()
	record := func(z Zone, c EventClass, n int) {
		for i := 0; i < n; i++ {
			require.NoError(t, sz.Record(z, c))
		}
	}
	record("zone1", StrikeEvent, 1)
	record("zone2", BallEvent, 2)
	record("zone11", BallEvent, 1)
	record("zone11", StrikeEvent, 3)
	record("zone14", BallEvent, 12)
	record("zone5", BallEvent, 1)
	record("zone5", StrikeEvent, 1)

	verifyGolden(t, "strikezone_render.golden", sz.Render())
}

func TestLegendGolden(t *testing.T) {
	verifyGolden(t, "strikezone_legend.golden", Legend())
}
