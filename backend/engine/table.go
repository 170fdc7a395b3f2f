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
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// PitchType is a family of pitches a pitcher can throw.
type PitchType string

// Pitch Types
const (
	Fastball PitchType = "Fastball"
	Offspeed PitchType = "Offspeed"
	Breaking PitchType = "Breaking"
)

// PitchTypes lists the known pitch types.
var PitchTypes = []PitchType{Fastball, Offspeed, Breaking}

// Code is the one-letter command code of the pitch type ("F", "O", "B").
func (p PitchType) Code() string {
	if p == "" {
		return ""
	}
	return string(p[0])
}

// Repertoire is the set of pitch types a pitcher throws.
type Repertoire []PitchType

// Contains reports whether p is in the repertoire.
func (r Repertoire) Contains(p PitchType) bool {
	return slices.Contains(r, p)
}

func (r Repertoire) String() string {
	names := make([]string, len(r))
	for i, p := range r {
		names[i] = string(p)
	}
	return strings.Join(names, " ")
}

// Zone is a Statcast attack zone. Zones 1-9 are in the strike zone, 11-14
// surround it. There is no zone 10.
type Zone string

// Zones lists every zone in display order.
var Zones = []Zone{
	"zone1", "zone2", "zone3",
	"zone4", "zone5", "zone6",
	"zone7", "zone8", "zone9",
	"zone11", "zone12", "zone13", "zone14",
}

// ZoneNumber returns the Zone with the given Statcast number.
func ZoneNumber(n int) Zone {
	return Zone("zone" + strconv.Itoa(n))
}

// Number returns the Statcast number of the zone, or 0 if it is malformed.
func (z Zone) Number() int {
	n, err := strconv.Atoi(strings.TrimPrefix(string(z), "zone"))
	if err != nil || !strings.HasPrefix(string(z), "zone") {
		return 0
	}
	return n
}

// Valid reports whether z is a known zone.
func (z Zone) Valid() bool {
	return slices.Contains(Zones, z)
}

// InStrikeZone reports whether z is one of the nine zones over the plate.
func (z Zone) InStrikeZone() bool {
	n := z.Number()
	return n >= 1 && n <= 9
}

// Weights maps each outcome to its raw, unnormalized weight.
type Weights map[OutcomeKind]float64

// Clone returns a copy of w.
func (w Weights) Clone() Weights {
	c := make(Weights, len(w))
	for k, v := range w {
		c[k] = v
	}
	return c
}

// OutcomeTable holds the raw outcome weights of one pitcher, keyed by pitch
// type then zone. It is read-only once loaded.
type OutcomeTable map[PitchType]map[Zone]Weights

// Lookup returns the weights for a pitch type and zone.
func (t OutcomeTable) Lookup(p PitchType, z Zone) (Weights, bool) {
	zones, ok := t[p]
	if !ok {
		return nil, false
	}
	w, ok := zones[z]
	return w, ok
}

// PitchTypes returns the pitch types present in the table in canonical order.
func (t OutcomeTable) PitchTypes() Repertoire {
	var out Repertoire
	for _, p := range PitchTypes {
		if _, ok := t[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a deep copy of t.
func (t OutcomeTable) Clone() OutcomeTable {
	c := make(OutcomeTable, len(t))
	for p, zones := range t {
		cz := make(map[Zone]Weights, len(zones))
		for z, w := range zones {
			cz[z] = w.Clone()
		}
		c[p] = cz
	}
	return c
}

// Validate checks that the table only uses known pitch types, zones and
// outcomes and that every weight is finite and non-negative.
func (t OutcomeTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidTable)
	}
	for p, zones := range t {
		if !slices.Contains(PitchTypes, p) {
			return fmt.Errorf("%w: unknown pitch type %q", ErrInvalidTable, p)
		}
		for z, w := range zones {
			if !z.Valid() {
				return fmt.Errorf("%w: %s: unknown zone %q", ErrInvalidTable, p, z)
			}
			for o, v := range w {
				if !o.Valid() {
					return fmt.Errorf("%w: %s/%s: unknown outcome %q", ErrInvalidTable, p, z, o)
				}
				if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%w: %s/%s: invalid weight %v for %s", ErrInvalidTable, p, z, v, o)
				}
			}
		}
	}
	return nil
}

// Covers reports whether every zone has an entry for every pitch type in r.
func (t OutcomeTable) Covers(r Repertoire) error {
	for _, p := range r {
		for _, z := range Zones {
			if _, ok := t.Lookup(p, z); !ok {
				return fmt.Errorf("%w: %s %s", ErrUnknownZone, p, z)
			}
		}
	}
	return nil
}

// ParseOutcomeTable decodes a POPZ table from JSON and validates it.
func ParseOutcomeTable(data []byte) (OutcomeTable, error) {
	var t OutcomeTable
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadOutcomeTable decodes a POPZ table from r.
func ReadOutcomeTable(r io.Reader) (OutcomeTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseOutcomeTable(data)
}

// WriteOutcomeTable encodes t as indented JSON.
func WriteOutcomeTable(w io.Writer, t OutcomeTable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}
