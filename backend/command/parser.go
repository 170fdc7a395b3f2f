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


// Package command parses what the user types at the pitch prompt.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ttbt-io/strikezone/backend/engine"
)

// ErrInvalidCommand is returned for input that is not a command.
var ErrInvalidCommand = errors.New("invalid pitch command")

// Kind is the kind of a command.
type Kind int

const (
	Pitch Kind = iota
	Quit
	Help
	Legend
)

func (k Kind) String() string {
	switch k {
	case Pitch:
		return "pitch"
	case Quit:
		return "quit"
	case Help:
		return "help"
	case Legend:
		return "legend"
	}
	return "unknown"
}

// Command is a parsed command. PitchType and Zone are only set for Pitch.
type Command struct {
	Kind      Kind
	PitchType engine.PitchType
	Zone      engine.Zone
}

// pitchCodes maps the first letter of a pitch command to its pitch type.
var pitchCodes = map[rune]engine.PitchType{
	'F': engine.Fastball,
	'O': engine.Offspeed,
	'B': engine.Breaking,
}

var keywords = map[string]Kind{
	"":       Quit,
	"q":      Quit,
	"quit":   Quit,
	"exit":   Quit,
	"h":      Help,
	"help":   Help,
	"?":      Help,
	"legend": Legend,
	"zones":  Legend,
}

// Parse parses one line of input. A pitch command is a pitch code followed
// by a zone number, e.g. "F2" or "b12". The zone is not checked against the
// pitcher's table here. Empty input quits.
func Parse(input string) (Command, error) {
	input = strings.TrimSpace(input)
	if k, ok := keywords[strings.ToLower(input)]; ok {
		return Command{Kind: k}, nil
	}

	runes := []rune(input)
	pt, ok := pitchCodes[unicode.ToUpper(runes[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w: unknown pitch code %q", ErrInvalidCommand, runes[0])
	}
	digits := string(runes[1:])
	if digits == "" || strings.TrimFunc(digits, unicode.IsDigit) != "" {
		return Command{}, fmt.Errorf("%w: %q is not a zone number", ErrInvalidCommand, digits)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n == 0 {
		return Command{}, fmt.Errorf("%w: %q is not a zone number", ErrInvalidCommand, digits)
	}
	return Command{Kind: Pitch, PitchType: pt, Zone: engine.ZoneNumber(n)}, nil
}

// Format returns the short command for a pitch, e.g. "F2".
func Format(p engine.PitchType, z engine.Zone) string {
	return p.Code() + strconv.Itoa(z.Number())
}

// Codes returns the pitch codes in display order, e.g. "F: Fastball".
func Codes() []string {
	out := make([]string, 0, len(engine.PitchTypes))
	for _, p := range engine.PitchTypes {
		out = append(out, p.Code()+": "+string(p))
	}
	return out
}
