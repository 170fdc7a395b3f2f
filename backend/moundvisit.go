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
	"fmt"
	"slices"

	"github.com/ttbt-io/strikezone/backend/engine"
)

// VisitTone is how the manager talks to the pitcher.
type VisitTone int

const (
	PepTalk VisitTone = iota
	Threat
	Pull
)

func (t VisitTone) String() string {
	switch t {
	case PepTalk:
		return "pep_talk"
	case Threat:
		return "threat"
	case Pull:
		return "pull"
	}
	return "unknown"
}

// Mound visit reasons.
const (
	ReasonBaseHits   = "these recent base hits"
	ReasonLowScore   = "your low score"
	ReasonHitBatters = "you hitting batters"
)

// MoundVisit is a visit from the manager.
type MoundVisit struct {
	Reason string
	Tone   VisitTone
	// Remaining is the number of visits left after this one.
	Remaining int
	Score     int
	Pitcher   Player
}

func recentBaseHits(recent []engine.PlateAppearanceResult) int {
	hits := 0
	for _, r := range recent {
		if r.IsBaseHit() {
			hits++
		}
	}
	return hits
}

// visitTriggered reports whether the manager considers a visit after a plate
// appearance. recent holds the last four results.
func visitTriggered(recent []engine.PlateAppearanceResult, visitBreak int) bool {
	return visitBreak < 0 || recentBaseHits(recent) > maxRecentHits
}

// visitReason returns why the manager comes out, if there is a reason at all.
func visitReason(recent []engine.PlateAppearanceResult, score int) (string, bool) {
	switch {
	case recentBaseHits(recent) > maxRecentHits:
		return ReasonBaseHits, true
	case score <= lowScore:
		return ReasonLowScore, true
	case countResult(recent, engine.ResultHBP) > maxRecentHBP:
		return ReasonHitBatters, true
	}
	return "", false
}

func countResult(rs []engine.PlateAppearanceResult, want engine.PlateAppearanceResult) int {
	n := 0
	for _, r := range rs {
		if r == want {
			n++
		}
	}
	return n
}

// visitTone picks the tone from the number of visits left before the visit.
// The first visit of the game is a pep talk and the last one pulls the
// pitcher.
func visitTone(before, total int) VisitTone {
	switch {
	case before <= 1:
		return Pull
	case before >= total:
		return PepTalk
	default:
		return Threat
	}
}

// recentResults returns the last recentWindow results of history.
func recentResults(history []engine.PlateAppearanceResult) []engine.PlateAppearanceResult {
	if len(history) > recentWindow {
		history = history[len(history)-recentWindow:]
	}
	return slices.Clone(history)
}

// Lines returns what the manager says.
func (v MoundVisit) Lines() []string {
	switch v.Tone {
	case PepTalk:
		return []string{
			"Your manager is approaching for a Mound Visit!",
			"Manager:",
			fmt.Sprintf("    Alright, %s, looks like you're having a rough start.", v.Pitcher.FirstName),
			fmt.Sprintf("    I'm here because of %s. You still have a chance to turn things around.", v.Reason),
			"",
			"    You've got this. But keep in mind that I'll pull you from the game if you don't step it up.",
			"",
			fmt.Sprintf("You have lost a Mound Visit. You have %d visits remaining.", v.Remaining),
			"Resuming game!",
		}
	case Threat:
		return []string{
			"Your manager is approaching for a Mound Visit!",
			"Manager:",
			fmt.Sprintf("    Listen up, %s. I don't like what I'm seeing.", v.Pitcher.LastName),
			fmt.Sprintf("    I'm running out of patience because of %s.", v.Reason),
			"    Pick it up. Now. You hear me? Otherwise I'll put someone else in.",
			"",
			fmt.Sprintf("You have lost a Mound Visit. You have %d visits remaining.", v.Remaining),
			"Resuming game! Good luck!",
		}
	}
	lines := []string{
		"Your manager is approaching for a Mound Visit...",
		"Manager:",
	}
	if v.Score > highScore {
		lines = append(lines,
			fmt.Sprintf("    Not bad, ace. You got %d points.", v.Score),
			fmt.Sprintf("    You've played your part, but because of %s it's time to hand it over to a reliever.", v.Reason),
			"",
			"    I'm looking forward to putting you in again soon!",
		)
	} else {
		lines = append(lines,
			fmt.Sprintf("    Okay, not your best day, %s. Gimme that ball.", v.Pitcher.LastName),
			fmt.Sprintf("    Let's hope the relieving pitcher can undo the damage done from %s.", v.Reason),
			"",
			"    Better luck next time!",
		)
	}
	return append(lines, "You are out of Mound Visits.")
}
