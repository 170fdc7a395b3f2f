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

import "errors"

var (
	// ErrUnknownPitchType is returned when the pitch type is not in the
	// pitcher's repertoire.
	ErrUnknownPitchType = errors.New("pitch type not in this pitcher's repertoire")
	// ErrUnknownZone is returned when the outcome table has no entry for the
	// requested pitch type and zone.
	ErrUnknownZone = errors.New("zone not in outcome table")
	// ErrDegenerateDistribution is returned when every weight is zero after
	// the batter adjustment.
	ErrDegenerateDistribution = errors.New("all outcome weights are zero")
	// ErrInvalidBatterSkill is returned for batting averages outside [0,1].
	ErrInvalidBatterSkill = errors.New("batter skill must be in [0,1]")
	// ErrAtBatOver is returned when pitching to a batter whose at-bat ended.
	ErrAtBatOver = errors.New("at-bat is over")
	// ErrInvalidTable is returned by outcome table validation.
	ErrInvalidTable = errors.New("invalid outcome table")
)
