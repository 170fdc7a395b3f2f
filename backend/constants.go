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

// Schema Versions
const (
	SchemaVersionV1      = 1
	CurrentSchemaVersion = SchemaVersionV1
)

// Data Directory Layout
const (
	TablesDir      = "popz"
	RosterFileName = "roster.yaml"
	LogFileName    = "strikezone.log"
	MasterKeyFile  = "master.key"
	ConfigFileName = "strikezone.cfg.json"
)

// Game Rules
const (
	DefaultMoundVisits = 3
	// MoundVisitBreak is the number of batters faced after a visit before a
	// low score alone can trigger the next one.
	MoundVisitBreak = 3
	recentWindow    = 4
	maxRecentHits   = 2
	maxRecentHBP    = 1
	lowScore        = 4000
	highScore       = 10000
)

// Plate appearances that earn an encouraging word from the dugout.
var milestones = map[int]string{
	10: "Well done! You've encountered 10 batters and you're still going! Keep it up!",
	20: "Wow, 20 batters! How's the arm? Keep going!",
	30: "Woah. 30 batters. Buy me some peanuts and cracker jacks!",
}
