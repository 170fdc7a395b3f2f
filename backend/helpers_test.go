package backend

import (
	"testing"

	"github.com/c2FmZQ/storage"
	"github.com/ttbt-io/strikezone/backend/engine"
)

// scriptedZones maps a zone to the only outcome its weights allow.
var scriptedZones = map[engine.Zone]engine.OutcomeKind{
	"zone1":  engine.CalledStrike,
	"zone2":  engine.Ball,
	"zone3":  engine.Homerun,
	"zone4":  engine.InPlayOut,
	"zone5":  engine.Single,
	"zone6":  engine.FoulBall,
	"zone7":  engine.Double,
	"zone8":  engine.Triple,
	"zone9":  engine.SwingingStrike,
	"zone11": engine.HitByPitch,
	"zone12": engine.Ball,
	"zone13": engine.Ball,
	"zone14": engine.Ball,
}

func scriptedTable() engine.OutcomeTable {
	zones := make(map[engine.Zone]engine.Weights)
	for z, o := range scriptedZones {
		zones[z] = engine.Weights{o: 100}
	}
	return engine.OutcomeTable{engine.Fastball: zones}
}

func testPitcher() *Pitcher {
	return &Pitcher{
		Player: Player{ID: "clayton_kershaw", FirstName: "Clayton", LastName: "Kershaw", TeamCity: "Los Angeles", TeamName: "Dodgers", Position: "Pitcher"},
		PitchingCapability: PitchingCapability{
			Repertoire: engine.Repertoire{engine.Fastball},
			Table:      scriptedTable(),
		},
	}
}

func testTeam() *Team {
	t := &Team{
		ID:   "seattle_mariners",
		City: "Seattle",
		Name: "Mariners",
		Lineup: []Batter{
			{Player: Player{ID: "jp_crawford", FirstName: "J.P.", LastName: "Crawford", Position: "SS"}, BattingCapability: BattingCapability{BatAvg: 0.273}},
			{Player: Player{ID: "kyle_seager", FirstName: "Kyle", LastName: "Seager", Position: "3B"}, BattingCapability: BattingCapability{BatAvg: 0.212}},
			{Player: Player{ID: "ty_france", FirstName: "Ty", LastName: "France", Position: "2B"}, BattingCapability: BattingCapability{BatAvg: 0.291}},
		},
	}
	t.normalize()
	return t
}

func newTestSession(t *testing.T, opts ...SessionOption) *Session {
	t.Helper()
	s, err := NewSession(testPitcher(), testTeam(), opts...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func newTestTableStore(t *testing.T) *TableStore {
	t.Helper()
	dir := t.TempDir()
	return NewTableStore(dir, storage.New(dir, nil))
}
