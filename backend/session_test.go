package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttbt-io/strikezone/backend/engine"
)

func TestNewSession(t *testing.T) {
	s := newTestSession(t)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, DefaultMoundVisits, s.MoundVisits)
	assert.Equal(t, MoundVisitBreak, s.MoundVisitBreak)
	assert.Zero(t, s.Score)
	assert.False(t, s.Over())

	s = newTestSession(t, WithMoundVisits(5))
	assert.Equal(t, 5, s.MoundVisits)
}

func TestNewSession_Errors(t *testing.T) {
	_, err := NewSession(nil, testTeam())
	assert.Error(t, err)

	empty := testTeam()
	empty.Lineup = nil
	_, err = NewSession(testPitcher(), empty)
	assert.Error(t, err)

	p := testPitcher()
	delete(p.Table[engine.Fastball], "zone14")
	_, err = NewSession(p, testTeam())
	assert.ErrorIs(t, err, engine.ErrUnknownZone)
}

func TestSession_NextBatterWrapsAround(t *testing.T) {
	s := newTestSession(t)
	var names []string
	for i := 0; i < 7; i++ {
		names = append(names, s.NextBatter().LastName)
	}
	assert.Equal(t, []string{"Crawford", "Seager", "France", "Crawford", "Seager", "France", "Crawford"}, names)
	assert.Equal(t, MoundVisitBreak-7, s.MoundVisitBreak)
}

func TestSession_Pitch(t *testing.T) {
	s := newTestSession(t)
	b := s.NextBatter()
	ab := s.NewAtBat()

	res, err := s.Pitch(ab, b, engine.Fastball, "zone1")
	require.NoError(t, err)
	assert.Equal(t, engine.CalledStrike, res.Outcome)

	_, err = s.Pitch(ab, b, engine.Breaking, "zone1")
	assert.ErrorIs(t, err, engine.ErrUnknownPitchType)

	res, err = s.Pitch(ab, b, engine.Fastball, "zone3")
	require.NoError(t, err)
	assert.True(t, res.Terminal)
	assert.Equal(t, engine.ResultHomerun, ab.Result())

	sum, err := s.Metrics().Summary()
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Pitches)
	assert.Equal(t, 1, sum.Rejected)
	assert.Equal(t, 1, sum.Outcomes[engine.Homerun])
}

func TestSession_RecordResultScores(t *testing.T) {
	s := newTestSession(t)
	s.NextBatter()
	out := s.RecordResult(engine.ResultStrikeout)
	assert.Equal(t, 3000, out.Points)
	assert.Equal(t, 3000, out.Score)
	assert.Nil(t, out.Visit)

	s.NextBatter()
	out = s.RecordResult(engine.ResultWalk)
	assert.Equal(t, -1000, out.Points)
	assert.Equal(t, 2000, s.Score)
	assert.Equal(t, 2, s.PlateAppearances)
	assert.Equal(t, []engine.PlateAppearanceResult{engine.ResultStrikeout, engine.ResultWalk}, s.OutcomeHistory)
}

func TestSession_VisitForBaseHits(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 2; i++ {
		s.NextBatter()
		out := s.RecordResult(engine.ResultSingle)
		assert.Nil(t, out.Visit)
	}
	s.NextBatter()
	out := s.RecordResult(engine.ResultDouble)
	require.NotNil(t, out.Visit)
	assert.Equal(t, ReasonBaseHits, out.Visit.Reason)
	assert.Equal(t, PepTalk, out.Visit.Tone)
	assert.Equal(t, 2, out.Visit.Remaining)
	assert.Equal(t, 2, s.MoundVisits)
	assert.Equal(t, MoundVisitBreak, s.MoundVisitBreak)
}

func TestSession_VisitForLowScoreAfterBreak(t *testing.T) {
	s := newTestSession(t)
	// Three batters use up the break, the fourth one makes it negative.
	for i := 0; i < 3; i++ {
		s.NextBatter()
		assert.Nil(t, s.RecordResult(engine.ResultInPlayOut).Visit)
	}
	assert.Equal(t, 6000, s.Score)

	s.NextBatter()
	out := s.RecordResult(engine.ResultWalk)
	assert.Nil(t, out.Visit, "score 5000 is not low")

	s.NextBatter()
	out = s.RecordResult(engine.ResultHomerun)
	require.NotNil(t, out.Visit)
	assert.Equal(t, ReasonLowScore, out.Visit.Reason)
	assert.Equal(t, -1000, out.Visit.Score)
}

func TestSession_VisitForHitBatters(t *testing.T) {
	s := newTestSession(t)
	s.Score = 20000
	results := []engine.PlateAppearanceResult{engine.ResultHBP, engine.ResultStrikeout, engine.ResultStrikeout, engine.ResultHBP}
	var out Outcome
	for _, r := range results {
		s.NextBatter()
		out = s.RecordResult(r)
	}
	require.NotNil(t, out.Visit)
	assert.Equal(t, ReasonHitBatters, out.Visit.Reason)
}

func TestSession_PulledAfterLastVisit(t *testing.T) {
	s := newTestSession(t)
	var tones []VisitTone
	for !s.Over() {
		s.NextBatter()
		if out := s.RecordResult(engine.ResultHomerun); out.Visit != nil {
			tones = append(tones, out.Visit.Tone)
		}
	}
	assert.Equal(t, []VisitTone{PepTalk, Threat, Pull}, tones)
	assert.Equal(t, 5, s.PlateAppearances)
	assert.Equal(t, -30000, s.Score)

	sum, err := s.Metrics().Summary()
	require.NoError(t, err)
	assert.Equal(t, 3, sum.MoundVisits)
	assert.Equal(t, -30000, sum.Score)
	assert.Equal(t, 5, sum.PlateAppearances[engine.ResultHomerun])
}

func TestSession_Milestones(t *testing.T) {
	s := newTestSession(t)
	var got []int
	for i := 1; i <= 30; i++ {
		// Reset the break so no visit is considered.
		s.MoundVisitBreak = MoundVisitBreak
		s.NextBatter()
		if out := s.RecordResult(engine.ResultStrikeout); out.Milestone != "" {
			got = append(got, i)
		}
	}
	assert.Equal(t, []int{10, 20, 30}, got)
	assert.Equal(t, DefaultMoundVisits, s.MoundVisits)
}

func TestSession_NoMilestoneWhenVisitConsidered(t *testing.T) {
	s := newTestSession(t)
	s.Score = 100000
	for i := 1; i <= 10; i++ {
		s.NextBatter()
		out := s.RecordResult(engine.ResultStrikeout)
		assert.Nil(t, out.Visit)
		assert.Empty(t, out.Milestone, "plate appearance %d", i)
	}
}
