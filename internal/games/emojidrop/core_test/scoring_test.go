package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/emojidrop/internal/games/emojidrop/core"
)

func TestRoundMultiplier(t *testing.T) {
	tests := []struct {
		round int
		want  int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 16},
		{31, 1 << 30},
		{64, 1 << 30},
		{1000, 1 << 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, core.RoundMultiplier(tt.round), "round %d", tt.round)
	}
}

func TestRoundPointsStayPositiveOnDeepCascades(t *testing.T) {
	r := core.Round{Index: 64, Cleared: []core.Coord{core.At(0, 0), core.At(0, 1), core.At(0, 2)}}

	assert.Equal(t, core.PointsPerRun*(1<<30), core.RoundPoints(r))
}

func TestTallyOneRun(t *testing.T) {
	res := core.Resolve(board(t, "HHHSAF"))

	out := core.Tally(res.Rounds)

	assert.Equal(t, 10, out.Points)
	assert.Equal(t, 1, out.Combo)
	assert.Equal(t, 3, out.Cleared)
	assert.True(t, out.SpeedUp)
}

func TestTallyTwoSeparateRuns(t *testing.T) {
	res := core.Resolve(board(t, "HHHSSS"))

	out := core.Tally(res.Rounds)

	assert.Len(t, res.Rounds, 1)
	assert.Equal(t, 20, out.Points)
	assert.Equal(t, 1, out.Combo)
	assert.Equal(t, 3, out.Counts.Get(core.Sadness))
}

func TestTallyCascadeDoublesSecondRound(t *testing.T) {
	res := core.Resolve(board(t,
		".SS...",
		"HHHS..",
	))

	out := core.Tally(res.Rounds)

	assert.Equal(t, 10+20, out.Points)
	assert.Equal(t, 2, out.Combo)
	assert.Equal(t, 6, out.Cleared)
	assert.True(t, out.SpeedUp)
}

func TestTallyPartialGroups(t *testing.T) {
	// Five distinct cells hold one full group of three.
	rounds := []core.Round{{Index: 1, Cleared: make([]core.Coord, 5)}}

	assert.Equal(t, 10, core.Tally(rounds).Points)
}

func TestTallyNoRounds(t *testing.T) {
	out := core.Tally(nil)

	assert.Equal(t, core.Outcome{Combo: 1}, out)
}
