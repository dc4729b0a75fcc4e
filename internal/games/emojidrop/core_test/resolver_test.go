package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/emojidrop/internal/games/emojidrop/core"
)

func TestResolveNoMatches(t *testing.T) {
	b := board(t,
		"HSAFDU",
		"SAFDUC",
	)

	res := core.Resolve(b)

	assert.Empty(t, res.Rounds)
	assert.True(t, res.Board.Equal(b))
	assert.NotSame(t, b, res.Board)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	b := board(t, "HHHSAF")
	before := b.Clone()

	res := core.Resolve(b)

	require.Len(t, res.Rounds, 1)
	assert.True(t, b.Equal(before))
}

func TestFindMatchesUnionsOverlaps(t *testing.T) {
	// L-shape: vertical run in column 0 shares its bottom cell with a
	// horizontal run in row 9.
	b := board(t,
		"H.....",
		"H.....",
		"HHHH..",
	)

	got := core.FindMatches(b)

	want := []core.Coord{
		core.At(7, 0),
		core.At(8, 0),
		core.At(9, 0), core.At(9, 1), core.At(9, 2), core.At(9, 3),
	}
	assert.Equal(t, want, got)
}

func TestResolveSingleRound(t *testing.T) {
	b := board(t,
		"..A...",
		"SSFS..",
		"HHHSDD",
	)

	res := core.Resolve(b)

	require.Len(t, res.Rounds, 1)
	r := res.Rounds[0]
	assert.Equal(t, 1, r.Index)
	assert.Equal(t, []core.Coord{core.At(9, 0), core.At(9, 1), core.At(9, 2)}, r.Cleared)
	assert.Equal(t, 3, r.Counts.Get(core.Happiness))

	// Columns 0..2 fall by one row; column 2 keeps A above F.
	want := board(t,
		"......",
		"..AS..",
		"SSFSDD",
	)
	assert.Equal(t, want.Lines(), res.Board.Lines())
}

func TestResolveCascade(t *testing.T) {
	b := board(t,
		".SS...",
		"HHHS..",
	)

	res := core.Resolve(b)

	require.Len(t, res.Rounds, 2)
	assert.Equal(t, 3, res.Rounds[0].Counts.Get(core.Happiness))
	assert.Equal(t, 2, res.Rounds[1].Index)
	assert.Equal(t, 3, res.Rounds[1].Counts.Get(core.Sadness))
	assert.Equal(t, []core.Coord{core.At(9, 1), core.At(9, 2), core.At(9, 3)}, res.Rounds[1].Cleared)
	assert.Equal(t, 0, res.Board.FilledCount())
	assert.True(t, res.Cascaded())
}

func TestCompactPreservesColumnOrder(t *testing.T) {
	b := core.MustParseBoard(
		"H.",
		".S",
		"A.",
		"..",
		"F.",
	)

	core.Compact(b)

	assert.Equal(t, []string{
		"..",
		"..",
		"H.",
		"A.",
		"FS",
	}, b.Lines())
}

func TestResolveInvariantsOnRandomBoards(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := core.NewBoard(core.DefaultRows, core.DefaultCols)
		for row := range b.Rows() {
			for col := range b.Cols() {
				if rng.Intn(4) == 0 {
					continue
				}
				b.SetSymbol(core.At(row, col), core.Symbol(rng.Intn(int(core.SymbolCount))))
			}
		}
		core.Compact(b)

		res := core.Resolve(b)

		assert.Equal(t, core.DefaultRows, res.Board.Rows())
		assert.Equal(t, core.DefaultCols, res.Board.Cols())
		requireNoRuns(t, res.Board)
		requireGravity(t, res.Board)

		cleared := 0
		for i, r := range res.Rounds {
			assert.Equal(t, i+1, r.Index)
			assert.GreaterOrEqual(t, r.Size(), core.MinRun)
			assert.Equal(t, r.Size(), r.Counts.Total())
			cleared += r.Size()
		}
		assert.Equal(t, b.FilledCount()-cleared, res.Board.FilledCount(), "seed %d", seed)

		again := core.Resolve(res.Board)
		assert.Empty(t, again.Rounds, "seed %d", seed)
		assert.True(t, again.Board.Equal(res.Board), "seed %d", seed)
	}
}

func TestHasMatch(t *testing.T) {
	vertical := core.MustParseBoard("C", "C", "C")
	broken := core.MustParseBoard("CC.C")

	assert.True(t, core.HasMatch(vertical))
	assert.False(t, core.HasMatch(broken))
}
