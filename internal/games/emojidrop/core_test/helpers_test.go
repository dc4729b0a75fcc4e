package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/emojidrop/internal/games/emojidrop/core"
)

// constRand always draws the same symbol index.
type constRand struct {
	v int
}

func (r constRand) Intn(n int) int {
	return r.v % n
}

// seqRand cycles through a fixed sequence of draws.
type seqRand struct {
	seq []int
	pos int
}

func (r *seqRand) Intn(n int) int {
	v := r.seq[r.pos%len(r.seq)]
	r.pos++
	return v % n
}

// emptyRows returns n rows of empty cells for a board of the given width.
func emptyRows(n, cols int) []string {
	rows := make([]string, n)
	for i := range rows {
		b := make([]byte, cols)
		for j := range b {
			b[j] = '.'
		}
		rows[i] = string(b)
	}
	return rows
}

// board builds a default-sized board whose bottom rows are given.
func board(t *testing.T, bottom ...string) *core.Board {
	t.Helper()
	lines := append(emptyRows(core.DefaultRows-len(bottom), core.DefaultCols), bottom...)
	b, err := core.ParseBoard(lines...)
	require.NoError(t, err)
	return b
}

// newEngine returns a started default engine with the given board staged.
func newEngine(t *testing.T, b *core.Board) *core.Engine {
	t.Helper()
	e := core.NewEngine(core.DefaultConfig(), constRand{})
	e.StartGame()
	if b != nil {
		e.LoadBoard(b)
	}
	return e
}

// requireNoRuns fails if any horizontal or vertical run survives.
func requireNoRuns(t *testing.T, b *core.Board) {
	t.Helper()
	require.Empty(t, core.FindMatches(b), "board still has runs:\n%s", b)
}

// requireGravity fails if any column has an empty cell below a filled one.
func requireGravity(t *testing.T, b *core.Board) {
	t.Helper()
	for col := range b.Cols() {
		seenFilled := false
		for row := range b.Rows() {
			filled := b.Occupied(core.At(row, col))
			if seenFilled && !filled {
				t.Fatalf("column %d has a gap at row %d:\n%s", col, row, b)
			}
			seenFilled = seenFilled || filled
		}
	}
}
