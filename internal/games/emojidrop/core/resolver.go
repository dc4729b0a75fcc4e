package core

// MinRun is the shortest run of equal symbols that gets cleared.
const MinRun = 3

// Round records one detect, clear and compact pass of a resolution.
type Round struct {
	Index   int          // 1-based round number within a landing
	Cleared []Coord      // Distinct cleared cells in row-major order
	Counts  SymbolCounts // Cleared cells per symbol, read before clearing
}

// Size returns the number of distinct cells cleared in the round.
func (r Round) Size() int {
	return len(r.Cleared)
}

// Resolution is the stabilized board and the log of rounds that produced it.
type Resolution struct {
	Board  *Board
	Rounds []Round
}

// Cascaded returns true if more than one round fired.
func (r Resolution) Cascaded() bool {
	return len(r.Rounds) > 1
}

// Resolve clears every run on a copy of b until the board is stable.
// The input board is never modified.
func Resolve(b *Board) Resolution {
	work := b.Clone()
	rounds := make([]Round, 0)

	for {
		cleared := FindMatches(work)
		if len(cleared) == 0 {
			break
		}

		round := Round{Index: len(rounds) + 1, Cleared: cleared}
		for _, c := range cleared {
			round.Counts.Add(work.Get(c).Symbol, 1)
		}
		for _, c := range cleared {
			work.SetEmpty(c)
		}
		Compact(work)

		rounds = append(rounds, round)
	}

	return Resolution{Board: work, Rounds: rounds}
}

// FindMatches returns every cell that belongs to a horizontal or vertical
// run of at least MinRun equal symbols. Overlapping runs are unioned and
// the result is de-duplicated and sorted in row-major order.
func FindMatches(b *Board) []Coord {
	marked := make([]bool, b.rows*b.cols)

	// Horizontal triples
	for row := range b.rows {
		for col := 0; col+MinRun <= b.cols; col++ {
			if sameRun(b, At(row, col), 0, 1) {
				for i := range MinRun {
					marked[b.index(At(row, col+i))] = true
				}
			}
		}
	}

	// Vertical triples
	for col := range b.cols {
		for row := 0; row+MinRun <= b.rows; row++ {
			if sameRun(b, At(row, col), 1, 0) {
				for i := range MinRun {
					marked[b.index(At(row+i, col))] = true
				}
			}
		}
	}

	result := make([]Coord, 0)
	for i, m := range marked {
		if m {
			result = append(result, At(i/b.cols, i%b.cols))
		}
	}
	return result
}

// HasMatch returns true if the board holds at least one run.
func HasMatch(b *Board) bool {
	return len(FindMatches(b)) > 0
}

// sameRun reports whether MinRun cells starting at start, stepping by
// (dRow, dCol), are all filled with one symbol.
func sameRun(b *Board, start Coord, dRow, dCol int) bool {
	first := b.Get(start)
	if !first.Filled {
		return false
	}
	for i := 1; i < MinRun; i++ {
		cell := b.Get(At(start.Row+i*dRow, start.Col+i*dCol))
		if !cell.Filled || cell.Symbol != first.Symbol {
			return false
		}
	}
	return true
}

// Compact applies gravity in place: each column keeps its filled cells in
// top-to-bottom order, packed against the bottom row.
func Compact(b *Board) {
	for col := range b.cols {
		writeRow := b.rows - 1
		for row := b.rows - 1; row >= 0; row-- {
			cell := b.Get(At(row, col))
			if !cell.Filled {
				continue
			}
			if row != writeRow {
				b.Set(At(writeRow, col), cell)
				b.SetEmpty(At(row, col))
			}
			writeRow--
		}
	}
}
