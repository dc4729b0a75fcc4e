package core

import (
	"fmt"
	"strings"
)

// Coord identifies a board cell. Row 0 is the top of the well.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Below returns the coordinate one row down.
func (c Coord) Below() Coord {
	return Coord{Row: c.Row + 1, Col: c.Col}
}

// Cell represents a single cell in the board.
type Cell struct {
	Filled bool   // Whether the cell holds a symbol
	Symbol Symbol // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// FilledCell returns a cell holding the given symbol.
func FilledCell(s Symbol) Cell {
	return Cell{Filled: true, Symbol: s}
}

// Board is the fixed-size well. Cells are stored in row-major order.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board. Panics on non-positive dimensions.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("emojidrop: invalid board size %dx%d", rows, cols))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// ParseBoard builds a board from ASCII rows, top row first.
// Each rune is a symbol code (see Symbol.Char) or '.' for an empty cell.
func ParseBoard(lines ...string) (*Board, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("emojidrop: empty board")
	}
	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, fmt.Errorf("emojidrop: empty board row")
	}

	b := NewBoard(len(lines), cols)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("emojidrop: row %d has %d cells, want %d", row, len(runes), cols)
		}
		for col, r := range runes {
			if r == '.' {
				continue
			}
			sym, ok := symbolFromChar(r)
			if !ok {
				return nil, fmt.Errorf("emojidrop: unknown symbol %q at %v", r, At(row, col))
			}
			b.Set(At(row, col), FilledCell(sym))
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on error.
func MustParseBoard(lines ...string) *Board {
	b, err := ParseBoard(lines...)
	if err != nil {
		panic(err)
	}
	return b
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) index(c Coord) int {
	return c.Row*b.cols + c.Col
}

// InBounds returns true if the coordinate lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Get returns the cell at c. Out of bounds reads return an empty cell.
func (b *Board) Get(c Coord) Cell {
	if !b.InBounds(c) {
		return Empty()
	}
	return b.cells[b.index(c)]
}

// Occupied returns true if c is on the board and holds a symbol.
func (b *Board) Occupied(c Coord) bool {
	return b.Get(c).Filled
}

// Set writes a cell. Out of bounds writes are ignored.
func (b *Board) Set(c Coord, cell Cell) {
	if b.InBounds(c) {
		b.cells[b.index(c)] = cell
	}
}

// SetSymbol fills the cell at c with s.
func (b *Board) SetSymbol(c Coord, s Symbol) {
	b.Set(c, FilledCell(s))
}

// SetEmpty clears the cell at c.
func (b *Board) SetEmpty(c Coord) {
	b.Set(c, Empty())
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty()
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, cell := range b.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	count := 0
	for _, cell := range b.cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// Lines returns the ASCII form of the board, top row first.
func (b *Board) Lines() []string {
	lines := make([]string, b.rows)
	var sb strings.Builder
	for row := range b.rows {
		sb.Reset()
		for col := range b.cols {
			cell := b.Get(At(row, col))
			if cell.Filled {
				sb.WriteRune(cell.Symbol.Char())
			} else {
				sb.WriteRune('.')
			}
		}
		lines[row] = sb.String()
	}
	return lines
}

// String returns the ASCII form of the board joined with newlines.
func (b *Board) String() string {
	return strings.Join(b.Lines(), "\n")
}
