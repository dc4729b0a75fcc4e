package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellWidth measures runes independently of the host locale so box-drawing
// characters stay single-width.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Cell is a single screen position: a rune and its foreground color.
// A wide rune (emoji, CJK) occupies its own cell plus a continuation
// cell to the right whose Rune is zero.
type Cell struct {
	Rune  rune
	Color Color
}

// Continuation returns true if the cell is the right half of a wide rune.
func (c Cell) Continuation() bool {
	return c.Rune == 0
}

func blankCell() Cell {
	return Cell{Rune: ' ', Color: ColorDefault}
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in columns.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in rows.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := range copyH {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
		// A wide rune cut in half by the new edge becomes a blank.
		if copyW > 0 && copyW < oldW && cellWidth.RuneWidth(s.cells[y][copyW-1].Rune) == 2 {
			s.cells[y][copyW-1] = blankCell()
		}
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given single-width rune.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r, Color: ColorDefault}
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a rune with the default color. See SetColored.
func (s *Screen) Set(x, y int, r rune) int {
	return s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune at the given position and returns the number
// of columns it occupies. Out-of-bounds coordinates are silently ignored.
// A wide rune that would not fit before the right edge is not drawn.
func (s *Screen) SetColored(x, y int, r rune, c Color) int {
	w := cellWidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if !s.inBounds(x, y) || (w == 2 && x+1 >= s.width) {
		return w
	}

	s.breakWide(x, y)
	s.cells[y][x] = Cell{Rune: r, Color: c}
	if w == 2 {
		s.breakWide(x+1, y)
		s.cells[y][x+1] = Cell{Rune: 0, Color: c}
	}
	return w
}

// breakWide blanks the other half of a wide rune that covers (x, y).
func (s *Screen) breakWide(x, y int) {
	cell := s.cells[y][x]
	if cell.Continuation() && x > 0 {
		s.cells[y][x-1] = blankCell()
	}
	if cellWidth.RuneWidth(cell.Rune) == 2 && x+1 < s.width {
		s.cells[y][x+1] = blankCell()
	}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates and continuation cells.
func (s *Screen) Get(x, y int) rune {
	cell := s.GetCell(x, y)
	if cell.Continuation() {
		return ' '
	}
	return cell.Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell()
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a string in the given color.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		x += s.SetColored(x, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColored(y, text, ColorDefault)
}

// DrawTextCenteredColored draws colored text centered horizontally.
func (s *Screen) DrawTextCenteredColored(y int, text string, c Color) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawTextColored(x, y, text, c)
}

// TextWidth returns the number of columns text occupies on screen.
func TextWidth(text string) int {
	return cellWidth.StringWidth(text)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.DrawBoxColored(r, ColorDefault)
}

// DrawBoxColored draws a box outline in the given color.
func (s *Screen) DrawBoxColored(r Rect, c Color) {
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(r.Right()-1, r.Y, '┐', c)
	s.SetColored(r.X, r.Bottom()-1, '└', c)
	s.SetColored(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, r.Bottom()-1, '─', c)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(r.Right()-1, y, '│', c)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := range length {
		s.Set(x+i, y, r)
	}
}

// String converts the screen buffer to a renderable string.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		s.writeRow(&sb, y)
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	s.writeRow(&sb, y)
	return sb.String()
}

func (s *Screen) writeRow(sb *strings.Builder, y int) {
	for _, cell := range s.cells[y] {
		if !cell.Continuation() {
			sb.WriteRune(cell.Rune)
		}
	}
}
