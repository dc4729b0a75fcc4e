// Package core provides the core game logic for the EmojiDrop puzzle game.
// This package is UI-agnostic and deterministic given an injected random source.
package core

import "strings"

// Symbol is one of the seven emotion symbols a block can carry.
type Symbol uint8

const (
	Happiness Symbol = iota
	Sadness
	Anger
	Fear
	Disgust
	Surprise
	Contempt
	SymbolCount // Sentinel value for iteration
)

// Valid returns true if s is one of the seven symbols.
func (s Symbol) Valid() bool {
	return s < SymbolCount
}

// String returns the display name of the symbol.
func (s Symbol) String() string {
	switch s {
	case Happiness:
		return "Happiness"
	case Sadness:
		return "Sadness"
	case Anger:
		return "Anger"
	case Fear:
		return "Fear"
	case Disgust:
		return "Disgust"
	case Surprise:
		return "Surprise"
	case Contempt:
		return "Contempt"
	default:
		return "Unknown"
	}
}

// Emoji returns the emoji glyph drawn for the symbol.
func (s Symbol) Emoji() string {
	switch s {
	case Happiness:
		return "😊"
	case Sadness:
		return "😢"
	case Anger:
		return "😡"
	case Fear:
		return "😨"
	case Disgust:
		return "🤢"
	case Surprise:
		return "😲"
	case Contempt:
		return "😤"
	default:
		return "?"
	}
}

// Char returns a single character representation for ASCII boards.
func (s Symbol) Char() rune {
	switch s {
	case Happiness:
		return 'H'
	case Sadness:
		return 'S'
	case Anger:
		return 'A'
	case Fear:
		return 'F'
	case Disgust:
		return 'D'
	case Surprise:
		return 'U'
	case Contempt:
		return 'C'
	default:
		return '?'
	}
}

// ParseSymbol converts a name, emoji or ASCII code to a Symbol.
// Returns Happiness and false if the string is not recognized.
func ParseSymbol(s string) (Symbol, bool) {
	for _, sym := range AllSymbols() {
		if s == sym.Emoji() || s == string(sym.Char()) || strings.EqualFold(s, sym.String()) {
			return sym, true
		}
	}
	return Happiness, false
}

// symbolFromChar maps an ASCII board character back to a symbol.
func symbolFromChar(r rune) (Symbol, bool) {
	for _, sym := range AllSymbols() {
		if sym.Char() == r {
			return sym, true
		}
	}
	return Happiness, false
}

// AllSymbols returns the alphabet in index order.
func AllSymbols() []Symbol {
	return []Symbol{Happiness, Sadness, Anger, Fear, Disgust, Surprise, Contempt}
}

// SymbolCounts tallies cleared cells per symbol, indexed by alphabet order.
type SymbolCounts [SymbolCount]int

// Add increments the tally for s by n. Invalid symbols are ignored.
func (c *SymbolCounts) Add(s Symbol, n int) {
	if !s.Valid() {
		return
	}
	c[s] += n
}

// Merge adds every tally of other into c.
func (c *SymbolCounts) Merge(other SymbolCounts) {
	for i := range c {
		c[i] += other[i]
	}
}

// Get returns the tally for s.
func (c SymbolCounts) Get(s Symbol) int {
	if !s.Valid() {
		return 0
	}
	return c[s]
}

// Total returns the sum of all tallies.
func (c SymbolCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Map returns non-zero tallies keyed by symbol name.
func (c SymbolCounts) Map() map[string]int {
	m := make(map[string]int)
	for i, n := range c {
		if n > 0 {
			m[Symbol(i).String()] = n
		}
	}
	return m
}

// MostCleared returns the symbol with the strictly highest tally.
// Ties go to the symbol that comes first in the alphabet.
// Returns false when nothing has been cleared.
func (c SymbolCounts) MostCleared() (Symbol, bool) {
	best := Happiness
	bestCount := 0
	for i, n := range c {
		if n > bestCount {
			best = Symbol(i)
			bestCount = n
		}
	}
	return best, bestCount > 0
}
