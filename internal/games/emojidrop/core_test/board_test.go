package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/emojidrop/internal/games/emojidrop/core"
)

func TestNewBoard(t *testing.T) {
	b := core.NewBoard(10, 6)

	assert.Equal(t, 10, b.Rows())
	assert.Equal(t, 6, b.Cols())
	assert.Equal(t, 0, b.FilledCount())
}

func TestNewBoardPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { core.NewBoard(0, 6) })
	assert.Panics(t, func() { core.NewBoard(10, -1) })
}

func TestBoardOutOfBounds(t *testing.T) {
	b := core.NewBoard(3, 3)

	b.SetSymbol(core.At(-1, 0), core.Anger)
	b.SetSymbol(core.At(0, 3), core.Anger)

	assert.Equal(t, 0, b.FilledCount())
	assert.False(t, b.Occupied(core.At(5, 5)))
	assert.False(t, b.InBounds(core.At(3, 0)))
	assert.True(t, b.InBounds(core.At(2, 2)))
}

func TestParseBoardRoundTrip(t *testing.T) {
	lines := []string{
		"H.S",
		".AF",
		"DUC",
	}
	b, err := core.ParseBoard(lines...)
	require.NoError(t, err)

	assert.Equal(t, lines, b.Lines())
	assert.Equal(t, core.Fear, b.Get(core.At(1, 2)).Symbol)
	assert.False(t, b.Occupied(core.At(0, 1)))
	assert.Equal(t, 7, b.FilledCount())
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"no rows", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"HHH", "HH"}},
		{"unknown symbol", []string{"HXH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.ParseBoard(tt.lines...)
			assert.Error(t, err)
		})
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := core.MustParseBoard("HS", "AF")
	clone := b.Clone()
	require.True(t, b.Equal(clone))

	clone.SetEmpty(core.At(0, 0))

	assert.True(t, b.Occupied(core.At(0, 0)))
	assert.False(t, b.Equal(clone))
}

func TestBoardEqualDimensions(t *testing.T) {
	assert.False(t, core.NewBoard(2, 3).Equal(core.NewBoard(3, 2)))
	assert.False(t, core.NewBoard(2, 2).Equal(nil))
}
