package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	t.Run("Opposite pairs", func(t *testing.T) {
		assert.Equal(t, South, North.Opposite())
		assert.Equal(t, West, East.Opposite())
		assert.Equal(t, North, South.Opposite())
		assert.Equal(t, East, West.Opposite())
	})

	t.Run("Ordinals follow clockwise order", func(t *testing.T) {
		for i, d := range Directions {
			assert.Equal(t, i, d.Ordinal())
		}
	})

	t.Run("RotateBy wraps both ways", func(t *testing.T) {
		assert.Equal(t, East, North.RotateBy(1))
		assert.Equal(t, West, North.RotateBy(-1))
		assert.Equal(t, South, West.RotateBy(3))
		assert.Equal(t, North, North.RotateBy(8))
	})
}

func TestConnectorSet(t *testing.T) {
	t.Run("Of and Has", func(t *testing.T) {
		assert.Equal(t, ConnectorSet(1), Of(North))
		assert.Equal(t, ConnectorSet(2), Of(East))
		assert.Equal(t, ConnectorSet(4), Of(South))
		assert.Equal(t, ConnectorSet(8), Of(West))

		s := Of(North).Union(Of(West))
		assert.True(t, s.Has(North))
		assert.True(t, s.Has(West))
		assert.False(t, s.Has(East))
		assert.Equal(t, 2, s.Count())
		assert.Equal(t, []Direction{North, West}, s.Members())
	})

	t.Run("Rotate maps each member clockwise", func(t *testing.T) {
		for m := ConnectorSet(0); m <= All; m++ {
			for k := -5; k <= 5; k++ {
				want := Empty
				for _, d := range m.Members() {
					want = want.With(d.RotateBy(k))
				}
				assert.Equal(t, want, m.Rotate(k), "mask %04b by %d", m, k)
			}
		}
	})

	t.Run("Rotate ignores bits outside the mask", func(t *testing.T) {
		assert.Equal(t, Of(East), ConnectorSet(0b1_0001).Rotate(1))
	})
}

func TestCellRotate(t *testing.T) {
	for m := ConnectorSet(0); m <= All; m++ {
		c := NewCell(m)

		assert.Equal(t, c, c.Rotate(4))
		assert.Equal(t, c, c.Rotate(1).Rotate(1).Rotate(1).Rotate(1))
		assert.Equal(t, c, c.Rotate(3).Rotate(-7))
		for k := -4; k <= 4; k++ {
			assert.Equal(t, c, c.Rotate(k).Rotate(-k), "mask %04b by %d", m, k)
		}
		assert.Equal(t, c.Rotate(1), c.Rotated(Clockwise))
		assert.Equal(t, c.Rotate(-1), c.Rotated(CounterClockwise))
		assert.Equal(t, m.Count(), c.Rotate(1).Connectors().Count())
	}
}

func TestCellFitsWith(t *testing.T) {
	t.Run("Symmetric across the shared edge", func(t *testing.T) {
		for a := ConnectorSet(0); a <= All; a++ {
			for b := ConnectorSet(0); b <= All; b++ {
				ca, cb := NewCell(a), NewCell(b)
				for _, d := range Directions {
					assert.Equal(t, ca.FitsWith(&cb, d), cb.FitsWith(&ca, d.Opposite()))
				}
			}
		}
	})

	t.Run("Boundary never exposes a stub", func(t *testing.T) {
		assert.True(t, NewCell(Empty).FitsWith(nil, North))
		assert.False(t, NewCell(Of(North)).FitsWith(nil, North))
		assert.True(t, NewCell(Of(North)).FitsWith(nil, South))
	})

	t.Run("Matching and mismatched stubs", func(t *testing.T) {
		east := NewCell(Of(East))
		west := NewCell(Of(West))
		empty := NewCell(Empty)
		assert.True(t, east.FitsWith(&west, East))
		assert.False(t, east.FitsWith(&empty, East))
		assert.False(t, empty.FitsWith(&west, East))
		assert.True(t, empty.FitsWith(&empty, East))
	})
}

func TestCellRender(t *testing.T) {
	t.Run("Every mask has a distinct glyph", func(t *testing.T) {
		seen := map[string]ConnectorSet{}
		for m := ConnectorSet(0); m <= All; m++ {
			g := NewCell(m).Render()
			assert.Equal(t, DisplayLen, len([]rune(g)), "mask %04b", m)
			prev, dup := seen[g]
			assert.False(t, dup, "mask %04b shares glyph with %04b", m, prev)
			seen[g] = m
		}
		assert.Len(t, seen, 16)
	})

	t.Run("Known glyphs", func(t *testing.T) {
		assert.Equal(t, "   ", NewCell(Empty).Render())
		assert.Equal(t, " │ ", NewCell(Of(North).With(South)).Render())
		assert.Equal(t, "───", NewCell(Of(East).With(West)).Render())
		assert.Equal(t, "─┼─", NewCell(All).Render())
	})

	t.Run("Invalid mask panics", func(t *testing.T) {
		assert.Panics(t, func() { _ = NewCell(ConnectorSet(16)).Render() })
	})
}
