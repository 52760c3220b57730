package gamemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, m.InBounds(c.x, c.y), "InBounds(%d,%d)", c.x, c.y)
	}
}

func TestIsBlocked(t *testing.T) {
	m := New(5, 5)
	assert.True(t, m.IsBlocked(2, 2), "new maps are solid rock")
	m.Set(2, 2, Floor())
	assert.False(t, m.IsBlocked(2, 2))
	assert.True(t, m.IsBlocked(-1, 0), "out of bounds counts as blocked")
}

func TestRectCenter(t *testing.T) {
	r := NewRect(0, 0, 4, 4)
	cx, cy := r.Center()
	assert.Equal(t, 2, cx)
	assert.Equal(t, 2, cy)
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	touching := Rect{4, 0, 8, 4}
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
	assert.True(t, a.Intersects(touching), "shared edges overlap")
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	m := New(3, 3)
	assert.Panics(t, func() { m.At(3, 0) })
}

func TestExploredIsMonotonic(t *testing.T) {
	m := New(5, 5)
	m.MarkExplored(1, 1)
	require.True(t, m.IsExplored(1, 1))

	// Carving over an explored wall keeps the flag.
	m.Set(1, 1, Floor())
	assert.True(t, m.IsExplored(1, 1))
	m.Set(1, 1, Wall())
	assert.True(t, m.IsExplored(1, 1))
}

func TestIsTransparent(t *testing.T) {
	cases := []struct {
		name string
		tile Tile
		x, y int
		want bool
	}{
		{"wall is opaque", Wall(), 2, 2, false},
		{"floor is transparent", Floor(), 2, 2, true},
		{"out-of-bounds x=-1", Wall(), -1, 0, false},
		{"out-of-bounds beyond width", Wall(), 10, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(5, 5)
			if m.InBounds(tc.x, tc.y) {
				m.Set(tc.x, tc.y, tc.tile)
			}
			assert.Equal(t, tc.want, m.IsTransparent(tc.x, tc.y))
		})
	}
}

func TestValid(t *testing.T) {
	m := New(4, 3)
	assert.True(t, m.Valid())
	m.Tiles[1] = m.Tiles[1][:2]
	assert.False(t, m.Valid())
}
