package gamemap

import "fmt"

// GameMap holds the tile grid for one dungeon level. Its size is fixed for
// the lifetime of the level; descending replaces the whole map.
type GameMap struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"`
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Wall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y). The explored flag survives the
// replacement so carving never forgets what the player has seen.
func (m *GameMap) Set(x, y int, t Tile) {
	old := m.At(x, y)
	t.Explored = t.Explored || old.Explored
	*old = t
}

// IsBlocked returns true when (x, y) is out of bounds or a blocking tile.
func (m *GameMap) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].Blocked
}

// IsTransparent returns true when (x, y) is in bounds and does not block sight.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return !m.Tiles[y][x].BlockSight
}

// MarkExplored flags (x, y) as seen. Explored never reverts.
func (m *GameMap) MarkExplored(x, y int) {
	if m.InBounds(x, y) {
		m.Tiles[y][x].Explored = true
	}
}

// IsExplored reports whether the player has ever seen (x, y).
func (m *GameMap) IsExplored(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Explored
}

// Valid reports whether the tile rows match the declared dimensions.
func (m *GameMap) Valid() bool {
	if m.Width <= 0 || m.Height <= 0 || len(m.Tiles) != m.Height {
		return false
	}
	for _, row := range m.Tiles {
		if len(row) != m.Width {
			return false
		}
	}
	return true
}
