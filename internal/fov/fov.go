// Package fov computes the player's field of view over a gamemap using
// recursive shadowcasting.
package fov

import "glass-oak/internal/gamemap"

// octant transform matrices.
// For each octant a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Map holds the visible set for one gamemap. Opacity is read from the
// tiles' BlockSight flag each time Compute runs.
type Map struct {
	grid    *gamemap.GameMap
	visible [][]bool
}

// New returns a Map with nothing visible.
func New(grid *gamemap.GameMap) *Map {
	v := make([][]bool, grid.Height)
	for y := range v {
		v[y] = make([]bool, grid.Width)
	}
	return &Map{grid: grid, visible: v}
}

// IsVisible reports whether (x, y) was lit by the last Compute.
func (m *Map) IsVisible(x, y int) bool {
	return m.grid.InBounds(x, y) && m.visible[y][x]
}

// Compute clears the visible set and casts light from (x, y). With
// lightWalls the first opaque cell on every ray is lit too.
func (m *Map) Compute(x, y, radius int, lightWalls bool) {
	for row := range m.visible {
		clear(m.visible[row])
	}
	if !m.grid.InBounds(x, y) {
		return
	}
	m.visible[y][x] = true
	for _, o := range octants {
		m.castLight(x, y, 1, 1.0, 0.0, radius, lightWalls, o[0], o[1], o[2], o[3])
	}
}

// castLight lights one octant. j is the row distance from the origin, dx
// sweeps from -j to 0 and the slopes bound the unshadowed beam.
func (m *Map) castLight(cx, cy, row int, start, end float64, radius int, lightWalls bool, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			opaque := !m.grid.IsTransparent(wx, wy)
			if float64(dx*dx+dy*dy) < radiusSq && m.grid.InBounds(wx, wy) && (lightWalls || !opaque) {
				m.visible[wy][wx] = true
			}

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				m.castLight(cx, cy, j+1, start, lSlope, radius, lightWalls, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
