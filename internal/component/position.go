package component

import "math"

// Position is a cell coordinate shared by the grid and every entity.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo returns the Euclidean distance to other.
func (p Position) DistanceTo(other Position) float64 {
	return p.DistanceToPoint(other.X, other.Y)
}

// DistanceToPoint returns the Euclidean distance to (x, y).
func (p Position) DistanceToPoint(x, y int) float64 {
	dx := float64(x - p.X)
	dy := float64(y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
