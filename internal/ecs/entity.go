package ecs

import "glass-oak/internal/component"

// Entity is the single record for everything that can be placed in the
// dungeon: the player, monsters, items and terrain markers such as stairs.
// The capability blocks are optional and owned by the entity alone.
type Entity struct {
	Name          string               `json:"name"`
	Pos           component.Position   `json:"pos"`
	Render        component.Renderable `json:"render"`
	Blocks        bool                 `json:"blocks"`
	Alive         bool                 `json:"alive"`
	AlwaysVisible bool                 `json:"always_visible"`
	Level         int                  `json:"level"`

	Fighter *component.Fighter `json:"fighter,omitempty"`
	AI      *component.AI      `json:"ai,omitempty"`
	Item    *component.Item    `json:"item,omitempty"`
}

// SetPos moves the entity to (x, y) without any legality check.
func (e *Entity) SetPos(x, y int) {
	e.Pos = component.Position{X: x, Y: y}
}

// At reports whether the entity stands on (x, y).
func (e *Entity) At(x, y int) bool {
	return e.Pos.X == x && e.Pos.Y == y
}

// DistanceTo returns the Euclidean distance between two entities.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Pos.DistanceTo(other.Pos)
}

// Clone deep-copies the entity and its capability blocks.
func (e *Entity) Clone() *Entity {
	c := *e
	if e.Fighter != nil {
		f := *e.Fighter
		c.Fighter = &f
	}
	c.AI = e.AI.Clone()
	if e.Item != nil {
		it := *e.Item
		c.Item = &it
	}
	return &c
}
