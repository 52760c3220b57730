// Package session bundles the per-run state that is not an entity: the
// current level grid, the message log, the player's inventory and depth.
// A Session is passed explicitly to every system that needs it.
package session

import (
	"glass-oak/internal/ecs"
	"glass-oak/internal/gamemap"

	"github.com/google/uuid"
)

// InventoryCapacity is one slot per selectable letter a–z.
const InventoryCapacity = 26

// Session is the persisted unit of game state besides the entity list.
type Session struct {
	Map       *gamemap.GameMap
	Log       *Log
	Inventory []*ecs.Entity
	Depth     uint
	RunID     string
	Turn      int
}

// New starts a session at depth 1 with a fresh run id.
func New(gmap *gamemap.GameMap) *Session {
	return &Session{
		Map:   gmap,
		Log:   NewLog(),
		Depth: 1,
		RunID: uuid.NewString(),
	}
}

// InventoryFull reports whether every slot is taken.
func (s *Session) InventoryFull() bool {
	return len(s.Inventory) >= InventoryCapacity
}

// RemoveInventory takes the item in slot out of the inventory, keeping the
// order of the others.
func (s *Session) RemoveInventory(slot int) *ecs.Entity {
	it := s.Inventory[slot]
	s.Inventory = append(s.Inventory[:slot], s.Inventory[slot+1:]...)
	return it
}
