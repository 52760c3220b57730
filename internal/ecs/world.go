package ecs

import "fmt"

// PlayerIndex is the slot the player occupies in every World.
const PlayerIndex = 0

// World is the ordered entity collection for one dungeon level. Index 0 is
// the player; the remaining order is insertion order and is what the turn
// engine iterates, so it must stay stable.
type World struct {
	entities []*Entity
}

// NewWorld creates a World holding only the player.
func NewWorld(player *Entity) *World {
	return &World{entities: []*Entity{player}}
}

// FromEntities wraps an existing slice; the first element must be the player.
func FromEntities(entities []*Entity) (*World, error) {
	if len(entities) == 0 {
		return nil, fmt.Errorf("world needs at least the player")
	}
	for i, e := range entities {
		if e == nil {
			return nil, fmt.Errorf("entity %d is nil", i)
		}
	}
	return &World{entities: entities}, nil
}

// Player returns the player entity.
func (w *World) Player() *Entity {
	return w.entities[PlayerIndex]
}

// Len returns the number of entities, player included.
func (w *World) Len() int { return len(w.entities) }

// At returns the entity at index i.
func (w *World) At(i int) *Entity { return w.entities[i] }

// Entities returns the backing slice in iteration order. Callers must not
// append to or reorder it.
func (w *World) Entities() []*Entity { return w.entities }

// Append adds e to the end of the collection and returns its index.
func (w *World) Append(e *Entity) int {
	w.entities = append(w.entities, e)
	return len(w.entities) - 1
}

// Remove takes the entity at i out of the world, preserving the order of
// the rest. The player can never be removed.
func (w *World) Remove(i int) *Entity {
	if i == PlayerIndex {
		panic("ecs: cannot remove the player")
	}
	e := w.entities[i]
	copy(w.entities[i:], w.entities[i+1:])
	w.entities[len(w.entities)-1] = nil
	w.entities = w.entities[:len(w.entities)-1]
	return e
}

// Truncate drops every entity from index n onward. n must keep the player.
func (w *World) Truncate(n int) {
	if n < 1 {
		panic("ecs: truncate would drop the player")
	}
	if n >= len(w.entities) {
		return
	}
	clear(w.entities[n:])
	w.entities = w.entities[:n]
}

// Pair returns two distinct entities by index so one can act on the other,
// for example attacker and defender. Asking for the same index twice is a
// programming error.
func (w *World) Pair(i, j int) (*Entity, *Entity) {
	if i == j {
		panic(fmt.Sprintf("ecs: Pair(%d, %d) aliases one entity", i, j))
	}
	return w.entities[i], w.entities[j]
}

// BlockingAt reports whether a movement-blocking entity stands on (x, y).
func (w *World) BlockingAt(x, y int) bool {
	for _, e := range w.entities {
		if e.Blocks && e.At(x, y) {
			return true
		}
	}
	return false
}

// FighterAt returns the index of the first entity at (x, y) that carries a
// combat block, skipping index except. It returns -1 when there is none.
func (w *World) FighterAt(x, y, except int) int {
	for i, e := range w.entities {
		if i != except && e.Fighter != nil && e.At(x, y) {
			return i
		}
	}
	return -1
}

// ItemAt returns the index of the first item entity at (x, y), or -1.
func (w *World) ItemAt(x, y int) int {
	for i, e := range w.entities {
		if e.Item != nil && e.At(x, y) {
			return i
		}
	}
	return -1
}

// Clone deep-copies every entity.
func (w *World) Clone() *World {
	out := make([]*Entity, len(w.entities))
	for i, e := range w.entities {
		out[i] = e.Clone()
	}
	return &World{entities: out}
}
