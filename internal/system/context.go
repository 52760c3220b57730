// Package system holds the game rules: movement, combat, monster AI, item
// effects, inventory handling and levelling. Every rule operates on an
// explicit Context instead of global state.
package system

import (
	"math/rand"

	"glass-oak/internal/ecs"
	"glass-oak/internal/input"
	"glass-oak/internal/session"

	"github.com/gdamore/tcell/v2"
)

// Visibility answers field-of-view queries for the current level.
type Visibility interface {
	Compute(x, y, radius int, lightWalls bool)
	IsVisible(x, y int) bool
}

// Pointer supplies raw pointer events while the player picks a target.
// NextPointer blocks until the next event.
type Pointer interface {
	NextPointer() input.PointerEvent
}

// Context is everything a rule may read or change during one turn.
type Context struct {
	World   *ecs.World
	Session *session.Session
	Vis     Visibility
	Rng     *rand.Rand
	Pointer Pointer

	// Killed collects the names of monsters slain since the owner last
	// reset it.
	Killed []string
	// LastHit names whatever last damaged the player.
	LastHit string
}

// Player returns the player entity.
func (c *Context) Player() *ecs.Entity {
	return c.World.Player()
}

func (c *Context) log(text string, color tcell.Color) {
	c.Session.Log.Add(text, color)
}
