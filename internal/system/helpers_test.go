package system

import (
	"math/rand"

	"glass-oak/internal/component"
	"glass-oak/internal/ecs"
	"glass-oak/internal/factory"
	"glass-oak/internal/gamemap"
	"glass-oak/internal/input"
	"glass-oak/internal/session"
)

// seeAll is a Visibility where every in-bounds cell is lit unless hidden.
type seeAll struct {
	hidden map[[2]int]bool
}

func (s *seeAll) Compute(x, y, radius int, lightWalls bool) {}

func (s *seeAll) IsVisible(x, y int) bool {
	return x >= 0 && y >= 0 && !s.hidden[[2]int{x, y}]
}

// scriptedPointer replays a fixed list of pointer events, then escapes.
type scriptedPointer struct {
	events []input.PointerEvent
	polls  int
}

func (p *scriptedPointer) NextPointer() input.PointerEvent {
	p.polls++
	if len(p.events) == 0 {
		return input.PointerEvent{Escape: true}
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev
}

func click(x, y int) input.PointerEvent { return input.PointerEvent{X: x, Y: y, Left: true} }

// openMap creates a w×h map that is entirely passable floor.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := range h {
		for x := range w {
			gmap.Set(x, y, gamemap.Floor())
		}
	}
	return gmap
}

// newTestContext puts the player at (px, py) on a 20×20 open map.
func newTestContext(px, py int, events ...input.PointerEvent) *Context {
	return &Context{
		World:   ecs.NewWorld(factory.NewPlayer(px, py)),
		Session: session.New(openMap(20, 20)),
		Vis:     &seeAll{hidden: map[[2]int]bool{}},
		Rng:     rand.New(rand.NewSource(1)),
		Pointer: &scriptedPointer{events: events},
	}
}

func addOrc(ctx *Context, x, y int) int {
	m, _ := factory.NewMonster("orc", x, y)
	return ctx.World.Append(m)
}

func addFighter(ctx *Context, x, y, hp, def, pow int) int {
	return ctx.World.Append(&ecs.Entity{
		Name:    "dummy",
		Pos:     component.Position{X: x, Y: y},
		Blocks:  true,
		Alive:   true,
		Fighter: &component.Fighter{MaxHP: hp, HP: hp, Defense: def, Power: pow, XP: 10, OnDeath: component.MonsterDeath},
		AI:      component.BasicAI(),
	})
}

func lastLog(ctx *Context) string {
	msgs := ctx.Session.Log.Messages()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1].Text
}
