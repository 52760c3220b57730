package system

import (
	"fmt"

	"glass-oak/internal/component"
	"glass-oak/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// meleeRange is the distance below which a Basic monster stops closing in
// and attacks.
const meleeRange = 2.0

// RunAI dispatches one turn for every entity that holds an AI block, in
// ascending index order.
func RunAI(ctx *Context) {
	for i := 0; i < ctx.World.Len(); i++ {
		if i == ecs.PlayerIndex || ctx.World.At(i).AI == nil {
			continue
		}
		TakeTurn(ctx, i)
	}
}

// TakeTurn runs entity i's current behavior once and stores the behavior
// it should hold afterwards.
func TakeTurn(ctx *Context, i int) {
	e := ctx.World.At(i)
	switch e.AI.Kind {
	case component.AIConfused:
		e.AI = confusedTurn(ctx, i, e.AI)
	default:
		basicTurn(ctx, i)
	}
}

// basicTurn chases the player while the monster stands in view and attacks
// once adjacent.
func basicTurn(ctx *Context, i int) {
	e := ctx.World.At(i)
	if !ctx.Vis.IsVisible(e.Pos.X, e.Pos.Y) {
		return
	}
	p := ctx.Player()
	if e.DistanceTo(p) >= meleeRange {
		MoveTowards(ctx, i, p.Pos.X, p.Pos.Y)
		return
	}
	if p.Fighter != nil && p.Fighter.HP > 0 {
		Attack(ctx, i, ecs.PlayerIndex)
	}
}

// confusedTurn stumbles one random step and counts down. The dispatch that
// uses up the last turn restores the wrapped behavior.
func confusedTurn(ctx *Context, i int, ai *component.AI) *component.AI {
	if ai.TurnsRemaining > 0 {
		MoveBy(ctx, i, ctx.Rng.Intn(3)-1, ctx.Rng.Intn(3)-1)
		ai.TurnsRemaining--
		if ai.TurnsRemaining > 0 {
			return ai
		}
	}
	ctx.log(fmt.Sprintf("The %s is no longer confused!", ctx.World.At(i).Name), tcell.ColorRed)
	if ai.Previous == nil {
		return component.BasicAI()
	}
	return ai.Previous
}
