package system

import (
	"math"

	"glass-oak/internal/ecs"
)

// IsBlocked reports whether (x, y) is a wall, lies off the map, or holds a
// blocking entity.
func IsBlocked(ctx *Context, x, y int) bool {
	if ctx.Session.Map.IsBlocked(x, y) {
		return true
	}
	return ctx.World.BlockingAt(x, y)
}

// MoveBy steps entity i by (dx, dy) when the destination is free. An
// illegal step is dropped and MoveBy returns false.
func MoveBy(ctx *Context, i, dx, dy int) bool {
	e := ctx.World.At(i)
	nx, ny := e.Pos.X+dx, e.Pos.Y+dy
	if IsBlocked(ctx, nx, ny) {
		return false
	}
	e.SetPos(nx, ny)
	return true
}

// MoveTowards steps entity i one cell along the rounded unit vector
// towards (tx, ty). Diagonal steps are allowed.
func MoveTowards(ctx *Context, i, tx, ty int) bool {
	e := ctx.World.At(i)
	dx := float64(tx - e.Pos.X)
	dy := float64(ty - e.Pos.Y)
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return false
	}
	return MoveBy(ctx, i, int(math.Round(dx/dist)), int(math.Round(dy/dist)))
}

// PlayerMoveOrAttack bumps the player by (dx, dy): a combatant at the
// destination is attacked, anything else is a move. It reports whether a
// turn was spent; walking into a wall costs nothing.
func PlayerMoveOrAttack(ctx *Context, dx, dy int) bool {
	p := ctx.Player()
	x, y := p.Pos.X+dx, p.Pos.Y+dy
	if target := ctx.World.FighterAt(x, y, ecs.PlayerIndex); target >= 0 {
		Attack(ctx, ecs.PlayerIndex, target)
		return true
	}
	return MoveBy(ctx, ecs.PlayerIndex, dx, dy)
}
