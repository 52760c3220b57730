package system

import (
	"fmt"

	"glass-oak/assets"
	"glass-oak/internal/component"
	"glass-oak/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Attack resolves one melee blow from attacker against defender.
// Damage is power minus defense; anything at or below zero has no effect.
// Experience for a kill goes to the attacker.
func Attack(ctx *Context, attacker, defender int) {
	a, d := ctx.World.Pair(attacker, defender)
	if a.Fighter == nil || d.Fighter == nil {
		return
	}
	damage := a.Fighter.Power - d.Fighter.Defense
	if damage <= 0 {
		ctx.log(fmt.Sprintf("%s attacks %s but it has no effect!", a.Name, d.Name), tcell.ColorWhite)
		return
	}
	ctx.log(fmt.Sprintf("%s attacks %s for %d hit points.", a.Name, d.Name, damage), tcell.ColorWhite)
	if defender == ecs.PlayerIndex {
		ctx.LastHit = a.Name
	}
	if xp, died := TakeDamage(ctx, defender, damage); died && a.Fighter != nil {
		a.Fighter.XP += xp
	}
}

// TakeDamage subtracts a positive amount from entity i's hit points. When
// they reach zero the entity dies in place and xp is the experience it was
// worth. The player's own death is worth nothing.
func TakeDamage(ctx *Context, i, amount int) (xp int, died bool) {
	e := ctx.World.At(i)
	if e.Fighter == nil || !e.Alive || amount <= 0 {
		return 0, false
	}
	e.Fighter.HP -= amount
	if e.Fighter.HP > 0 {
		return 0, false
	}

	worth := e.Fighter.XP
	e.Alive = false
	e.AlwaysVisible = true
	switch e.Fighter.OnDeath {
	case component.PlayerDeath:
		playerDeath(ctx, e)
		return 0, true
	default:
		monsterDeath(ctx, e)
		return worth, true
	}
}

func playerDeath(ctx *Context, e *ecs.Entity) {
	ctx.log("You died!", tcell.ColorRed)
	e.Render = component.Renderable{Glyph: assets.GlyphCorpse, Color: tcell.ColorDarkRed}
}

// monsterDeath turns a monster into a corpse that no longer blocks, fights
// or thinks.
func monsterDeath(ctx *Context, e *ecs.Entity) {
	ctx.log(fmt.Sprintf("%s is dead! You gain %d experience points.", e.Name, e.Fighter.XP), tcell.ColorOrange)
	ctx.Killed = append(ctx.Killed, e.Name)
	e.Render = component.Renderable{Glyph: assets.GlyphCorpse, Color: tcell.ColorDarkRed}
	e.Blocks = false
	e.Fighter = nil
	e.AI = nil
	e.Name = "remains of " + e.Name
}

// Heal restores up to amount hit points without exceeding the maximum.
func Heal(e *ecs.Entity, amount int) {
	if e.Fighter == nil {
		return
	}
	e.Fighter.HP = min(e.Fighter.HP+amount, e.Fighter.MaxHP)
}
