package system

import (
	"fmt"
	"math"

	"glass-oak/assets"
	"glass-oak/internal/component"
	"glass-oak/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Outcome is the result of trying to use an item.
type Outcome uint8

const (
	UsedUp Outcome = iota
	Cancelled
)

func (o Outcome) String() string {
	if o == UsedUp {
		return "used"
	}
	return "cancelled"
}

// UseItem fires the effect of the item in inventory slot and removes the
// item when it was consumed. A cancelled use leaves the inventory as is.
func UseItem(ctx *Context, slot int) Outcome {
	if slot < 0 || slot >= len(ctx.Session.Inventory) {
		return Cancelled
	}
	it := ctx.Session.Inventory[slot]
	if it.Item == nil {
		ctx.log(fmt.Sprintf("The %s cannot be used.", it.Name), tcell.ColorWhite)
		return Cancelled
	}

	var out Outcome
	switch it.Item.Kind {
	case component.ItemHeal:
		out = castHeal(ctx)
	case component.ItemLightning:
		out = castLightning(ctx)
	case component.ItemConfuse:
		out = castConfuse(ctx)
	case component.ItemFireball:
		out = castFireball(ctx)
	default:
		out = Cancelled
	}

	if out == UsedUp {
		ctx.Session.RemoveInventory(slot)
	} else {
		ctx.log("Item usage cancelled", tcell.ColorWhite)
	}
	return out
}

func castHeal(ctx *Context) Outcome {
	p := ctx.Player()
	if p.Fighter == nil {
		return Cancelled
	}
	if p.Fighter.HP == p.Fighter.MaxHP {
		ctx.log("You are already at full health.", tcell.ColorRed)
		return Cancelled
	}
	ctx.log("Your wounds start to feel better!", tcell.ColorViolet)
	Heal(p, assets.HealAmount)
	return UsedUp
}

func castLightning(ctx *Context) Outcome {
	target := ClosestMonster(ctx, assets.LightningRange)
	if target < 0 {
		ctx.log("No enemy is close enough to strike.", tcell.ColorRed)
		return Cancelled
	}
	ctx.log(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.",
		ctx.World.At(target).Name, assets.LightningDamage), tcell.ColorLightBlue)
	if xp, died := TakeDamage(ctx, target, assets.LightningDamage); died {
		ctx.Player().Fighter.XP += xp
	}
	return UsedUp
}

func castConfuse(ctx *Context) Outcome {
	if ClosestMonster(ctx, assets.ConfuseRange) >= 0 {
		ctx.log("Left-click an enemy to confuse it, or right-click to cancel.", tcell.ColorLightCyan)
	}
	target, ok := TargetMonster(ctx, assets.ConfuseRange)
	if !ok {
		ctx.log("No enemy is close enough to strike.", tcell.ColorRed)
		return Cancelled
	}
	m := ctx.World.At(target)
	m.AI = component.Confuse(m.AI, assets.ConfuseNumTurns)
	ctx.log(fmt.Sprintf("The eyes of %s look vacant, as he starts to stumble around!", m.Name), tcell.ColorLightGreen)
	return UsedUp
}

func castFireball(ctx *Context) Outcome {
	ctx.log("Left-click a target tile for the fireball, or right-click to cancel.", tcell.ColorLightCyan)
	x, y, ok := TargetTile(ctx, -1)
	if !ok {
		return Cancelled
	}
	ctx.log(fmt.Sprintf("The fireball explodes, burning everything within %d tiles!", assets.FireballRadius), tcell.ColorOrange)

	gained := 0
	for i := 0; i < ctx.World.Len(); i++ {
		e := ctx.World.At(i)
		if e.Fighter == nil || e.Pos.DistanceToPoint(x, y) > assets.FireballRadius {
			continue
		}
		ctx.log(fmt.Sprintf("The %s gets burned for %d hit points.", e.Name, assets.FireballDamage), tcell.ColorOrange)
		if i == ecs.PlayerIndex {
			ctx.LastHit = "fireball"
		}
		if xp, died := TakeDamage(ctx, i, assets.FireballDamage); died && i != ecs.PlayerIndex {
			gained += xp
		}
	}
	if p := ctx.Player(); p.Fighter != nil {
		p.Fighter.XP += gained
	}
	return UsedUp
}

// ClosestMonster returns the index of the nearest visible monster within
// maxRange of the player, or -1. Ties go to the lowest index.
func ClosestMonster(ctx *Context, maxRange int) int {
	p := ctx.Player()
	best := -1
	bestDist := math.Inf(1)
	for i, e := range ctx.World.Entities() {
		if i == ecs.PlayerIndex || e.Fighter == nil || e.AI == nil {
			continue
		}
		if !ctx.Vis.IsVisible(e.Pos.X, e.Pos.Y) {
			continue
		}
		d := p.DistanceTo(e)
		if d <= float64(maxRange) && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// TargetTile blocks on pointer events until the player left-clicks a
// visible cell within maxRange of themselves, or cancels. A negative
// maxRange accepts any visible cell.
func TargetTile(ctx *Context, maxRange int) (x, y int, ok bool) {
	p := ctx.Player()
	for {
		ev := ctx.Pointer.NextPointer()
		if ev.Cancelled() {
			return 0, 0, false
		}
		if !ev.Left || !ctx.Vis.IsVisible(ev.X, ev.Y) {
			continue
		}
		if maxRange >= 0 && p.Pos.DistanceToPoint(ev.X, ev.Y) > float64(maxRange) {
			continue
		}
		return ev.X, ev.Y, true
	}
}

// TargetMonster is TargetTile resolved to a combat-bearing entity other
// than the player. Clicks on empty cells keep the selection open. It fails
// without polling when no monster is visible within maxRange.
func TargetMonster(ctx *Context, maxRange int) (int, bool) {
	if ClosestMonster(ctx, maxRange) < 0 {
		return -1, false
	}
	for {
		x, y, ok := TargetTile(ctx, maxRange)
		if !ok {
			return -1, false
		}
		if i := ctx.World.FighterAt(x, y, ecs.PlayerIndex); i >= 0 {
			return i, true
		}
	}
}
