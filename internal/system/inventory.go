package system

import (
	"fmt"

	"glass-oak/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// PickUp moves world entity i into the inventory. A full inventory leaves
// the entity on the floor.
func PickUp(ctx *Context, i int) bool {
	it := ctx.World.At(i)
	if ctx.Session.InventoryFull() {
		ctx.log(fmt.Sprintf("Your inventory is full, cannot pick up %s.", it.Name), tcell.ColorRed)
		return false
	}
	ctx.World.Remove(i)
	ctx.Session.Inventory = append(ctx.Session.Inventory, it)
	ctx.log(fmt.Sprintf("You picked up a %s!", it.Name), tcell.ColorGreen)
	return true
}

// PickUpHere picks up the first item lying under the player.
func PickUpHere(ctx *Context) bool {
	p := ctx.Player()
	i := ctx.World.ItemAt(p.Pos.X, p.Pos.Y)
	if i < 0 || i == ecs.PlayerIndex {
		return false
	}
	return PickUp(ctx, i)
}

// Drop puts the item in inventory slot back into the world at the player's
// feet.
func Drop(ctx *Context, slot int) bool {
	if slot < 0 || slot >= len(ctx.Session.Inventory) {
		return false
	}
	it := ctx.Session.RemoveInventory(slot)
	p := ctx.Player()
	it.SetPos(p.Pos.X, p.Pos.Y)
	ctx.World.Append(it)
	ctx.log(fmt.Sprintf("You dropped a %s.", it.Name), tcell.ColorYellow)
	return true
}
