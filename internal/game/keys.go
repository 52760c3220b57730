package game

import (
	"github.com/gdamore/tcell/v2"

	"glass-oak/internal/input"
)

// keyToCommand maps a tcell key event to a command. UseItem and Drop come
// back with input.NoSlot; the caller asks for the slot with a menu.
func keyToCommand(ev *tcell.EventKey) input.Command {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return input.MoveBy(0, -1)
	case tcell.KeyDown:
		return input.MoveBy(0, 1)
	case tcell.KeyRight:
		return input.MoveBy(1, 0)
	case tcell.KeyLeft:
		return input.MoveBy(-1, 0)
	case tcell.KeyHome:
		return input.MoveBy(-1, -1)
	case tcell.KeyPgUp:
		return input.MoveBy(1, -1)
	case tcell.KeyEnd:
		return input.MoveBy(-1, 1)
	case tcell.KeyPgDn:
		return input.MoveBy(1, 1)
	case tcell.KeyTab:
		return input.Of(input.ToggleDisplay)
	case tcell.KeyEscape:
		return input.Of(input.Quit)
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return input.MoveBy(0, -1)
	case 'j', 'J':
		return input.MoveBy(0, 1)
	case 'l', 'L':
		return input.MoveBy(1, 0)
	case 'h', 'H':
		return input.MoveBy(-1, 0)
	case 'y', 'Y':
		return input.MoveBy(-1, -1)
	case 'u', 'U':
		return input.MoveBy(1, -1)
	case 'b', 'B':
		return input.MoveBy(-1, 1)
	case 'n', 'N':
		return input.MoveBy(1, 1)
	case '.', '5':
		return input.Of(input.Wait)
	case 'g', 'G', ',':
		return input.Of(input.PickUp)
	case 'i', 'I':
		return input.Of(input.UseItem)
	case 'd', 'D':
		return input.Of(input.Drop)
	case '>':
		return input.Of(input.Descend)
	case 'c', 'C':
		return input.Of(input.Character)
	}
	return input.Of(input.None)
}

// letterIndex maps 'a'..'z' to 0..25 and anything else to -1.
func letterIndex(ev *tcell.EventKey) int {
	if ev.Key() != tcell.KeyRune {
		return -1
	}
	r := ev.Rune()
	if r < 'a' || r > 'z' {
		return -1
	}
	return int(r - 'a')
}
