// Package game is the terminal front end: it turns tcell events into
// engine commands and draws menus for the engine's questions.
package game

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"glass-oak/internal/input"
	"glass-oak/internal/render"
)

const (
	inventoryWidth = 50
	menuWidth      = 40

	useHeader  = "Press the key next to an item to use it, or any other to cancel."
	dropHeader = "Press the key next to an item to drop it, or any other to cancel."
	emptyText  = "Inventory is empty."
)

// View is what the UI draws behind menus.
type View interface {
	render.View
	Loaded() bool
}

// UI implements engine.UI on a tcell screen. Once the screen is closed or
// its input fails, every method answers at once: NextCommand with Quit,
// NextPointer with Escape and menus with input.Closed.
type UI struct {
	screen   tcell.Screen
	renderer *render.Renderer
	view     View
	buttons  tcell.ButtonMask

	closed    bool
	closeOnce sync.Once
}

// NewUI wraps an initialised screen.
func NewUI(screen tcell.Screen) *UI {
	screen.EnableMouse()
	return &UI{screen: screen, renderer: render.NewRenderer(screen)}
}

// Bind sets the game drawn under menus and prompts.
func (u *UI) Bind(v View) { u.view = v }

// Renderer exposes the renderer, mainly for tests.
func (u *UI) Renderer() *render.Renderer { return u.renderer }

// Close finalises the screen. It is safe to call from another goroutine and
// more than once; a blocked call on the UI returns.
func (u *UI) Close() {
	u.closeOnce.Do(u.screen.Fini)
}

// Closed reports whether input has ended.
func (u *UI) Closed() bool { return u.closed }

// poll waits for the next event. It returns nil from then on once the
// screen is finalised or its input fails.
func (u *UI) poll() tcell.Event {
	if u.closed {
		return nil
	}
	switch ev := u.screen.PollEvent().(type) {
	case nil, *tcell.EventError:
		u.closed = true
		return nil
	default:
		return ev
	}
}

func (u *UI) redraw() {
	if u.closed {
		return
	}
	if u.view != nil && u.view.Loaded() {
		u.renderer.DrawFrame(u.view)
		return
	}
	u.screen.Clear()
	u.screen.Show()
}

func (u *UI) resize() {
	u.screen.Sync()
	u.renderer.Resize()
}

// NextCommand blocks until a key maps to a command.
func (u *UI) NextCommand() input.Command {
	for {
		u.redraw()
		switch ev := u.poll().(type) {
		case nil:
			return input.Of(input.Quit)
		case *tcell.EventResize:
			u.resize()
		case *tcell.EventMouse:
			u.renderer.SetMouse(ev.Position())
		case *tcell.EventKey:
			cmd := keyToCommand(ev)
			switch cmd.Kind {
			case input.None:
				continue
			case input.UseItem:
				cmd.Slot = u.inventoryMenu(useHeader)
			case input.Drop:
				cmd.Slot = u.inventoryMenu(dropHeader)
			}
			if (cmd.Kind == input.UseItem || cmd.Kind == input.Drop) && cmd.Slot < 0 {
				continue
			}
			return cmd
		}
	}
}

// inventoryMenu returns the chosen slot or input.NoSlot.
func (u *UI) inventoryMenu(header string) int {
	var names []string
	if u.view != nil && u.view.Loaded() {
		for _, e := range u.view.Session().Inventory {
			names = append(names, e.Name)
		}
	}
	if len(names) == 0 {
		u.choose(header, []string{emptyText}, inventoryWidth)
		return input.NoSlot
	}
	if i := u.choose(header, names, inventoryWidth); i >= 0 {
		return i
	}
	return input.NoSlot
}

// NextPointer blocks for the next mouse or Escape event. Button state is
// edge-triggered: Left and Right are only set on the press.
func (u *UI) NextPointer() input.PointerEvent {
	for {
		u.redraw()
		switch ev := u.poll().(type) {
		case nil:
			return input.PointerEvent{Escape: true}
		case *tcell.EventResize:
			u.resize()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return input.PointerEvent{Escape: true}
			}
		case *tcell.EventMouse:
			sx, sy := ev.Position()
			u.renderer.SetMouse(sx, sy)
			x, y := u.renderer.ScreenToWorld(sx, sy)
			b := ev.Buttons()
			pressed := b &^ u.buttons
			u.buttons = b
			return input.PointerEvent{
				X:     x,
				Y:     y,
				Left:  pressed&tcell.Button1 != 0,
				Right: pressed&tcell.Button2 != 0,
			}
		}
	}
}

// Choose shows a lettered menu over the game and returns the picked index,
// -1 when dismissed or input.Closed.
func (u *UI) Choose(header string, options []string) int {
	return u.choose(header, options, menuWidth)
}

func (u *UI) choose(header string, options []string, width int) int {
	for {
		u.redraw()
		if !u.closed {
			u.renderer.DrawMenu(header, options, width)
		}
		switch ev := u.poll().(type) {
		case nil:
			return input.Closed
		case *tcell.EventResize:
			u.resize()
		case *tcell.EventKey:
			i := letterIndex(ev)
			if i >= len(options) || i >= render.MaxMenuOptions {
				return -1
			}
			return i
		}
	}
}

// Show displays text until any key is pressed.
func (u *UI) Show(text string) {
	for {
		u.redraw()
		if !u.closed {
			u.renderer.DrawMessageBox(text, inventoryWidth)
		}
		switch u.poll().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			u.resize()
		}
	}
}

// ToggleDisplayMode flips between shaded and glyph terrain.
func (u *UI) ToggleDisplayMode() { u.renderer.ToggleMode() }
