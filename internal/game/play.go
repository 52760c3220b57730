package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"glass-oak/assets"
	"glass-oak/internal/engine"
)

// MenuChoice is an entry of the main menu.
type MenuChoice uint8

const (
	MenuNew MenuChoice = iota
	MenuContinue
	MenuQuit
)

var mainMenu = []string{"Play a new game", "Continue last game", "Quit"}

// MainMenu blocks until an entry is picked. Escape and closed input quit.
func (u *UI) MainMenu() MenuChoice {
	for {
		if !u.closed {
			u.renderer.DrawTitle(assets.GameTitle, "Descend. Fight. Do not look back.")
			u.renderer.DrawMenu("", mainMenu, 24)
		}
		switch ev := u.poll().(type) {
		case nil:
			return MenuQuit
		case *tcell.EventResize:
			u.resize()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return MenuQuit
			}
			if i := letterIndex(ev); i >= 0 && i < len(mainMenu) {
				return MenuChoice(i)
			}
		}
	}
}

// Play runs the main menu loop until the player quits, the input ends or
// ctx is done; ctx being done closes the UI. Leaving a game saves it and
// returns to the menu. Save and generation failures are returned.
func Play(ctx context.Context, ui *UI, eng *engine.Engine) error {
	stop := context.AfterFunc(ctx, ui.Close)
	defer stop()

	ui.Bind(eng)
	for ctx.Err() == nil {
		switch ui.MainMenu() {
		case MenuNew:
			if err := eng.NewGame(); err != nil {
				return err
			}
		case MenuContinue:
			if err := eng.Continue(ctx); err != nil {
				ui.Show(assets.NoSaveText)
				continue
			}
		case MenuQuit:
			return nil
		}
		if err := eng.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
