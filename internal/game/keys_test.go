package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"glass-oak/internal/input"
)

func TestKeyToCommand(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want input.Command
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.MoveBy(0, -1)},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.MoveBy(-1, 0)},
		{"vi north", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), input.MoveBy(0, -1)},
		{"vi south-east", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), input.MoveBy(1, 1)},
		{"vi north-west", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), input.MoveBy(-1, -1)},
		{"wait", tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), input.Of(input.Wait)},
		{"pick up", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), input.Of(input.PickUp)},
		{"use", tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone), input.Of(input.UseItem)},
		{"drop", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), input.Of(input.Drop)},
		{"descend", tcell.NewEventKey(tcell.KeyRune, '>', tcell.ModNone), input.Of(input.Descend)},
		{"character", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), input.Of(input.Character)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), input.Of(input.ToggleDisplay)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.Of(input.Quit)},
		{"unmapped", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.Of(input.None)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := keyToCommand(tc.ev)
			if got != tc.want {
				t.Errorf("keyToCommand = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLetterIndex(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{'a', 0},
		{'c', 2},
		{'z', 25},
		{'A', -1},
		{'1', -1},
	}
	for _, tc := range cases {
		got := letterIndex(tcell.NewEventKey(tcell.KeyRune, tc.r, tcell.ModNone))
		if got != tc.want {
			t.Errorf("letterIndex(%q) = %d, want %d", tc.r, got, tc.want)
		}
	}
	if got := letterIndex(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)); got != -1 {
		t.Errorf("letterIndex(Enter) = %d, want -1", got)
	}
}
