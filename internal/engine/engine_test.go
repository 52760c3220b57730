package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glass-oak/assets"
	"glass-oak/internal/ecs"
	"glass-oak/internal/input"
	"glass-oak/internal/persist"
	"glass-oak/internal/runlog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedUI replays canned answers and records what the engine showed.
type scriptedUI struct {
	commands []input.Command
	pointers []input.PointerEvent
	choices  []int
	shown    []string
	headers  []string
	toggles  int
}

func (u *scriptedUI) NextCommand() input.Command {
	if len(u.commands) == 0 {
		return input.Of(input.Quit)
	}
	c := u.commands[0]
	u.commands = u.commands[1:]
	return c
}

func (u *scriptedUI) NextPointer() input.PointerEvent {
	if len(u.pointers) == 0 {
		return input.PointerEvent{Escape: true}
	}
	p := u.pointers[0]
	u.pointers = u.pointers[1:]
	return p
}

func (u *scriptedUI) Choose(header string, options []string) int {
	u.headers = append(u.headers, header)
	if len(u.choices) == 0 {
		return 0
	}
	c := u.choices[0]
	u.choices = u.choices[1:]
	return c
}

func (u *scriptedUI) Show(text string) { u.shown = append(u.shown, text) }

func (u *scriptedUI) ToggleDisplayMode() { u.toggles++ }

func newTestEngine(t *testing.T, ui *scriptedUI) (*Engine, persist.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := persist.NewFileStore(dir)
	require.NoError(t, err)
	e := New(ui, Options{Store: store, Slot: "test", DataDir: dir, Seed: 7})
	require.NoError(t, e.NewGame())
	return e, store, dir
}

func stairs(t *testing.T, e *Engine) *ecs.Entity {
	t.Helper()
	w := e.World()
	last := w.At(w.Len() - 1)
	require.Equal(t, assets.StairsName, last.Name)
	return last
}

func TestNewGame(t *testing.T) {
	e, _, _ := newTestEngine(t, &scriptedUI{})
	w, s := e.World(), e.Session()

	assert.Equal(t, uint(1), s.Depth)
	assert.NotEmpty(t, s.RunID)
	assert.Equal(t, assets.WelcomeText, s.Log.Messages()[s.Log.Len()-1].Text)

	p := w.Player()
	assert.Equal(t, assets.PlayerName, p.Name)
	assert.True(t, e.IsVisible(p.Pos.X, p.Pos.Y))
	assert.True(t, s.Map.IsExplored(p.Pos.X, p.Pos.Y))
	for i := 1; i < w.Len(); i++ {
		other := w.At(i)
		if other.Blocks {
			assert.False(t, other.At(p.Pos.X, p.Pos.Y), "monster spawned on the player")
		}
	}
	stairs(t, e)
	assert.Equal(t, AwaitingCommand, e.State())
}

func TestSameSeedSameLevel(t *testing.T) {
	a := New(&scriptedUI{}, Options{Seed: 11})
	require.NoError(t, a.NewGame())
	b := New(&scriptedUI{}, Options{Seed: 11})
	require.NoError(t, b.NewGame())
	assert.Equal(t, a.Session().Map, b.Session().Map)
	assert.Equal(t, a.World().Len(), b.World().Len())
}

func TestWaitTakesTurn(t *testing.T) {
	e, _, _ := newTestEngine(t, &scriptedUI{})
	assert.Equal(t, TookTurn, e.Step(input.Of(input.Wait)))
	assert.Equal(t, 1, e.Session().Turn)
	assert.Equal(t, AwaitingCommand, e.State())
}

func TestMenusDoNotTakeTurn(t *testing.T) {
	ui := &scriptedUI{}
	e, _, _ := newTestEngine(t, ui)

	assert.Equal(t, DidNotTakeTurn, e.Step(input.Of(input.Character)))
	require.Len(t, ui.shown, 1)
	assert.True(t, strings.HasPrefix(ui.shown[0], "Character information"))
	assert.Contains(t, ui.shown[0], "Experience to level up: 350")

	assert.Equal(t, DidNotTakeTurn, e.Step(input.Of(input.ToggleDisplay)))
	assert.Equal(t, 1, ui.toggles)

	assert.Equal(t, DidNotTakeTurn, e.Step(input.Of(input.None)))
	assert.Equal(t, DidNotTakeTurn, e.Step(input.Slotted(input.UseItem, input.NoSlot)))
	assert.Equal(t, DidNotTakeTurn, e.Step(input.Slotted(input.Drop, 3)))
	assert.Equal(t, DidNotTakeTurn, e.Step(input.Of(input.PickUp)))
	assert.Zero(t, e.Session().Turn)
}

func TestQuitRequestsExit(t *testing.T) {
	e, _, _ := newTestEngine(t, &scriptedUI{})
	assert.Equal(t, RequestExit, e.Step(input.Of(input.Quit)))
}

func TestDescendNeedsStairs(t *testing.T) {
	e, _, _ := newTestEngine(t, &scriptedUI{})
	st := stairs(t, e)
	p := e.World().Player()
	if p.At(st.Pos.X, st.Pos.Y) {
		t.Skip("single-room level; the player starts on the stairs")
	}
	assert.Equal(t, DidNotTakeTurn, e.Step(input.Of(input.Descend)))
	assert.Equal(t, uint(1), e.Session().Depth)
}

func TestDescend(t *testing.T) {
	e, _, _ := newTestEngine(t, &scriptedUI{})
	st := stairs(t, e)
	p := e.World().Player()
	p.SetPos(st.Pos.X, st.Pos.Y)
	p.Fighter.HP = 10
	oldMap := e.Session().Map

	assert.Equal(t, DidNotTakeTurn, e.Step(input.Of(input.Descend)))

	s := e.Session()
	assert.Equal(t, uint(2), s.Depth)
	assert.NotSame(t, oldMap, s.Map)
	assert.Equal(t, 60, p.Fighter.HP)
	assert.Same(t, p, e.World().Player())
	msgs := s.Log.Last(2)
	assert.Equal(t, assets.RestText, msgs[0].Text)
	assert.Equal(t, assets.DescendText, msgs[1].Text)
	stairs(t, e)
}

func TestDeadPlayerCanOnlyLook(t *testing.T) {
	ui := &scriptedUI{}
	e, _, _ := newTestEngine(t, ui)
	p := e.World().Player()
	p.Alive = false
	p.Fighter.HP = 0

	for _, cmd := range []input.Command{
		input.Of(input.Wait), input.MoveBy(1, 0), input.Of(input.PickUp), input.Of(input.Descend),
	} {
		assert.Equal(t, DidNotTakeTurn, e.Step(cmd), cmd.Kind.String())
	}
	assert.Equal(t, DidNotTakeTurn, e.Step(input.Of(input.Character)))
	assert.Len(t, ui.shown, 1)
	assert.Equal(t, RequestExit, e.Step(input.Of(input.Quit)))
}

func TestLevelUpBlocksOnChoice(t *testing.T) {
	ui := &scriptedUI{choices: []int{-1, 1}}
	e, _, _ := newTestEngine(t, ui)
	p := e.World().Player()
	p.Fighter.XP = 350

	require.Equal(t, TookTurn, e.Step(input.Of(input.Wait)))
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 5, p.Fighter.Power)
	assert.Len(t, ui.headers, 2, "a dismissed menu is asked again")
}

func TestRunSavesAndContinues(t *testing.T) {
	ui := &scriptedUI{commands: []input.Command{input.Of(input.Wait), input.Of(input.Wait)}}
	e, store, dir := newTestEngine(t, ui)
	require.NoError(t, e.Run(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "test.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, runlog.FileName))
	require.NoError(t, err)

	again := New(&scriptedUI{}, Options{Store: store, Slot: "test"})
	require.NoError(t, again.Continue(context.Background()))
	assert.Equal(t, 2, again.Session().Turn)
	assert.Equal(t, e.Session().RunID, again.Session().RunID)
	assert.Equal(t, e.World().Len(), again.World().Len())
	assert.Equal(t, e.Session().Map, again.Session().Map)
}

func TestRunStopsWhenContextDone(t *testing.T) {
	ui := &scriptedUI{commands: []input.Command{input.Of(input.Wait)}}
	e, store, _ := newTestEngine(t, ui)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, e.Run(ctx))
	assert.Len(t, ui.commands, 1, "no command read after cancellation")
	_, err := store.Load(context.Background(), "test")
	assert.NoError(t, err)
}

func TestContinueWithoutSave(t *testing.T) {
	store, err := persist.NewFileStore(t.TempDir())
	require.NoError(t, err)
	e := New(&scriptedUI{}, Options{Store: store, Slot: "nobody"})
	err = e.Continue(context.Background())
	assert.ErrorIs(t, err, persist.ErrNoSave)
	assert.False(t, e.Loaded())
}

func TestCharacterSheetGroupsThousands(t *testing.T) {
	e, _, _ := newTestEngine(t, &scriptedUI{})
	e.World().Player().Fighter.XP = 12345
	assert.Contains(t, e.CharacterSheet(), "Experience: 12,345")
}
