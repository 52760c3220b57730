// Package engine runs the turn loop: it resolves one player command, lets
// every monster act, checks for a level up and persists the game on exit.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"glass-oak/assets"
	"glass-oak/internal/ecs"
	"glass-oak/internal/factory"
	"glass-oak/internal/fov"
	"glass-oak/internal/generate"
	"glass-oak/internal/input"
	"glass-oak/internal/logging"
	"glass-oak/internal/persist"
	"glass-oak/internal/runlog"
	"glass-oak/internal/session"
	"glass-oak/internal/system"
)

// UI is everything the engine needs from a front end. Every method blocks
// until the player answers. After the input ends NextCommand must return
// Quit so Run can save.
type UI interface {
	NextCommand() input.Command
	NextPointer() input.PointerEvent
	// Choose shows a menu and returns the chosen index, a negative value
	// when it was dismissed, or input.Closed once input has ended.
	Choose(header string, options []string) int
	Show(text string)
	ToggleDisplayMode()
}

// State is where the engine is inside one turn.
type State uint8

const (
	AwaitingCommand State = iota
	ResolvingPlayerAction
	RunningAI
	TurnComplete
)

func (s State) String() string {
	switch s {
	case AwaitingCommand:
		return "awaiting-command"
	case ResolvingPlayerAction:
		return "resolving-player-action"
	case RunningAI:
		return "running-ai"
	case TurnComplete:
		return "turn-complete"
	}
	return "unknown"
}

// Result classifies a resolved command.
type Result uint8

const (
	TookTurn Result = iota
	DidNotTakeTurn
	RequestExit
)

func (r Result) String() string {
	switch r {
	case TookTurn:
		return "took-turn"
	case DidNotTakeTurn:
		return "did-not-take-turn"
	case RequestExit:
		return "exit"
	}
	return "unknown"
}

// Options configures an Engine.
type Options struct {
	Store   persist.Store
	Slot    string
	DataDir string // run log directory; empty disables the run log
	Seed    int64  // 0 seeds from the clock
	Log     logrus.FieldLogger
}

// Engine owns the world and session of one game.
type Engine struct {
	ui    UI
	opts  Options
	log   logrus.FieldLogger
	rng   *rand.Rand
	ctx   *system.Context
	state State

	lastPos  [2]int
	fovDirty bool
	record   runlog.Record
}

// New creates an engine with no game loaded. Call NewGame or Continue
// before Step or Run.
func New(ui UI, opts Options) *Engine {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	rng := rand.New(rand.NewSource(seed))
	return &Engine{
		ui:   ui,
		opts: opts,
		log:  log.WithField("slot", opts.Slot),
		rng:  rng,
		ctx:  &system.Context{Rng: rng, Pointer: ui},
	}
}

// NewGame discards any loaded game and starts a fresh run at depth 1. On
// error no game is loaded.
func (e *Engine) NewGame() error {
	player := factory.NewPlayer(0, 0)
	e.ctx.World = ecs.NewWorld(player)
	e.ctx.Session = session.New(nil)
	e.ctx.Killed = nil
	e.ctx.LastHit = ""
	if err := e.buildLevel(); err != nil {
		e.ctx.World, e.ctx.Session = nil, nil
		return err
	}
	e.ctx.Session.Log.Add(assets.WelcomeText, tcell.ColorRed)

	e.record = runlog.NewRecord(e.ctx.Session.RunID)
	e.log.WithFields(logrus.Fields{"run_id": e.ctx.Session.RunID}).Info("new game")
	return nil
}

// Continue loads the game saved in the configured slot. Failures wrap
// persist.ErrNoSave and leave the engine unchanged.
func (e *Engine) Continue(ctx context.Context) error {
	if e.opts.Store == nil {
		return persist.ErrNoSave
	}
	w, s, err := persist.Load(ctx, e.opts.Store, e.opts.Slot)
	if err != nil {
		e.log.WithError(err).Warn("load failed")
		return err
	}
	e.ctx.World = w
	e.ctx.Session = s
	e.ctx.Vis = fov.New(s.Map)
	e.ctx.Killed = nil
	e.ctx.LastHit = ""
	e.refreshFOV(true)

	e.record = runlog.NewRecord(s.RunID)
	e.log.WithFields(logrus.Fields{"run_id": s.RunID, "depth": s.Depth, "turn": s.Turn}).Info("game loaded")
	return nil
}

// Loaded reports whether a game is in progress.
func (e *Engine) Loaded() bool {
	return e.ctx.World != nil && e.ctx.Session != nil
}

// World returns the entity collection of the current level.
func (e *Engine) World() *ecs.World { return e.ctx.World }

// Session returns the current session.
func (e *Engine) Session() *session.Session { return e.ctx.Session }

// IsVisible reports whether (x, y) is in the player's field of view.
func (e *Engine) IsVisible(x, y int) bool {
	return e.ctx.Vis != nil && e.ctx.Vis.IsVisible(x, y)
}

// State returns the current turn phase.
func (e *Engine) State() State { return e.state }

// Run reads commands until the player quits or ctx is done, then saves.
// A save failure is returned.
func (e *Engine) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		if e.Step(e.ui.NextCommand()) == RequestExit {
			break
		}
	}
	return e.finish(ctx)
}

// Step resolves one command. For TookTurn every monster acts once, in
// index order, and the level-up check runs before Step returns.
func (e *Engine) Step(cmd input.Command) Result {
	e.state = ResolvingPlayerAction
	res := e.resolve(cmd)

	if res == TookTurn {
		e.ctx.Session.Turn++
		e.refreshFOV(false)

		e.state = RunningAI
		system.RunAI(e.ctx)

		e.state = TurnComplete
		if system.CheckLevelUp(e.ctx, e.ui.Choose) {
			e.log.WithFields(logrus.Fields{"level": e.ctx.Player().Level, "turn": e.ctx.Session.Turn}).Info("level up")
		}
		e.tally()
	}

	e.state = AwaitingCommand
	return res
}

func (e *Engine) resolve(cmd input.Command) Result {
	switch cmd.Kind {
	case input.Quit:
		return RequestExit
	case input.ToggleDisplay:
		e.ui.ToggleDisplayMode()
		return DidNotTakeTurn
	case input.Character:
		e.ui.Show(e.CharacterSheet())
		return DidNotTakeTurn
	}

	if !e.ctx.Player().Alive {
		return DidNotTakeTurn
	}

	switch cmd.Kind {
	case input.Move:
		if system.PlayerMoveOrAttack(e.ctx, cmd.DX, cmd.DY) {
			return TookTurn
		}
	case input.Wait:
		return TookTurn
	case input.PickUp:
		if system.PickUpHere(e.ctx) {
			return TookTurn
		}
	case input.Drop:
		if system.Drop(e.ctx, cmd.Slot) {
			return TookTurn
		}
	case input.UseItem:
		return e.useItem(cmd.Slot)
	case input.Descend:
		if !e.onStairs() {
			break
		}
		if err := e.descend(); err != nil {
			e.log.WithError(err).Error("level generation failed")
			return RequestExit
		}
	}
	return DidNotTakeTurn
}

func (e *Engine) useItem(slot int) Result {
	inv := e.ctx.Session.Inventory
	if slot < 0 || slot >= len(inv) {
		return DidNotTakeTurn
	}
	name := inv[slot].Name
	if system.UseItem(e.ctx, slot) != system.UsedUp {
		return DidNotTakeTurn
	}
	e.record.ItemsUsed[name]++
	return TookTurn
}

func (e *Engine) onStairs() bool {
	p := e.ctx.Player()
	for i, ent := range e.ctx.World.Entities() {
		if i != ecs.PlayerIndex && ent.Name == assets.StairsName && ent.At(p.Pos.X, p.Pos.Y) {
			return true
		}
	}
	return false
}

// descend heals the player by half and replaces the level with a fresh
// one a step deeper.
func (e *Engine) descend() error {
	s := e.ctx.Session
	p := e.ctx.Player()
	s.Log.Add(assets.RestText, tcell.ColorViolet)
	if p.Fighter != nil {
		system.Heal(p, p.Fighter.MaxHP/assets.DescendHealRatio)
	}
	s.Log.Add(assets.DescendText, tcell.ColorRed)
	s.Depth++
	return e.buildLevel()
}

// buildLevel generates the level for the session's depth around the
// player, who is kept at index 0 and moved to the first room.
func (e *Engine) buildLevel() error {
	s := e.ctx.Session
	cfg := generate.DefaultConfig(s.Depth, e.rng)
	lvl, err := generate.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generate depth %d: %w", s.Depth, err)
	}

	w := e.ctx.World
	w.Truncate(1)
	s.Map = lvl.Map
	w.Player().SetPos(lvl.Start.X, lvl.Start.Y)

	monsters, items := 0, 0
	for _, sp := range generate.Populate(lvl, cfg, w.BlockingAt) {
		switch sp.Kind {
		case generate.SpawnMonster:
			if m, ok := factory.NewMonster(sp.Species, sp.X, sp.Y); ok {
				w.Append(m)
				monsters++
			}
		case generate.SpawnItem:
			w.Append(factory.NewItem(sp.Item, sp.X, sp.Y))
			items++
		}
	}
	w.Append(factory.NewStairs(lvl.Stairs.X, lvl.Stairs.Y))

	e.ctx.Vis = fov.New(lvl.Map)
	e.refreshFOV(true)
	e.log.WithFields(logrus.Fields{
		"depth":    s.Depth,
		"rooms":    len(lvl.Rooms),
		"monsters": monsters,
		"items":    items,
	}).Debug("level generated")
	return nil
}

// refreshFOV recomputes visibility when the player moved or force is set,
// then marks every visible cell explored.
func (e *Engine) refreshFOV(force bool) {
	p := e.ctx.Player()
	pos := [2]int{p.Pos.X, p.Pos.Y}
	if !force && pos == e.lastPos {
		return
	}
	e.lastPos = pos
	e.ctx.Vis.Compute(pos[0], pos[1], assets.TorchRadius, assets.LightWalls)

	m := e.ctx.Session.Map
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if e.ctx.Vis.IsVisible(x, y) {
				m.MarkExplored(x, y)
			}
		}
	}
}

// tally moves the turn's kills into the run record.
func (e *Engine) tally() {
	for _, name := range e.ctx.Killed {
		e.record.EnemiesKilled[name]++
	}
	e.ctx.Killed = e.ctx.Killed[:0]
}

// finish saves the game and appends the run summary. Only the save error
// is returned; the run log is best effort.
func (e *Engine) finish(ctx context.Context) error {
	if !e.Loaded() {
		return nil
	}
	// a cancelled session still gets saved
	ctx = context.WithoutCancel(ctx)

	var saveErr error
	if e.opts.Store != nil {
		saveErr = persist.Save(ctx, e.opts.Store, e.opts.Slot, e.ctx.World, e.ctx.Session)
		if saveErr != nil {
			e.log.WithError(saveErr).Error("save failed")
		} else {
			e.log.WithField("turn", e.ctx.Session.Turn).Info("game saved")
		}
	}

	if e.opts.DataDir != "" {
		if err := runlog.Append(e.opts.DataDir, e.summary()); err != nil {
			e.log.WithError(err).Warn("run log not written")
		}
	}
	return saveErr
}

func (e *Engine) summary() runlog.Record {
	rec := e.record
	p := e.ctx.Player()
	rec.RunID = e.ctx.Session.RunID
	rec.Depth = e.ctx.Session.Depth
	rec.Turns = e.ctx.Session.Turn
	rec.Level = p.Level
	rec.Died = !p.Alive
	if p.Fighter != nil {
		rec.XP = p.Fighter.XP
	}
	if rec.Died {
		rec.Cause = e.ctx.LastHit
	}
	return rec
}
