// Package input defines the abstract commands and pointer events the turn
// engine consumes. Front ends translate raw key and mouse events into these.
package input

// CommandKind is the action a Command requests.
type CommandKind uint8

const (
	None CommandKind = iota
	Move
	Wait
	PickUp
	Drop
	UseItem
	Descend
	Character
	ToggleDisplay
	Quit
)

var kindNames = [...]string{
	None:          "none",
	Move:          "move",
	Wait:          "wait",
	PickUp:        "pickup",
	Drop:          "drop",
	UseItem:       "use",
	Descend:       "descend",
	Character:     "character",
	ToggleDisplay: "toggle-display",
	Quit:          "quit",
}

func (k CommandKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// NoSlot marks a Drop or UseItem whose menu was dismissed.
const NoSlot = -1

// Closed is what a menu returns once its input source has ended. No
// further answers will come.
const Closed = -2

// Command is one player request. DX/DY are used by Move; Slot by Drop and
// UseItem.
type Command struct {
	Kind CommandKind
	DX   int
	DY   int
	Slot int
}

// MoveBy returns a Move command for the given offset.
func MoveBy(dx, dy int) Command {
	return Command{Kind: Move, DX: dx, DY: dy}
}

// Of returns a command with no payload.
func Of(kind CommandKind) Command {
	return Command{Kind: kind, Slot: NoSlot}
}

// Slotted returns a Drop or UseItem command for an inventory slot.
func Slotted(kind CommandKind, slot int) Command {
	return Command{Kind: kind, Slot: slot}
}

// PointerEvent is the edge-triggered pointer state polled while targeting.
// X and Y are map coordinates.
type PointerEvent struct {
	X, Y   int
	Left   bool
	Right  bool
	Escape bool
}

// Cancelled reports whether the event aborts a targeting loop.
func (p PointerEvent) Cancelled() bool {
	return p.Right || p.Escape
}
