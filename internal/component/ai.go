package component

// AIKind tags the behavior held in an AI block.
type AIKind uint8

const (
	AIBasic    AIKind = iota // chase the player when seen, attack when adjacent
	AIConfused               // stumble randomly, then restore Previous
)

func (k AIKind) String() string {
	switch k {
	case AIBasic:
		return "basic"
	case AIConfused:
		return "confused"
	}
	return "unknown"
}

// AI is a recursive sum type. A Confused AI owns the behavior it replaced
// in Previous so that behavior can be restored when the confusion wears off.
type AI struct {
	Kind           AIKind `json:"kind"`
	Previous       *AI    `json:"previous,omitempty"`
	TurnsRemaining int    `json:"turns_remaining,omitempty"`
}

// BasicAI returns a fresh Basic behavior.
func BasicAI() *AI {
	return &AI{Kind: AIBasic}
}

// Confuse wraps prev in a Confused behavior lasting turns dispatches.
// A nil prev is treated as Basic.
func Confuse(prev *AI, turns int) *AI {
	if prev == nil {
		prev = BasicAI()
	}
	return &AI{Kind: AIConfused, Previous: prev, TurnsRemaining: turns}
}

// Depth reports how many Confused layers wrap the innermost behavior.
func (a *AI) Depth() int {
	n := 0
	for cur := a; cur != nil && cur.Kind == AIConfused; cur = cur.Previous {
		n++
	}
	return n
}

// Clone deep-copies the whole chain.
func (a *AI) Clone() *AI {
	if a == nil {
		return nil
	}
	c := *a
	c.Previous = a.Previous.Clone()
	return &c
}
