package assets

import "math/rand"

// Step is one threshold of a depth-scaled step function: from Depth onward
// the table yields Value.
type Step struct {
	Value int
	Depth uint
}

// FromDepth returns the value of the last step whose threshold is at or
// below depth, or 0 when depth is shallower than every step. Steps must be
// sorted by Depth.
func FromDepth(table []Step, depth uint) int {
	for i := len(table) - 1; i >= 0; i-- {
		if depth >= table[i].Depth {
			return table[i].Value
		}
	}
	return 0
}

// Weighted pairs a choice with its relative draw weight.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Choose draws one value with probability proportional to its weight.
// Zero or negative weights never win. ok is false when every weight is zero.
func Choose[T any](choices []Weighted[T], rng *rand.Rand) (v T, ok bool) {
	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		return v, false
	}
	roll := rng.Intn(total)
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		if roll < c.Weight {
			return c.Value, true
		}
		roll -= c.Weight
	}
	return v, false
}
