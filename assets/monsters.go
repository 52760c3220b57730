package assets

import (
	"glass-oak/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Species names a monster template.
type Species string

const (
	SpeciesOrc   Species = "orc"
	SpeciesTroll Species = "troll"
)

// MonsterTemplate is the fixed stat block a species is created with.
type MonsterTemplate struct {
	Name    string
	Glyph   rune
	Color   tcell.Color
	MaxHP   int
	Defense int
	Power   int
	XP      int
}

// Monsters holds every spawnable species.
var Monsters = map[Species]MonsterTemplate{
	SpeciesOrc: {
		Name: "orc", Glyph: GlyphOrc, Color: tcell.ColorDarkSeaGreen,
		MaxHP: 20, Defense: 0, Power: 4, XP: 35,
	},
	SpeciesTroll: {
		Name: "troll", Glyph: GlyphTroll, Color: tcell.ColorDarkGreen,
		MaxHP: 30, Defense: 2, Power: 8, XP: 100,
	},
}

// PlayerStats is the player's starting combat block.
var PlayerStats = component.Fighter{
	MaxHP:   100,
	HP:      100,
	Defense: 1,
	Power:   4,
	OnDeath: component.PlayerDeath,
}

// MaxRoomMonsters caps how many monsters one room may roll at a depth.
var MaxRoomMonsters = []Step{{Value: 2, Depth: 1}, {Value: 3, Depth: 4}, {Value: 5, Depth: 6}}

// MonsterWeights returns the species draw weights for depth, in a fixed
// order so seeded draws are reproducible.
func MonsterWeights(depth uint) []Weighted[Species] {
	return []Weighted[Species]{
		{Value: SpeciesOrc, Weight: 80},
		{Value: SpeciesTroll, Weight: FromDepth([]Step{{15, 3}, {30, 5}, {60, 7}}, depth)},
	}
}
