package assets

import (
	"glass-oak/internal/component"

	"github.com/gdamore/tcell/v2"
)

// ItemTemplate is how an item kind looks on the floor and in the inventory.
type ItemTemplate struct {
	Name  string
	Glyph rune
	Color tcell.Color
}

// Items maps every item kind to its template.
var Items = map[component.ItemKind]ItemTemplate{
	component.ItemHeal:      {Name: "healing potion", Glyph: GlyphPotion, Color: tcell.ColorViolet},
	component.ItemLightning: {Name: "scroll of lightning bolt", Glyph: GlyphScroll, Color: tcell.ColorLightYellow},
	component.ItemFireball:  {Name: "scroll of fireball", Glyph: GlyphScroll, Color: tcell.ColorLightYellow},
	component.ItemConfuse:   {Name: "scroll of confusion", Glyph: GlyphScroll, Color: tcell.ColorLightYellow},
}

// Effect tuning.
const (
	HealAmount       = 40
	LightningDamage  = 40
	LightningRange   = 5
	ConfuseRange     = 8
	ConfuseNumTurns  = 10
	FireballRadius   = 3
	FireballDamage   = 25
	LevelUpBase      = 200
	LevelUpFactor    = 150
	LevelUpHPBonus   = 20
	DescendHealRatio = 2 // heal max HP / ratio when taking the stairs
)

// MaxRoomItems caps how many items one room may roll at a depth.
var MaxRoomItems = []Step{{Value: 1, Depth: 1}, {Value: 2, Depth: 4}}

// ItemWeights returns the item kind draw weights for depth.
func ItemWeights(depth uint) []Weighted[component.ItemKind] {
	return []Weighted[component.ItemKind]{
		{Value: component.ItemHeal, Weight: 35},
		{Value: component.ItemLightning, Weight: FromDepth([]Step{{25, 4}}, depth)},
		{Value: component.ItemFireball, Weight: FromDepth([]Step{{25, 6}}, depth)},
		{Value: component.ItemConfuse, Weight: FromDepth([]Step{{10, 2}}, depth)},
	}
}
