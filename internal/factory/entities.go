package factory

import (
	"glass-oak/assets"
	"glass-oak/internal/component"
	"glass-oak/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the player at (x, y) with the starting stat block.
func NewPlayer(x, y int) *ecs.Entity {
	f := assets.PlayerStats
	return &ecs.Entity{
		Name:    assets.PlayerName,
		Pos:     component.Position{X: x, Y: y},
		Render:  component.Renderable{Glyph: assets.GlyphPlayer, Color: tcell.ColorWhite},
		Blocks:  true,
		Alive:   true,
		Level:   1,
		Fighter: &f,
	}
}

// NewMonster creates a monster of the given species. ok is false for an
// unknown species.
func NewMonster(species assets.Species, x, y int) (*ecs.Entity, bool) {
	t, ok := assets.Monsters[species]
	if !ok {
		return nil, false
	}
	return &ecs.Entity{
		Name:   t.Name,
		Pos:    component.Position{X: x, Y: y},
		Render: component.Renderable{Glyph: t.Glyph, Color: t.Color},
		Blocks: true,
		Alive:  true,
		Level:  1,
		Fighter: &component.Fighter{
			MaxHP:   t.MaxHP,
			HP:      t.MaxHP,
			Defense: t.Defense,
			Power:   t.Power,
			XP:      t.XP,
			OnDeath: component.MonsterDeath,
		},
		AI: component.BasicAI(),
	}, true
}

// NewItem creates a floor item of the given kind.
func NewItem(kind component.ItemKind, x, y int) *ecs.Entity {
	t := assets.Items[kind]
	return &ecs.Entity{
		Name:   t.Name,
		Pos:    component.Position{X: x, Y: y},
		Render: component.Renderable{Glyph: t.Glyph, Color: t.Color},
		Level:  1,
		Item:   &component.Item{Kind: kind},
	}
}

// NewStairs creates the way down. Stairs never block and stay drawn once
// explored.
func NewStairs(x, y int) *ecs.Entity {
	return &ecs.Entity{
		Name:          assets.StairsName,
		Pos:           component.Position{X: x, Y: y},
		Render:        component.Renderable{Glyph: assets.GlyphStairs, Color: tcell.ColorWhite},
		AlwaysVisible: true,
		Level:         1,
	}
}
