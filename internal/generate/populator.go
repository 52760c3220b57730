package generate

import (
	"glass-oak/assets"
	"glass-oak/internal/component"
	"glass-oak/internal/gamemap"
)

// SpawnKind distinguishes monster spawns from item spawns.
type SpawnKind uint8

const (
	SpawnMonster SpawnKind = iota
	SpawnItem
)

// Spawn describes one entity to create. Species is set for monsters and
// Item for items.
type Spawn struct {
	Kind    SpawnKind
	Species assets.Species
	Item    component.ItemKind
	X, Y    int
}

// Populate rolls monsters and then items for every room in acceptance
// order. occupied reports cells already held by a blocking entity that is
// not part of this pass, such as the player. A rolled position that is
// blocked is skipped rather than retried.
func Populate(lvl *Level, cfg *Config, occupied func(x, y int) bool) []Spawn {
	var spawns []Spawn

	// monsters placed this pass; items never block
	type pt = [2]int
	placed := make(map[pt]bool)
	blocked := func(x, y int) bool {
		if lvl.Map.IsBlocked(x, y) || placed[pt{x, y}] {
			return true
		}
		return occupied != nil && occupied(x, y)
	}

	maxMonsters := assets.FromDepth(assets.MaxRoomMonsters, cfg.Depth)
	maxItems := assets.FromDepth(assets.MaxRoomItems, cfg.Depth)
	monsterWeights := assets.MonsterWeights(cfg.Depth)
	itemWeights := assets.ItemWeights(cfg.Depth)

	for _, room := range lvl.Rooms {
		n := cfg.Rand.Intn(maxMonsters + 1)
		for range n {
			x, y := pickInRoom(room, cfg)
			if blocked(x, y) {
				continue
			}
			species, ok := assets.Choose(monsterWeights, cfg.Rand)
			if !ok {
				continue
			}
			placed[pt{x, y}] = true
			spawns = append(spawns, Spawn{Kind: SpawnMonster, Species: species, X: x, Y: y})
		}

		n = cfg.Rand.Intn(maxItems + 1)
		for range n {
			x, y := pickInRoom(room, cfg)
			if blocked(x, y) {
				continue
			}
			kind, ok := assets.Choose(itemWeights, cfg.Rand)
			if !ok {
				continue
			}
			spawns = append(spawns, Spawn{Kind: SpawnItem, Item: kind, X: x, Y: y})
		}
	}
	return spawns
}

// pickInRoom returns a random cell in [X1+1, X2) x [Y1+1, Y2).
func pickInRoom(room gamemap.Rect, cfg *Config) (int, int) {
	x := room.X1 + 1 + cfg.Rand.Intn(room.X2-room.X1-1)
	y := room.Y1 + 1 + cfg.Rand.Intn(room.Y2-room.Y1-1)
	return x, y
}
