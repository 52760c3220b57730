package gamemap

// Tile holds the movement and sight flags for one map cell.
type Tile struct {
	Blocked    bool `json:"blocked"`
	BlockSight bool `json:"block_sight"`
	Explored   bool `json:"explored"`
}

// Wall returns a blocking, opaque tile.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// Floor returns a passable, transparent tile.
func Floor() Tile {
	return Tile{}
}
