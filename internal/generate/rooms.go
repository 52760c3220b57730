package generate

import (
	"fmt"
	"math/rand"

	"glass-oak/internal/component"
	"glass-oak/internal/gamemap"
)

// Default level dimensions and room bounds.
const (
	MapWidth    = 80
	MapHeight   = 43
	RoomMinSize = 6
	RoomMaxSize = 10
	MaxRooms    = 30
)

// Config drives procedural generation for one level.
type Config struct {
	Width, Height int
	RoomMinSize   int
	RoomMaxSize   int
	MaxRooms      int
	Depth         uint
	Rand          *rand.Rand
}

// DefaultConfig returns the standard 80x43 layout for depth.
func DefaultConfig(depth uint, rng *rand.Rand) *Config {
	return &Config{
		Width:       MapWidth,
		Height:      MapHeight,
		RoomMinSize: RoomMinSize,
		RoomMaxSize: RoomMaxSize,
		MaxRooms:    MaxRooms,
		Depth:       depth,
		Rand:        rng,
	}
}

// Validate rejects configurations the room placer cannot satisfy.
func (c *Config) Validate() error {
	switch {
	case c.Rand == nil:
		return fmt.Errorf("generate: nil random source")
	case c.RoomMinSize < 3 || c.RoomMaxSize < c.RoomMinSize:
		return fmt.Errorf("generate: bad room size range %d..%d", c.RoomMinSize, c.RoomMaxSize)
	case c.Width <= c.RoomMaxSize || c.Height <= c.RoomMaxSize:
		return fmt.Errorf("generate: %dx%d map too small for rooms up to %d", c.Width, c.Height, c.RoomMaxSize)
	case c.MaxRooms < 1:
		return fmt.Errorf("generate: need at least one room attempt")
	}
	return nil
}

// Level is one freshly carved dungeon level. Start is the first room's
// center and Stairs the last room's.
type Level struct {
	Map    *gamemap.GameMap
	Rooms  []gamemap.Rect
	Start  component.Position
	Stairs component.Position
}

// Generate carves up to MaxRooms non-overlapping rooms into a solid map and
// joins each room to the one accepted before it. Rejected attempts are not
// retried.
func Generate(cfg *Config) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gmap := gamemap.New(cfg.Width, cfg.Height)
	lvl := &Level{Map: gmap}

	for range cfg.MaxRooms {
		w := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		h := cfg.RoomMinSize + cfg.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		x := cfg.Rand.Intn(cfg.Width - w)
		y := cfg.Rand.Intn(cfg.Height - h)
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, lvl.Rooms) {
			continue
		}
		carveRoom(gmap, room)

		cx, cy := room.Center()
		if len(lvl.Rooms) == 0 {
			lvl.Start = component.Position{X: cx, Y: cy}
		} else {
			px, py := lvl.Rooms[len(lvl.Rooms)-1].Center()
			carveCorridor(gmap, px, py, cx, cy, cfg.Rand)
		}
		lvl.Rooms = append(lvl.Rooms, room)
	}

	sx, sy := lvl.Rooms[len(lvl.Rooms)-1].Center()
	lvl.Stairs = component.Position{X: sx, Y: sy}
	return lvl, nil
}

func overlapsAny(r gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom opens the interior of r, leaving its edge cells as walls.
func carveRoom(gmap *gamemap.GameMap, r gamemap.Rect) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			gmap.Set(x, y, gamemap.Floor())
		}
	}
}
