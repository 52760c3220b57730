// Package render draws a game onto a tcell screen.
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"glass-oak/assets"
	"glass-oak/internal/ecs"
	"glass-oak/internal/session"
)

// PanelHeight is the number of rows reserved for the status panel.
const PanelHeight = 7

// View is the read-only game state the renderer draws.
type View interface {
	World() *ecs.World
	Session() *session.Session
	IsVisible(x, y int) bool
}

// Mode selects how terrain is drawn.
type Mode uint8

const (
	// ModeShaded paints terrain as background colour only.
	ModeShaded Mode = iota
	// ModeGlyphs draws '#' walls and '.' floors.
	ModeGlyphs
)

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	mode   Mode
	mouseX int
	mouseY int
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0)}
	r.Resize()
	return r
}

// Resize fits the map viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(1, h-PanelHeight)
}

// ToggleMode switches between shaded and glyph terrain.
func (r *Renderer) ToggleMode() {
	if r.mode == ModeShaded {
		r.mode = ModeGlyphs
	} else {
		r.mode = ModeShaded
	}
}

// Mode returns the current terrain mode.
func (r *Renderer) Mode() Mode { return r.mode }

// SetMouse records the screen cell under the pointer for the name hover.
func (r *Renderer) SetMouse(sx, sy int) { r.mouseX, r.mouseY = sx, sy }

// ScreenToWorld converts a screen cell to map coordinates.
func (r *Renderer) ScreenToWorld(sx, sy int) (int, int) {
	return r.camera.ScreenToWorld(sx, sy)
}

// DrawFrame renders the map, the entities and the status panel, then shows
// the screen.
func (r *Renderer) DrawFrame(v View) {
	s := v.Session()
	p := v.World().Player()
	r.camera.Center(p.Pos.X, p.Pos.Y, s.Map.Width, s.Map.Height)

	r.screen.Clear()
	r.drawMap(v)
	r.drawEntities(v)
	r.drawPanel(v)
	r.screen.Show()
}

// drawMap renders every visible or explored cell.
func (r *Renderer) drawMap(v View) {
	m := v.Session().Map
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			visible := v.IsVisible(x, y)
			tile := m.At(x, y)
			if !visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}

			wall := tile.BlockSight
			var color tcell.Color
			switch {
			case !visible && wall:
				color = assets.ColorDarkWall
			case !visible:
				color = assets.ColorDarkGround
			case wall:
				color = assets.ColorLightWall
			default:
				color = assets.ColorLightGround
			}

			if r.mode == ModeGlyphs {
				glyph := '.'
				if wall {
					glyph = '#'
				}
				r.screen.SetContent(sx, sy, glyph, nil, tcell.StyleDefault.Foreground(color))
			} else {
				r.screen.SetContent(sx, sy, ' ', nil, tcell.StyleDefault.Background(color))
			}
		}
	}
}

// drawEntities draws what the player can see plus always-visible things on
// explored cells. Non-blocking entities go first so monsters stand on top
// of items and corpses.
func (r *Renderer) drawEntities(v View) {
	m := v.Session().Map
	var draw []*ecs.Entity
	for _, e := range v.World().Entities() {
		if v.IsVisible(e.Pos.X, e.Pos.Y) || (e.AlwaysVisible && m.IsExplored(e.Pos.X, e.Pos.Y)) {
			draw = append(draw, e)
		}
	}
	sort.SliceStable(draw, func(i, j int) bool { return !draw[i].Blocks && draw[j].Blocks })

	for _, e := range draw {
		sx, sy, onScreen := r.camera.WorldToScreen(e.Pos.X, e.Pos.Y)
		if !onScreen {
			continue
		}
		_, bg, _ := r.cellStyle(sx, sy).Decompose()
		style := tcell.StyleDefault.Foreground(e.Render.Color).Background(bg)
		r.screen.SetContent(sx, sy, e.Render.Glyph, nil, style)
	}
}

func (r *Renderer) cellStyle(sx, sy int) tcell.Style {
	_, _, style, _ := r.screen.GetContent(sx, sy)
	return style
}

// NamesUnder lists the names of the visible entities at map cell (x, y).
func NamesUnder(v View, x, y int) []string {
	var names []string
	for _, e := range v.World().Entities() {
		if e.At(x, y) && v.IsVisible(x, y) {
			names = append(names, e.Name)
		}
	}
	return names
}

// drawText writes text from (x, y), clipped to maxWidth columns.
func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	text = runewidth.Truncate(text, maxWidth, "…")
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
