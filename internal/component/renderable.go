package component

import "github.com/gdamore/tcell/v2"

// Renderable is the glyph and foreground color an entity is drawn with.
type Renderable struct {
	Glyph rune        `json:"glyph"`
	Color tcell.Color `json:"color"`
}
