package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const barWidth = 20

// drawPanel renders the HP bar, depth, names under the mouse and the
// most recent messages in the rows under the map.
func (r *Renderer) drawPanel(v View) {
	sw, sh := r.screen.Size()
	top := sh - PanelHeight
	if top < 0 {
		return
	}

	p := v.World().Player()
	if f := p.Fighter; f != nil {
		r.drawBar(1, top+1, "HP", f.HP, f.MaxHP, tcell.ColorRed, tcell.ColorDarkRed)
	}
	r.drawText(1, top+3, barWidth, fmt.Sprintf("Dungeon level: %d", v.Session().Depth),
		tcell.StyleDefault.Foreground(tcell.ColorWhite))

	mx, my := r.camera.ScreenToWorld(r.mouseX, r.mouseY)
	if r.mouseY < r.camera.ViewHeight {
		names := strings.Join(NamesUnder(v, mx, my), ", ")
		r.drawText(1, top, barWidth, names, tcell.StyleDefault.Foreground(tcell.ColorLightGray))
	}

	msgX := barWidth + 2
	msgW := sw - msgX
	lines := wrapMessages(v.Session().Log.Last(PanelHeight-1), msgW, PanelHeight-1)
	for i, ln := range lines {
		r.drawText(msgX, top+1+i, msgW, ln.text, tcell.StyleDefault.Foreground(ln.color))
	}
}

func (r *Renderer) drawBar(x, y int, name string, value, maximum int, bar, back tcell.Color) {
	filled := 0
	if maximum > 0 {
		filled = max(0, min(barWidth, value*barWidth/maximum))
	}
	label := fmt.Sprintf("%s: %d/%d", name, value, maximum)
	start := (barWidth - runewidth.StringWidth(label)) / 2
	runes := []rune(label)
	for i := 0; i < barWidth; i++ {
		bg := back
		if i < filled {
			bg = bar
		}
		ch := ' '
		if j := i - start; j >= 0 && j < len(runes) {
			ch = runes[j]
		}
		r.screen.SetContent(x+i, y, ch, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(bg))
	}
}
