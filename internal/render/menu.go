package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// MaxMenuOptions is one option per letter a–z.
const MaxMenuOptions = 26

// DrawMenu draws header and the options lettered (a), (b)... in a box in
// the middle of the screen, over whatever was drawn before.
func (r *Renderer) DrawMenu(header string, options []string, width int) {
	if len(options) > MaxMenuOptions {
		options = options[:MaxMenuOptions]
	}
	lines := []string{}
	if header != "" {
		lines = append(lines, wrap(header, width)...)
	}
	for i, opt := range options {
		lines = append(lines, "("+string(rune('a'+i))+") "+opt)
	}
	r.drawBox(lines, width)
	r.screen.Show()
}

// DrawMessageBox draws text in a box in the middle of the screen.
func (r *Renderer) DrawMessageBox(text string, width int) {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrap(para, width)...)
	}
	r.drawBox(lines, width)
	r.screen.Show()
}

// DrawTitle draws the main menu backdrop.
func (r *Renderer) DrawTitle(title, subtitle string) {
	r.screen.Clear()
	sw, sh := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	y := sh/2 - 6
	r.drawText(max(0, (sw-runewidth.StringWidth(title))/2), y, sw, title, style)
	r.drawText(max(0, (sw-runewidth.StringWidth(subtitle))/2), y+2, sw, subtitle, style)
}

func (r *Renderer) drawBox(lines []string, width int) {
	sw, sh := r.screen.Size()
	width = min(width, sw)
	x := max(0, (sw-width)/2)
	y := max(0, (sh-len(lines))/2)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, ln := range lines {
		for col := 0; col < width; col++ {
			r.screen.SetContent(x+col, y+i, ' ', nil, style)
		}
		r.drawText(x, y+i, width, ln, style)
	}
}
