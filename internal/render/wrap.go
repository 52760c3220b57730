package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"glass-oak/internal/session"
)

type line struct {
	text  string
	color tcell.Color
}

// wrapMessages word-wraps msgs to width and keeps the last rows lines, so
// the newest message is always at the bottom.
func wrapMessages(msgs []session.Message, width, rows int) []line {
	if width <= 0 || rows <= 0 {
		return nil
	}
	var out []line
	for _, m := range msgs {
		for _, t := range wrap(m.Text, width) {
			out = append(out, line{text: t, color: m.Color})
		}
	}
	if len(out) > rows {
		out = out[len(out)-rows:]
	}
	return out
}

// wrap splits text on spaces into lines at most width columns wide. A word
// longer than width gets a line of its own and is clipped when drawn.
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if curW > 0 && curW+1+w > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += w
	}
	if curW > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
