package engine

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"glass-oak/internal/system"
)

var printer = message.NewPrinter(language.English)

// CharacterSheet describes the player's level, experience and stats.
func (e *Engine) CharacterSheet() string {
	p := e.ctx.Player()
	var b strings.Builder
	b.WriteString("Character information\n\n")
	printer.Fprintf(&b, "Level: %d\n", p.Level)
	if f := p.Fighter; f != nil {
		printer.Fprintf(&b, "Experience: %d\n", f.XP)
		printer.Fprintf(&b, "Experience to level up: %d\n\n", system.LevelUpXP(p.Level))
		printer.Fprintf(&b, "Maximum HP: %d\n", f.MaxHP)
		printer.Fprintf(&b, "Attack: %d\n", f.Power)
		printer.Fprintf(&b, "Defense: %d", f.Defense)
	}
	return b.String()
}
