package system

import (
	"fmt"

	"glass-oak/assets"
	"glass-oak/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Stat boosts offered on level up, in menu order.
const (
	BoostConstitution = iota
	BoostStrength
	BoostAgility
)

// LevelUpXP is the experience needed to leave level.
func LevelUpXP(level int) int {
	return assets.LevelUpBase + level*assets.LevelUpFactor
}

// ChooseFunc presents a blocking menu and returns the selected index, a
// negative value when the menu was dismissed, or input.Closed when no more
// input can arrive.
type ChooseFunc func(header string, options []string) int

// CheckLevelUp raises the player at most one level when enough experience
// has been gathered, forcing a stat choice. It reports whether a level was
// gained. When the input closes before a stat is picked nothing changes and
// the level up is offered again on the next check.
func CheckLevelUp(ctx *Context, choose ChooseFunc) bool {
	p := ctx.Player()
	if p.Fighter == nil {
		return false
	}
	need := LevelUpXP(p.Level)
	if p.Fighter.XP < need {
		return false
	}

	f := p.Fighter
	options := []string{
		fmt.Sprintf("Constitution (+%d HP, from %d)", assets.LevelUpHPBonus, f.MaxHP),
		fmt.Sprintf("Strength (+1 attack, from %d)", f.Power),
		fmt.Sprintf("Agility (+1 defense, from %d)", f.Defense),
	}
	choice := -1
	for choice < 0 || choice >= len(options) {
		choice = choose("Level up! Choose a stat to raise:", options)
		if choice == input.Closed {
			return false
		}
	}

	p.Level++
	ctx.log(fmt.Sprintf("Your battle skills grow stronger! You reached level %d!", p.Level), tcell.ColorYellow)
	f.XP -= need

	switch choice {
	case BoostConstitution:
		f.MaxHP += assets.LevelUpHPBonus
		f.HP += assets.LevelUpHPBonus
	case BoostStrength:
		f.Power++
	case BoostAgility:
		f.Defense++
	}
	return true
}
