package component

// DeathKind selects the terminal transition run when a fighter dies.
type DeathKind uint8

const (
	PlayerDeath DeathKind = iota
	MonsterDeath
)

func (k DeathKind) String() string {
	switch k {
	case PlayerDeath:
		return "player"
	case MonsterDeath:
		return "monster"
	}
	return "unknown"
}

// Fighter is the combat block: hit points, attack stats and the experience
// it is worth (or, for the player, has accumulated).
type Fighter struct {
	MaxHP   int       `json:"max_hp"`
	HP      int       `json:"hp"`
	Defense int       `json:"defense"`
	Power   int       `json:"power"`
	XP      int       `json:"xp"`
	OnDeath DeathKind `json:"on_death"`
}
