package component

// ItemKind identifies the effect an item fires when used.
type ItemKind uint8

const (
	ItemHeal ItemKind = iota
	ItemLightning
	ItemConfuse
	ItemFireball
)

func (k ItemKind) String() string {
	switch k {
	case ItemHeal:
		return "heal"
	case ItemLightning:
		return "lightning"
	case ItemConfuse:
		return "confuse"
	case ItemFireball:
		return "fireball"
	}
	return "unknown"
}

// Item is the item block carried by anything that can be picked up.
type Item struct {
	Kind ItemKind `json:"kind"`
}
