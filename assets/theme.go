package assets

import "github.com/gdamore/tcell/v2"

// Map colors: walls and ground in and out of the torch light.
var (
	ColorDarkWall    = tcell.NewRGBColor(0, 0, 100)
	ColorLightWall   = tcell.NewRGBColor(130, 110, 50)
	ColorDarkGround  = tcell.NewRGBColor(50, 50, 150)
	ColorLightGround = tcell.NewRGBColor(200, 180, 50)
)

// Glyphs, light and the fixed texts of the game.
const (
	GlyphPlayer = '@'
	GlyphOrc    = 'o'
	GlyphTroll  = 'T'
	GlyphPotion = '!'
	GlyphScroll = '#'
	GlyphStairs = '<'
	GlyphCorpse = '%'
	TorchRadius = 10
	LightWalls  = true
	PlayerName  = "player"
	StairsName  = "stairs"
	GameTitle   = "THE GLASS OAK"
	WelcomeText = "Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings."
	DescendText = "After a rare moment of peace, you descend deeper into the heart of the dungeon..."
	RestText    = "You take a moment to rest, and recover your strength."
	NoSaveText  = "No saved game to load."
)
