package components

import "github.com/gdamore/tcell/v2"

// Sprite defines how an entity renders
type Sprite struct {
	// Rune fills the body extent
	Rune rune

	// Color is the normal foreground
	Color tcell.Color

	// FlashColor replaces Color while hit feedback is active
	FlashColor tcell.Color

	// FlashTicks counts down the remaining hit feedback
	FlashTicks int
}
