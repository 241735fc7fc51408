package render

import (
	"dodgetrainer/core"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	// Arena is the playfield rectangle in terminal coordinates
	Arena core.Area

	// Tick is the current logic tick (flash timing, animations)
	Tick uint64

	// Paused is true while the simulation is frozen
	Paused bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}
