package engine

import (
	"dodgetrainer/core"
	"dodgetrainer/parameter"
)

// ArenaForScreen derives the playfield rectangle from terminal
// dimensions, reserving HUD rows at the bottom and enforcing the
// minimum playable size. An undersized terminal clips rather than
// shrinking below the minimum.
func ArenaForScreen(screenW, screenH int) core.Area {
	w := screenW
	if w < parameter.MinArenaWidth {
		w = parameter.MinArenaWidth
	}
	h := screenH - parameter.HudRows
	if h < parameter.MinArenaHeight {
		h = parameter.MinArenaHeight
	}
	return core.Area{X: 0, Y: 0, Width: w, Height: h}
}
