package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TicksPerSecond is the fixed logic update rate. Burst stagger, ammo
	// recharge and attack cooldowns are all expressed in ticks at this rate.
	TicksPerSecond = 60

	// KeyHoldWindow is how long a key counts as held after its last press or
	// autorepeat event. Terminals deliver no release events, so movement keys
	// stay active for this window and autorepeat keeps refreshing it.
	KeyHoldWindow = 200 * time.Millisecond
)

// Terminal Geometry
const (
	// CellAspectFloat is the visual height/width ratio of a terminal cell.
	// Distances and radii are measured in horizontal cell units; vertical
	// deltas scale by this factor (Q32.32 via vmath.FromFloat).
	CellAspectFloat = 2.0

	// MinArenaWidth and MinArenaHeight are the smallest playable field.
	// Terminals smaller than this (after HUD rows) refuse to start.
	MinArenaWidth  = 40
	MinArenaHeight = 12

	// HudRows is the number of terminal rows reserved below the arena
	// for the ammo bar and status line
	HudRows = 2
)

// Event & Channel Capacities
const (
	// TerminalEventBuffer is the capacity of the terminal event channel.
	// Input bursts beyond this drop oldest-first rather than block the pump.
	TerminalEventBuffer = 128

	// GameEventQueueSize is the fixed capacity of the game event ring buffer
	GameEventQueueSize = 256

	// GameEventMask is the bitmask for fast modulo operations (256 - 1)
	GameEventMask = 255
)
