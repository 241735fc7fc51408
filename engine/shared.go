package engine

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/core"
	"dodgetrainer/vmath"
)

// InputState is the semantic input snapshot the logic systems read.
// Terminals deliver no key-release events, so each movement direction
// carries an expiry tick refreshed by presses and autorepeat.
type InputState struct {
	HoldUpUntil    uint64
	HoldDownUntil  uint64
	HoldLeftUntil  uint64
	HoldRightUntil uint64

	// MouseX, MouseY is the pointer cell in terminal coordinates
	MouseX, MouseY int

	// Indicating is true while the right button is held (aim lane visible)
	Indicating bool

	// FireRequested is set on right-button release and consumed by the
	// fire pass the same tick
	FireRequested bool
}

// AxisX returns the horizontal movement axis at tick: -1, 0 or +1 in
// Q32.32. Opposing holds cancel.
func (s *InputState) AxisX(tick uint64) int64 {
	var ax int64
	if tick < s.HoldRightUntil {
		ax += vmath.Scale
	}
	if tick < s.HoldLeftUntil {
		ax -= vmath.Scale
	}
	return ax
}

// AxisY returns the vertical movement axis at tick: -1 (up), 0 or +1
// (down) in Q32.32. Opposing holds cancel.
func (s *InputState) AxisY(tick uint64) int64 {
	var ay int64
	if tick < s.HoldDownUntil {
		ay += vmath.Scale
	}
	if tick < s.HoldUpUntil {
		ay -= vmath.Scale
	}
	return ay
}

// Shared is the cross-system state bundle. Systems receive it at
// construction; all access happens on the game loop goroutine.
type Shared struct {
	// Arena is the playfield rectangle in terminal coordinates,
	// including the border cells drawn on its edges
	Arena core.Area

	// Screen dimensions tracked from resize events
	ScreenW, ScreenH int

	Input   InputState
	Events  *EventQueue
	Session *Session
	Rand    *vmath.FastRand

	// Tick is the current logic tick, advanced once per update
	Tick uint64

	Paused        bool
	QuitRequested bool

	// PlayerDeltaX, PlayerDeltaY is the avatar's applied movement this
	// tick in Q32.32 cells. Bullets shift by the same amount so flight
	// stays in the avatar's frame of reference.
	PlayerDeltaX, PlayerDeltaY int64

	// Player is the avatar entity, set once at startup
	Player ecs.Entity

	// Enemy is the live opponent; the zero entity when none
	Enemy ecs.Entity

	// RespawnAtTick schedules the next enemy spawn; 0 = nothing pending
	RespawnAtTick uint64

	// Aspect is the vertical cell scale factor for visual distance (Q32.32)
	Aspect int64

	// Tunables resolved from config at startup (Q32.32 where fractional)
	PlayerSpeed     int64
	EnemySpeed      int64
	EnemySpread     int64
	HoldWindowTicks uint64
	KeyUp           rune
	KeyDown         rune
	KeyLeft         rune
	KeyRight        rune
	EnemyEnabled    bool
}

// Field returns the playable region inside the arena border. Bodies
// clamp to this rectangle.
func (s *Shared) Field() core.Area {
	return s.Arena.Inset(1, 1)
}
