package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/engine"
)

// ClockSystem advances the logic tick. It runs right after input so a
// pause toggled this update freezes the tick before any gameplay system
// sees it. Burst schedules and cooldowns all count in ticks, so pausing
// suspends them without rescheduling.
type ClockSystem struct {
	shared *engine.Shared
}

// NewClockSystem creates the tick advancer
func NewClockSystem(shared *engine.Shared) *ClockSystem {
	return &ClockSystem{shared: shared}
}

func (s *ClockSystem) Initialize(_ *ecs.World) {}

func (s *ClockSystem) Update(_ *ecs.World) {
	if s.shared.Paused {
		return
	}
	s.shared.Tick++
}

func (s *ClockSystem) Finalize(_ *ecs.World) {}
