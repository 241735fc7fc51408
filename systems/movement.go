package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/physics"
	"dodgetrainer/vmath"
)

// MovementSystem applies held movement axes to the avatar: velocity from
// the input snapshot, integration, then the per-axis clamp against the
// field. The applied delta (after clamping) is published for the bullet
// pass so projectiles fly in the avatar's frame of reference.
//
// Axes are additive with no diagonal normalization. Vertical velocity
// divides by the cell aspect so on-screen speed matches horizontal.
type MovementSystem struct {
	shared *engine.Shared
	kinMap *ecs.Map2[components.Kinetic, components.Body]
	dt     int64
}

// NewMovementSystem creates the avatar movement system
func NewMovementSystem(shared *engine.Shared) *MovementSystem {
	return &MovementSystem{shared: shared}
}

func (s *MovementSystem) Initialize(w *ecs.World) {
	s.kinMap = ecs.NewMap2[components.Kinetic, components.Body](w)
	s.dt = vmath.Div(vmath.Scale, vmath.FromInt(parameter.TicksPerSecond))
}

func (s *MovementSystem) Update(w *ecs.World) {
	s.shared.PlayerDeltaX = 0
	s.shared.PlayerDeltaY = 0

	if s.shared.Paused || !w.Alive(s.shared.Player) {
		return
	}

	kin, body := s.kinMap.Get(s.shared.Player)

	ax := s.shared.Input.AxisX(s.shared.Tick)
	ay := s.shared.Input.AxisY(s.shared.Tick)
	kin.VelX = vmath.Mul(s.shared.PlayerSpeed, ax)
	kin.VelY = vmath.Div(vmath.Mul(s.shared.PlayerSpeed, ay), s.shared.Aspect)

	beforeX, beforeY := kin.PreciseX, kin.PreciseY
	physics.Integrate(&kin.Kinetic, s.dt)
	physics.ClampToArea(&kin.Kinetic, body.Body, s.shared.Field())

	s.shared.PlayerDeltaX = kin.PreciseX - beforeX
	s.shared.PlayerDeltaY = kin.PreciseY - beforeY
}

func (s *MovementSystem) Finalize(_ *ecs.World) {}
