package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/engine"
	"dodgetrainer/vmath"
)

// AimSystem points the avatar's aim at the mouse cell. Directions are
// normalized in visual space: the vertical delta scales by the cell
// aspect first, so a shot at a diagonal screen angle flies at that
// same visual angle.
type AimSystem struct {
	shared *engine.Shared
	aimMap *ecs.Map1[components.Aim]
	kinMap *ecs.Map1[components.Kinetic]
}

// NewAimSystem creates the avatar aim tracker
func NewAimSystem(shared *engine.Shared) *AimSystem {
	return &AimSystem{shared: shared}
}

func (s *AimSystem) Initialize(w *ecs.World) {
	s.aimMap = ecs.NewMap1[components.Aim](w)
	s.kinMap = ecs.NewMap1[components.Kinetic](w)
}

func (s *AimSystem) Update(w *ecs.World) {
	if s.shared.Paused || !w.Alive(s.shared.Player) {
		return
	}

	aim := s.aimMap.Get(s.shared.Player)
	kin := s.kinMap.Get(s.shared.Player)
	aim.Indicating = s.shared.Input.Indicating

	// Mouse cell center in Q32.32 against the avatar's precise position
	mx, my := vmath.CenteredFromGrid(s.shared.Input.MouseX, s.shared.Input.MouseY)
	dx := mx - kin.PreciseX
	dy := vmath.Mul(my-kin.PreciseY, s.shared.Aspect)

	nx, ny := vmath.Normalize2D(dx, dy)
	if nx == 0 && ny == 0 {
		// Pointer on the avatar: keep the previous direction
		return
	}
	aim.DirX = nx
	aim.DirY = ny
}

func (s *AimSystem) Finalize(_ *ecs.World) {}
