package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/vmath"
)

// BulletSystem advances every live bullet and tags exhausted ones as
// spent. Bullets ride along with the avatar's applied movement before
// flying their own step, so dodging shifts the whole projectile field
// around the player; the traveled distance counts only the bullet's own
// motion, which keeps the range a player-relative measure.
type BulletSystem struct {
	shared *engine.Shared

	filter   *ecs.Filter2[components.Kinetic, components.Bullet]
	spentMap *ecs.Map1[components.Spent]

	exhausted []ecs.Entity

	// step is visual distance flown per tick (Q32.32)
	step int64
}

// NewBulletSystem creates the projectile integrator
func NewBulletSystem(shared *engine.Shared) *BulletSystem {
	return &BulletSystem{shared: shared}
}

func (s *BulletSystem) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter2[components.Kinetic, components.Bullet](w).
		Without(ecs.C[components.Spent]())
	s.filter.Register()
	s.spentMap = ecs.NewMap1[components.Spent](w)

	dt := vmath.Div(vmath.Scale, vmath.FromInt(parameter.TicksPerSecond))
	s.step = vmath.Mul(vmath.FromFloat(parameter.BulletSpeedFloat), dt)
}

func (s *BulletSystem) Update(_ *ecs.World) {
	if s.shared.Paused {
		return
	}

	field := s.shared.Field()
	loX := vmath.FromInt(field.X) - bulletMarginX
	hiX := vmath.FromInt(field.Right()) + bulletMarginX
	loY := vmath.FromInt(field.Y) - bulletMarginY
	hiY := vmath.FromInt(field.Bottom()) + bulletMarginY

	s.exhausted = s.exhausted[:0]

	query := s.filter.Query()
	for query.Next() {
		kin, bullet := query.Get()

		// Carried by the avatar's frame of reference
		kin.PreciseX += s.shared.PlayerDeltaX
		kin.PreciseY += s.shared.PlayerDeltaY

		kin.PreciseX += vmath.Mul(bullet.DirX, s.step)
		kin.PreciseY += vmath.Div(vmath.Mul(bullet.DirY, s.step), s.shared.Aspect)
		bullet.Traveled += s.step

		if bullet.Traveled >= bullet.MaxDistance {
			s.exhausted = append(s.exhausted, query.Entity())
			continue
		}
		if kin.PreciseX < loX || kin.PreciseX > hiX ||
			kin.PreciseY < loY || kin.PreciseY > hiY {
			s.exhausted = append(s.exhausted, query.Entity())
		}
	}

	for _, entity := range s.exhausted {
		s.spentMap.Add(entity, &components.Spent{})
	}
}

func (s *BulletSystem) Finalize(_ *ecs.World) {}

// Bullets get a small grace band past the field edge before expiring,
// matching their drawn extent.
var (
	bulletMarginX = vmath.FromInt(2)
	bulletMarginY = vmath.FromInt(1)
)
