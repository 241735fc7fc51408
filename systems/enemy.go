package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/physics"
	"dodgetrainer/vmath"
)

// EnemyAISystem runs the opponent: it chases until the avatar sits
// inside attack range minus both body extents, holds position there, and
// opens fire whenever the attack cooldown has lapsed and a full clip
// slot is charged. Spawning belongs to the respawn system.
type EnemyAISystem struct {
	shared *engine.Shared

	kinBodyMap *ecs.Map2[components.Kinetic, components.Body]
	aimMap     *ecs.Map1[components.Aim]
	clipMap    *ecs.Map1[components.AmmoClip]
	aiMap      *ecs.Map1[components.EnemyAI]
	burstMap   *ecs.Map1[components.Burst]

	plan        burstPlan
	attackRange int64
	dt          int64
}

// NewEnemyAISystem creates the opponent controller
func NewEnemyAISystem(shared *engine.Shared) *EnemyAISystem {
	return &EnemyAISystem{shared: shared}
}

func (s *EnemyAISystem) Initialize(w *ecs.World) {
	s.kinBodyMap = ecs.NewMap2[components.Kinetic, components.Body](w)
	s.aimMap = ecs.NewMap1[components.Aim](w)
	s.clipMap = ecs.NewMap1[components.AmmoClip](w)
	s.aiMap = ecs.NewMap1[components.EnemyAI](w)
	s.burstMap = ecs.NewMap1[components.Burst](w)

	s.plan = burstPlan{
		count:   parameter.EnemyBurstCount,
		stagger: parameter.EnemyBurstStaggerTicks,
		spread:  s.shared.EnemySpread,
	}
	s.attackRange = vmath.FromFloat(parameter.EnemyAttackRangeFloat)
	s.dt = vmath.Div(vmath.Scale, vmath.FromInt(parameter.TicksPerSecond))
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if s.shared.Paused || !s.shared.EnemyEnabled {
		return
	}
	if !w.Alive(s.shared.Enemy) || !w.Alive(s.shared.Player) {
		return
	}

	enemy := s.shared.Enemy
	ai := s.aiMap.Get(enemy)
	if ai.CooldownTicks > 0 {
		ai.CooldownTicks--
	}

	kin, body := s.kinBodyMap.Get(enemy)
	pkin, pbody := s.kinBodyMap.Get(s.shared.Player)

	// Track the avatar continuously; directions live in visual space
	aim := s.aimMap.Get(enemy)
	dx := pkin.PreciseX - kin.PreciseX
	dyVis := vmath.Mul(pkin.PreciseY-kin.PreciseY, s.shared.Aspect)
	if nx, ny := vmath.Normalize2D(dx, dyVis); nx != 0 || ny != 0 {
		aim.DirX, aim.DirY = nx, ny
	}

	// Close until the gap between body surfaces fits the attack range
	stopRange := s.attackRange - body.RadiusX - pbody.RadiusX
	inRange := physics.WithinRange(kin.PreciseX, kin.PreciseY,
		pkin.PreciseX, pkin.PreciseY, stopRange, s.shared.Aspect)

	if inRange {
		physics.Stop(&kin.Kinetic)
	} else {
		physics.SetVelocity(&kin.Kinetic,
			vmath.Mul(aim.DirX, s.shared.EnemySpeed),
			vmath.Div(vmath.Mul(aim.DirY, s.shared.EnemySpeed), s.shared.Aspect))
		physics.Integrate(&kin.Kinetic, s.dt)
		physics.ClampToArea(&kin.Kinetic, body.Body, s.shared.Field())
	}

	if inRange && ai.CooldownTicks <= 0 && !s.burstMap.HasAll(enemy) {
		s.startBurst(enemy)
	}
}

func (s *EnemyAISystem) Finalize(_ *ecs.World) {}

func (s *EnemyAISystem) startBurst(enemy ecs.Entity) {
	clip := s.clipMap.Get(enemy)
	if !clip.CanFire() || !clip.Consume() {
		return
	}

	aim := s.aimMap.Get(enemy)
	burst := buildBurst(aim.DirX, aim.DirY, s.plan, s.shared.Tick, s.shared.Aspect, s.shared.Rand)
	s.burstMap.Add(enemy, &burst)

	ai := s.aiMap.Get(enemy)
	ai.CooldownTicks = parameter.EnemyAttackCooldownTicks
}
