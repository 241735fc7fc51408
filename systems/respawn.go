package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/core"
	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/physics"
	"dodgetrainer/vmath"
)

// spawnAttempts bounds the rejection sampling for a spawn point clear of
// the avatar. Cramped arenas fall back to the farthest candidate seen.
const spawnAttempts = 12

// RespawnSystem owns the opponent's lifecycle: it places the first enemy
// at startup and brings a replacement into the field once the respawn
// delay after a destruction has elapsed. Placement prefers positions at
// least the spawn margin away from the avatar so a session never resumes
// with bullets already on top of the player.
type RespawnSystem struct {
	shared *engine.Shared

	kinBodyMap *ecs.Map2[components.Kinetic, components.Body]
	healthMap  *ecs.Map1[components.Health]
	clipMap    *ecs.Map1[components.AmmoClip]
	aimMap     *ecs.Map1[components.Aim]
	aiMap      *ecs.Map1[components.EnemyAI]
	spriteMap  *ecs.Map1[components.Sprite]

	spawnMargin int64
}

// NewRespawnSystem creates the opponent lifecycle manager
func NewRespawnSystem(shared *engine.Shared) *RespawnSystem {
	return &RespawnSystem{shared: shared}
}

func (s *RespawnSystem) Initialize(w *ecs.World) {
	s.kinBodyMap = ecs.NewMap2[components.Kinetic, components.Body](w)
	s.healthMap = ecs.NewMap1[components.Health](w)
	s.clipMap = ecs.NewMap1[components.AmmoClip](w)
	s.aimMap = ecs.NewMap1[components.Aim](w)
	s.aiMap = ecs.NewMap1[components.EnemyAI](w)
	s.spriteMap = ecs.NewMap1[components.Sprite](w)

	s.spawnMargin = vmath.FromFloat(parameter.EnemySpawnMarginFloat)

	if s.shared.EnemyEnabled {
		s.spawn(w)
	}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if s.shared.Paused || !s.shared.EnemyEnabled {
		return
	}
	if w.Alive(s.shared.Enemy) {
		return
	}
	if s.shared.Tick >= s.shared.RespawnAtTick {
		s.spawn(w)
	}
}

func (s *RespawnSystem) Finalize(_ *ecs.World) {}

// spawn places a fresh enemy with full health and clip at a sampled
// field position and publishes the entity handle on Shared.
func (s *RespawnSystem) spawn(w *ecs.World) {
	field := s.shared.Field()
	body := components.Body{Body: core.NewBody(parameter.EnemyRadiusXFloat, parameter.EnemyRadiusYFloat)}

	var px, py int64
	avatarAlive := w.Alive(s.shared.Player)
	if avatarAlive {
		pkin, _ := s.kinBodyMap.Get(s.shared.Player)
		px, py = pkin.PreciseX, pkin.PreciseY
	}

	kin := components.Kinetic{}
	bestX, bestY, bestDistSq := int64(0), int64(0), int64(-1)
	for i := 0; i < spawnAttempts; i++ {
		x, y := s.randomFieldPoint(field)
		kin.PreciseX, kin.PreciseY = x, y
		physics.ClampToArea(&kin.Kinetic, body.Body, field)

		if !avatarAlive {
			break
		}
		distSq := physics.AspectDistanceSq(kin.PreciseX-px, kin.PreciseY-py, s.shared.Aspect)
		if distSq >= vmath.Mul(s.spawnMargin, s.spawnMargin) {
			break
		}
		if distSq > bestDistSq {
			bestX, bestY, bestDistSq = kin.PreciseX, kin.PreciseY, distSq
		}
		if i == spawnAttempts-1 {
			kin.PreciseX, kin.PreciseY = bestX, bestY
		}
	}

	entity := s.kinBodyMap.NewEntity(&kin, &body)
	s.healthMap.Add(entity, &components.Health{
		Current: parameter.EnemyMaxHealth,
		Max:     parameter.EnemyMaxHealth,
	})
	clip := components.NewFullClip()
	s.clipMap.Add(entity, &clip)
	s.aimMap.Add(entity, &components.Aim{DirX: -vmath.Scale})
	s.aiMap.Add(entity, &components.EnemyAI{})
	s.spriteMap.Add(entity, &components.Sprite{
		Rune:       parameter.EnemyChar,
		Color:      parameter.EnemyColor,
		FlashColor: parameter.EnemyHitColor,
	})

	s.shared.Enemy = entity
	engine.Log.Infow("enemy spawned",
		"tick", s.shared.Tick,
		"x", vmath.ToFloat(kin.PreciseX),
		"y", vmath.ToFloat(kin.PreciseY))
}

func (s *RespawnSystem) randomFieldPoint(field core.Area) (int64, int64) {
	x := vmath.FromInt(field.X) + vmath.Mul(vmath.FromInt(field.Width), s.shared.Rand.Fixed())
	y := vmath.FromInt(field.Y) + vmath.Mul(vmath.FromInt(field.Height), s.shared.Rand.Fixed())
	return x, y
}
