package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/vmath"
)

// burstPlan parameterizes one firing sequence
type burstPlan struct {
	count   int
	stagger uint64 // ticks between same-column pairs
	spread  int64  // aim perturbation magnitude (Q32.32)
}

// buildBurst schedules count shots in two staggered columns. Shots
// alternate columns; each pair fires one stagger interval after the
// previous, with the right column trailing by half the interval. Spread
// perturbs each direction component before renormalizing.
func buildBurst(aimX, aimY int64, plan burstPlan, tick uint64, aspect int64, rng *vmath.FastRand) components.Burst {
	var burst components.Burst
	if plan.count > components.MaxBurstShots {
		plan.count = components.MaxBurstShots
	}

	// Column offsets sit perpendicular to the aim in visual space
	perpX, perpY := vmath.Perpendicular(aimX, aimY)
	halfGap := vmath.FromFloat(parameter.BulletColumnGapFloat / 2)

	for i := 0; i < plan.count; i++ {
		dirX, dirY := aimX, aimY
		if plan.spread > 0 {
			dirX += rng.Sym(plan.spread)
			dirY += rng.Sym(plan.spread)
			nx, ny := vmath.Normalize2D(dirX, dirY)
			if nx != 0 || ny != 0 {
				dirX, dirY = nx, ny
			} else {
				dirX, dirY = aimX, aimY
			}
		}

		offset := halfGap
		leftColumn := i%2 == 0
		if leftColumn {
			offset = -halfGap
		}

		delay := plan.stagger * uint64(i/2)
		if !leftColumn {
			delay += plan.stagger / 2
		}

		burst.Shots[i] = components.PendingShot{
			DirX: dirX,
			DirY: dirY,
			// Perpendicular offset converts back to cell coordinates
			OffX:     vmath.Mul(perpX, offset),
			OffY:     vmath.Div(vmath.Mul(perpY, offset), aspect),
			FireTick: tick + delay,
		}
	}
	burst.Count = plan.count
	return burst
}

// FireSystem starts the avatar's bursts and spawns scheduled shots for
// every shooter. A burst starts only with a full clip slot available;
// denied requests emit an empty-clip event. Starting consumes one
// segment of charge and suspends recharge until the last shot leaves.
type FireSystem struct {
	shared *engine.Shared

	clipMap   *ecs.Map1[components.AmmoClip]
	aimMap    *ecs.Map1[components.Aim]
	kinMap    *ecs.Map1[components.Kinetic]
	burstMap  *ecs.Map1[components.Burst]
	bulletMap *ecs.Map2[components.Kinetic, components.Bullet]

	burstFilter *ecs.Filter2[components.Burst, components.Kinetic]

	// spawn buffer reused across ticks; ark worlds lock during queries
	due []spawnRequest

	maxDistance int64
	playerPlan  burstPlan
}

type spawnRequest struct {
	x, y       int64
	dirX, dirY int64
	source     components.BulletSource
}

// NewFireSystem creates the burst sequencer
func NewFireSystem(shared *engine.Shared) *FireSystem {
	return &FireSystem{shared: shared}
}

func (s *FireSystem) Initialize(w *ecs.World) {
	s.clipMap = ecs.NewMap1[components.AmmoClip](w)
	s.aimMap = ecs.NewMap1[components.Aim](w)
	s.kinMap = ecs.NewMap1[components.Kinetic](w)
	s.burstMap = ecs.NewMap1[components.Burst](w)
	s.bulletMap = ecs.NewMap2[components.Kinetic, components.Bullet](w)

	s.burstFilter = ecs.NewFilter2[components.Burst, components.Kinetic](w)
	s.burstFilter.Register()

	s.maxDistance = vmath.FromFloat(parameter.BulletMaxDistanceFloat)
	s.playerPlan = burstPlan{
		count:   parameter.PlayerBurstCount,
		stagger: parameter.PlayerBurstStaggerTicks,
		spread:  vmath.FromFloat(parameter.PlayerSpreadFloat),
	}
}

func (s *FireSystem) Update(w *ecs.World) {
	fireRequested := s.shared.Input.FireRequested
	s.shared.Input.FireRequested = false

	if s.shared.Paused {
		return
	}

	if fireRequested && w.Alive(s.shared.Player) {
		s.startPlayerBurst()
	}

	s.spawnDueShots(w)
}

func (s *FireSystem) Finalize(_ *ecs.World) {}

func (s *FireSystem) startPlayerBurst() {
	player := s.shared.Player

	// One burst in flight at a time
	if s.burstMap.HasAll(player) {
		return
	}

	clip := s.clipMap.Get(player)
	if !clip.CanFire() || !clip.Consume() {
		s.shared.Session.EmptyClips++
		s.shared.Events.Push(engine.GameEvent{
			Type: engine.EventEmptyClip,
			Tick: s.shared.Tick,
		})
		return
	}

	aim := s.aimMap.Get(player)
	burst := buildBurst(aim.DirX, aim.DirY, s.playerPlan, s.shared.Tick, s.shared.Aspect, s.shared.Rand)
	s.burstMap.Add(player, &burst)
	s.shared.Session.BurstsFired++
	engine.Log.Debugw("burst started", "tick", s.shared.Tick, "shots", burst.Count)
}

// spawnDueShots walks every active burst, spawns shots whose tick has
// come, and removes finished bursts (resuming recharge).
func (s *FireSystem) spawnDueShots(w *ecs.World) {
	s.due = s.due[:0]
	var finished []ecs.Entity

	query := s.burstFilter.Query()
	for query.Next() {
		burst, kin := query.Get()
		entity := query.Entity()

		for !burst.Done() && burst.Shots[burst.Next].FireTick <= s.shared.Tick {
			shot := burst.Shots[burst.Next]
			burst.Next++

			source := components.SourcePlayer
			if entity != s.shared.Player {
				source = components.SourceEnemy
			}
			s.due = append(s.due, spawnRequest{
				x:      kin.PreciseX + shot.OffX,
				y:      kin.PreciseY + shot.OffY,
				dirX:   shot.DirX,
				dirY:   shot.DirY,
				source: source,
			})
		}

		if burst.Done() {
			finished = append(finished, entity)
		}
	}

	for _, req := range s.due {
		s.spawnBullet(req)
	}
	for _, entity := range finished {
		s.burstMap.Remove(entity)
	}
}

func (s *FireSystem) spawnBullet(req spawnRequest) {
	kin := components.Kinetic{}
	kin.PreciseX = req.x
	kin.PreciseY = req.y
	bullet := components.Bullet{
		Source:      req.source,
		DirX:        req.dirX,
		DirY:        req.dirY,
		MaxDistance: s.maxDistance,
	}
	s.bulletMap.NewEntity(&kin, &bullet)

	if req.source == components.SourcePlayer {
		s.shared.Session.ShotsFired++
	}
	s.shared.Events.Push(engine.GameEvent{
		Type:   engine.EventShotFired,
		Tick:   s.shared.Tick,
		Source: uint8(req.source),
	})
}
