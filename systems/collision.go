package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/physics"
)

// CollisionSystem tests bullets against the opposing body and applies
// the consequences: hit feedback on the avatar, damage and destruction
// on the enemy. Bullets never hurt their own shooter. A bullet is spent
// on hit; the cull pass removes it at the end of the tick.
type CollisionSystem struct {
	shared *engine.Shared

	bulletFilter *ecs.Filter2[components.Kinetic, components.Bullet]
	spriteFilter *ecs.Filter1[components.Sprite]

	kinBodyMap *ecs.Map2[components.Kinetic, components.Body]
	healthMap  *ecs.Map1[components.Health]
	spriteMap  *ecs.Map1[components.Sprite]
	spentMap   *ecs.Map1[components.Spent]

	spent []ecs.Entity
}

// NewCollisionSystem creates the hit resolution system
func NewCollisionSystem(shared *engine.Shared) *CollisionSystem {
	return &CollisionSystem{shared: shared}
}

func (s *CollisionSystem) Initialize(w *ecs.World) {
	s.bulletFilter = ecs.NewFilter2[components.Kinetic, components.Bullet](w).
		Without(ecs.C[components.Spent]())
	s.bulletFilter.Register()
	s.spriteFilter = ecs.NewFilter1[components.Sprite](w)
	s.spriteFilter.Register()

	s.kinBodyMap = ecs.NewMap2[components.Kinetic, components.Body](w)
	s.healthMap = ecs.NewMap1[components.Health](w)
	s.spriteMap = ecs.NewMap1[components.Sprite](w)
	s.spentMap = ecs.NewMap1[components.Spent](w)
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s.shared.Paused {
		return
	}

	s.tickFlashes()

	playerAlive := w.Alive(s.shared.Player)
	enemyAlive := w.Alive(s.shared.Enemy)
	if !playerAlive && !enemyAlive {
		return
	}

	var playerHits, enemyHits int
	s.spent = s.spent[:0]

	query := s.bulletFilter.Query()
	for query.Next() {
		kin, bullet := query.Get()

		switch bullet.Source {
		case components.SourceEnemy:
			if !playerAlive {
				continue
			}
			pk, pb := s.kinBodyMap.Get(s.shared.Player)
			if physics.HitTest(kin.PreciseX, kin.PreciseY, &pk.Kinetic, pb.Body, s.shared.Aspect) {
				playerHits++
				s.spent = append(s.spent, query.Entity())
			}
		case components.SourcePlayer:
			if !enemyAlive {
				continue
			}
			ek, eb := s.kinBodyMap.Get(s.shared.Enemy)
			if physics.HitTest(kin.PreciseX, kin.PreciseY, &ek.Kinetic, eb.Body, s.shared.Aspect) {
				enemyHits++
				s.spent = append(s.spent, query.Entity())
			}
		}
	}

	for _, entity := range s.spent {
		s.spentMap.Add(entity, &components.Spent{})
	}

	if playerHits > 0 {
		s.applyPlayerHits(playerHits)
	}
	if enemyHits > 0 {
		s.applyEnemyHits(w, enemyHits)
	}
}

func (s *CollisionSystem) Finalize(_ *ecs.World) {}

// tickFlashes runs before new hits land so a fresh flash keeps its full
// duration.
func (s *CollisionSystem) tickFlashes() {
	query := s.spriteFilter.Query()
	for query.Next() {
		sprite := query.Get()
		if sprite.FlashTicks > 0 {
			sprite.FlashTicks--
		}
	}
}

func (s *CollisionSystem) applyPlayerHits(hits int) {
	sprite := s.spriteMap.Get(s.shared.Player)
	sprite.FlashTicks = parameter.HitFlashTicks

	for i := 0; i < hits; i++ {
		s.shared.Session.HitsTaken++
		s.shared.Events.Push(engine.GameEvent{
			Type:   engine.EventPlayerHit,
			Tick:   s.shared.Tick,
			Source: uint8(components.SourceEnemy),
		})
	}
}

func (s *CollisionSystem) applyEnemyHits(w *ecs.World, hits int) {
	enemy := s.shared.Enemy
	health := s.healthMap.Get(enemy)
	health.Current -= hits * parameter.BulletDamage
	if health.Current < 0 {
		health.Current = 0
	}

	sprite := s.spriteMap.Get(enemy)
	sprite.FlashTicks = parameter.HitFlashTicks

	for i := 0; i < hits; i++ {
		s.shared.Session.HitsDealt++
		s.shared.Events.Push(engine.GameEvent{
			Type:   engine.EventEnemyHit,
			Tick:   s.shared.Tick,
			Source: uint8(components.SourcePlayer),
			Damage: parameter.BulletDamage,
		})
	}

	if health.Current <= 0 {
		s.destroyEnemy(w)
	}
}

func (s *CollisionSystem) destroyEnemy(w *ecs.World) {
	w.RemoveEntity(s.shared.Enemy)
	s.shared.Enemy = ecs.Entity{}
	s.shared.RespawnAtTick = s.shared.Tick + parameter.EnemyRespawnDelayTicks

	s.shared.Session.EnemiesDestroyed++
	s.shared.Events.Push(engine.GameEvent{
		Type: engine.EventEnemyDestroyed,
		Tick: s.shared.Tick,
	})
	engine.Log.Infow("enemy destroyed", "tick", s.shared.Tick,
		"respawnTick", s.shared.RespawnAtTick)
}
