package systems

import (
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/core"
	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/vmath"
)

// newTestWorld builds a world and shared state with an 80x30 field and
// a deterministic random sequence. The enemy stays disabled so tests
// place opponents explicitly.
func newTestWorld(seed uint64) (*ecs.World, *engine.Shared) {
	tool := app.New(1024).Seed(seed)

	shared := &engine.Shared{
		Arena:           core.Area{X: 0, Y: 0, Width: 82, Height: 32},
		ScreenW:         82,
		ScreenH:         34,
		Events:          engine.NewEventQueue(),
		Session:         engine.NewSession(),
		Rand:            vmath.NewFastRand(seed),
		Aspect:          vmath.FromFloat(parameter.CellAspectFloat),
		PlayerSpeed:     vmath.FromFloat(parameter.PlayerSpeedFloat),
		EnemySpeed:      vmath.FromFloat(parameter.EnemySpeedFloat),
		EnemySpread:     0,
		HoldWindowTicks: 12,
		KeyUp:           'w',
		KeyDown:         's',
		KeyLeft:         'a',
		KeyRight:        'd',
	}
	return &tool.World, shared
}

// spawnTestEnemy places an opponent at grid cell (x, y) with full
// health and clip, bypassing the AI system's random placement.
func spawnTestEnemy(w *ecs.World, shared *engine.Shared, x, y int) ecs.Entity {
	kin := components.Kinetic{}
	kin.PreciseX, kin.PreciseY = vmath.CenteredFromGrid(x, y)
	body := components.Body{Body: core.NewBody(parameter.EnemyRadiusXFloat, parameter.EnemyRadiusYFloat)}

	entity := ecs.NewMap2[components.Kinetic, components.Body](w).NewEntity(&kin, &body)
	ecs.NewMap1[components.Health](w).Add(entity, &components.Health{
		Current: parameter.EnemyMaxHealth,
		Max:     parameter.EnemyMaxHealth,
	})
	clip := components.NewFullClip()
	ecs.NewMap1[components.AmmoClip](w).Add(entity, &clip)
	ecs.NewMap1[components.Aim](w).Add(entity, &components.Aim{DirX: -vmath.Scale})
	ecs.NewMap1[components.EnemyAI](w).Add(entity, &components.EnemyAI{})
	ecs.NewMap1[components.Sprite](w).Add(entity, &components.Sprite{
		Rune:       parameter.EnemyChar,
		Color:      parameter.EnemyColor,
		FlashColor: parameter.EnemyHitColor,
	})

	shared.Enemy = entity
	return entity
}

// spawnTestBullet creates a projectile at grid cell (x, y) flying in
// visual direction (dirX, dirY), already normalized by the caller.
func spawnTestBullet(w *ecs.World, source components.BulletSource, x, y int, dirX, dirY int64) ecs.Entity {
	kin := components.Kinetic{}
	kin.PreciseX, kin.PreciseY = vmath.CenteredFromGrid(x, y)
	bullet := components.Bullet{
		Source:      source,
		DirX:        dirX,
		DirY:        dirY,
		MaxDistance: vmath.FromFloat(parameter.BulletMaxDistanceFloat),
	}
	return ecs.NewMap2[components.Kinetic, components.Bullet](w).NewEntity(&kin, &bullet)
}

// playerKineticBody fetches the avatar's kinetic and body components
func playerKineticBody(w *ecs.World, shared *engine.Shared) (*components.Kinetic, *components.Body) {
	return ecs.NewMap2[components.Kinetic, components.Body](w).Get(shared.Player)
}

// countBullets returns live projectile entities
func countBullets(w *ecs.World) int {
	filter := ecs.NewFilter1[components.Bullet](w)
	count := 0
	query := filter.Query()
	for query.Next() {
		count++
	}
	return count
}

// approxEqual allows quantization slack from repeated fixed-point steps
func approxEqual(a, b int64, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return vmath.ToFloat(diff) <= tolerance
}
