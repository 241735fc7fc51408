package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/vmath"
)

func TestBulletFliesOneCellPerTick(t *testing.T) {
	world, shared := newTestWorld(123)

	bullets := NewBulletSystem(shared)
	bullets.Initialize(world)

	entity := spawnTestBullet(world, components.SourcePlayer, 10, 16, vmath.Scale, 0)
	kinMap := ecs.NewMap2[components.Kinetic, components.Bullet](world)
	kin, _ := kinMap.Get(entity)
	startX := kin.PreciseX

	for i := 0; i < 10; i++ {
		bullets.Update(world)
	}

	kin, bullet := kinMap.Get(entity)
	// 60 cells/sec at 60 ticks/sec
	if !approxEqual(kin.PreciseX-startX, vmath.FromInt(10), 0.01) {
		t.Errorf("Bullet flew %.3f cells in 10 ticks, want 10",
			vmath.ToFloat(kin.PreciseX-startX))
	}
	if !approxEqual(bullet.Traveled, vmath.FromInt(10), 0.01) {
		t.Errorf("Traveled %.3f, want 10", vmath.ToFloat(bullet.Traveled))
	}
}

func TestBulletVerticalFlightHalvesRows(t *testing.T) {
	world, shared := newTestWorld(123)

	bullets := NewBulletSystem(shared)
	bullets.Initialize(world)

	entity := spawnTestBullet(world, components.SourcePlayer, 40, 5, 0, vmath.Scale)
	kinMap := ecs.NewMap2[components.Kinetic, components.Bullet](world)
	kin, _ := kinMap.Get(entity)
	startY := kin.PreciseY

	for i := 0; i < 10; i++ {
		bullets.Update(world)
	}

	kin, bullet := kinMap.Get(entity)
	// Ten visual cells downward cover five rows at aspect 2
	if !approxEqual(kin.PreciseY-startY, vmath.FromInt(5), 0.01) {
		t.Errorf("Bullet dropped %.3f rows in 10 ticks, want 5",
			vmath.ToFloat(kin.PreciseY-startY))
	}
	if !approxEqual(bullet.Traveled, vmath.FromInt(10), 0.01) {
		t.Errorf("Traveled %.3f visual cells, want 10", vmath.ToFloat(bullet.Traveled))
	}
}

func TestBulletRidesPlayerFrame(t *testing.T) {
	world, shared := newTestWorld(123)

	bullets := NewBulletSystem(shared)
	bullets.Initialize(world)

	entity := spawnTestBullet(world, components.SourceEnemy, 40, 16, vmath.Scale, 0)
	kinMap := ecs.NewMap2[components.Kinetic, components.Bullet](world)
	kin, _ := kinMap.Get(entity)
	startX, startY := kin.PreciseX, kin.PreciseY

	// Avatar dodged two cells right and one row up this tick
	shared.PlayerDeltaX = vmath.FromInt(2)
	shared.PlayerDeltaY = vmath.FromInt(-1)
	bullets.Update(world)

	kin, bullet := kinMap.Get(entity)
	if !approxEqual(kin.PreciseX-startX, vmath.FromInt(3), 0.01) {
		t.Errorf("Bullet x advance %.3f, want dodge plus own step = 3",
			vmath.ToFloat(kin.PreciseX-startX))
	}
	if kin.PreciseY-startY != vmath.FromInt(-1) {
		t.Errorf("Bullet y shift %.3f, want the dodge's -1",
			vmath.ToFloat(kin.PreciseY-startY))
	}
	// Only the bullet's own motion counts toward the range
	if !approxEqual(bullet.Traveled, vmath.FromInt(1), 0.01) {
		t.Errorf("Traveled %.3f after one tick, want 1", vmath.ToFloat(bullet.Traveled))
	}
}

func TestBulletSpentAtMaxDistance(t *testing.T) {
	world, shared := newTestWorld(123)

	bullets := NewBulletSystem(shared)
	bullets.Initialize(world)

	// Fly within the field the whole way: 30 cells from x=20
	entity := spawnTestBullet(world, components.SourcePlayer, 20, 16, vmath.Scale, 0)
	spentMap := ecs.NewMap1[components.Spent](world)

	// Each step truncates a hair below one cell, so the range boundary
	// falls on the 31st tick, not the 30th
	for i := 0; i < 30; i++ {
		bullets.Update(world)
	}
	if spentMap.HasAll(entity) {
		t.Fatal("Bullet spent before covering its range")
	}

	bullets.Update(world)
	if !spentMap.HasAll(entity) {
		t.Fatal("Bullet not spent after covering its range")
	}

	// Spent bullets are frozen for the cull pass, not moved again
	kinMap := ecs.NewMap2[components.Kinetic, components.Bullet](world)
	kin, _ := kinMap.Get(entity)
	frozenX := kin.PreciseX
	bullets.Update(world)
	kin, _ = kinMap.Get(entity)
	if kin.PreciseX != frozenX {
		t.Error("Spent bullet kept flying")
	}
}

func TestBulletSpentLeavingField(t *testing.T) {
	world, shared := newTestWorld(123)

	bullets := NewBulletSystem(shared)
	bullets.Initialize(world)

	entity := spawnTestBullet(world, components.SourceEnemy, 2, 16, -vmath.Scale, 0)
	spentMap := ecs.NewMap1[components.Spent](world)

	spentAfter := 0
	for i := 1; i <= 10; i++ {
		bullets.Update(world)
		if spentMap.HasAll(entity) {
			spentAfter = i
			break
		}
	}

	if spentAfter == 0 {
		t.Fatal("Bullet flying off the field never expired")
	}
	if spentAfter > 6 {
		t.Errorf("Bullet expired after %d ticks, expected within the edge grace band", spentAfter)
	}
}

func TestBulletFrozenWhilePaused(t *testing.T) {
	world, shared := newTestWorld(123)

	bullets := NewBulletSystem(shared)
	bullets.Initialize(world)

	entity := spawnTestBullet(world, components.SourcePlayer, 10, 16, vmath.Scale, 0)
	kinMap := ecs.NewMap2[components.Kinetic, components.Bullet](world)
	kin, _ := kinMap.Get(entity)
	startX := kin.PreciseX

	shared.Paused = true
	for i := 0; i < 20; i++ {
		bullets.Update(world)
	}

	kin, _ = kinMap.Get(entity)
	if kin.PreciseX != startX {
		t.Error("Paused update moved a bullet")
	}
}

func TestCullRemovesSpentBullets(t *testing.T) {
	world, _ := newTestWorld(123)

	cull := NewCullSystem()
	cull.Initialize(world)

	live := spawnTestBullet(world, components.SourcePlayer, 10, 10, vmath.Scale, 0)
	doomed := spawnTestBullet(world, components.SourcePlayer, 20, 10, vmath.Scale, 0)
	ecs.NewMap1[components.Spent](world).Add(doomed, &components.Spent{})

	cull.Update(world)

	if !world.Alive(live) {
		t.Error("Cull destroyed a live bullet")
	}
	if world.Alive(doomed) {
		t.Error("Cull left a spent bullet alive")
	}
	if got := countBullets(world); got != 1 {
		t.Errorf("%d bullets after cull, want 1", got)
	}
}
