package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/engine"
	"dodgetrainer/vmath"
)

func TestFireBurstSpawnsTwelveStaggeredShots(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)

	fire := NewFireSystem(shared)
	fire.Initialize(world)

	shared.Tick = 10
	shared.Input.FireRequested = true
	fire.Update(world)

	if got := countBullets(world); got != 1 {
		t.Fatalf("Expected the first shot on the request tick, got %d bullets", got)
	}
	if shared.Session.BurstsFired != 1 {
		t.Errorf("BurstsFired = %d, want 1", shared.Session.BurstsFired)
	}

	// Left column fires every stagger interval, right column trails by
	// half of it: offsets 0,2,5,7,...,27 from the start tick.
	wantAt := map[uint64]int{11: 1, 12: 2, 14: 2, 15: 3, 17: 4, 20: 5, 37: 12}
	for tick := uint64(11); tick <= 40; tick++ {
		shared.Tick = tick
		fire.Update(world)
		if want, ok := wantAt[tick]; ok {
			if got := countBullets(world); got != want {
				t.Errorf("Tick %d: %d bullets, want %d", tick, got, want)
			}
		}
	}

	if got := countBullets(world); got != 12 {
		t.Errorf("Finished burst produced %d bullets, want 12", got)
	}
	if shared.Session.ShotsFired != 12 {
		t.Errorf("ShotsFired = %d, want 12", shared.Session.ShotsFired)
	}
	if ecs.NewMap1[components.Burst](world).HasAll(shared.Player) {
		t.Error("Burst component survived past its last shot")
	}
}

func TestFireColumnsStraddleAimLine(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)

	fire := NewFireSystem(shared)
	fire.Initialize(world)

	kin, _ := playerKineticBody(world, shared)
	px, py := kin.PreciseX, kin.PreciseY

	// Aim is +X from spawn; columns offset vertically on screen
	shared.Tick = 1
	shared.Input.FireRequested = true
	for tick := uint64(1); tick <= 28; tick++ {
		shared.Tick = tick
		fire.Update(world)
		shared.Input.FireRequested = false
	}

	// Half the column gap is 0.75 visual cells, 0.375 rows after aspect
	wantOff := vmath.FromFloat(0.375)
	var above, below int

	filter := ecs.NewFilter2[components.Kinetic, components.Bullet](world)
	query := filter.Query()
	for query.Next() {
		bkin, bullet := query.Get()
		if bullet.DirX != vmath.Scale || bullet.DirY != 0 {
			t.Errorf("Bullet direction (%.3f, %.3f), want (1, 0)",
				vmath.ToFloat(bullet.DirX), vmath.ToFloat(bullet.DirY))
		}
		if bkin.PreciseX != px {
			t.Errorf("Bullet x off the aim line by %.3f cells",
				vmath.ToFloat(bkin.PreciseX-px))
		}
		switch bkin.PreciseY - py {
		case -wantOff:
			above++
		case wantOff:
			below++
		default:
			t.Errorf("Bullet y offset %.3f rows, want ±0.375",
				vmath.ToFloat(bkin.PreciseY-py))
		}
	}

	if above != 6 || below != 6 {
		t.Errorf("Column split %d/%d, want 6 above and 6 below", above, below)
	}
}

func TestFireSecondRequestIgnoredWhileBurstActive(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)

	fire := NewFireSystem(shared)
	fire.Initialize(world)

	shared.Tick = 1
	shared.Input.FireRequested = true
	fire.Update(world)

	// A second request mid-burst neither stacks nor counts as denied
	shared.Tick = 2
	shared.Input.FireRequested = true
	fire.Update(world)

	if shared.Session.BurstsFired != 1 {
		t.Errorf("BurstsFired = %d after mid-burst request, want 1", shared.Session.BurstsFired)
	}
	if shared.Session.EmptyClips != 0 {
		t.Errorf("EmptyClips = %d after mid-burst request, want 0", shared.Session.EmptyClips)
	}

	// Once the burst completes a new request starts the next one
	for tick := uint64(3); tick <= 30; tick++ {
		shared.Tick = tick
		fire.Update(world)
	}
	shared.Tick = 31
	shared.Input.FireRequested = true
	fire.Update(world)

	if shared.Session.BurstsFired != 2 {
		t.Errorf("BurstsFired = %d after burst ended, want 2", shared.Session.BurstsFired)
	}
}

func TestFireEmptyClipDenied(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)

	fire := NewFireSystem(shared)
	fire.Initialize(world)

	clipMap := ecs.NewMap1[components.AmmoClip](world)
	clipMap.Get(shared.Player).Slots = [3]int64{
		vmath.FromFloat(0.4), vmath.FromFloat(0.4), vmath.FromFloat(0.1),
	}

	shared.Tick = 1
	shared.Input.FireRequested = true
	fire.Update(world)

	if got := countBullets(world); got != 0 {
		t.Errorf("Denied burst spawned %d bullets", got)
	}
	if shared.Session.EmptyClips != 1 {
		t.Errorf("EmptyClips = %d, want 1", shared.Session.EmptyClips)
	}
	if shared.Session.BurstsFired != 0 {
		t.Errorf("BurstsFired = %d after denial, want 0", shared.Session.BurstsFired)
	}

	events := shared.Events.Consume()
	if len(events) != 1 || events[0].Type != engine.EventEmptyClip {
		t.Errorf("Expected a single empty-clip event, got %v", events)
	}
}

func TestFireConsumesOneSegmentOnStart(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)

	fire := NewFireSystem(shared)
	fire.Initialize(world)

	shared.Tick = 1
	shared.Input.FireRequested = true
	fire.Update(world)

	clip := ecs.NewMap1[components.AmmoClip](world).Get(shared.Player)
	if clip.Slots[2] != 0 {
		t.Errorf("Rightmost slot holds %.3f after burst start, want 0",
			vmath.ToFloat(clip.Slots[2]))
	}
	if clip.Slots[0] != segmentMax || clip.Slots[1] != segmentMax {
		t.Error("Burst start drained more than one segment")
	}
}

func TestFireRequestConsumedWhilePaused(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)

	fire := NewFireSystem(shared)
	fire.Initialize(world)

	shared.Paused = true
	shared.Tick = 1
	shared.Input.FireRequested = true
	fire.Update(world)

	if shared.Input.FireRequested {
		t.Error("Pause left the fire request pending")
	}
	if got := countBullets(world); got != 0 {
		t.Errorf("Paused update spawned %d bullets", got)
	}

	// Unpausing must not replay the stale request
	shared.Paused = false
	shared.Tick = 2
	fire.Update(world)
	if got := countBullets(world); got != 0 {
		t.Errorf("Stale request fired %d bullets after unpause", got)
	}
}

func TestFireEnemyShotsCarrySource(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)
	enemy := spawnTestEnemy(world, shared, 20, 16)

	fire := NewFireSystem(shared)
	fire.Initialize(world)

	shared.Tick = 5
	burst := components.Burst{Count: 1}
	burst.Shots[0] = components.PendingShot{DirX: vmath.Scale, FireTick: 5}
	ecs.NewMap1[components.Burst](world).Add(enemy, &burst)

	fire.Update(world)

	filter := ecs.NewFilter1[components.Bullet](world)
	query := filter.Query()
	found := 0
	for query.Next() {
		if query.Get().Source != components.SourceEnemy {
			t.Error("Enemy shot tagged with the wrong source")
		}
		found++
	}
	if found != 1 {
		t.Fatalf("Expected 1 enemy bullet, got %d", found)
	}
	if shared.Session.ShotsFired != 0 {
		t.Error("Enemy shot counted toward the avatar's fired total")
	}
}
