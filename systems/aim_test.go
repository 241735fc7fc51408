package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/engine"
	"dodgetrainer/vmath"
)

func TestAimTracksMouseCell(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)

	aim := NewAimSystem(shared)
	aim.Initialize(world)

	kin, _ := playerKineticBody(world, shared)
	px, py := vmath.ToInt(kin.PreciseX), vmath.ToInt(kin.PreciseY)

	// Pointer straight right of the avatar
	shared.Input.MouseX = px + 20
	shared.Input.MouseY = py
	aim.Update(world)

	dir := ecs.NewMap1[components.Aim](world).Get(shared.Player)
	if !approxEqual(dir.DirX, vmath.Scale, 0.001) || !approxEqual(dir.DirY, 0, 0.001) {
		t.Errorf("Aim (%.3f, %.3f), want (1, 0)",
			vmath.ToFloat(dir.DirX), vmath.ToFloat(dir.DirY))
	}

	// Pointer straight above: vertical delta doubles in visual space
	shared.Input.MouseX = px
	shared.Input.MouseY = py - 8
	aim.Update(world)

	dir = ecs.NewMap1[components.Aim](world).Get(shared.Player)
	if !approxEqual(dir.DirX, 0, 0.001) || !approxEqual(dir.DirY, -vmath.Scale, 0.001) {
		t.Errorf("Aim (%.3f, %.3f), want (0, -1)",
			vmath.ToFloat(dir.DirX), vmath.ToFloat(dir.DirY))
	}
}

func TestAimDiagonalUsesVisualAngle(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)

	aim := NewAimSystem(shared)
	aim.Initialize(world)

	kin, _ := playerKineticBody(world, shared)
	px, py := vmath.ToInt(kin.PreciseX), vmath.ToInt(kin.PreciseY)

	// 8 cells right, 4 rows down: equal legs once rows double
	shared.Input.MouseX = px + 8
	shared.Input.MouseY = py + 4
	aim.Update(world)

	dir := ecs.NewMap1[components.Aim](world).Get(shared.Player)
	want := vmath.FromFloat(0.7071)
	if !approxEqual(dir.DirX, want, 0.001) || !approxEqual(dir.DirY, want, 0.001) {
		t.Errorf("Aim (%.4f, %.4f), want 45 degrees visual (0.7071, 0.7071)",
			vmath.ToFloat(dir.DirX), vmath.ToFloat(dir.DirY))
	}
}

func TestAimKeepsDirectionWhenPointerOnAvatar(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)

	aim := NewAimSystem(shared)
	aim.Initialize(world)

	kin, _ := playerKineticBody(world, shared)
	shared.Input.MouseX = vmath.ToInt(kin.PreciseX)
	shared.Input.MouseY = vmath.ToInt(kin.PreciseY)
	aim.Update(world)

	// Spawn aim points right and must survive the degenerate pointer
	dir := ecs.NewMap1[components.Aim](world).Get(shared.Player)
	if dir.DirX != vmath.Scale || dir.DirY != 0 {
		t.Errorf("Degenerate pointer changed aim to (%.3f, %.3f)",
			vmath.ToFloat(dir.DirX), vmath.ToFloat(dir.DirY))
	}
}

func TestAimMirrorsIndicatorFlag(t *testing.T) {
	world, shared := newTestWorld(123)
	engine.SpawnPlayer(world, shared)

	aim := NewAimSystem(shared)
	aim.Initialize(world)

	shared.Input.Indicating = true
	shared.Input.MouseX = 60
	shared.Input.MouseY = 10
	aim.Update(world)

	if !ecs.NewMap1[components.Aim](world).Get(shared.Player).Indicating {
		t.Error("Indicator flag did not reach the aim component")
	}

	shared.Input.Indicating = false
	aim.Update(world)
	if ecs.NewMap1[components.Aim](world).Get(shared.Player).Indicating {
		t.Error("Indicator flag stuck on after release")
	}
}
