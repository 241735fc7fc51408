package engine

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/core"
	"dodgetrainer/parameter"
	"dodgetrainer/vmath"
)

// SpawnPlayer creates the avatar at the field center with a full clip
// and aim pointing right. The entity handle is stored on Shared so
// systems can address the avatar directly.
func SpawnPlayer(w *ecs.World, shared *Shared) ecs.Entity {
	field := shared.Field()
	cx, cy := field.Center()

	kin := components.Kinetic{}
	kin.PreciseX, kin.PreciseY = vmath.CenteredFromGrid(cx, cy)
	body := components.Body{Body: core.NewBody(parameter.PlayerRadiusXFloat, parameter.PlayerRadiusYFloat)}

	entity := ecs.NewMap2[components.Kinetic, components.Body](w).NewEntity(&kin, &body)

	ecs.NewMap1[components.PlayerControlled](w).Add(entity, &components.PlayerControlled{})
	ecs.NewMap1[components.Aim](w).Add(entity, &components.Aim{DirX: vmath.Scale})
	clip := components.NewFullClip()
	ecs.NewMap1[components.AmmoClip](w).Add(entity, &clip)
	ecs.NewMap1[components.Sprite](w).Add(entity, &components.Sprite{
		Rune:       parameter.PlayerChar,
		Color:      parameter.PlayerColor,
		FlashColor: parameter.PlayerHitColor,
	})

	shared.Player = entity
	Log.Infow("player spawned", "x", cx, "y", cy)
	return entity
}
