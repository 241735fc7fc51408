package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/components"
	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/render"
	"dodgetrainer/vmath"
)

// AimRenderer draws the firing lane while the aim button is held. The
// lane runs from the avatar along the aim direction out to the bullet
// travel limit and spans both burst columns, so what it covers is
// exactly what a burst can reach.
type AimRenderer struct {
	world  *ecs.World
	shared *engine.Shared

	kinMap *ecs.Map1[components.Kinetic]
	aimMap *ecs.Map1[components.Aim]

	style    tcell.Style
	maxCells int
}

// NewAimRenderer creates the aim lane renderer
func NewAimRenderer(world *ecs.World, shared *engine.Shared) *AimRenderer {
	return &AimRenderer{
		world:  world,
		shared: shared,
		kinMap: ecs.NewMap1[components.Kinetic](world),
		aimMap: ecs.NewMap1[components.Aim](world),
		style: tcell.StyleDefault.
			Foreground(parameter.AimColor).
			Background(parameter.BackgroundColor),
		maxCells: int(parameter.BulletMaxDistanceFloat),
	}
}

// Render sweeps the lane in one-cell visual steps, widened on each side
// of the centerline by the perpendicular half width
func (r *AimRenderer) Render(ctx render.Context, buf *render.RenderBuffer) {
	if !r.world.Alive(r.shared.Player) {
		return
	}
	aim := r.aimMap.Get(r.shared.Player)
	if !aim.Indicating {
		return
	}

	kin := r.kinMap.Get(r.shared.Player)
	field := ctx.Arena.Inset(1, 1)
	perpX, perpY := vmath.Perpendicular(aim.DirX, aim.DirY)

	for i := 1; i <= r.maxCells; i++ {
		step := vmath.FromInt(i)
		cx := kin.PreciseX + vmath.Mul(aim.DirX, step)
		cy := kin.PreciseY + vmath.Div(vmath.Mul(aim.DirY, step), r.shared.Aspect)

		ch := parameter.AimChar
		if i == r.maxCells {
			ch = parameter.AimEdgeChar
		}

		for off := -parameter.AimLaneHalfWidth; off <= parameter.AimLaneHalfWidth; off++ {
			w := vmath.FromInt(off)
			x := vmath.ToInt(cx + vmath.Mul(perpX, w))
			y := vmath.ToInt(cy + vmath.Div(vmath.Mul(perpY, w), r.shared.Aspect))
			if !field.Contains(x, y) {
				continue
			}
			buf.Set(x, y, ch, r.style)
		}
	}
}
