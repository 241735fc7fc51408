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

// AmmoBarRenderer draws the avatar's segmented clip on the first HUD
// row below the arena. A slot fills left to right in proportion to its
// charge and changes color once complete.
type AmmoBarRenderer struct {
	world  *ecs.World
	shared *engine.Shared

	clipMap *ecs.Map1[components.AmmoClip]

	segmentMax int64
	emptyStyle tcell.Style
}

// NewAmmoBarRenderer creates the clip display
func NewAmmoBarRenderer(world *ecs.World, shared *engine.Shared) *AmmoBarRenderer {
	return &AmmoBarRenderer{
		world:      world,
		shared:     shared,
		clipMap:    ecs.NewMap1[components.AmmoClip](world),
		segmentMax: vmath.FromFloat(parameter.AmmoSegmentMaxFloat),
		emptyStyle: tcell.StyleDefault.
			Foreground(parameter.AmmoEmptyColor).
			Background(parameter.BackgroundColor),
	}
}

// Render draws one block of cells per clip slot
func (r *AmmoBarRenderer) Render(ctx render.Context, buf *render.RenderBuffer) {
	if !r.world.Alive(r.shared.Player) {
		return
	}

	clip := r.clipMap.Get(r.shared.Player)
	x := ctx.Arena.X + 1
	y := ctx.Arena.Bottom()

	for _, slot := range clip.Slots {
		color := parameter.AmmoChargingColor
		if slot >= r.segmentMax {
			color = parameter.AmmoReadyColor
		} else if slot <= 0 {
			color = parameter.AmmoEmptyColor
		}
		style := tcell.StyleDefault.
			Foreground(color).
			Background(parameter.BackgroundColor)

		frac := vmath.Div(slot, r.segmentMax)
		filled := vmath.ToInt(vmath.Mul(frac, vmath.FromInt(parameter.AmmoBarSegmentWidth)))

		for i := 0; i < parameter.AmmoBarSegmentWidth; i++ {
			if i < filled {
				buf.Set(x+i, y, parameter.AmmoFullChar, style)
			} else {
				buf.Set(x+i, y, parameter.AmmoEmptyChar, r.emptyStyle)
			}
		}
		x += parameter.AmmoBarSegmentWidth + parameter.AmmoBarGap
	}
}
