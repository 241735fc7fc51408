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

// HealthBarRenderer floats a small bar above the enemy showing its
// remaining hit points.
type HealthBarRenderer struct {
	world  *ecs.World
	shared *engine.Shared

	kinBodyMap *ecs.Map2[components.Kinetic, components.Body]
	healthMap  *ecs.Map1[components.Health]

	fullStyle  tcell.Style
	emptyStyle tcell.Style
}

// NewHealthBarRenderer creates the enemy health display
func NewHealthBarRenderer(world *ecs.World, shared *engine.Shared) *HealthBarRenderer {
	return &HealthBarRenderer{
		world:      world,
		shared:     shared,
		kinBodyMap: ecs.NewMap2[components.Kinetic, components.Body](world),
		healthMap:  ecs.NewMap1[components.Health](world),
		fullStyle: tcell.StyleDefault.
			Foreground(parameter.HealthBarColor).
			Background(parameter.BackgroundColor),
		emptyStyle: tcell.StyleDefault.
			Foreground(parameter.HealthBarBackColor).
			Background(parameter.BackgroundColor),
	}
}

// Render draws the bar centered one row above the enemy's top edge
func (r *HealthBarRenderer) Render(ctx render.Context, buf *render.RenderBuffer) {
	if !r.world.Alive(r.shared.Enemy) {
		return
	}

	kin, body := r.kinBodyMap.Get(r.shared.Enemy)
	health := r.healthMap.Get(r.shared.Enemy)
	if health.Max <= 0 {
		return
	}

	gx := vmath.ToInt(kin.PreciseX)
	barY := vmath.ToInt(kin.PreciseY) - vmath.ToInt(body.RadiusY) - parameter.HealthBarOffsetY
	barX := gx - parameter.HealthBarWidth/2

	filled := parameter.HealthBarWidth * health.Current / health.Max

	field := ctx.Arena.Inset(1, 1)
	for i := 0; i < parameter.HealthBarWidth; i++ {
		x := barX + i
		if !field.Contains(x, barY) {
			continue
		}
		if i < filled {
			buf.Set(x, barY, parameter.HealthFullChar, r.fullStyle)
		} else {
			buf.Set(x, barY, parameter.HealthEmptyChar, r.emptyStyle)
		}
	}
}
