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

// EntityRenderer draws the two combatant bodies as filled ellipses.
// The enemy draws first so the avatar stays visible when they overlap.
type EntityRenderer struct {
	world  *ecs.World
	shared *engine.Shared

	kinBodyMap *ecs.Map2[components.Kinetic, components.Body]
	spriteMap  *ecs.Map1[components.Sprite]
}

// NewEntityRenderer creates the body renderer
func NewEntityRenderer(world *ecs.World, shared *engine.Shared) *EntityRenderer {
	return &EntityRenderer{
		world:      world,
		shared:     shared,
		kinBodyMap: ecs.NewMap2[components.Kinetic, components.Body](world),
		spriteMap:  ecs.NewMap1[components.Sprite](world),
	}
}

// Render draws enemy then avatar, clipped to the field
func (r *EntityRenderer) Render(ctx render.Context, buf *render.RenderBuffer) {
	if r.world.Alive(r.shared.Enemy) {
		r.drawBody(ctx, buf, r.shared.Enemy)
	}
	if r.world.Alive(r.shared.Player) {
		r.drawBody(ctx, buf, r.shared.Player)
	}
}

// drawBody rasterizes the body ellipse row by row. Each row's half width
// follows x = rx * sqrt(1 - (dy/ry)^2), the standard ellipse section.
func (r *EntityRenderer) drawBody(ctx render.Context, buf *render.RenderBuffer, entity ecs.Entity) {
	kin, body := r.kinBodyMap.Get(entity)
	sprite := r.spriteMap.Get(entity)

	color := sprite.Color
	if sprite.FlashTicks > 0 {
		color = sprite.FlashColor
	}
	style := tcell.StyleDefault.
		Foreground(color).
		Background(parameter.BackgroundColor)

	field := ctx.Arena.Inset(1, 1)
	gx := vmath.ToInt(kin.PreciseX)
	gy := vmath.ToInt(kin.PreciseY)
	rows := vmath.ToInt(body.RadiusY)

	for dy := -rows; dy <= rows; dy++ {
		t := vmath.Div(vmath.FromInt(dy), body.RadiusY)
		halfW := vmath.Mul(body.RadiusX, vmath.Sqrt(vmath.Scale-vmath.Mul(t, t)))
		cells := vmath.ToInt(halfW)

		y := gy + dy
		for dx := -cells; dx <= cells; dx++ {
			x := gx + dx
			if field.Contains(x, y) {
				buf.Set(x, y, sprite.Rune, style)
			}
		}
	}
}
