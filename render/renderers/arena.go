package renderers

import (
	"github.com/gdamore/tcell/v2"

	"dodgetrainer/parameter"
	"dodgetrainer/render"
)

// ArenaRenderer draws the playfield frame. Everything inside the frame
// belongs to the game; the rows below it belong to the HUD.
type ArenaRenderer struct {
	style tcell.Style
}

// NewArenaRenderer creates the frame renderer
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{
		style: tcell.StyleDefault.
			Foreground(parameter.ArenaBorderColor).
			Background(parameter.BackgroundColor),
	}
}

// Render draws the border box on the arena perimeter
func (r *ArenaRenderer) Render(ctx render.Context, buf *render.RenderBuffer) {
	left := ctx.Arena.X
	top := ctx.Arena.Y
	right := ctx.Arena.Right() - 1
	bottom := ctx.Arena.Bottom() - 1

	buf.Set(left, top, '┌', r.style)
	buf.Set(right, top, '┐', r.style)
	buf.Set(left, bottom, '└', r.style)
	buf.Set(right, bottom, '┘', r.style)

	for x := left + 1; x < right; x++ {
		buf.Set(x, top, '─', r.style)
		buf.Set(x, bottom, '─', r.style)
	}
	for y := top + 1; y < bottom; y++ {
		buf.Set(left, y, '│', r.style)
		buf.Set(right, y, '│', r.style)
	}
}
