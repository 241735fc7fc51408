package renderers

import (
	"github.com/gdamore/tcell/v2"

	"dodgetrainer/parameter"
	"dodgetrainer/render"
)

const pauseText = " PAUSED "

// PauseRenderer stamps a pause banner over the arena center while the
// simulation is frozen.
type PauseRenderer struct {
	style tcell.Style
}

// NewPauseRenderer creates the pause banner renderer
func NewPauseRenderer() *PauseRenderer {
	return &PauseRenderer{
		style: tcell.StyleDefault.
			Foreground(parameter.StatusPauseColor).
			Background(parameter.BackgroundColor).
			Bold(true),
	}
}

// Render draws the banner only while paused
func (r *PauseRenderer) Render(ctx render.Context, buf *render.RenderBuffer) {
	if !ctx.Paused {
		return
	}

	cx, cy := ctx.Arena.Center()
	x := cx - len(pauseText)/2
	buf.WriteString(x, cy, pauseText, r.style)
}
