package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/render"
)

// StatusBarRenderer draws the running session tally on the bottom HUD
// row: bursts and shots fired, hits landed and taken, enemies downed,
// and the shot accuracy so far.
type StatusBarRenderer struct {
	shared *engine.Shared

	textStyle tcell.Style
}

// NewStatusBarRenderer creates the session tally display
func NewStatusBarRenderer(shared *engine.Shared) *StatusBarRenderer {
	return &StatusBarRenderer{
		shared: shared,
		textStyle: tcell.StyleDefault.
			Foreground(parameter.StatusTextColor).
			Background(parameter.BackgroundColor),
	}
}

// Render writes the tally line below the ammo bar
func (r *StatusBarRenderer) Render(ctx render.Context, buf *render.RenderBuffer) {
	s := r.shared.Session
	text := fmt.Sprintf("bursts %d  shots %d  hits %d  taken %d  down %d  acc %3.0f%%",
		s.BurstsFired, s.ShotsFired, s.HitsDealt, s.HitsTaken, s.EnemiesDestroyed,
		s.Accuracy()*100)
	buf.WriteString(ctx.Arena.X+1, ctx.Arena.Bottom()+1, text, r.textStyle)
}
