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

// diagRatio is tan(67.5°) in Q32.32. A direction whose dominant axis
// exceeds the other by this ratio renders as a straight glyph; anything
// between renders diagonal.
var diagRatio = vmath.FromFloat(2.414)

// BulletRenderer draws each projectile as a single glyph oriented along
// its flight direction, colored by who fired it.
type BulletRenderer struct {
	shared *engine.Shared

	filter *ecs.Filter2[components.Kinetic, components.Bullet]

	playerStyle tcell.Style
	enemyStyle  tcell.Style
}

// NewBulletRenderer creates the projectile renderer
func NewBulletRenderer(world *ecs.World, shared *engine.Shared) *BulletRenderer {
	r := &BulletRenderer{
		shared: shared,
		filter: ecs.NewFilter2[components.Kinetic, components.Bullet](world),
		playerStyle: tcell.StyleDefault.
			Foreground(parameter.PlayerShotColor).
			Background(parameter.BackgroundColor),
		enemyStyle: tcell.StyleDefault.
			Foreground(parameter.EnemyShotColor).
			Background(parameter.BackgroundColor),
	}
	r.filter.Register()
	return r
}

// Render draws every live bullet inside the field
func (r *BulletRenderer) Render(ctx render.Context, buf *render.RenderBuffer) {
	field := ctx.Arena.Inset(1, 1)

	query := r.filter.Query()
	for query.Next() {
		kin, bullet := query.Get()

		x := vmath.ToInt(kin.PreciseX)
		y := vmath.ToInt(kin.PreciseY)
		if !field.Contains(x, y) {
			continue
		}

		style := r.playerStyle
		if bullet.Source == components.SourceEnemy {
			style = r.enemyStyle
		}
		buf.Set(x, y, bulletGlyph(bullet.DirX, bullet.DirY), style)
	}
}

// bulletGlyph picks the rune matching a visual-space direction
func bulletGlyph(dirX, dirY int64) rune {
	ax := vmath.Abs(dirX)
	ay := vmath.Abs(dirY)

	switch {
	case ax >= vmath.Mul(ay, diagRatio):
		return '─'
	case ay >= vmath.Mul(ax, diagRatio):
		return '│'
	case (dirX > 0) == (dirY > 0):
		return '╲'
	default:
		return '╱'
	}
}
