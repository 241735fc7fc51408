package systems

import (
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/engine"
	"dodgetrainer/parameter"
	"dodgetrainer/render"
	"dodgetrainer/render/renderers"
	"dodgetrainer/terminal"
)

// RenderSystem composites and presents one frame per tick. It runs last
// in the schedule so every frame reflects the tick's final state.
type RenderSystem struct {
	shared *engine.Shared
	term   *terminal.Terminal
	orch   *render.Orchestrator
}

// NewRenderSystem creates the presentation system
func NewRenderSystem(shared *engine.Shared, term *terminal.Terminal) *RenderSystem {
	return &RenderSystem{shared: shared, term: term}
}

func (s *RenderSystem) Initialize(w *ecs.World) {
	s.orch = render.NewOrchestrator(s.term.Screen(),
		s.shared.ScreenW, s.shared.ScreenH, parameter.BackgroundColor)

	s.orch.Register(renderers.NewArenaRenderer(), render.PriorityArena)
	s.orch.Register(renderers.NewAimRenderer(w, s.shared), render.PriorityAim)
	s.orch.Register(renderers.NewBulletRenderer(w, s.shared), render.PriorityBullets)
	s.orch.Register(renderers.NewEntityRenderer(w, s.shared), render.PriorityEntities)
	s.orch.Register(renderers.NewHealthBarRenderer(w, s.shared), render.PriorityHealthBar)
	s.orch.Register(renderers.NewAmmoBarRenderer(w, s.shared), render.PriorityAmmoBar)
	s.orch.Register(renderers.NewStatusBarRenderer(s.shared), render.PriorityStatusBar)
	s.orch.Register(renderers.NewPauseRenderer(), render.PriorityOverlay)
}

func (s *RenderSystem) Update(_ *ecs.World) {
	buf := s.orch.Buffer()
	if buf.Width() != s.shared.ScreenW || buf.Height() != s.shared.ScreenH {
		s.orch.Resize(s.shared.ScreenW, s.shared.ScreenH)
	}

	s.orch.RenderFrame(render.Context{
		Arena:        s.shared.Arena,
		Tick:         s.shared.Tick,
		Paused:       s.shared.Paused,
		ScreenWidth:  s.shared.ScreenW,
		ScreenHeight: s.shared.ScreenH,
	})
}

func (s *RenderSystem) Finalize(_ *ecs.World) {}
