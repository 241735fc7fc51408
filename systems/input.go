package systems

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"

	"dodgetrainer/engine"
	"dodgetrainer/terminal"
)

// InputSystem drains the terminal event channel and folds it into the
// semantic input snapshot. It runs first each update.
//
// Movement keys refresh a hold window measured in ticks; terminal
// autorepeat keeps the window alive while the key is physically down.
// Arrow keys alias the configured movement runes.
type InputSystem struct {
	shared *engine.Shared
	events <-chan terminal.Event
}

// NewInputSystem creates the input drainer reading from events
func NewInputSystem(shared *engine.Shared, events <-chan terminal.Event) *InputSystem {
	return &InputSystem{
		shared: shared,
		events: events,
	}
}

func (s *InputSystem) Initialize(_ *ecs.World) {}

func (s *InputSystem) Update(_ *ecs.World) {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.shared.QuitRequested = true
				return
			}
			s.handle(ev)
		default:
			return
		}
	}
}

func (s *InputSystem) Finalize(_ *ecs.World) {}

func (s *InputSystem) handle(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventKey:
		s.handleKey(ev)
	case terminal.EventMouse:
		s.handleMouse(ev)
	case terminal.EventResize:
		s.handleResize(ev.Width, ev.Height)
	case terminal.EventClosed:
		s.shared.QuitRequested = true
	}
}

func (s *InputSystem) handleKey(ev terminal.Event) {
	in := &s.shared.Input
	holdUntil := s.shared.Tick + s.shared.HoldWindowTicks

	switch ev.Key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.shared.QuitRequested = true
		return
	case tcell.KeyUp:
		in.HoldUpUntil = holdUntil
		return
	case tcell.KeyDown:
		in.HoldDownUntil = holdUntil
		return
	case tcell.KeyLeft:
		in.HoldLeftUntil = holdUntil
		return
	case tcell.KeyRight:
		in.HoldRightUntil = holdUntil
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch unicode.ToLower(ev.Rune) {
	case s.shared.KeyUp:
		in.HoldUpUntil = holdUntil
	case s.shared.KeyDown:
		in.HoldDownUntil = holdUntil
	case s.shared.KeyLeft:
		in.HoldLeftUntil = holdUntil
	case s.shared.KeyRight:
		in.HoldRightUntil = holdUntil
	case 'q':
		s.shared.QuitRequested = true
	case ' ':
		// Keyboard alternative to the right-button release
		in.FireRequested = true
	case 'p':
		s.shared.Paused = !s.shared.Paused
		engine.Log.Infow("pause toggled", "paused", s.shared.Paused, "tick", s.shared.Tick)
	}
}

func (s *InputSystem) handleMouse(ev terminal.Event) {
	in := &s.shared.Input
	in.MouseX = ev.MouseX
	in.MouseY = ev.MouseY

	if ev.MouseBtn != terminal.ButtonRight {
		return
	}

	switch ev.MouseAction {
	case terminal.MousePress:
		in.Indicating = true
	case terminal.MouseRelease:
		if in.Indicating {
			in.Indicating = false
			in.FireRequested = true
		}
	}
}

func (s *InputSystem) handleResize(w, h int) {
	s.shared.ScreenW = w
	s.shared.ScreenH = h
	s.shared.Arena = engine.ArenaForScreen(w, h)
	engine.Log.Infow("terminal resized",
		"width", w, "height", h,
		"arena_w", s.shared.Arena.Width, "arena_h", s.shared.Arena.Height)
}
