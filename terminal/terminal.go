// Package terminal wraps tcell screen management behind a small surface:
// lifecycle, size queries and a buffered channel of normalized input
// events pumped by a background goroutine.
package terminal

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"dodgetrainer/parameter"
)

// Terminal owns the tcell screen and the input pump
type Terminal struct {
	screen tcell.Screen

	eventCh chan Event
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool

	// lastButtons tracks the previous mouse mask so press/release
	// transitions can be derived from tcell's absolute button state
	lastButtons tcell.ButtonMask
}

// New initializes the alternate screen, enables mouse tracking and hides
// the cursor. Call Fini (or EmergencyReset from panic recovery) before
// process exit.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal create: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	screen.SetStyle(tcell.StyleDefault.Background(parameter.BackgroundColor))
	screen.HideCursor()
	screen.Clear()

	return &Terminal{
		screen:  screen,
		eventCh: make(chan Event, parameter.TerminalEventBuffer),
		doneCh:  make(chan struct{}),
	}, nil
}

// Screen exposes the underlying tcell screen for rendering
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the current terminal dimensions in cells
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// Start launches the input pump goroutine. Events arrive on Events()
// until Fini unblocks the pump and it emits EventClosed.
func (t *Terminal) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	go t.pump()
}

// Events returns the normalized input event channel
func (t *Terminal) Events() <-chan Event {
	return t.eventCh
}

// Fini restores the terminal and stops the pump. Safe to call once after
// Start; PollEvent returns nil after Fini which ends the goroutine.
func (t *Terminal) Fini() {
	t.mu.Lock()
	running := t.running
	t.running = false
	t.mu.Unlock()

	t.screen.Fini()
	if running {
		<-t.doneCh
	}
}

// EmergencyReset attempts to restore the terminal to a sane state with
// raw escape sequences. Call from panic recovery when Fini cannot run;
// it assumes nothing about tcell's internal state.
func EmergencyReset(f *os.File) {
	// Mouse tracking off, cursor visible, leave alt screen, reset attributes
	f.WriteString("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	f.WriteString("\x1b[?25h\x1b[?1049l\x1b[0m")
	f.Sync()
}
