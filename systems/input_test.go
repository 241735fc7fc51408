package systems

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"dodgetrainer/engine"
	"dodgetrainer/terminal"
)

// newInputHarness wires an input system to a hand-fed event channel
func newInputHarness(shared *engine.Shared) (*InputSystem, chan terminal.Event) {
	events := make(chan terminal.Event, 16)
	return NewInputSystem(shared, events), events
}

func keyRune(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: tcell.KeyRune, Rune: r}
}

func TestInputMovementKeyRefreshesHoldWindow(t *testing.T) {
	world, shared := newTestWorld(123)
	input, events := newInputHarness(shared)

	shared.Tick = 100
	events <- keyRune('d')
	input.Update(world)

	want := uint64(100) + shared.HoldWindowTicks
	if shared.Input.HoldRightUntil != want {
		t.Errorf("HoldRightUntil = %d, want %d", shared.Input.HoldRightUntil, want)
	}

	// Autorepeat refreshes the window from the later tick
	shared.Tick = 105
	events <- keyRune('d')
	input.Update(world)

	want = uint64(105) + shared.HoldWindowTicks
	if shared.Input.HoldRightUntil != want {
		t.Errorf("HoldRightUntil = %d after refresh, want %d", shared.Input.HoldRightUntil, want)
	}
}

func TestInputArrowKeysAliasMovement(t *testing.T) {
	world, shared := newTestWorld(123)
	input, events := newInputHarness(shared)

	shared.Tick = 50
	events <- terminal.Event{Type: terminal.EventKey, Key: tcell.KeyUp}
	events <- terminal.Event{Type: terminal.EventKey, Key: tcell.KeyLeft}
	input.Update(world)

	want := uint64(50) + shared.HoldWindowTicks
	if shared.Input.HoldUpUntil != want || shared.Input.HoldLeftUntil != want {
		t.Errorf("Arrow holds (%d, %d), want %d",
			shared.Input.HoldUpUntil, shared.Input.HoldLeftUntil, want)
	}
}

func TestInputUppercaseMovementRune(t *testing.T) {
	world, shared := newTestWorld(123)
	input, events := newInputHarness(shared)

	shared.Tick = 10
	events <- keyRune('W')
	input.Update(world)

	if shared.Input.HoldUpUntil == 0 {
		t.Error("Shifted movement rune did not register")
	}
}

func TestInputSpaceRequestsFire(t *testing.T) {
	world, shared := newTestWorld(123)
	input, events := newInputHarness(shared)

	events <- keyRune(' ')
	input.Update(world)

	if !shared.Input.FireRequested {
		t.Error("Space did not request a burst")
	}
}

func TestInputPauseToggles(t *testing.T) {
	world, shared := newTestWorld(123)
	input, events := newInputHarness(shared)

	events <- keyRune('p')
	input.Update(world)
	if !shared.Paused {
		t.Error("First p press did not pause")
	}

	events <- keyRune('p')
	input.Update(world)
	if shared.Paused {
		t.Error("Second p press did not resume")
	}
}

func TestInputQuitKeys(t *testing.T) {
	quitters := []terminal.Event{
		keyRune('q'),
		{Type: terminal.EventKey, Key: tcell.KeyEscape},
		{Type: terminal.EventKey, Key: tcell.KeyCtrlC},
	}
	for _, ev := range quitters {
		world, shared := newTestWorld(123)
		input, events := newInputHarness(shared)

		events <- ev
		input.Update(world)

		if !shared.QuitRequested {
			t.Errorf("Event %+v did not request quit", ev)
		}
	}
}

func TestInputRightButtonAimsAndFires(t *testing.T) {
	world, shared := newTestWorld(123)
	input, events := newInputHarness(shared)

	events <- terminal.Event{
		Type: terminal.EventMouse, MouseX: 30, MouseY: 10,
		MouseBtn: terminal.ButtonRight, MouseAction: terminal.MousePress,
	}
	input.Update(world)

	if !shared.Input.Indicating {
		t.Error("Right press did not start indicating")
	}
	if shared.Input.FireRequested {
		t.Error("Right press fired before release")
	}
	if shared.Input.MouseX != 30 || shared.Input.MouseY != 10 {
		t.Errorf("Pointer cell (%d, %d), want (30, 10)",
			shared.Input.MouseX, shared.Input.MouseY)
	}

	// Dragging while held retargets without firing
	events <- terminal.Event{
		Type: terminal.EventMouse, MouseX: 45, MouseY: 12,
		MouseAction: terminal.MouseMove,
	}
	input.Update(world)
	if !shared.Input.Indicating || shared.Input.FireRequested {
		t.Error("Drag while held changed the indicate/fire state")
	}
	if shared.Input.MouseX != 45 || shared.Input.MouseY != 12 {
		t.Error("Drag did not retarget the pointer cell")
	}

	events <- terminal.Event{
		Type: terminal.EventMouse, MouseX: 45, MouseY: 12,
		MouseBtn: terminal.ButtonRight, MouseAction: terminal.MouseRelease,
	}
	input.Update(world)
	if shared.Input.Indicating {
		t.Error("Release left the aim lane indicating")
	}
	if !shared.Input.FireRequested {
		t.Error("Release did not request the burst")
	}
}

func TestInputLeftButtonIgnoredForFiring(t *testing.T) {
	world, shared := newTestWorld(123)
	input, events := newInputHarness(shared)

	events <- terminal.Event{
		Type: terminal.EventMouse, MouseX: 5, MouseY: 5,
		MouseBtn: terminal.ButtonLeft, MouseAction: terminal.MousePress,
	}
	events <- terminal.Event{
		Type: terminal.EventMouse, MouseX: 5, MouseY: 5,
		MouseBtn: terminal.ButtonLeft, MouseAction: terminal.MouseRelease,
	}
	input.Update(world)

	if shared.Input.Indicating || shared.Input.FireRequested {
		t.Error("Left button drove the aim/fire path")
	}
	if shared.Input.MouseX != 5 || shared.Input.MouseY != 5 {
		t.Error("Left button event did not update the pointer cell")
	}
}

func TestInputResizeRebuildsArena(t *testing.T) {
	world, shared := newTestWorld(123)
	input, events := newInputHarness(shared)

	events <- terminal.Event{Type: terminal.EventResize, Width: 120, Height: 40}
	input.Update(world)

	if shared.ScreenW != 120 || shared.ScreenH != 40 {
		t.Errorf("Screen size (%d, %d), want (120, 40)", shared.ScreenW, shared.ScreenH)
	}
	want := engine.ArenaForScreen(120, 40)
	if shared.Arena != want {
		t.Errorf("Arena %+v, want %+v", shared.Arena, want)
	}
}

func TestInputClosedChannelQuits(t *testing.T) {
	world, shared := newTestWorld(123)
	input, events := newInputHarness(shared)

	close(events)
	input.Update(world)

	if !shared.QuitRequested {
		t.Error("Closed event channel did not request quit")
	}
}
