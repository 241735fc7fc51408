package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// EventType discriminates normalized terminal events
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventClosed
)

// MouseAction classifies a mouse event relative to the previous state
type MouseAction uint8

const (
	MouseMove MouseAction = iota
	MousePress
	MouseRelease
)

// MouseButton identifies the button a press/release refers to
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	default:
		return "move"
	}
}

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Event is a normalized terminal input event
type Event struct {
	Type      EventType
	Key       tcell.Key
	Rune      rune
	Modifiers tcell.ModMask
	Width     int // EventResize
	Height    int // EventResize

	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// pump converts tcell events to normalized events until Fini
func (t *Terminal) pump() {
	defer close(t.doneCh)
	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\ninput pump crashed: %v\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			t.send(Event{Type: EventClosed})
			return
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			t.send(Event{
				Type:      EventKey,
				Key:       tev.Key(),
				Rune:      tev.Rune(),
				Modifiers: tev.Modifiers(),
			})

		case *tcell.EventMouse:
			t.sendMouse(tev)

		case *tcell.EventResize:
			w, h := tev.Size()
			t.screen.Sync()
			t.send(Event{Type: EventResize, Width: w, Height: h})
		}
	}
}

// sendMouse derives press/release transitions from tcell's absolute
// button mask, one event per changed button, plus moves
func (t *Terminal) sendMouse(tev *tcell.EventMouse) {
	x, y := tev.Position()
	buttons := tev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	changed := buttons ^ t.lastButtons
	t.lastButtons = buttons

	if changed == 0 {
		t.send(Event{Type: EventMouse, MouseX: x, MouseY: y, MouseAction: MouseMove})
		return
	}

	for _, m := range [...]struct {
		mask tcell.ButtonMask
		btn  MouseButton
	}{
		{tcell.Button1, ButtonLeft},
		{tcell.Button3, ButtonMiddle},
		{tcell.Button2, ButtonRight},
	} {
		if changed&m.mask == 0 {
			continue
		}
		action := MousePress
		if buttons&m.mask == 0 {
			action = MouseRelease
		}
		t.send(Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseBtn:    m.btn,
			MouseAction: action,
		})
	}
}

// send delivers without blocking the pump. A full channel drops the
// oldest event to keep fresh input flowing.
func (t *Terminal) send(ev Event) {
	select {
	case t.eventCh <- ev:
	default:
		select {
		case <-t.eventCh:
		default:
		}
		select {
		case t.eventCh <- ev:
		default:
		}
	}
}
