// Input diagnostic: shows the normalized event stream the game loop
// would receive. Useful for checking how a terminal delivers autorepeat,
// mouse buttons and modifiers before blaming the input system.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"dodgetrainer/parameter"
	"dodgetrainer/render"
	"dodgetrainer/terminal"
)

const maxLog = 12

type probe struct {
	term *terminal.Terminal
	buf  *render.RenderBuffer

	log      []string
	mouseX   int
	mouseY   int
	rightHeld bool

	titleStyle  tcell.Style
	lineStyle   tcell.Style
	statusStyle tcell.Style
}

func main() {
	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init failed: %v\n", err)
		os.Exit(1)
	}
	term.Start()
	defer term.Fini()

	w, h := term.Size()
	p := &probe{
		term: term,
		buf:  render.NewRenderBuffer(w, h, parameter.BackgroundColor),
		log:  make([]string, 0, maxLog),
		titleStyle: tcell.StyleDefault.
			Foreground(parameter.StatusTextColor).
			Background(parameter.BackgroundColor).
			Bold(true),
		lineStyle: tcell.StyleDefault.
			Foreground(parameter.StatusTextColor).
			Background(parameter.BackgroundColor),
		statusStyle: tcell.StyleDefault.
			Foreground(parameter.StatusPauseColor).
			Background(parameter.BackgroundColor),
	}

	p.draw()
	for ev := range term.Events() {
		if !p.handle(ev) {
			return
		}
		p.draw()
	}
}

// handle folds one event into the probe state. Returns false to quit.
func (p *probe) handle(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventKey:
		if ev.Key == tcell.KeyEscape || ev.Key == tcell.KeyCtrlC ||
			(ev.Key == tcell.KeyRune && ev.Rune == 'q') {
			return false
		}
		p.add("key   " + formatKey(ev))

	case terminal.EventMouse:
		p.mouseX, p.mouseY = ev.MouseX, ev.MouseY
		if ev.MouseBtn == terminal.ButtonRight {
			p.rightHeld = ev.MouseAction == terminal.MousePress
		}
		if ev.MouseAction == terminal.MouseMove {
			// Motion floods the log; the status row tracks it instead
			return true
		}
		p.add(fmt.Sprintf("mouse %s %s @ (%d,%d)",
			ev.MouseBtn, ev.MouseAction, ev.MouseX, ev.MouseY))

	case terminal.EventResize:
		p.buf.Resize(ev.Width, ev.Height)
		p.add(fmt.Sprintf("resize %dx%d", ev.Width, ev.Height))

	case terminal.EventClosed:
		return false
	}
	return true
}

func (p *probe) add(s string) {
	if len(p.log) >= maxLog {
		copy(p.log, p.log[1:])
		p.log = p.log[:maxLog-1]
	}
	p.log = append(p.log, s)
}

func (p *probe) draw() {
	p.buf.Clear()

	p.buf.WriteString(1, 0, "input probe  (q / Esc / Ctrl+C quits)", p.titleStyle)
	for i, entry := range p.log {
		p.buf.WriteString(1, 2+i, entry, p.lineStyle)
	}

	held := "up"
	if p.rightHeld {
		held = "held"
	}
	status := fmt.Sprintf("pointer (%d,%d)  right button %s", p.mouseX, p.mouseY, held)
	p.buf.WriteString(1, p.buf.Height()-1, status, p.statusStyle)

	p.buf.FlushToScreen(p.term.Screen())
}

func formatKey(ev terminal.Event) string {
	var mods string
	if ev.Modifiers&tcell.ModShift != 0 {
		mods += "Shift+"
	}
	if ev.Modifiers&tcell.ModAlt != 0 {
		mods += "Alt+"
	}
	if ev.Modifiers&tcell.ModCtrl != 0 {
		mods += "Ctrl+"
	}

	if ev.Key == tcell.KeyRune {
		return fmt.Sprintf("%s%q", mods, ev.Rune)
	}
	if name, ok := tcell.KeyNames[ev.Key]; ok {
		return mods + name
	}
	return fmt.Sprintf("%skey(%d)", mods, ev.Key)
}
