package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing to the given screen
func NewOrchestrator(screen tcell.Screen, width, height int, background tcell.Color) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height, background),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted
// order via insertion sort; equal priorities keep registration order.
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the terminal
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// RenderFrame executes the pipeline: clear, render all, flush
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.buffer.Clear()
	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, o.buffer)
	}
	o.buffer.FlushToScreen(o.screen)
}

// Buffer exposes the compositor for tests
func (o *Orchestrator) Buffer() *RenderBuffer {
	return o.buffer
}
