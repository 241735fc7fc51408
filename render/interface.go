package render

// Renderer is implemented by anything with visual output
type Renderer interface {
	Render(ctx Context, buf *RenderBuffer)
}

// Priority determines render order. Lower values render first.
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityArena
	PriorityAim
	PriorityBullets
	PriorityEntities
	PriorityHealthBar
	PriorityAmmoBar
	PriorityStatusBar
	PriorityOverlay
)
