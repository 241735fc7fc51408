package components

// PlayerControlled marks the avatar driven by keyboard input
type PlayerControlled struct{}

// Aim holds the current normalized aim direction of a shooter
type Aim struct {
	// DirX, DirY is the unit aim vector (Q32.32). Defaults to +X when no
	// target information exists yet.
	DirX, DirY int64

	// Indicating is true while the aim lane should render (right mouse held)
	Indicating bool
}
