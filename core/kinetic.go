package core

// Kinetic holds sub-cell motion state shared by player, enemy, and bullets
type Kinetic struct {
	// PreciseX and PreciseY are sub-cell coordinates in Q32.32 format
	PreciseX, PreciseY int64
	// VelX and VelY are velocity in cells per second (Q32.32)
	VelX, VelY int64
}
