package components

import (
	"dodgetrainer/core"
)

// Kinetic provides a reusable kinematic container for entities requiring
// sub-cell motion. Uses Q32.32 fixed-point arithmetic for deterministic
// integration.
type Kinetic struct {
	core.Kinetic
}

// Body gives an entity a collidable ellipse extent
type Body struct {
	core.Body
}
