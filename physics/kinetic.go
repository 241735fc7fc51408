package physics

import (
	"dodgetrainer/core"
	"dodgetrainer/vmath"
)

// Integrate performs physics integration: p = p + v*dt
func Integrate(k *core.Kinetic, dt int64) (x, y int) {
	k.PreciseX += vmath.Mul(k.VelX, dt)
	k.PreciseY += vmath.Mul(k.VelY, dt)
	return vmath.ToInt(k.PreciseX), vmath.ToInt(k.PreciseY)
}

// SetVelocity overrides the velocity vector
func SetVelocity(k *core.Kinetic, vx, vy int64) {
	k.VelX = vx
	k.VelY = vy
}

// Stop zeroes the velocity vector
func Stop(k *core.Kinetic) {
	k.VelX = 0
	k.VelY = 0
}

// GridPos returns current integer grid position
func GridPos(k *core.Kinetic) (x, y int) {
	return vmath.ToInt(k.PreciseX), vmath.ToInt(k.PreciseY)
}

// SetGridPos sets precise position from integer grid coordinates (centered)
func SetGridPos(k *core.Kinetic, x, y int) {
	k.PreciseX, k.PreciseY = vmath.CenteredFromGrid(x, y)
}
