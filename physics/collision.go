package physics

import (
	"dodgetrainer/core"
	"dodgetrainer/vmath"
)

// Terminal cells are roughly twice as tall as wide. Distances are measured
// in horizontal cell units; vertical deltas scale by the aspect ratio so a
// visually circular range tests as a circle, not a squashed ellipse.

// AspectDistanceSq returns squared visual distance with dy scaled by aspect
func AspectDistanceSq(dx, dy, aspect int64) int64 {
	ady := vmath.Mul(dy, aspect)
	return vmath.Mul(dx, dx) + vmath.Mul(ady, ady)
}

// WithinRange reports whether two points lie within dist of each other
// in visual space (aspect-corrected)
func WithinRange(ax, ay, bx, by, dist, aspect int64) bool {
	if dist <= 0 {
		return false
	}
	dx := ax - bx
	dy := ay - by
	return AspectDistanceSq(dx, dy, aspect) <= vmath.Mul(dist, dist)
}

// Overlaps performs circle collision between two bodies in visual space
// using their horizontal radii. Vertical radii are render extents, already
// aspect-compressed, and do not participate.
func Overlaps(a *core.Kinetic, ab core.Body, b *core.Kinetic, bb core.Body, aspect int64) bool {
	combined := ab.RadiusX + bb.RadiusX
	return WithinRange(a.PreciseX, a.PreciseY, b.PreciseX, b.PreciseY, combined, aspect)
}

// HitTest checks a point (bullet tip) against a body in visual space
func HitTest(px, py int64, k *core.Kinetic, body core.Body, aspect int64) bool {
	return WithinRange(px, py, k.PreciseX, k.PreciseY, body.RadiusX, aspect)
}
