package physics

import (
	"dodgetrainer/core"
	"dodgetrainer/vmath"
)

// clampAxis clamps center c into [lo+r, hi-r] where lo/hi bound the axis span.
// Returns the clamped value and whether clamping occurred. A span too narrow
// for the radius pins the center to the span midpoint.
func clampAxis(c, lo, hi, r int64) (int64, bool) {
	min := lo + r
	max := hi - r
	if min > max {
		mid := lo + (hi-lo)/2
		return mid, c != mid
	}
	clamped := vmath.Clamp(c, min, max)
	return clamped, clamped != c
}

// ClampToArea constrains a body's center so the full extent stays inside
// the area. Each axis clamps independently: hitting the left wall leaves
// vertical motion untouched and vice versa.
func ClampToArea(k *core.Kinetic, body core.Body, area core.Area) (clampedX, clampedY bool) {
	loX := vmath.FromInt(area.X)
	hiX := vmath.FromInt(area.Right())
	loY := vmath.FromInt(area.Y)
	hiY := vmath.FromInt(area.Bottom())

	k.PreciseX, clampedX = clampAxis(k.PreciseX, loX, hiX, body.RadiusX)
	k.PreciseY, clampedY = clampAxis(k.PreciseY, loY, hiY, body.RadiusY)
	return clampedX, clampedY
}

// InsideArea reports whether the body's full extent lies within the area
func InsideArea(k *core.Kinetic, body core.Body, area core.Area) bool {
	if k.PreciseX-body.RadiusX < vmath.FromInt(area.X) {
		return false
	}
	if k.PreciseX+body.RadiusX > vmath.FromInt(area.Right()) {
		return false
	}
	if k.PreciseY-body.RadiusY < vmath.FromInt(area.Y) {
		return false
	}
	if k.PreciseY+body.RadiusY > vmath.FromInt(area.Bottom()) {
		return false
	}
	return true
}
