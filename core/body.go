package core

import "dodgetrainer/vmath"

// Body is an elliptical collision footprint in Q32.32 cells.
// Terminal cells are roughly twice as tall as wide, so a round-looking
// body carries a vertical radius of about half its horizontal radius.
type Body struct {
	RadiusX, RadiusY int64
}

// NewBody builds a body from radii expressed in fractional cells
func NewBody(rx, ry float64) Body {
	return Body{
		RadiusX: vmath.FromFloat(rx),
		RadiusY: vmath.FromFloat(ry),
	}
}
