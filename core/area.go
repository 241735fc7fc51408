package core

// Area is a rectangular region in integer cell coordinates
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Right returns the exclusive right edge
func (a Area) Right() int {
	return a.X + a.Width
}

// Bottom returns the exclusive bottom edge
func (a Area) Bottom() int {
	return a.Y + a.Height
}

// Contains reports whether the cell (x, y) lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.Right() && y >= a.Y && y < a.Bottom()
}

// Center returns the cell closest to the area's center
func (a Area) Center() (int, int) {
	return a.X + a.Width/2, a.Y + a.Height/2
}

// Inset returns the area shrunk by dx cells horizontally and dy vertically
// on each side. Collapses to a 1x1 area rather than inverting.
func (a Area) Inset(dx, dy int) Area {
	w := a.Width - 2*dx
	h := a.Height - 2*dy
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Area{X: a.X + dx, Y: a.Y + dy, Width: w, Height: h}
}
