package vmath

// Normalize2D returns the unit vector in Q32.32, zero-safe
// Uses exact magnitude so aim directions stay stable near the axes
func Normalize2D(x, y int64) (nx, ny int64) {
	mag := MagnitudeEuclidean(x, y)
	if mag == 0 {
		return 0, 0
	}
	return Div(x, mag), Div(y, mag)
}

// Magnitude returns vector length using DistanceApprox
func Magnitude(x, y int64) int64 {
	return DistanceApprox(x, y)
}

// MagnitudeSq returns the squared magnitude without a sqrt
func MagnitudeSq(x, y int64) int64 {
	return Mul(x, x) + Mul(y, y)
}

// MagnitudeEuclidean returns the true Euclidean length sqrt(x² + y²)
func MagnitudeEuclidean(x, y int64) int64 {
	return Sqrt(MagnitudeSq(x, y))
}

// ClampMagnitude limits the vector to maxMag while preserving direction
func ClampMagnitude(x, y, maxMag int64) (cx, cy int64) {
	mag := MagnitudeEuclidean(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	scale := Div(maxMag, mag)
	return Mul(x, scale), Mul(y, scale)
}

// ScaleVector multiplies a vector by a scalar factor
func ScaleVector(x, y, factor int64) (sx, sy int64) {
	return Mul(x, factor), Mul(y, factor)
}

// DotProduct returns x1*x2 + y1*y2 in Q32.32
func DotProduct(x1, y1, x2, y2 int64) int64 {
	return Mul(x1, x2) + Mul(y1, y2)
}

// Perpendicular returns the vector rotated 90° counter-clockwise
func Perpendicular(x, y int64) (px, py int64) {
	return -y, x
}
