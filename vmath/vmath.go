package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 fixed point constants
const (
	Shift = 32
	Scale = 1 << Shift
	Half  = 1 << (Shift - 1)

	// CellCenter offsets a grid coordinate to the middle of its cell
	CellCenter = Half
)

// --- Conversions ---

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * Scale) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

// CenteredFromGrid converts integer grid coordinates to cell-centered Q32.32
func CenteredFromGrid(x, y int) (int64, int64) {
	return FromInt(x) + CellCenter, FromInt(y) + CellCenter
}

// --- Arithmetic ---

// Mul multiplies two Q32.32 values with a 128-bit intermediate
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	neg := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}
	hi, lo := bits.Mul64(ua, ub)
	r := int64((hi << 32) | (lo >> 32))
	if neg {
		return -r
	}
	return r
}

// Div divides two Q32.32 values, saturating on overflow and returning 0 for b == 0
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	neg := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}
	// (a << 32) / b with a 128-bit dividend
	hi := ua >> 32
	lo := ua << 32
	if hi >= ub {
		// Quotient would not fit in 64 bits
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if neg {
		return -int64(quo)
	}
	return int64(quo)
}

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -Scale, 0, or Scale
func Sign(x int64) int64 {
	if x < 0 {
		return -Scale
	}
	if x > 0 {
		return Scale
	}
	return 0
}

// Clamp restricts x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates between a and b; t in [0, Scale]
func Lerp(a, b, t int64) int64 {
	return a + Mul(b-a, t)
}

// Sqrt returns the Q32.32 square root using Newton-Raphson
// Converges within 12 iterations over typical arena distances
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}
	guess := x
	if guess > Scale {
		guess = Scale
		for guess < x>>1 {
			guess <<= 1
		}
	} else {
		guess = x >> 1
		if guess == 0 {
			guess = 1
		}
	}
	for i := 0; i < 12; i++ {
		if guess == 0 {
			return 0
		}
		guess = (guess + Div(x, guess)) >> 1
	}
	return guess
}

// DistanceApprox returns |(dx, dy)| via alpha-max-plus-beta-min (error ~4%)
func DistanceApprox(dx, dy int64) int64 {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}
	return dx + (dy >> 2) + (dy >> 3)
}
