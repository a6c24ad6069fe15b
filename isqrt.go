package isqrt

import (
	"golang.org/x/exp/constraints"
)

// Sqrt returns the integer square root of n, i.e. the largest s with s·s ≤ n.
// It is exact for every value of every unsigned width, including the maximum
// representable value.
func Sqrt[T constraints.Unsigned](n T) T {
	if n == 0 {
		return 0
	}
	// Newton's method, iterating from above. The seed n/2 + 1 is an upper
	// bound for the root of every n ≥ 1 and, unlike (n+1)/2, cannot wrap
	// at the top of the range.
	x := n>>1 + 1
	y := (x + n/x) >> 1
	for y < x {
		x = y
		y = (x + n/x) >> 1
	}
	return x
}

// Nearest returns the integer closest to the exact square root of n, rounding
// up from the midpoint: Nearest(6) = 2, but Nearest(7) = 3, since √7 ≈ 2.65.
//
// The result may exceed Sqrt(maxOfT): Nearest(255) for uint8 is 16.
func Nearest[T constraints.Unsigned](n T) T {
	s := Sqrt(n)
	// (s + ½)² = s² + s + ¼, so round up whenever the remainder exceeds s.
	if n-s*s > s {
		return s + 1
	}
	return s
}

// PerfectSquare is true iff n is the square of an integer.
func PerfectSquare[T constraints.Unsigned](n T) bool {
	s := Sqrt(n)
	return s*s == n
}
