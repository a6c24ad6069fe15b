package gradual

import (
	"golang.org/x/exp/constraints"
)

// Changing returns a function that calculates the integer square root of
// each value passed to it. The returned function is very cheap to call as
// long as consecutive values are near each other (or near init·init for the
// first call). N is the type of the values, S the type of the roots; S may
// be narrower, and with S at least half the width of N the window
// arithmetic cannot overflow.
//
//     toIsqrt := gradual.Changing[uint16, uint8](0)
//     toIsqrt(8)    // 2
//     toIsqrt(10)   // 3
//     toIsqrt(7)    // 2
//
func Changing[N constraints.Unsigned, S constraints.Unsigned](init S) func(N) S {
	sqrt := init
	s := N(init)
	lo := s * s
	hi := lo + s + s // (s+1)² − 1 without overflowing
	return func(n N) S {
		// If the current sqrt doesn't work for this n,
		// step it until it does.
		if n > hi {
			for n > hi {
				sqrt++
				s := N(sqrt)
				lo = hi + 1
				hi = lo + s + s
			}
		} else {
			for n < lo {
				sqrt--
				s := N(sqrt)
				hi = lo - 1
				lo = hi - s - s
			}
		}
		return sqrt
	}
}

// Ascending is a variant of Changing for values known to be non-decreasing.
// It keeps just the upper edge of the validity window. Calling it with a
// value lower than a previous one returns the previous root again.
func Ascending[N constraints.Unsigned, S constraints.Unsigned](init S) func(N) S {
	sqrt := init
	s := N(init)
	hi := s * (s + 2) // (s+1)² − 1 without overflowing
	return func(n N) S {
		for n > hi {
			sqrt++
			s := N(sqrt)
			hi += s + s + 1
		}
		return sqrt
	}
}

// Descending is the mirror image of Ascending for non-increasing values.
// Calling it with a value higher than a previous one returns the previous
// root again.
func Descending[N constraints.Unsigned, S constraints.Unsigned](init S) func(N) S {
	sqrt := init
	s := N(init)
	lo := s * s
	return func(n N) S {
		for n < lo {
			sqrt--
			s := N(sqrt)
			lo -= s + s + 1
		}
		return sqrt
	}
}

// ChangingNearest is like Changing but rounds to the nearest integer square
// root instead of flooring: root s is valid for [s²−s+1, s²+s], so 6 maps
// to 2 and 7 maps to 3. Near the top of N's range the window's upper edge
// saturates at N's maximum, since (s+1)·(s+1) is no longer representable.
func ChangingNearest[N constraints.Unsigned, S constraints.Unsigned](init S) func(N) S {
	maxN := ^N(0)
	sqrt := init
	s := N(init)
	lo := N(0)
	if s > 0 {
		lo = s*s - s + 1
	}
	hi := s*s + s
	if hi < lo {
		hi = maxN
	}
	return func(n N) S {
		if n > hi {
			for n > hi {
				sqrt++
				s := N(sqrt)
				lo = hi + 1
				hi += s + s
				if hi < lo {
					hi = maxN
				}
			}
		} else {
			for n < lo {
				sqrt--
				s := N(sqrt)
				hi = lo - 1
				if hi == 0 {
					lo = 0
				} else {
					lo = hi - s - s + 1
				}
			}
		}
		return sqrt
	}
}
