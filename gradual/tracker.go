package gradual

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/npillmayer/isqrt"
	"golang.org/x/exp/constraints"
)

// Errors returned by tracker mutations. Range violations are detected before
// any state changes, so a failed call leaves the tracker exactly as it was.
var (
	ErrOutOfRange = errors.New("value not representable with tracker's width")
	ErrOverflow   = errors.New("delta overflows tracker's width")
	ErrUnderflow  = errors.New("delta underflows below zero")
)

// A Tracker owns a non-negative value n and keeps its integer square root
// available across mutations of n. The type parameter fixes the representable
// range of n to [0, max] for the chosen unsigned width; arithmetic on the
// window is carried out in 64 bits internally.
//
// Between any two calls the tracker satisfies root² ≤ n < (root+1)².
type Tracker[T constraints.Unsigned] struct {
	n    uint64 // current value, ≤ max
	root uint64 // ⌊√n⌋
	lo   uint64 // root², smallest value the current root is valid for
	hi   uint64 // root² + 2·root = (root+1)² − 1, largest such value
	max  uint64 // largest value representable by T
}

// New creates a tracker for an initial value. This is the one call that
// always pays for a full square root computation; subsequent mutations are
// cheap as long as they move n gradually.
func New[T constraints.Unsigned](initial T) *Tracker[T] {
	t := &Tracker[T]{max: uint64(^T(0))}
	t.refit(uint64(initial))
	return t
}

// Value returns the current value n.
func (t *Tracker[T]) Value() T {
	return T(t.n)
}

// Root returns ⌊√n⌋ for the current value n.
func (t *Tracker[T]) Root() T {
	return T(t.root)
}

// Set replaces the current value. It fails with ErrOutOfRange if v is not
// representable with the tracker's width, leaving the tracker untouched.
// On success it returns the root of the new value.
//
// Set(v) is equivalent in outcome to creating a fresh tracker with New(v);
// it is merely cheaper when v is close to the current value.
func (t *Tracker[T]) Set(v uint64) (T, error) {
	if v > t.max {
		return T(t.root), ErrOutOfRange
	}
	if v >= t.n {
		t.grow(v)
	} else {
		t.shrink(v)
	}
	return T(t.root), nil
}

// Add applies a signed delta to the current value and returns the updated
// root. It fails with ErrOverflow or ErrUnderflow if the result would leave
// [0, max]; the tracker is untouched then.
func (t *Tracker[T]) Add(delta int64) (T, error) {
	if delta < 0 {
		return t.down(negMag(delta))
	}
	return t.up(uint64(delta))
}

// Sub subtracts a signed delta from the current value; Sub(d) behaves like
// Add(−d) with the full int64 range of d supported.
func (t *Tracker[T]) Sub(delta int64) (T, error) {
	if delta < 0 {
		return t.up(negMag(delta))
	}
	return t.down(uint64(delta))
}

func (t *Tracker[T]) String() string {
	return fmt.Sprintf("Tracker(n=%d, √=%d)", t.n, t.root)
}

// --- Internals -------------------------------------------------------------

// negMag returns |d| for negative d. Works for math.MinInt64, which has no
// int64 negation.
func negMag(d int64) uint64 {
	return uint64(-(d + 1)) + 1
}

func (t *Tracker[T]) up(d uint64) (T, error) {
	sum, carry := bits.Add64(t.n, d, 0)
	if carry != 0 || sum > t.max {
		return T(t.root), ErrOverflow
	}
	t.grow(sum)
	return T(t.root), nil
}

func (t *Tracker[T]) down(d uint64) (T, error) {
	if d > t.n {
		return T(t.root), ErrUnderflow
	}
	t.shrink(t.n - d)
	return T(t.root), nil
}

// maxWalk bounds the number of window steps we are willing to walk before
// giving up and refitting with a full square root computation.
const maxWalk = 64

// tooFar estimates the walk length for a jump of size d: each step upward
// from root s covers 2s+1 values. The estimate errs on the high side for
// growing jumps, i.e. we refit a little too eagerly rather than too late.
func tooFar(d, root uint64) bool {
	return d/(2*root+1) > maxWalk
}

// grow moves the tracker to v ≥ n, sliding the validity window upward until
// it covers v. Each iteration advances the root by exactly 1:
// lo′ = hi+1, hi′ = lo′ + 2·root′.
func (t *Tracker[T]) grow(v uint64) {
	if tooFar(v-t.n, t.root) {
		t.refit(v)
		return
	}
	t.n = v
	for t.n > t.hi {
		t.root++
		t.lo = t.hi + 1
		t.hi = t.lo + 2*t.root
	}
}

// shrink moves the tracker to v ≤ n, the mirror image of grow:
// hi′ = lo−1, lo′ = hi′ − 2·root′.
func (t *Tracker[T]) shrink(v uint64) {
	if tooFar(t.n-v, t.root) {
		t.refit(v)
		return
	}
	t.n = v
	for t.n < t.lo {
		t.hi = t.lo - 1
		t.root--
		t.lo = t.hi - 2*t.root
	}
}

// refit recomputes root and window from scratch. Since root ≤ 2³²−1,
// lo + 2·root cannot overflow: it is (root+1)² − 1 ≤ 2⁶⁴ − 1.
func (t *Tracker[T]) refit(v uint64) {
	tracer().Debugf("refit: full isqrt for n=%d (previous root %d)", v, t.root)
	t.n = v
	t.root = isqrt.Sqrt(v)
	t.lo = t.root * t.root
	t.hi = t.lo + 2*t.root
	assertThat(t.lo <= t.n && t.n <= t.hi, "window [%d…%d] does not cover %d", t.lo, t.hi, t.n)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("gradual: "+msg, msgargs...)
		panic(msg)
	}
}
