package isqrt_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/isqrt"
	"github.com/stretchr/testify/require"
)

func TestSqrtSmall(t *testing.T) {
	expected := []uint8{
		// 0  1  2  3  4  5  6  7  8  9 10 11 12 13 14 15 16     // n
		0, 1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 4, // isqrt(n)
	}
	for n, exp := range expected {
		if s := isqrt.Sqrt(uint8(n)); s != exp {
			t.Errorf("expected Sqrt(%d) to be %d, is %d", n, exp, s)
		}
	}
}

func TestSqrtPerfectSquares(t *testing.T) {
	for _, k := range []uint64{1, 2, 3, 10, 999, 65_536, 1 << 20, 1<<32 - 1} {
		if s := isqrt.Sqrt(k * k); s != k {
			t.Errorf("expected Sqrt(%d²) to be %d, is %d", k, k, s)
		}
		if s := isqrt.Sqrt(k*k - 1); s != k-1 {
			t.Errorf("expected Sqrt(%d²−1) to be %d, is %d", k, k-1, s)
		}
	}
}

func TestSqrtWidthMaxima(t *testing.T) {
	if s := isqrt.Sqrt(uint8(math.MaxUint8)); s != 15 {
		t.Errorf("expected Sqrt(255) to be 15, is %d", s)
	}
	if s := isqrt.Sqrt(uint16(math.MaxUint16)); s != 255 {
		t.Errorf("expected Sqrt(65535) to be 255, is %d", s)
	}
	if s := isqrt.Sqrt(uint32(math.MaxUint32)); s != 65535 {
		t.Errorf("expected Sqrt(2³²−1) to be 65535, is %d", s)
	}
	if s := isqrt.Sqrt(uint64(math.MaxUint64)); s != 1<<32-1 {
		t.Errorf("expected Sqrt(2⁶⁴−1) to be 2³²−1, is %d", s)
	}
}

func TestSqrtExhaustiveUint16(t *testing.T) {
	for n := 0; n <= math.MaxUint16; n++ {
		s := uint32(isqrt.Sqrt(uint16(n)))
		if s*s > uint32(n) {
			t.Fatalf("isqrt of %d is too high: %d", n, s)
		}
		if (s+1)*(s+1) <= uint32(n) {
			t.Fatalf("isqrt of %d is too low: %d", n, s)
		}
	}
}

func TestSqrtRandomUint64(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))
	for i := 0; i < 100_000; i++ {
		n := rng.Uint64()
		require.Equal(t, refSqrt(n), isqrt.Sqrt(n), "Sqrt(%d) disagrees with reference", n)
	}
}

func TestNearest(t *testing.T) {
	expected := []uint8{
		// 0  1  2  3  4  5  6  7  8  9     // n
		0, 1, 1, 2, 2, 2, 2, 3, 3, 3, // nearest isqrt(n)
	}
	for n, exp := range expected {
		if s := isqrt.Nearest(uint8(n)); s != exp {
			t.Errorf("expected Nearest(%d) to be %d, is %d", n, exp, s)
		}
	}
	// Midpoint rule: s stays valid up to s² + s, not beyond.
	if s := isqrt.Nearest(uint32(12)); s != 3 {
		t.Errorf("expected Nearest(12) to be 3, is %d", s)
	}
	if s := isqrt.Nearest(uint32(13)); s != 4 {
		t.Errorf("expected Nearest(13) to be 4, is %d", s)
	}
	// Near the top of the width the result exceeds the floor root.
	if s := isqrt.Nearest(uint8(math.MaxUint8)); s != 16 {
		t.Errorf("expected Nearest(255) to be 16, is %d", s)
	}
}

func TestPerfectSquare(t *testing.T) {
	for _, k := range []uint64{0, 1, 2, 3, 256, 1<<32 - 1} {
		if !isqrt.PerfectSquare(k * k) {
			t.Errorf("expected %d² to be a perfect square", k)
		}
	}
	for _, n := range []uint64{2, 3, 5, 99, 1<<62 + 1} {
		if isqrt.PerfectSquare(n) {
			t.Errorf("expected %d not to be a perfect square", n)
		}
	}
}

// refSqrt is an independent reference: binary search over candidate roots.
func refSqrt(n uint64) uint64 {
	var lo, hi uint64 = 0, 1<<32 - 1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if mid*mid <= n {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func BenchmarkSqrt(b *testing.B) {
	var s uint64
	for i := 0; i < b.N; i++ {
		s += isqrt.Sqrt(uint64(i) * 7919)
	}
	benchSink = s
}

var benchSink uint64
