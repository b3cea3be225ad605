package random

import "fmt"

// RangeROpen returns an integer in [lo, hi) derived from a single call to
// g.Rand. The result carries modulo bias when hi-lo is not a power of two.
// It panics if lo >= hi.
func RangeROpen[W Word, U Integer](g Generator[W], lo, hi U) U {
	if lo >= hi {
		panic(fmt.Sprintf("random: invalid range [%v, %v)", lo, hi))
	}
	span := uint64(hi) - uint64(lo)
	return lo + U(uint64(g.Rand())%span)
}

// RangeRClose returns an integer in [lo, hi] derived from a single call to
// g.Rand. It panics if lo > hi.
func RangeRClose[W Word, U Integer](g Generator[W], lo, hi U) U {
	if lo > hi {
		panic(fmt.Sprintf("random: invalid range [%v, %v]", lo, hi))
	}
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		// [lo, hi] covers every uint64
		return lo + U(g.Rand())
	}
	return lo + U(uint64(g.Rand())%span)
}

// RangeROpenN returns an integer in [0, v). It panics if v <= 0.
func RangeROpenN[W Word, U Integer](g Generator[W], v U) U {
	if v <= 0 {
		panic(fmt.Sprintf("random: invalid bound %v", v))
	}
	return U(uint64(g.Rand()) % uint64(v))
}

// RangeROpenFloat returns a float32 in [lo, hi) using g.Frand2.
func RangeROpenFloat(g Float32Generator, lo, hi float32) float32 {
	if lo > hi {
		panic(fmt.Sprintf("random: invalid range [%v, %v)", lo, hi))
	}
	return float32((hi-lo)*g.Frand2()) + lo
}

// RangeRCloseFloat returns a float32 in [lo, hi] using g.Frand, whose
// (0, 1] output makes hi reachable.
func RangeRCloseFloat(g Float32Generator, lo, hi float32) float32 {
	if lo > hi {
		panic(fmt.Sprintf("random: invalid range [%v, %v]", lo, hi))
	}
	return float32((hi-lo)*g.Frand()) + lo
}

// RangeROpenFloat64 returns a float64 in [lo, hi) using g.Drand2.
func RangeROpenFloat64(g Float64Generator, lo, hi float64) float64 {
	if lo > hi {
		panic(fmt.Sprintf("random: invalid range [%v, %v)", lo, hi))
	}
	return float64((hi-lo)*g.Drand2()) + lo
}
