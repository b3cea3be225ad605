package random

const (
	expandMult32  = 1812433253
	expandShift32 = 30

	expandMult64  = 18124332531812433253
	expandShift64 = 60
)

// Scramble32 mixes v with the step counter i.
func Scramble32(v, i uint32) uint32 {
	return expandMult32*(v^(v>>expandShift32)) + i
}

// Scramble64 mixes v with the step counter i. It keeps the 32-bit
// multiplier and shifts by 41.
func Scramble64(v, i uint64) uint64 {
	return expandMult32*(v^(v>>41)) + i
}

// expand fills s from a single seed: s[0] = seed and every following word
// is derived from its predecessor plus its own index.
func expand[W Word](s []W, seed W) {
	switch s := any(s).(type) {
	case []uint32:
		expand32(s, uint32(seed))
	case []uint64:
		expand64(s, uint64(seed))
	}
}

func expand32(s []uint32, seed uint32) {
	if len(s) == 0 {
		return
	}
	s[0] = seed
	for i := 1; i < len(s); i++ {
		s[i] = Scramble32(s[i-1], uint32(i))
	}
}

func expand64(s []uint64, seed uint64) {
	if len(s) == 0 {
		return
	}
	s[0] = seed
	for i := 1; i < len(s); i++ {
		s[i] = expandMult64*(s[i-1]^(s[i-1]>>expandShift64)) + uint64(i)
	}
}
