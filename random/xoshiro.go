package random

import "math/bits"

var (
	default128 = [...]uint32{123456789, 362436069, 521288629, 88675123}
	default256 = [...]uint64{123456789123456789, 362436069362436069, 521288629521288629, 8867512388675123}
)

type xoshiro128StarStar struct{}

func (xoshiro128StarStar) words() int { return 4 }

func (xoshiro128StarStar) step(s *[maxWords]uint32, _ *int) uint32 {
	result := bits.RotateLeft32(s[0]*5, 7) * 9
	xoshiro128Update(s)
	return result
}

type xoshiro128Plus struct{}

func (xoshiro128Plus) words() int { return 4 }

func (xoshiro128Plus) step(s *[maxWords]uint32, _ *int) uint32 {
	result := s[0] + s[3]
	xoshiro128Update(s)
	return result
}

func xoshiro128Update(s *[maxWords]uint32) {
	t := s[1] << 9

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft32(s[3], 11)
}

type xoroshiro128Plus struct{}

func (xoroshiro128Plus) words() int { return 2 }

func (xoroshiro128Plus) step(s *[maxWords]uint64, _ *int) uint64 {
	s0 := s[0]
	s1 := s[1]
	result := s0 + s1

	s1 ^= s0
	s[0] = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
	s[1] = bits.RotateLeft64(s1, 37)

	return result
}

type xoroshiro256Plus struct{}

func (xoroshiro256Plus) words() int { return 4 }

func (xoroshiro256Plus) step(s *[maxWords]uint64, _ *int) uint64 {
	result := s[0] + s[3]
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

type xoroshiro512Plus struct{}

func (xoroshiro512Plus) words() int { return 8 }

func (xoroshiro512Plus) step(s *[maxWords]uint64, _ *int) uint64 {
	result := s[0] + s[2]
	t := s[1] << 11

	s[2] ^= s[0]
	s[5] ^= s[1]
	s[1] ^= s[2]
	s[7] ^= s[3]
	s[3] ^= s[4]
	s[4] ^= s[5]
	s[0] ^= s[6]
	s[6] ^= s[7]

	s[6] ^= t

	s[7] = bits.RotateLeft64(s[7], 21)

	return result
}

// Xoshiro128StarStar is the xoshiro128** generator: 32-bit output, 128
// bits of state.
type Xoshiro128StarStar struct {
	engine[uint32, xoshiro128StarStar]
}

// NewXoshiro128StarStar returns a generator seeded with seed.
func NewXoshiro128StarStar(seed uint32) *Xoshiro128StarStar {
	r := &Xoshiro128StarStar{}
	r.Srand(seed)
	return r
}

// DefaultXoshiro128StarStar returns a generator in the fixed default state.
func DefaultXoshiro128StarStar() *Xoshiro128StarStar {
	r := &Xoshiro128StarStar{}
	r.load(default128[:]...)
	return r
}

// Frand returns a float32 in (0, 1].
func (r *Xoshiro128StarStar) Frand() float32 { return ToF32Open0(r.Rand()) }

// Frand2 returns a float32 in [0, 1).
func (r *Xoshiro128StarStar) Frand2() float32 { return ToF32(r.Rand()) }

// Xoshiro128Plus is the xoshiro128+ generator: 32-bit output, 128 bits of
// state.
type Xoshiro128Plus struct {
	engine[uint32, xoshiro128Plus]
}

// NewXoshiro128Plus returns a generator seeded with seed.
func NewXoshiro128Plus(seed uint32) *Xoshiro128Plus {
	r := &Xoshiro128Plus{}
	r.Srand(seed)
	return r
}

// DefaultXoshiro128Plus returns a generator in the fixed default state.
func DefaultXoshiro128Plus() *Xoshiro128Plus {
	r := &Xoshiro128Plus{}
	r.load(default128[:]...)
	return r
}

// Frand returns a float32 in (0, 1].
func (r *Xoshiro128Plus) Frand() float32 { return ToF32Open0(r.Rand()) }

// Frand2 returns a float32 in [0, 1).
func (r *Xoshiro128Plus) Frand2() float32 { return ToF32(r.Rand()) }

// Xoroshiro128Plus is the xoroshiro128+ generator: 64-bit output, 128 bits
// of state.
type Xoroshiro128Plus struct {
	engine[uint64, xoroshiro128Plus]
}

// NewXoroshiro128Plus returns a generator seeded with seed.
func NewXoroshiro128Plus(seed uint64) *Xoroshiro128Plus {
	r := &Xoroshiro128Plus{}
	r.Srand(seed)
	return r
}

// DefaultXoroshiro128Plus returns a generator in the fixed default state.
func DefaultXoroshiro128Plus() *Xoroshiro128Plus {
	r := &Xoroshiro128Plus{}
	r.load(default256[:2]...)
	return r
}

// Drand2 returns a float64 in [0, 1).
func (r *Xoroshiro128Plus) Drand2() float64 { return ToF64(r.Rand()) }

// Xoroshiro256Plus is the xoshiro256+ generator: 64-bit output, 256 bits
// of state.
type Xoroshiro256Plus struct {
	engine[uint64, xoroshiro256Plus]
}

// NewXoroshiro256Plus returns a generator seeded with seed.
func NewXoroshiro256Plus(seed uint64) *Xoroshiro256Plus {
	r := &Xoroshiro256Plus{}
	r.Srand(seed)
	return r
}

// DefaultXoroshiro256Plus returns a generator in the fixed default state.
func DefaultXoroshiro256Plus() *Xoroshiro256Plus {
	r := &Xoroshiro256Plus{}
	r.load(default256[:]...)
	return r
}

// Drand2 returns a float64 in [0, 1).
func (r *Xoroshiro256Plus) Drand2() float64 { return ToF64(r.Rand()) }

// Xoroshiro512Plus is the xoshiro512+ generator: 64-bit output, 512 bits
// of state.
type Xoroshiro512Plus struct {
	engine[uint64, xoroshiro512Plus]
}

// NewXoroshiro512Plus returns a generator seeded with seed.
func NewXoroshiro512Plus(seed uint64) *Xoroshiro512Plus {
	r := &Xoroshiro512Plus{}
	r.Srand(seed)
	return r
}

// DefaultXoroshiro512Plus returns a generator in the fixed default state,
// which is the Xoroshiro256Plus default repeated twice.
func DefaultXoroshiro512Plus() *Xoroshiro512Plus {
	r := &Xoroshiro512Plus{}
	r.load(append(default256[:], default256[:]...)...)
	return r
}

// Drand2 returns a float64 in [0, 1).
func (r *Xoroshiro512Plus) Drand2() float64 { return ToF64(r.Rand()) }
