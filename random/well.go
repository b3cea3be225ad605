package random

const wellMask = 0xDA442D24

// well512 is WELL512a. It mixes three words relative to a rotating index
// and walks the index backwards through the 16-word state.
type well512 struct{}

func (well512) words() int { return 16 }

func (well512) step(s *[maxWords]uint32, index *int) uint32 {
	i := *index
	a := s[i]
	c := s[(i+13)&15]
	b := a ^ c ^ (a << 16) ^ (c << 15)
	c = s[(i+9)&15]
	c ^= c >> 11
	a = b ^ c
	s[i] = a
	d := a ^ ((a << 5) & wellMask)
	i = (i + 15) & 15
	a = s[i]
	s[i] = a ^ b ^ d ^ (a << 2) ^ (b << 18) ^ (c << 28)
	*index = i
	return s[i]
}

// RandWELL is a WELL512a generator: 32-bit output, 512 bits of state.
type RandWELL struct {
	engine[uint32, well512]
}

// NewRandWELL returns a generator seeded with seed.
func NewRandWELL(seed uint32) *RandWELL {
	r := &RandWELL{}
	r.Srand(seed)
	return r
}

// DefaultRandWELL returns a generator seeded with StaticSeed.
func DefaultRandWELL() *RandWELL {
	return NewRandWELL(StaticSeed)
}

// Frand returns a float32 in (0, 1].
func (r *RandWELL) Frand() float32 { return ToF32Open0(r.Rand()) }

// Frand2 returns a float32 in [0, 1).
func (r *RandWELL) Frand2() float32 { return ToF32(r.Rand()) }
