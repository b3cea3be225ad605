package random

// Word is the native output type of a generator.
type Word interface {
	uint32 | uint64
}

// Integer is the set of types accepted by the integral range helpers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Generator is anything that produces raw words one step at a time.
type Generator[W Word] interface {
	Rand() W
}

// Float32Generator is implemented by the 32-bit generators.
type Float32Generator interface {
	// Frand returns a float32 in (0, 1].
	Frand() float32
	// Frand2 returns a float32 in [0, 1).
	Frand2() float32
}

// Float64Generator is implemented by the 64-bit generators.
type Float64Generator interface {
	// Drand2 returns a float64 in [0, 1).
	Drand2() float64
}
