// Package random implements a family of small, seedable pseudo-random
// number generators and the helpers built on top of them.
//
// Every generator owns a fixed-size state array that is advanced by one
// step per call to Rand. For a given seed the output sequence is identical
// on every platform, which makes the generators suitable for simulations,
// sampling and reproducible tests. None of them are cryptographically
// secure.
//
// # Generators
//
//	Xoshiro128StarStar  32-bit words, 4 words of state
//	Xoshiro128Plus      32-bit words, 4 words of state
//	Xoroshiro128Plus    64-bit words, 2 words of state
//	Xoroshiro256Plus    64-bit words, 4 words of state
//	Xoroshiro512Plus    64-bit words, 8 words of state
//	RandWELL            32-bit words, 16 words of state (WELL512a)
//
// The 32-bit generators expose Frand, returning a float32 in (0, 1], and
// Frand2, returning a float32 in [0, 1). The 64-bit generators expose
// Drand2, returning a float64 in [0, 1).
//
// # Basic Usage
//
//	g := random.NewXoshiro128Plus(0x1234)
//	x := g.Rand()                        // raw uint32
//	f := g.Frand2()                      // float32 in [0, 1)
//	n := random.RangeROpen(g, 5, 10)     // int in [5, 10)
//	random.Shuffle(g, cards)
//
// A generator must not be used from more than one goroutine at a time.
// Independent instances may be used concurrently.
package random
