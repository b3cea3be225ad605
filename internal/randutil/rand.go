// Package randutil derives independent seeds for parallel streams.
package randutil

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Derive returns the seed for stream number stream under a master seed.
// Neighbouring streams get well separated seeds, so engines whose seed
// expansion is weak on small differences still start far apart.
func Derive(seed uint64, stream int) uint64 {
	return mix(seed + uint64(stream+1)*goldenRatio64)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
