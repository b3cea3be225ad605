package random

import "math"

const (
	f32One      = 0x3F800000
	f32Mantissa = 0x007FFFFF
	f64One      = uint64(0x3FF) << 52
)

// ToF32Open0 maps the low 23 bits of x to a float32 in (0, 1].
//
// The bits are placed in the mantissa of a float in [1, 2) and the result
// is shifted down by 1-2^-23, so 0 is never returned and 1 is.
func ToF32Open0(x uint32) float32 {
	return math.Float32frombits(f32One|(x&f32Mantissa)) - 0.999999881
}

// ToF32 maps the low 23 bits of x to a float32 in [0, 1).
func ToF32(x uint32) float32 {
	return math.Float32frombits(f32One|(x&f32Mantissa)) - 1.0
}

// ToF64 maps the high 52 bits of x to a float64 in [0, 1).
func ToF64(x uint64) float64 {
	return math.Float64frombits(f64One|x>>12) - 1.0
}
