package random

import "fmt"

// Shuffle permutes s in place with a Fisher-Yates walk from the last
// element down to the second, swapping each with an element drawn from
// the not yet visited prefix.
func Shuffle[W Word, T any](g Generator[W], s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := RangeROpenN(g, i+1)
		s[i], s[j] = s[j], s[i]
	}
}

// ShuffleN permutes the first n elements of s. It makes the same calls on
// g as Shuffle(g, s[:n]) and panics if n is outside [0, len(s)].
func ShuffleN[W Word, T any](g Generator[W], n int, s []T) {
	if n < 0 || n > len(s) {
		panic(fmt.Sprintf("random: shuffle length %d out of range [0, %d]", n, len(s)))
	}
	Shuffle(g, s[:n])
}
