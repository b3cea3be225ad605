package random

// maxWords is the largest state any generator carries.
const maxWords = 16

// recurrence describes one generator family: how many words of state it
// uses and how a single step transforms them. Implementations are zero
// size, so selecting one is a compile-time decision.
type recurrence[W Word] interface {
	words() int
	step(s *[maxWords]W, index *int) W
}

// engine is the state shared by every generator. The state lives in an
// array so that copying a generator copies its state instead of aliasing
// it. index is only meaningful to generators that rotate through their
// state.
type engine[W Word, R recurrence[W]] struct {
	state [maxWords]W
	index int
}

// Srand rebuilds the whole state from seed, discarding the previous state.
func (e *engine[W, R]) Srand(seed W) {
	var r R
	e.state = [maxWords]W{}
	expand(e.state[:r.words()], seed)
	e.index = 0
}

// Rand advances the state by one step and returns the raw output.
func (e *engine[W, R]) Rand() W {
	var r R
	return r.step(&e.state, &e.index)
}

func (e *engine[W, R]) load(words ...W) {
	e.state = [maxWords]W{}
	copy(e.state[:], words)
	e.index = 0
}
