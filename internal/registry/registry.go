// Package registry exposes every generator in package random behind one
// runtime interface, selected by name.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/prng/random"
)

// ErrUnknownEngine is returned by Lookup and New for names that are not
// registered.
var ErrUnknownEngine = errors.New("unknown engine")

// Engine is a generator with its width erased. Rand returns the native
// output widened to 64 bits, so an Engine also satisfies
// random.Generator[uint64] without changing the stream.
type Engine interface {
	Name() string
	Width() int
	Seed(seed uint64)
	Rand() uint64
	Float() float64
}

// Info describes a registered engine.
type Info struct {
	Name  string
	Width int
	Words int
	New   func() Engine
}

var engines = map[string]Info{}

func register(name string, width, words int, fn func() Engine) {
	engines[name] = Info{Name: name, Width: width, Words: words, New: fn}
}

func init() {
	register("xoshiro128**", 32, 4, func() Engine {
		return &engine32{name: "xoshiro128**", g: random.DefaultXoshiro128StarStar()}
	})
	register("xoshiro128+", 32, 4, func() Engine {
		return &engine32{name: "xoshiro128+", g: random.DefaultXoshiro128Plus()}
	})
	register("well512", 32, 16, func() Engine {
		return &engine32{name: "well512", g: random.DefaultRandWELL()}
	})
	register("xoroshiro128+", 64, 2, func() Engine {
		return &engine64{name: "xoroshiro128+", g: random.DefaultXoroshiro128Plus()}
	})
	register("xoroshiro256+", 64, 4, func() Engine {
		return &engine64{name: "xoroshiro256+", g: random.DefaultXoroshiro256Plus()}
	})
	register("xoroshiro512+", 64, 8, func() Engine {
		return &engine64{name: "xoroshiro512+", g: random.DefaultXoroshiro512Plus()}
	})
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered engine, sorted by name.
func All() []Info {
	infos := make([]Info, 0, len(engines))
	for _, name := range Names() {
		infos = append(infos, engines[name])
	}
	return infos
}

// Lookup returns the registration for name.
func Lookup(name string) (Info, error) {
	info, ok := engines[name]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return info, nil
}

// New returns the named engine seeded with seed. 32-bit engines use the
// low half of seed.
func New(name string, seed uint64) (Engine, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	e := info.New()
	e.Seed(seed)
	return e, nil
}

type generator32 interface {
	random.Generator[uint32]
	random.Float32Generator
	Srand(seed uint32)
}

type engine32 struct {
	name string
	g    generator32
}

func (e *engine32) Name() string     { return e.name }
func (e *engine32) Width() int       { return 32 }
func (e *engine32) Seed(seed uint64) { e.g.Srand(uint32(seed)) }
func (e *engine32) Rand() uint64     { return uint64(e.g.Rand()) }
func (e *engine32) Float() float64   { return float64(e.g.Frand2()) }

type generator64 interface {
	random.Generator[uint64]
	random.Float64Generator
	Srand(seed uint64)
}

type engine64 struct {
	name string
	g    generator64
}

func (e *engine64) Name() string     { return e.name }
func (e *engine64) Width() int       { return 64 }
func (e *engine64) Seed(seed uint64) { e.g.Srand(seed) }
func (e *engine64) Rand() uint64     { return e.g.Rand() }
func (e *engine64) Float() float64   { return e.g.Drand2() }
