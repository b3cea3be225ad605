// Package entropy derives non-reproducible seeds from the running system.
//
// The seeds mix wall-clock time, a monotonic counter, free memory and free
// disk blocks. They are good enough to pick a fresh stream per run; they
// are not suitable for anything that needs to be unpredictable.
package entropy

import (
	"time"

	"github.com/coder/quartz"
	"github.com/lox/prng/random"
)

var _ random.EntropySource = (*System)(nil)

// UsageFunc reports free memory and free disk blocks.
type UsageFunc func() (mem, disk uint64)

// System is an EntropySource backed by the host.
type System struct {
	clock quartz.Clock
	start time.Time
	usage UsageFunc
}

// Option configures a System.
type Option func(*System)

// WithUsage replaces the platform memory/disk probe.
func WithUsage(fn UsageFunc) Option {
	return func(s *System) {
		s.usage = fn
	}
}

// New returns a System reading time from clock.
func New(clock quartz.Clock, opts ...Option) *System {
	s := &System{
		clock: clock,
		start: clock.Now(),
		usage: platformUsage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed32 packs the low 16 bits of the millisecond clock and of the counter
// and xors them with free disk and free memory.
func (s *System) Seed32() uint32 {
	ms := uint32(s.clock.Now().UnixMilli())
	counter := uint64(s.clock.Since(s.start))
	mem, disk := s.usage()

	other := (uint32(disk) << 16) | (uint32(mem) & 0xFFFF)
	return ((ms << 16) | uint32(counter&0xFFFF)) ^ other
}

// Seed64 is the 64-bit counterpart of Seed32.
func (s *System) Seed64() uint64 {
	ms := uint64(uint32(s.clock.Now().UnixMilli()))
	counter := uint64(s.clock.Since(s.start))
	mem, disk := s.usage()

	other := (disk << 32) | (mem & 0xFFFFFFFF)
	return ((counter << 32) | ms) ^ other
}
