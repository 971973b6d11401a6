package engine

import "math/rand"

// Source yields the integer draws the engine's rules consume.
// A draw is uniform over [low, high] inclusive in production use; test
// doubles may return scripted values instead. Bounds discipline is the
// engine's responsibility, not the source's.
type Source interface {
	Intn(low, high int) int
}

// Roller is the production Source: a seeded math/rand generator that
// counts its draws so a session can be replayed from seed and position.
type Roller struct {
	seed  int64
	src   *rand.Rand
	draws int64
}

// NewRoller creates a deterministic Roller from a seed.
func NewRoller(seed int64) *Roller {
	return &Roller{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform integer in [low, high] inclusive.
func (r *Roller) Intn(low, high int) int {
	r.draws++
	return low + r.src.Intn(high-low+1)
}

// Seed returns the seed this Roller was created with.
func (r *Roller) Seed() int64 {
	return r.seed
}

// Draws returns the number of draws made since creation.
func (r *Roller) Draws() int64 {
	return r.draws
}

// Script is a Source for tests: it replays a fixed sequence of values,
// cycling back to the start when exhausted, and ignores the requested
// bounds entirely.
type Script struct {
	values []int
	next   int
	draws  int
}

// NewScript creates a Script that replays the given values in order.
func NewScript(values ...int) *Script {
	if len(values) == 0 {
		panic("engine: Script needs at least one value")
	}
	return &Script{values: values}
}

// Intn returns the next scripted value regardless of low and high.
func (s *Script) Intn(low, high int) int {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	s.draws++
	return v
}

// Draws returns how many values have been handed out, counting cycles.
// Tests use this to assert that an operation consumed exactly the draws
// its contract allows.
func (s *Script) Draws() int {
	return s.draws
}
