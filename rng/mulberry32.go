// Package rng provides the seeded pseudo-random stream used by poster
// backgrounds.
//
// The generator is mulberry32. Its exact arithmetic is part of the
// reproducibility contract: the same seed must yield the same stream on
// every platform and in every implementation of the renderer, so the
// algorithm must not be swapped for math/rand.
package rng

// Source is a stream of floats in [0, 1).
type Source interface {
	Next() float64
}

// Mulberry32 is a 32-bit state generator. It is not safe for concurrent use;
// each render owns its own instance.
type Mulberry32 struct {
	state uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 advances the state and returns the raw 32-bit output.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Next returns the next float in [0, 1).
func (m *Mulberry32) Next() float64 {
	return float64(m.Uint32()) / 4294967296.0
}

// Fixed replays a fixed list of values, cycling when exhausted.
// Tests use it to pin draw parameters.
type Fixed struct {
	Values []float64
	i      int
}

func (f *Fixed) Next() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.i%len(f.Values)]
	f.i++
	return v
}
