package mockrng

import (
	"sync"
)

// ManualSource implements rng.Source for testing with predetermined values.
// Float64 and FloatRange consume from the float script; Intn and IntRange
// consume from the int script. FloatRange values are taken as-is, so tests
// script the final sampled value, not the unit interval draw.
type ManualSource struct {
	mu       sync.Mutex
	floats   []float64
	ints     []int
	floatIdx int
	intIdx   int
}

// NewManualSource creates a new scripted source
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// SetFloats sets the float script
func (m *ManualSource) SetFloats(values ...float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = values
	m.floatIdx = 0
}

// SetInts sets the int script
func (m *ManualSource) SetInts(values ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = values
	m.intIdx = 0
}

func (m *ManualSource) nextFloat() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.floatIdx >= len(m.floats) {
		panic("manual rng source: float script exhausted")
	}
	v := m.floats[m.floatIdx]
	m.floatIdx++
	return v
}

func (m *ManualSource) nextInt() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.intIdx >= len(m.ints) {
		panic("manual rng source: int script exhausted")
	}
	v := m.ints[m.intIdx]
	m.intIdx++
	return v
}

// Float64 returns the next scripted float
func (m *ManualSource) Float64() float64 {
	return m.nextFloat()
}

// Intn returns the next scripted int
func (m *ManualSource) Intn(n int) int {
	return m.nextInt()
}

// IntRange returns the next scripted int
func (m *ManualSource) IntRange(min, max int) int {
	return m.nextInt()
}

// FloatRange returns the next scripted float
func (m *ManualSource) FloatRange(min, max float64) float64 {
	return m.nextFloat()
}
