package rng

//go:generate mockgen -destination=mock/mock_source.go -package=mockrng -source=source.go

// Source provides the randomness used by equipment generation and sampling.
// This allows us to inject different implementations for testing.
type Source interface {
	// Float64 returns a uniform value in [0.0, 1.0)
	Float64() float64

	// Intn returns a uniform value in [0, n)
	Intn(n int) int

	// IntRange returns a uniform integer in [min, max] inclusive
	IntRange(min, max int) int

	// FloatRange returns a uniform value in [min, max)
	FloatRange(min, max float64) float64
}
