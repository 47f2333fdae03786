// Package uuid issues the instance identifiers that distinguish one
// item unit from another copy of the same template.
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator produces unique instance identifiers
type Generator interface {
	New() string
}

// RandomGenerator issues random v4 UUID strings
type RandomGenerator struct{}

// NewRandomGenerator creates a RandomGenerator
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// New returns a fresh identifier
func (g *RandomGenerator) New() string {
	return uuid.New().String()
}
