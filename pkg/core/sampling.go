package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Can be swapped out for deterministic testing. Implementations are not
// safe for concurrent use; every goroutine tracing rays needs its own.
type Sampler interface {
	Get1D() float64       // uniform in [0, 1)
	GetSigned1D() float64 // uniform in [-1, 1)
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own fixed-seed source
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// GetSigned1D returns a random float64 in [-1, 1)
func (r *RandomSampler) GetSigned1D() float64 {
	return 2*r.random.Float64() - 1
}

// RandomInUnitSphere generates a random point inside a unit sphere
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube, accept if inside unit sphere
		p := NewVec3(sampler.GetSigned1D(), sampler.GetSigned1D(), sampler.GetSigned1D())
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(sampler.GetSigned1D(), sampler.GetSigned1D(), 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector returns a random direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomInUnitSphere(sampler)
		// Points too close to the origin normalize badly
		if p.LengthSquared() > 1e-160 {
			return p.Normalize()
		}
	}
}
