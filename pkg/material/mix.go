package material

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Mix represents a material that probabilistically chooses between two materials
type Mix struct {
	Material1 core.Material
	Material2 core.Material
	Ratio     float64 // 0.0 = all material1, 1.0 = all material2
}

// NewMix creates a new mix material
func NewMix(material1, material2 core.Material, ratio float64) *Mix {
	ratio = math.Max(0.0, math.Min(ratio, 1.0))

	return &Mix{
		Material1: material1,
		Material2: material2,
		Ratio:     ratio,
	}
}

// Scatter picks one of the two materials per interaction
func (m *Mix) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	if sampler.Get1D() < m.Ratio {
		return m.Material2.Scatter(rayIn, hit, sampler)
	}
	return m.Material1.Scatter(rayIn, hit, sampler)
}

// Emit returns the ratio-weighted emission of the mixed materials
func (m *Mix) Emit(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	var emitted core.Vec3
	if emitter, ok := m.Material1.(core.Emitter); ok {
		emitted = emitted.Add(emitter.Emit(rayIn, hit).Multiply(1.0 - m.Ratio))
	}
	if emitter, ok := m.Material2.(core.Emitter); ok {
		emitted = emitted.Add(emitter.Emit(rayIn, hit).Multiply(m.Ratio))
	}
	return emitted
}
