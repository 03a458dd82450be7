package material

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission core.Vec3 // Emitted radiance, may exceed 1
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface. Emissive surfaces absorb
// every incoming ray; paths end on them.
func (e *Emissive) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emitted light, equal from both sides of the surface
func (e *Emissive) Emit(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return e.Emission
}
