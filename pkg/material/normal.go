package material

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Normal is a debug material that shades a surface by its normal.
// It never scatters; its color comes entirely from Emit.
type Normal struct{}

// NewNormal creates a normal-shading material
func NewNormal() *Normal {
	return &Normal{}
}

// Scatter always absorbs
func (n *Normal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit maps the unit normal from [-1,1] into [0,1] per channel
func (n *Normal) Emit(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
