package material

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// constSampler returns fixed values so scattering is reproducible by hand
type constSampler struct {
	u      float64 // Get1D
	signed float64 // GetSigned1D
}

func (s constSampler) Get1D() float64       { return s.u }
func (s constSampler) GetSigned1D() float64 { return s.signed }

func floorHit(frontFace bool) core.HitRecord {
	return core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: frontFace,
	}
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
