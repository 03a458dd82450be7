package geometry

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// MockMaterial absorbs every ray; tests only compare it by identity
type MockMaterial struct {
	name string
}

func (m *MockMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
