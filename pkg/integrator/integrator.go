package integrator

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Radiance computes the color carried back along ray, allowing at most
	// depth further bounces
	Radiance(ray core.Ray, world core.Shape, sampler core.Sampler, depth int) core.Vec3
}

// Background supplies the color of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}
