package integrator

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// DefaultEpsilon is the minimum hit distance, which keeps scattered rays
// from re-hitting the surface they leave
const DefaultEpsilon = 1e-4

// PathTracer implements recursive unidirectional path tracing
type PathTracer struct {
	Background Background
	Epsilon    float64
}

// NewPathTracer creates a path tracer with the default epsilon. A nil
// background means the sky gradient.
func NewPathTracer(background Background) *PathTracer {
	if background == nil {
		background = NewSkyBackground()
	}
	return &PathTracer{
		Background: background,
		Epsilon:    DefaultEpsilon,
	}
}

// Radiance computes the color for a single ray
func (pt *PathTracer) Radiance(ray core.Ray, world core.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, pt.Epsilon, math.Inf(1))
	if !isHit {
		return pt.Background.Color(ray)
	}

	// Start with emitted light from the hit material
	colorEmitted := emittedLight(ray, hit)

	if hit.Material == nil {
		return colorEmitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		pt.Radiance(scatter.Scattered, world, sampler, depth-1))

	return colorEmitted.Add(colorScattered)
}

// emittedLight returns the emitted light from a material if it's emissive
func emittedLight(ray core.Ray, hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emit(ray, *hit)
	}
	return core.Vec3{}
}
