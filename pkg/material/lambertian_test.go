package material

import (
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

func TestLambertian_ScatterAboveSurface(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.3, 0.2)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	for i := 0; i < 1000; i++ {
		result, scattered := lambertian.Scatter(ray, floorHit(true), sampler)
		if !scattered {
			t.Fatal("Lambertian should never absorb")
		}
		if result.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, result.Attenuation)
		}
		if result.Scattered.Origin != core.NewVec3(0, 0, 0) {
			t.Fatalf("Scattered ray should start at hit point, got %v", result.Scattered.Origin)
		}
		// normal + unit vector never points below the surface
		if result.Scattered.Direction.Dot(core.NewVec3(0, 1, 0)) < 0 {
			t.Fatalf("Scattered direction %v below surface", result.Scattered.Direction)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	// The unit vector exactly opposite the normal cancels it out
	hit := floorHit(true)
	hit.Normal = core.NewVec3(1, 1, 1).Normalize().Negate()
	sampler := constSampler{u: 0.5, signed: 0.5}

	result, scattered := lambertian.Scatter(core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)), hit, sampler)
	if !scattered {
		t.Fatal("Lambertian should never absorb")
	}
	if result.Scattered.Direction != hit.Normal {
		t.Errorf("Expected fallback to normal %v, got %v", hit.Normal, result.Scattered.Direction)
	}
}
