package material

import (
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
		{"Clamp large negative", -10.0, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)

	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(2, -2, 0))
	result, scattered := metal.Scatter(ray, floorHit(true), core.NewSeededSampler(42))
	if !scattered {
		t.Fatal("Expected reflection above the surface")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if !vecNear(result.Scattered.Direction, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, result.Scattered.Direction)
	}
	if result.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, result.Attenuation)
	}
}

func TestMetal_FuzzBelowSurfaceAbsorbs(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 1.0)

	// Grazing ray reflects to (0.99995, 0.01, 0); fuzz (-0.5, -0.5, -0.5) pushes it under
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	sampler := constSampler{u: 0.5, signed: -0.5}

	if _, scattered := metal.Scatter(ray, floorHit(true), sampler); scattered {
		t.Error("Expected ray pushed below the surface to be absorbed")
	}
}
