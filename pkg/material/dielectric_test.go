package material

import (
	"math"
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

func TestDielectric_BasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := floorHit(true)

	hasReflection := false
	hasRefraction := false
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 1000 && (!hasReflection || !hasRefraction); i++ {
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Attenuation != core.NewVec3(1, 1, 1) {
			t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
		}

		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasReflection || !hasRefraction {
		t.Errorf("Expected both reflection and refraction, got reflection=%v refraction=%v", hasReflection, hasRefraction)
	}
}

func TestDielectric_IndexOneDoesNotBend(t *testing.T) {
	air := NewDielectric(1.0)
	direction := core.NewVec3(0.3, -1, 0.2)
	ray := core.NewRay(core.NewVec3(0, 1, 0), direction)

	// Schlick gives (1-cos)^5 ≈ 7e-7 here, so a sample of 0.999 refracts
	for _, frontFace := range []bool{true, false} {
		hit := floorHit(frontFace)
		result, _ := air.Scatter(ray, hit, constSampler{u: 0.999})
		if !vecNear(result.Scattered.Direction, direction.Normalize(), 1e-9) {
			t.Errorf("frontFace=%v: expected %v, got %v", frontFace, direction.Normalize(), result.Scattered.Direction)
		}
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving glass at 60° exceeds the critical angle (41.8°)
	direction := core.NewVec3(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), direction)

	// A sample of 0.999 would refract if refraction were possible
	result, _ := glass.Scatter(ray, floorHit(false), constSampler{u: 0.999})
	expected := direction.Reflect(core.NewVec3(0, 1, 0))
	if !vecNear(result.Scattered.Direction, expected, 1e-9) {
		t.Errorf("Expected reflection %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"Normal incidence air to glass", 1.0, 1.0 / 1.5, 0.04},
		{"Grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"Matched index keeps only the Schlick term", 0.5, 1.0, 0.03125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflectance(tt.cosine, tt.ratio); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
