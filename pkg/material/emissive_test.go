package material

import (
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

func TestEmissive(t *testing.T) {
	light := NewEmissive(core.NewVec3(4, 4, 3))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, scattered := light.Scatter(ray, floorHit(true), constSampler{u: 0.5}); scattered {
		t.Error("Emissive material should absorb")
	}
	for _, frontFace := range []bool{true, false} {
		if got := light.Emit(ray, floorHit(frontFace)); got != core.NewVec3(4, 4, 3) {
			t.Errorf("frontFace=%v: expected (4, 4, 3), got %v", frontFace, got)
		}
	}
}

func TestMix(t *testing.T) {
	diffuse := NewLambertian(core.NewVec3(0.2, 0.4, 0.6))
	light := NewEmissive(core.NewVec3(2, 2, 2))
	mix := NewMix(diffuse, light, 0.25)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name      string
		u         float64
		scattered bool
	}{
		{"Below ratio picks second material", 0.1, false},
		{"Above ratio picks first material", 0.9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, scattered := mix.Scatter(ray, floorHit(true), constSampler{u: tt.u, signed: 0.5})
			if scattered != tt.scattered {
				t.Fatalf("Expected scattered=%v, got %v", tt.scattered, scattered)
			}
			if scattered && result.Attenuation != diffuse.Albedo {
				t.Errorf("Expected diffuse attenuation, got %v", result.Attenuation)
			}
		})
	}

	if got := mix.Emit(ray, floorHit(true)); !vecNear(got, core.NewVec3(0.5, 0.5, 0.5), 1e-12) {
		t.Errorf("Expected weighted emission (0.5, 0.5, 0.5), got %v", got)
	}
}

func TestNewMix_ClampsRatio(t *testing.T) {
	if m := NewMix(nil, nil, 1.5); m.Ratio != 1 {
		t.Errorf("Expected ratio 1, got %f", m.Ratio)
	}
	if m := NewMix(nil, nil, -0.5); m.Ratio != 0 {
		t.Errorf("Expected ratio 0, got %f", m.Ratio)
	}
}
