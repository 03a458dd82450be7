package material

import (
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

func TestNormal_EmitMapsNormalToColor(t *testing.T) {
	normal := NewNormal()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, scattered := normal.Scatter(ray, floorHit(true), constSampler{}); scattered {
		t.Error("Normal material should absorb")
	}

	var emitter core.Emitter = normal
	if got := emitter.Emit(ray, floorHit(true)); got != core.NewVec3(0.5, 1, 0.5) {
		t.Errorf("Expected (0.5, 1, 0.5), got %v", got)
	}
}
