package scene

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/material"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// NewRandomScene creates a field of small random spheres around three
// large ones. The layout depends only on seed.
func NewRandomScene(seed int64) *Scene {
	sampler := core.NewSeededSampler(seed)

	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:        core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20.0,
			Aperture:      0.1,
			FocusDistance: 10.0,
		},
		Background: integrator.NewSkyBackground(),
		Render: renderer.RenderConfig{
			Width:           600,
			Height:          400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Seed:            seed,
		},
	}

	s.Shapes = append(s.Shapes, NewGroundSphere(0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	glass := material.NewDielectric(1.5)
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			// Keep the space around the large metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMaterial < 0.8:
				albedo := randomColor(sampler, 0, 1).MultiplyVec(randomColor(sampler, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				albedo := randomColor(sampler, 0.5, 1)
				mat = material.NewMetal(albedo, 0.5*sampler.Get1D())
			default:
				mat = glass
			}
			s.Shapes = append(s.Shapes, geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

// randomColor returns a color with each channel uniform in [lo, hi)
func randomColor(sampler core.Sampler, lo, hi float64) core.Vec3 {
	span := hi - lo
	return core.NewVec3(
		lo+span*sampler.Get1D(),
		lo+span*sampler.Get1D(),
		lo+span*sampler.Get1D(),
	)
}
