package scene

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/material"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// NewPyramidScene creates a square pyramid built from a triangle mesh,
// standing on a quad floor next to a glass sphere and a small box
func NewPyramidScene() *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:   core.NewVec3(0, 2, 6),
			LookAt:   core.NewVec3(0, 0.8, 0),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     45.0,
			Aperture: 0.02,
		},
		Background: integrator.NewSkyBackground(),
		Render: renderer.RenderConfig{
			Width:           600,
			Height:          338,
			SamplesPerPixel: 64,
			MaxDepth:        30,
			Seed:            42,
		},
	}

	floor := geometry.NewQuad(core.NewVec3(-10, 0, -10), core.NewVec3(0, 0, 20), core.NewVec3(20, 0, 0),
		material.NewLambertian(core.NewVec3(0.6, 0.6, 0.55)))

	pyramidVertices := []core.Vec3{
		core.NewVec3(-1, 0, -1), // 0: base corners
		core.NewVec3(1, 0, -1),  // 1
		core.NewVec3(1, 0, 1),   // 2
		core.NewVec3(-1, 0, 1),  // 3
		core.NewVec3(0, 1.6, 0), // 4: apex
	}
	pyramidFaces := []int{
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}
	// Turn the pyramid a little so two faces catch the sky
	turned := geometry.TransformVertices(pyramidVertices, 1, core.NewVec3(0, 0.4, 0), core.Vec3{}, core.NewVec3(-0.8, 0, 0))
	pyramid, err := geometry.NewTriangleMesh(turned, pyramidFaces,
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.3), 0.15))
	if err != nil {
		panic(err)
	}

	s.Shapes = append(s.Shapes, floor...)
	s.Shapes = append(s.Shapes, pyramid...)
	s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(1.4, 0.6, 0.6), 0.6, material.NewDielectric(1.5)))
	s.Shapes = append(s.Shapes, geometry.NewBox(core.NewVec3(0.6, 0.25, 1.8), core.NewVec3(0.25, 0.25, 0.25),
		core.NewVec3(0, 0.7, 0), material.NewLambertian(core.NewVec3(0.2, 0.35, 0.7)))...)

	return s
}
