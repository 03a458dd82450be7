package scene

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/material"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// groundRadius is the radius of the huge sphere used as a floor
const groundRadius = 1000.0

// NewGroundSphere returns a huge sphere whose top touches y = height
func NewGroundSphere(height float64, mat core.Material) *geometry.Sphere {
	return geometry.NewSphere(core.NewVec3(0, height-groundRadius, 0), groundRadius, mat)
}

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	s := &Scene{
		CameraConfig: cameraConfig,
		Background:   integrator.NewSkyBackground(),
		Render: renderer.RenderConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Seed:            42,
		},
	}

	// Create materials
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	s.Shapes = append(s.Shapes,
		NewGroundSphere(0, ground),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianBlue),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),

		// Solid glass sphere
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass),

		// Hollow glass sphere: the negative radius flips the inner surface
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass),
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, glass),
	)

	return s
}

// NewSingleSphereScene creates one diffuse sphere in front of a camera at
// the origin. Small renders of it are checked pixel by pixel in tests.
func NewSingleSphereScene() *Scene {
	return &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:        core.NewVec3(0, 0, 0),
			LookAt:        core.NewVec3(0, 0, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          90.0,
			FocusDistance: 1.0,
		},
		Shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		},
		Background: integrator.NewSkyBackground(),
		Render: renderer.RenderConfig{
			Width:           200,
			Height:          200,
			SamplesPerPixel: 50,
			MaxDepth:        50,
			Seed:            42,
		},
	}
}
