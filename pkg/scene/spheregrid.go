package scene

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/material"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 12

// NewSphereGridScene creates a scene with a grid of spheres whose hue
// varies along X and chroma along Z. Every seventh sphere is glass.
func NewSphereGridScene() *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:   core.NewVec3(4.5, 6, 18),    // Position camera farther back and slightly lower
			LookAt:   core.NewVec3(4.5, 0.8, 4.5), // Look at center of grid, slightly lower
			Up:       core.NewVec3(0, 1, 0),
			VFov:     40.0,
			Aperture: 0.02,
		},
		Background: integrator.NewSkyBackground(),
		Render: renderer.RenderConfig{
			Width:           640,
			Height:          360,
			SamplesPerPixel: 64,
			MaxDepth:        40,
			Seed:            42,
		},
	}

	s.Shapes = append(s.Shapes, NewGroundSphere(0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	// Fit the grid into a 9x9 area centred on the look-at point
	targetArea := 9.0
	spacing := targetArea / float64(sphereGridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	glass := material.NewDielectric(1.5)
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			if (i*sphereGridSize+j)%7 == 0 {
				s.Shapes = append(s.Shapes, geometry.NewSphere(position, sphereRadius, glass))
				continue
			}

			hue := (float64(i) / float64(sphereGridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(sphereGridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			metal := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)
			s.Shapes = append(s.Shapes, geometry.NewSphere(position, sphereRadius, metal))
		}
	}

	return s
}
