package scene

import (
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// Overrides holds settings that replace a scene's defaults, from command
// line flags or request parameters. Zero values leave the scene untouched.
type Overrides struct {
	Width    int
	Height   int
	Samples  int
	MaxDepth int
	Seed     *int64
	VFov     float64
	Aperture float64
}

// Apply writes the overrides into the scene's render and camera settings.
// It must be called before Build.
func (o Overrides) Apply(s *Scene) {
	if o.Width > 0 {
		s.Render.Width = o.Width
	}
	if o.Height > 0 {
		s.Render.Height = o.Height
	}
	if o.Samples > 0 {
		s.Render.SamplesPerPixel = o.Samples
	}
	if o.MaxDepth > 0 {
		s.Render.MaxDepth = o.MaxDepth
	}
	if o.Seed != nil {
		s.Render.Seed = *o.Seed
	}

	s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, renderer.CameraConfig{
		VFov:     o.VFov,
		Aperture: o.Aperture,
	})
}
