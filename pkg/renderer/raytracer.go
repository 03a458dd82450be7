package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/log"
)

var logger = log.New("renderer")

// Raytracer handles the rendering process
type Raytracer struct {
	camera     *Camera
	world      core.Shape
	integrator integrator.Integrator
	config     RenderConfig
}

// NewRaytracer creates a new raytracer over world
func NewRaytracer(camera *Camera, world core.Shape, integ integrator.Integrator, config RenderConfig) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if camera == nil || world == nil || integ == nil {
		return nil, fmt.Errorf("%w: camera, world and integrator are required", ErrInvalidConfig)
	}
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integ,
		config:     config,
	}, nil
}

// Config returns the render settings
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render renders the full image using a sampler seeded from the config
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	return rt.RenderWithSampler(core.NewSeededSampler(rt.config.Seed))
}

// RenderWithSampler renders the full image drawing every random number from sampler
func (rt *Raytracer) RenderWithSampler(sampler core.Sampler) (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)

	logger.Infof("rendering %dx%d at %d spp, max depth %d", fb.Width, fb.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth)
	stats := rt.RenderBounds(fb, fb.Bounds(), sampler)
	logger.Infof("rendered %d samples in %v (%.0f samples/s)", stats.TotalSamples, stats.Elapsed, stats.SamplesPerSecond())

	return fb, stats
}

// RenderBounds renders the pixels of fb inside bounds (image coordinates,
// row 0 at the top). Disjoint bounds touch disjoint pixels, so callers may
// render them concurrently as long as each uses its own sampler.
func (rt *Raytracer) RenderBounds(fb *Framebuffer, bounds image.Rectangle, sampler core.Sampler) RenderStats {
	start := time.Now()
	bounds = bounds.Intersect(fb.Bounds())
	stats := RenderStats{}

	// j counts rows up from the bottom of the image plane
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		j := fb.Height - 1 - y
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			pixel := PixelStats{}

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Convert pixel coordinates to normalized coordinates with jitter
				s := (float64(i) + sampler.Get1D()) / float64(fb.Width)
				t := (float64(j) + sampler.Get1D()) / float64(fb.Height)

				ray := rt.camera.GetRay(s, t, sampler)
				pixel.AddSample(rt.integrator.Radiance(ray, rt.world, sampler, rt.config.MaxDepth))
			}

			fb.Set(i, y, pixel.DisplayColor())
			stats.TotalPixels++
			stats.TotalSamples += pixel.SampleCount
		}
	}

	stats.Elapsed = time.Since(start)
	logger.Debugf("rendered bounds %v", bounds)
	return stats
}
