package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/loaders"
	"github.com/df07/go-bvh-raytracer/pkg/log"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

var logger = log.New("scene")

var (
	// ErrUnknownScene is returned for a built-in scene name that does not exist
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrMalformedScene is returned for scene files that cannot be parsed
	ErrMalformedScene = loaders.ErrMalformedScene
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	Camera       *renderer.Camera      // Set by Build
	Shapes       []core.Shape          // Objects in the scene
	World        core.Shape            // Set by Build: a BVH or flat list over Shapes
	Background   integrator.Background // Color of escaping rays
	Render       renderer.RenderConfig // Image size and sampling settings
}

// Build creates the camera and the acceleration structure. With useBVH
// false the shapes are tested one by one, which is only useful for
// checking the BVH against a brute-force reference.
func (s *Scene) Build(useBVH bool) error {
	if err := s.Render.Validate(); err != nil {
		return err
	}

	cameraConfig := s.CameraConfig
	if cameraConfig.AspectRatio == 0 {
		cameraConfig.AspectRatio = s.Render.AspectRatio()
	}
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}

	if s.Background == nil {
		s.Background = integrator.NewSkyBackground()
	}

	if useBVH {
		bvh, err := core.NewBVH(s.Shapes)
		if err != nil {
			return fmt.Errorf("scene %q: %w", s.Name, err)
		}
		stats := bvh.Stats()
		logger.Debugf("scene %q: BVH with %d nodes, %d leaves, depth %d over %d shapes",
			s.Name, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.TotalShapes)
		s.World = bvh
	} else {
		list := core.NewHittableList(s.Shapes...)
		logger.Debugf("scene %q: flat list of %d shapes", s.Name, list.Len())
		s.World = list
	}

	s.Camera = camera
	return nil
}

// BVHStats returns the statistics of the built BVH, false before Build or
// when the scene uses a flat list
func (s *Scene) BVHStats() (core.BVHStats, bool) {
	bvh, ok := s.World.(*core.BVH)
	if !ok {
		return core.BVHStats{}, false
	}
	return bvh.Stats(), true
}

// NewRaytracer builds a path-traced renderer for the scene. Build must
// have been called.
func (s *Scene) NewRaytracer() (*renderer.Raytracer, error) {
	if s.World == nil || s.Camera == nil {
		return nil, fmt.Errorf("scene %q: %w: not built", s.Name, renderer.ErrInvalidConfig)
	}
	return renderer.NewRaytracer(s.Camera, s.World, integrator.NewPathTracer(s.Background), s.Render)
}
