package integrator

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// GradientBackground blends vertically from Bottom to Top by the ray's
// normalized Y direction.
type GradientBackground struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewGradientBackground creates a gradient background
func NewGradientBackground(bottom, top core.Vec3) *GradientBackground {
	return &GradientBackground{Bottom: bottom, Top: top}
}

// NewSkyBackground returns the white to light blue sky gradient
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(1.0, 1.0, 1.0), core.NewVec3(0.5, 0.7, 1.0))
}

// Color implements Background
func (g *GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}

// UniformBackground returns the same color for every direction
type UniformBackground struct {
	Value core.Vec3
}

// NewUniformBackground creates a constant background
func NewUniformBackground(color core.Vec3) *UniformBackground {
	return &UniformBackground{Value: color}
}

// Color implements Background
func (u *UniformBackground) Color(ray core.Ray) core.Vec3 {
	return u.Value
}
