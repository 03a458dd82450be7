package geometry

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// NewQuad splits the parallelogram corner, corner+u, corner+u+v, corner+v
// into two triangles. The front face normal is u × v.
func NewQuad(corner, u, v core.Vec3, material core.Material) []core.Shape {
	far := corner.Add(u).Add(v)
	return []core.Shape{
		NewTriangle(corner, corner.Add(u), far, material),
		NewTriangle(corner, far, corner.Add(v), material),
	}
}
