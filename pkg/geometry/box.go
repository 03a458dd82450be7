package geometry

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// NewBox builds a closed box from 12 triangles. halfSize holds the
// half-extents, so (1,1,1) gives a 2x2x2 box. Rotation is in radians around
// X, Y, Z (applied in that order) about the box center. Face normals point
// outward.
func NewBox(center, halfSize, rotation core.Vec3, material core.Material) []core.Shape {
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}
	for i := range corners {
		corners[i] = rotateVertex(corners[i].MultiplyVec(halfSize), rotation).Add(center)
	}

	// Each face is a corner plus two edges whose cross product faces outward
	faces := [6][3]int{
		{4, 5, 7}, // Front (Z+)
		{1, 0, 2}, // Back (Z-)
		{5, 1, 6}, // Right (X+)
		{0, 4, 3}, // Left (X-)
		{3, 7, 2}, // Top (Y+)
		{4, 0, 5}, // Bottom (Y-)
	}

	shapes := make([]core.Shape, 0, 12)
	for _, f := range faces {
		corner := corners[f[0]]
		shapes = append(shapes, NewQuad(corner, corners[f[1]].Subtract(corner), corners[f[2]].Subtract(corner), material)...)
	}
	return shapes
}
