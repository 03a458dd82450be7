package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// ErrInvalidMesh is returned when face indices do not describe valid triangles
var ErrInvalidMesh = errors.New("geometry: invalid triangle mesh")

// NewTriangleMesh resolves vertices and face indices into triangles.
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// material: material shared by all triangles
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material) ([]core.Shape, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("%w: %d face indices is not a multiple of 3", ErrInvalidMesh, len(faces))
	}

	numTriangles := len(faces) / 3
	triangles := make([]core.Shape, 0, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]

		for _, idx := range [3]int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidMesh, i, idx, len(vertices))
			}
		}

		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], material))
	}

	return triangles, nil
}

// TransformVertices scales, rotates (radians, X then Y then Z) and translates
// vertices around center, returning a new slice.
func TransformVertices(vertices []core.Vec3, scale float64, rotation, center, offset core.Vec3) []core.Vec3 {
	out := make([]core.Vec3, len(vertices))
	for i, vertex := range vertices {
		vertex = vertex.Subtract(center).Multiply(scale)
		vertex = rotateVertex(vertex, rotation)
		out[i] = vertex.Add(center).Add(offset)
	}
	return out
}

// rotateVertex applies rotation around X, Y, Z axes (in that order)
func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	// Rotation around X axis
	if rotation.X != 0 {
		cos := math.Cos(rotation.X)
		sin := math.Sin(rotation.X)
		y := vertex.Y*cos - vertex.Z*sin
		z := vertex.Y*sin + vertex.Z*cos
		vertex = core.NewVec3(vertex.X, y, z)
	}

	// Rotation around Y axis
	if rotation.Y != 0 {
		cos := math.Cos(rotation.Y)
		sin := math.Sin(rotation.Y)
		x := vertex.X*cos + vertex.Z*sin
		z := -vertex.X*sin + vertex.Z*cos
		vertex = core.NewVec3(x, vertex.Y, z)
	}

	// Rotation around Z axis
	if rotation.Z != 0 {
		cos := math.Cos(rotation.Z)
		sin := math.Sin(rotation.Z)
		x := vertex.X*cos - vertex.Y*sin
		y := vertex.X*sin + vertex.Y*cos
		vertex = core.NewVec3(x, y, vertex.Z)
	}

	return vertex
}
