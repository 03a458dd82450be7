package geometry

import (
	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// parallelEpsilon rejects rays lying (nearly) in the triangle's plane
const parallelEpsilon = 1e-6

// boxPadding gives axis-aligned triangles a non-zero slab thickness
const boxPadding = 1e-4

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle
	normal     core.Vec3     // Cached unit normal
	bbox       core.AABB     // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}

	// Precompute normal and bounding box for efficiency
	t.normal = t.GeometricNormal().Normalize()
	t.bbox = padFlatAxes(core.NewAABBFromPoints(v0, v1, v2))

	return t
}

// GeometricNormal returns (v1-v0) × (v2-v0). It is not normalized: its
// length is twice the triangle's area.
func (t *Triangle) GeometricNormal() core.Vec3 {
	return t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0))
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in (or nearly in) the plane of the triangle
	if det > -parallelEpsilon && det < parallelEpsilon {
		return nil, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	root := f * edge2.Dot(q)
	if root < tMin || root > tMax {
		return nil, false
	}

	return core.NewHitRecord(ray, ray.At(root), t.normal, root, t.Material), true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() (core.AABB, bool) {
	return t.bbox, true
}

// padFlatAxes widens any zero-extent axis so slab tests can hit the box
func padFlatAxes(box core.AABB) core.AABB {
	size := box.Size()
	if size.X < boxPadding {
		box.Min.X -= boxPadding / 2
		box.Max.X += boxPadding / 2
	}
	if size.Y < boxPadding {
		box.Min.Y -= boxPadding / 2
		box.Max.Y += boxPadding / 2
	}
	if size.Z < boxPadding {
		box.Min.Z -= boxPadding / 2
		box.Max.Z += boxPadding / 2
	}
	return box
}
