package core

// Shape is anything a ray can be tested against: primitives, lists and BVH nodes
type Shape interface {
	// Hit returns the intersection with the smallest t in [tMin, tMax]
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	// BoundingBox returns false for shapes without a finite bound
	BoundingBox() (AABB, bool)
}

// Material decides what happens to light arriving at a surface.
// A false return means the ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Emitter is implemented by materials that contribute light of their own
type Emitter interface {
	Emit(rayIn Ray, hit HitRecord) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit normal, always facing against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object (shared, not owned)
}

// NewHitRecord builds a hit record, orienting outwardNormal against the ray
func NewHitRecord(ray Ray, point, outwardNormal Vec3, t float64, material Material) *HitRecord {
	h := &HitRecord{
		Point:    point,
		T:        t,
		Material: material,
	}
	h.SetFaceNormal(ray, outwardNormal)
	return h
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
