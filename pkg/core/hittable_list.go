package core

// HittableList is an unordered collection of shapes tested one by one
type HittableList struct {
	Shapes []Shape
}

// NewHittableList creates a list over the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	return &HittableList{Shapes: shapes}
}

// Add appends a shape to the list
func (l *HittableList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Len returns the number of shapes in the list
func (l *HittableList) Len() int {
	return len(l.Shapes)
}

// Hit returns the member hit with the strictly smallest t in [tMin, tMax]
func (l *HittableList) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return closestHit(l.Shapes, ray, tMin, tMax)
}

// BoundingBox returns the union of the members' boxes
func (l *HittableList) BoundingBox() (AABB, bool) {
	return BoundingBoxOf(l.Shapes)
}

// closestHit scans shapes linearly, keeping the nearest hit
func closestHit(shapes []Shape, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closest *HitRecord
	for _, shape := range shapes {
		hit, isHit := shape.Hit(ray, tMin, tMax)
		if !isHit {
			continue
		}
		if closest == nil || hit.T < closest.T {
			closest = hit
		}
	}
	return closest, closest != nil
}
