package core

import (
	"errors"
	"sort"
)

var (
	ErrEmptyBVH            = errors.New("bvh: cannot build a hierarchy over zero shapes")
	ErrUnboundedShape      = errors.New("bvh: shape has no bounding box")
	ErrInvalidLeafCapacity = errors.New("bvh: leaf capacity must be at least 1")
)

// DefaultLeafCapacity is the largest number of shapes stored directly in a leaf.
// Small leaves keep cheap primitives from producing very deep trees.
const DefaultLeafCapacity = 4

// bvhNode is either an interior node or a leaf. Traversal only goes
// through this interface.
type bvhNode interface {
	hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	box() AABB
	collectStats(depth int, stats *BVHStats)
}

// bvhInterior owns two subtrees and the union box of both
type bvhInterior struct {
	bounds AABB
	left   bvhNode
	right  bvhNode
}

// bvhLeaf holds a small batch of shapes
type bvhLeaf struct {
	bounds AABB
	shapes []Shape
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is immutable once built and safe for concurrent traversal.
type BVH struct {
	root         bvhNode
	leafCapacity int
}

// NewBVH constructs a BVH from a slice of shapes using DefaultLeafCapacity
func NewBVH(shapes []Shape) (*BVH, error) {
	return NewBVHWithLeafCapacity(shapes, DefaultLeafCapacity)
}

// NewBVHWithLeafCapacity constructs a BVH whose leaves hold at most leafCapacity shapes
func NewBVHWithLeafCapacity(shapes []Shape, leafCapacity int) (*BVH, error) {
	if leafCapacity < 1 {
		return nil, ErrInvalidLeafCapacity
	}
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	// Sorting happens in place, so work on a copy of the caller's slice
	items := make([]bvhItem, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox()
		if !ok {
			return nil, ErrUnboundedShape
		}
		items[i] = bvhItem{shape: shape, box: box}
	}

	return &BVH{
		root:         buildBVH(items, leafCapacity),
		leafCapacity: leafCapacity,
	}, nil
}

// bvhItem caches a shape's box so construction does not recompute it per comparison
type bvhItem struct {
	shape Shape
	box   AABB
}

// buildBVH recursively partitions items at the median along the longest axis
func buildBVH(items []bvhItem, leafCapacity int) bvhNode {
	bounds := items[0].box
	for _, item := range items[1:] {
		bounds = bounds.Union(item.box)
	}

	if len(items) <= leafCapacity {
		shapes := make([]Shape, len(items))
		for i, item := range items {
			shapes[i] = item.shape
		}
		return &bvhLeaf{bounds: bounds, shapes: shapes}
	}

	axis := bounds.LongestAxis()

	if len(items) == 2 {
		a := &bvhLeaf{bounds: items[0].box, shapes: []Shape{items[0].shape}}
		b := &bvhLeaf{bounds: items[1].box, shapes: []Shape{items[1].shape}}
		if items[0].box.Min.Axis(axis) < items[1].box.Min.Axis(axis) {
			return &bvhInterior{bounds: bounds, left: a, right: b}
		}
		return &bvhInterior{bounds: bounds, left: b, right: a}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Min.Axis(axis) < items[j].box.Min.Axis(axis)
	})

	mid := len(items) / 2
	return &bvhInterior{
		bounds: bounds,
		left:   buildBVH(items[:mid], leafCapacity),
		right:  buildBVH(items[mid:], leafCapacity),
	}
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return bvh.root.hit(ray, tMin, tMax)
}

// BoundingBox returns the box around every shape in the hierarchy
func (bvh *BVH) BoundingBox() (AABB, bool) {
	return bvh.root.box(), true
}

// LeafCapacity returns the leaf capacity the tree was built with
func (bvh *BVH) LeafCapacity() int {
	return bvh.leafCapacity
}

func (n *bvhInterior) hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !n.bounds.Hit(ray, tMin, tMax) {
		return nil, false
	}

	// Both subtrees are searched over the same window; the nearer hit wins
	hitLeft, okLeft := n.left.hit(ray, tMin, tMax)
	hitRight, okRight := n.right.hit(ray, tMin, tMax)

	switch {
	case okLeft && okRight:
		if hitLeft.T < hitRight.T {
			return hitLeft, true
		}
		return hitRight, true
	case okLeft:
		return hitLeft, true
	case okRight:
		return hitRight, true
	}
	return nil, false
}

func (n *bvhInterior) box() AABB { return n.bounds }

func (l *bvhLeaf) hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if !l.bounds.Hit(ray, tMin, tMax) {
		return nil, false
	}
	return closestHit(l.shapes, ray, tMin, tMax)
}

func (l *bvhLeaf) box() AABB { return l.bounds }

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes   int
	LeafNodes    int
	MaxDepth     int
	AvgDepth     float64 // Average leaf depth
	TotalShapes  int
	LeafCapacity int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{LeafCapacity: bvh.LeafCapacity()}
	bvh.root.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

func (n *bvhInterior) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)
	n.left.collectStats(depth+1, stats)
	n.right.collectStats(depth+1, stats)
}

func (l *bvhLeaf) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	stats.LeafNodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)
	stats.TotalShapes += len(l.shapes)
	stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
}
