package loaders

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/log"
)

var logger = log.New("loaders")

var (
	// ErrMalformedScene is returned for mesh or scene files that cannot be parsed
	ErrMalformedScene = errors.New("loaders: malformed scene data")

	// ErrUnsupportedMesh is returned for mesh files of an unknown format
	ErrUnsupportedMesh = errors.New("loaders: unsupported mesh format")
)

// ParseError reports the line of a mesh file that failed to parse
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unwrap lets errors.Is match ErrMalformedScene
func (e *ParseError) Unwrap() error {
	return ErrMalformedScene
}

func parseErrorf(line int, format string, args ...interface{}) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Mesh is indexed triangle data: every 3 entries of Faces index Vertices
type Mesh struct {
	Vertices []core.Vec3
	Faces    []int
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Faces) / 3
}

// Bounds returns the box around all vertices, false for an empty mesh
func (m *Mesh) Bounds() (core.AABB, bool) {
	if len(m.Vertices) == 0 {
		return core.AABB{}, false
	}
	return core.NewAABBFromPoints(m.Vertices...), true
}

// Triangles resolves the mesh into triangles sharing material
func (m *Mesh) Triangles(material core.Material) ([]core.Shape, error) {
	return geometry.NewTriangleMesh(m.Vertices, m.Faces, material)
}

// LoadMesh loads an .obj or .ply file, choosing the parser by extension
func LoadMesh(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".ply":
		return LoadPLY(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMesh, ext)
	}
}

// addPolygon fan-triangulates a polygon of vertex indices into faces
func (m *Mesh) addPolygon(indices []int) {
	for k := 1; k+1 < len(indices); k++ {
		m.Faces = append(m.Faces, indices[0], indices[k], indices[k+1])
	}
}
