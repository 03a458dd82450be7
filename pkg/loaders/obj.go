package loaders

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// LoadOBJ loads vertex positions and faces from a Wavefront OBJ file
func LoadOBJ(path string) (*Mesh, error) {
	startTime := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	mesh, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Infof("loaded %s: %d vertices, %d triangles in %v", path, len(mesh.Vertices), mesh.TriangleCount(), time.Since(startTime))
	return mesh, nil
}

// ParseOBJ reads OBJ data. Only positions and faces are kept; normals,
// texture coordinates, groups and materials are skipped.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	mesh := &Mesh{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			vertex, err := parseVertex(fields[1:], lineNum)
			if err != nil {
				return nil, err
			}
			mesh.Vertices = append(mesh.Vertices, vertex)
		case "f":
			indices, err := parseFace(fields[1:], len(mesh.Vertices), lineNum)
			if err != nil {
				return nil, err
			}
			mesh.addPolygon(indices)
		case "vn", "vt", "vp", "g", "o", "s", "mtllib", "usemtl", "l":
			// Not needed for flat-shaded geometry
		default:
			return nil, parseErrorf(lineNum, "unknown keyword %q", fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}

	return mesh, nil
}

// parseVertex reads "x y z [w]"
func parseVertex(fields []string, lineNum int) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, parseErrorf(lineNum, "vertex needs 3 coordinates, got %d", len(fields))
	}

	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return core.Vec3{}, parseErrorf(lineNum, "invalid coordinate %q", fields[i])
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// parseFace reads face corners "i", "i/t", "i//n" or "i/t/n" into zero-based
// vertex indices. Negative indices count back from the latest vertex.
func parseFace(fields []string, vertexCount, lineNum int) ([]int, error) {
	if len(fields) < 3 {
		return nil, parseErrorf(lineNum, "face needs at least 3 vertices, got %d", len(fields))
	}

	indices := make([]int, len(fields))
	for i, field := range fields {
		position := field
		if slash := strings.IndexByte(field, '/'); slash >= 0 {
			position = field[:slash]
		}

		index, err := strconv.Atoi(position)
		if err != nil {
			return nil, parseErrorf(lineNum, "invalid vertex index %q", field)
		}

		switch {
		case index > 0:
			index--
		case index < 0:
			index += vertexCount
		default:
			return nil, parseErrorf(lineNum, "vertex index 0 is not valid")
		}

		if index < 0 || index >= vertexCount {
			return nil, parseErrorf(lineNum, "vertex index %s out of range (%d vertices)", position, vertexCount)
		}
		indices[i] = index
	}
	return indices, nil
}
