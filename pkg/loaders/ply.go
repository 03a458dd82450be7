package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// maxPLYListLength bounds list properties so a bad count cannot force a huge allocation
const maxPLYListLength = 1 << 16

// plyProperty is one property line of a PLY element
type plyProperty struct {
	Name     string
	Type     string // Scalar type, or the item type of a list
	IsList   bool
	ListType string // Type of the list length
}

// plyElement is an element declaration with its properties
type plyElement struct {
	Name       string
	Count      int
	Properties []plyProperty
}

// plyHeader represents the parsed header of a PLY file
type plyHeader struct {
	Format   string // "ascii" or "binary_little_endian"
	Elements []plyElement
}

// LoadPLY loads vertex positions and faces from a PLY file
func LoadPLY(path string) (*Mesh, error) {
	startTime := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	mesh, err := ParsePLY(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Infof("loaded %s: %d vertices, %d triangles in %v", path, len(mesh.Vertices), mesh.TriangleCount(), time.Since(startTime))
	return mesh, nil
}

// ParsePLY reads ascii or binary little-endian PLY data. Vertex x, y, z and
// face vertex_indices are kept, everything else is skipped.
func ParsePLY(r io.Reader) (*Mesh, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, err
	}

	var next plyValueReader
	switch header.Format {
	case "ascii":
		next = newASCIIValueReader(reader)
	case "binary_little_endian":
		next = newBinaryValueReader(reader, binary.LittleEndian)
	case "binary_big_endian":
		next = newBinaryValueReader(reader, binary.BigEndian)
	default:
		return nil, fmt.Errorf("%w: PLY format %q", ErrUnsupportedMesh, header.Format)
	}

	mesh := &Mesh{}
	for _, element := range header.Elements {
		for i := 0; i < element.Count; i++ {
			if err := readPLYElement(mesh, element, next); err != nil {
				return nil, fmt.Errorf("%w: %s %d: %v", ErrMalformedScene, element.Name, i, err)
			}
		}
	}

	for _, index := range mesh.Faces {
		if index < 0 || index >= len(mesh.Vertices) {
			return nil, fmt.Errorf("%w: face index %d out of range (%d vertices)", ErrMalformedScene, index, len(mesh.Vertices))
		}
	}

	return mesh, nil
}

// parsePLYHeader reads up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*plyHeader, error) {
	header := &plyHeader{}
	lineNum := 0

	for {
		raw, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(raw) == "" {
			return nil, parseErrorf(lineNum+1, "unexpected end of PLY header")
		}
		lineNum++
		line := strings.TrimSpace(raw)

		if lineNum == 1 {
			if line != "ply" {
				return nil, parseErrorf(lineNum, "missing ply magic")
			}
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 3 {
				return nil, parseErrorf(lineNum, "invalid format line")
			}
			header.Format = parts[1]
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, parseErrorf(lineNum, "invalid element line")
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, parseErrorf(lineNum, "invalid element count %q", parts[2])
			}
			header.Elements = append(header.Elements, plyElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, parseErrorf(lineNum, "property before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, parseErrorf(lineNum, "%v", err)
			}
			current := &header.Elements[len(header.Elements)-1]
			current.Properties = append(current.Properties, prop)
		default:
			return nil, parseErrorf(lineNum, "unknown header keyword %q", parts[0])
		}
	}

	return header, nil
}

// parsePLYProperty parses the fields after "property"
func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) >= 1 && parts[0] == "list" {
		if len(parts) < 4 {
			return plyProperty{}, fmt.Errorf("invalid list property definition")
		}
		return plyProperty{IsList: true, ListType: parts[1], Type: parts[2], Name: parts[3]}, nil
	}
	if len(parts) < 2 {
		return plyProperty{}, fmt.Errorf("invalid property definition")
	}
	return plyProperty{Type: parts[0], Name: parts[1]}, nil
}

// readPLYElement reads one element instance, keeping what the mesh needs
func readPLYElement(mesh *Mesh, element plyElement, next plyValueReader) error {
	var position [3]float64

	for _, prop := range element.Properties {
		if prop.IsList {
			count, err := next(prop.ListType)
			if err != nil {
				return err
			}
			if !isWholeNumber(count) || count < 0 || count > maxPLYListLength {
				return fmt.Errorf("invalid list length %v", count)
			}
			values := make([]int, int(count))
			for k := range values {
				value, err := next(prop.Type)
				if err != nil {
					return err
				}
				if !isWholeNumber(value) || math.Abs(value) > math.MaxInt32 {
					return fmt.Errorf("invalid list value %v", value)
				}
				values[k] = int(value)
			}
			if element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index") {
				if len(values) < 3 {
					return fmt.Errorf("face with %d vertices", len(values))
				}
				mesh.addPolygon(values)
			}
			continue
		}

		value, err := next(prop.Type)
		if err != nil {
			return err
		}
		if element.Name == "vertex" {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return fmt.Errorf("non-finite %s value %v", prop.Name, value)
			}
			switch prop.Name {
			case "x":
				position[0] = value
			case "y":
				position[1] = value
			case "z":
				position[2] = value
			}
		}
	}

	if element.Name == "vertex" {
		mesh.Vertices = append(mesh.Vertices, core.NewVec3(position[0], position[1], position[2]))
	}
	return nil
}

// isWholeNumber is false for NaN, infinities and fractional values
func isWholeNumber(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

// plyValueReader reads the next scalar of the given PLY type
type plyValueReader func(plyType string) (float64, error)

func newASCIIValueReader(reader *bufio.Reader) plyValueReader {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)
	return func(plyType string) (float64, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.ParseFloat(scanner.Text(), 64)
	}
}

func newBinaryValueReader(reader *bufio.Reader, order binary.ByteOrder) plyValueReader {
	var buf [8]byte
	return func(plyType string) (float64, error) {
		size := plyTypeSize(plyType)
		if size == 0 {
			return 0, fmt.Errorf("unsupported property type %q", plyType)
		}
		if _, err := io.ReadFull(reader, buf[:size]); err != nil {
			return 0, err
		}
		b := buf[:size]

		switch plyType {
		case "char", "int8":
			return float64(int8(b[0])), nil
		case "uchar", "uint8":
			return float64(b[0]), nil
		case "short", "int16":
			return float64(int16(order.Uint16(b))), nil
		case "ushort", "uint16":
			return float64(order.Uint16(b)), nil
		case "int", "int32":
			return float64(int32(order.Uint32(b))), nil
		case "uint", "uint32":
			return float64(order.Uint32(b)), nil
		case "float", "float32":
			return float64(math.Float32frombits(order.Uint32(b))), nil
		default: // double, float64
			return math.Float64frombits(order.Uint64(b)), nil
		}
	}
}

// plyTypeSize returns the byte size of a PLY scalar type, 0 if unknown
func plyTypeSize(plyType string) int {
	switch plyType {
	case "char", "int8", "uchar", "uint8":
		return 1
	case "short", "int16", "ushort", "uint16":
		return 2
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	}
	return 0
}
