package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/loaders"
	"github.com/df07/go-bvh-raytracer/pkg/material"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

// vec3JSON is a vector written as [x, y, z]
type vec3JSON [3]float64

func (v vec3JSON) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// sceneFile is the on-disk JSON scene description
type sceneFile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Camera      cameraJSON              `json:"camera"`
	Render      *renderJSON             `json:"render"`
	Background  *backgroundJSON         `json:"background"`
	Materials   map[string]materialJSON `json:"materials"`
	Spheres     []sphereJSON            `json:"spheres"`
	Triangles   []triangleJSON          `json:"triangles"`
	Quads       []quadJSON              `json:"quads"`
	Boxes       []boxJSON               `json:"boxes"`
	Meshes      []meshJSON              `json:"meshes"`
}

type cameraJSON struct {
	Center        vec3JSON  `json:"center"`
	LookAt        vec3JSON  `json:"lookAt"`
	Up            *vec3JSON `json:"up"`
	VFov          float64   `json:"vfov"`
	Aperture      float64   `json:"aperture"`
	FocusDistance float64   `json:"focusDistance"`
}

type renderJSON struct {
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	SamplesPerPixel int   `json:"samplesPerPixel"`
	MaxDepth        int   `json:"maxDepth"`
	Seed            int64 `json:"seed"`
}

type backgroundJSON struct {
	Type   string   `json:"type"` // "gradient" or "uniform"
	Bottom *vec3JSON `json:"bottom"` // Defaults to the sky gradient's colors
	Top    *vec3JSON `json:"top"`
	Color  vec3JSON  `json:"color"`
}

type materialJSON struct {
	Type            string    `json:"type"` // "lambertian", "metal", "dielectric", "normal", "emissive" or "mix"
	Albedo          vec3JSON  `json:"albedo"`
	Fuzz            float64   `json:"fuzz"`
	RefractiveIndex float64   `json:"refractiveIndex"`
	Emission        vec3JSON  `json:"emission"`
	Materials       [2]string `json:"materials"` // Mix inputs by name
	Ratio           float64   `json:"ratio"`     // Mix weight of the second input
}

type sphereJSON struct {
	Center   vec3JSON `json:"center"`
	Radius   float64  `json:"radius"`
	Material string   `json:"material"`
}

type triangleJSON struct {
	Vertices [3]vec3JSON `json:"vertices"`
	Material string      `json:"material"`
}

type quadJSON struct {
	Corner   vec3JSON `json:"corner"`
	U        vec3JSON `json:"u"`
	V        vec3JSON `json:"v"`
	Material string   `json:"material"`
}

type boxJSON struct {
	Center   vec3JSON `json:"center"`
	Size     vec3JSON `json:"size"`   // Half-extents
	Rotate   vec3JSON `json:"rotate"` // Degrees around X, Y, Z
	Material string   `json:"material"`
}

type meshJSON struct {
	File      string   `json:"file"` // .obj or .ply, relative to the scene file
	Material  string   `json:"material"`
	Scale     float64  `json:"scale"`
	Rotate    vec3JSON `json:"rotate"` // Degrees around X, Y, Z
	Translate vec3JSON `json:"translate"`
}

// Load reads a JSON scene description. Mesh paths are resolved relative to
// the scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	logger.Infof("loaded scene %q from %s: %d shapes", s.Name, path, len(s.Shapes))
	return s, nil
}

// Parse builds a scene from JSON data, loading meshes relative to baseDir
func Parse(data []byte, baseDir string) (*Scene, error) {
	var file sceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScene, err)
	}

	materials, err := buildMaterials(file.Materials)
	if err != nil {
		return nil, err
	}
	lookup := func(name string) (core.Material, error) {
		mat, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("%w: undefined material %q", ErrMalformedScene, name)
		}
		return mat, nil
	}

	s := &Scene{
		Name:         file.Name,
		CameraConfig: file.Camera.config(),
		Background:   integrator.NewSkyBackground(),
		Render:       renderer.DefaultRenderConfig(),
	}
	if file.Render != nil {
		s.Render = file.Render.merge(s.Render)
	}
	if file.Background != nil {
		background, err := file.Background.build()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedScene, err)
		}
		s.Background = background
	}

	for i, sphere := range file.Spheres {
		mat, err := lookup(sphere.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		if sphere.Radius == 0 {
			return nil, fmt.Errorf("%w: sphere %d has zero radius", ErrMalformedScene, i)
		}
		s.Shapes = append(s.Shapes, geometry.NewSphere(sphere.Center.vec(), sphere.Radius, mat))
	}

	for i, tri := range file.Triangles {
		mat, err := lookup(tri.Material)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		s.Shapes = append(s.Shapes, geometry.NewTriangle(tri.Vertices[0].vec(), tri.Vertices[1].vec(), tri.Vertices[2].vec(), mat))
	}

	for i, q := range file.Quads {
		mat, err := lookup(q.Material)
		if err != nil {
			return nil, fmt.Errorf("quad %d: %w", i, err)
		}
		if q.U.vec().Cross(q.V.vec()).NearZero() {
			return nil, fmt.Errorf("%w: quad %d has parallel edges", ErrMalformedScene, i)
		}
		s.Shapes = append(s.Shapes, geometry.NewQuad(q.Corner.vec(), q.U.vec(), q.V.vec(), mat)...)
	}

	for i, b := range file.Boxes {
		mat, err := lookup(b.Material)
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		size := b.Size.vec()
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			return nil, fmt.Errorf("%w: box %d needs positive size, got %v", ErrMalformedScene, i, size)
		}
		rotation := b.Rotate.vec().Multiply(math.Pi / 180)
		s.Shapes = append(s.Shapes, geometry.NewBox(b.Center.vec(), size, rotation, mat)...)
	}

	for _, m := range file.Meshes {
		mat, err := lookup(m.Material)
		if err != nil {
			return nil, fmt.Errorf("mesh %s: %w", m.File, err)
		}
		triangles, err := m.load(baseDir, mat)
		if err != nil {
			return nil, err
		}
		s.Shapes = append(s.Shapes, triangles...)
	}

	if len(s.Shapes) == 0 {
		return nil, fmt.Errorf("%w: scene has no shapes", ErrMalformedScene)
	}

	return s, nil
}

func (c cameraJSON) config() renderer.CameraConfig {
	up := core.NewVec3(0, 1, 0)
	if c.Up != nil {
		up = c.Up.vec()
	}
	vfov := c.VFov
	if vfov == 0 {
		vfov = 40
	}
	return renderer.CameraConfig{
		Center:        c.Center.vec(),
		LookAt:        c.LookAt.vec(),
		Up:            up,
		VFov:          vfov,
		Aperture:      c.Aperture,
		FocusDistance: c.FocusDistance,
	}
}

// merge overrides the fields of base that are set in the file
func (r renderJSON) merge(base renderer.RenderConfig) renderer.RenderConfig {
	if r.Width != 0 {
		base.Width = r.Width
	}
	if r.Height != 0 {
		base.Height = r.Height
	}
	if r.SamplesPerPixel != 0 {
		base.SamplesPerPixel = r.SamplesPerPixel
	}
	if r.MaxDepth != 0 {
		base.MaxDepth = r.MaxDepth
	}
	if r.Seed != 0 {
		base.Seed = r.Seed
	}
	return base
}

func (b backgroundJSON) build() (integrator.Background, error) {
	switch b.Type {
	case "", "gradient":
		sky := integrator.NewSkyBackground()
		if b.Bottom != nil {
			sky.Bottom = b.Bottom.vec()
		}
		if b.Top != nil {
			sky.Top = b.Top.vec()
		}
		return sky, nil
	case "uniform":
		return integrator.NewUniformBackground(b.Color.vec()), nil
	default:
		return nil, fmt.Errorf("unknown background type %q", b.Type)
	}
}

// buildMaterials resolves the named materials. Mix materials may refer to
// any other material, including other mixes, as long as there is no cycle.
func buildMaterials(defs map[string]materialJSON) (map[string]core.Material, error) {
	materials := make(map[string]core.Material, len(defs))
	pending := make(map[string]materialJSON)

	for name, m := range defs {
		if m.Type == "mix" {
			pending[name] = m
			continue
		}
		mat, err := m.build()
		if err != nil {
			return nil, fmt.Errorf("%w: material %q: %v", ErrMalformedScene, name, err)
		}
		materials[name] = mat
	}

	for len(pending) > 0 {
		names := make([]string, 0, len(pending))
		for name := range pending {
			names = append(names, name)
		}
		sort.Strings(names)

		progress := false
		for _, name := range names {
			m := pending[name]
			first, ok1 := materials[m.Materials[0]]
			second, ok2 := materials[m.Materials[1]]
			if !ok1 || !ok2 {
				continue
			}
			materials[name] = material.NewMix(first, second, m.Ratio)
			delete(pending, name)
			progress = true
		}
		if !progress {
			name := names[0]
			return nil, fmt.Errorf("%w: mix material %q refers to undefined or cyclic materials %q", ErrMalformedScene, name, pending[name].Materials)
		}
	}

	return materials, nil
}

func (m materialJSON) build() (core.Material, error) {
	switch m.Type {
	case "lambertian":
		return material.NewLambertian(m.Albedo.vec()), nil
	case "metal":
		return material.NewMetal(m.Albedo.vec(), m.Fuzz), nil
	case "dielectric":
		if m.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("refractive index must be positive, got %g", m.RefractiveIndex)
		}
		return material.NewDielectric(m.RefractiveIndex), nil
	case "normal":
		return material.NewNormal(), nil
	case "emissive":
		return material.NewEmissive(m.Emission.vec()), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

func (m meshJSON) load(baseDir string, mat core.Material) ([]core.Shape, error) {
	// Meshes must stay under the scene's directory
	if !filepath.IsLocal(m.File) {
		return nil, fmt.Errorf("%w: mesh path %q must be relative and inside the scene directory", ErrMalformedScene, m.File)
	}

	mesh, err := loaders.LoadMesh(filepath.Join(baseDir, m.File))
	if err != nil {
		return nil, err
	}

	scale := m.Scale
	if scale == 0 {
		scale = 1
	}
	rotation := m.Rotate.vec().Multiply(math.Pi / 180)
	vertices := geometry.TransformVertices(mesh.Vertices, scale, rotation, core.Vec3{}, m.Translate.vec())

	triangles, err := geometry.NewTriangleMesh(vertices, mesh.Faces, mat)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedScene, m.File, err)
	}
	return triangles, nil
}
