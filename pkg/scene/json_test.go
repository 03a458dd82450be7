package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

const testSceneJSON = `{
	"name": "Glass Tetra",
	"description": "A mesh next to a sphere",
	"camera": {"center": [0, 1, 4], "lookAt": [0, 0, 0], "vfov": 50},
	"render": {"width": 32, "height": 16, "samplesPerPixel": 3},
	"background": {"type": "uniform", "color": [0.1, 0.2, 0.3]},
	"materials": {
		"red":   {"type": "lambertian", "albedo": [0.8, 0.1, 0.1]},
		"glass": {"type": "dielectric", "refractiveIndex": 1.5},
		"steel": {"type": "metal", "albedo": [0.7, 0.7, 0.7], "fuzz": 0.1}
	},
	"spheres": [{"center": [0, -100.5, 0], "radius": 100, "material": "red"}],
	"triangles": [{"vertices": [[0, 0, 0], [1, 0, 0], [0, 1, 0]], "material": "steel"}],
	"meshes": [{"file": "tetra.obj", "material": "glass", "scale": 2, "rotate": [0, 90, 0], "translate": [1, 0, 0]}]
}`

const tetraOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 2 3
f 1 2 4
f 1 3 4
f 2 3 4
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tetra.obj", tetraOBJ)
	path := writeFile(t, dir, "tetra.json", testSceneJSON)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.Name != "Glass Tetra" {
		t.Errorf("Expected name from file, got %q", s.Name)
	}
	if len(s.Shapes) != 6 {
		t.Errorf("Expected 1 sphere, 1 triangle and 4 mesh faces, got %d shapes", len(s.Shapes))
	}

	// Unset render fields keep their defaults
	if s.Render.Width != 32 || s.Render.Height != 16 || s.Render.SamplesPerPixel != 3 || s.Render.MaxDepth != 50 {
		t.Errorf("Unexpected render config %+v", s.Render)
	}
	if s.CameraConfig.Up != core.NewVec3(0, 1, 0) || s.CameraConfig.VFov != 50 {
		t.Errorf("Unexpected camera config %+v", s.CameraConfig)
	}
	if bg, ok := s.Background.(*integrator.UniformBackground); !ok || bg.Value != core.NewVec3(0.1, 0.2, 0.3) {
		t.Errorf("Unexpected background %#v", s.Background)
	}

	// The mesh is scaled by 2, turned 90° about Y and moved +1 in X, so
	// vertex (1,0,0) lands near (1,0,-2)
	box, _ := core.NewHittableList(s.Shapes[2:]...).BoundingBox()
	if box.Min.X > 1.0+1e-3 || box.Max.X < 3-1e-3 || box.Min.Z > -2+1e-3 {
		t.Errorf("Unexpected mesh bounds %v", box)
	}

	if err := s.Build(true); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
}

func TestLoad_NameFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lonely-ball.json", `{
		"camera": {"center": [0, 0, 0], "lookAt": [0, 0, -1]},
		"materials": {"n": {"type": "normal"}},
		"spheres": [{"center": [0, 0, -1], "radius": 0.5, "material": "n"}]
	}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Name != "lonely-ball" {
		t.Errorf("Expected name from file name, got %q", s.Name)
	}
	if _, ok := s.Background.(*integrator.GradientBackground); !ok {
		t.Errorf("Expected sky background by default, got %T", s.Background)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"spheres": [`},
		{"wrong field type", `{"spheres": "many"}`},
		{"no shapes", `{"materials": {"a": {"type": "normal"}}}`},
		{"unknown material type", `{"materials": {"a": {"type": "plastic"}}, "spheres": [{"center": [0,0,0], "radius": 1, "material": "a"}]}`},
		{"undefined material", `{"spheres": [{"center": [0,0,0], "radius": 1, "material": "a"}]}`},
		{"zero radius", `{"materials": {"a": {"type": "normal"}}, "spheres": [{"center": [0,0,0], "radius": 0, "material": "a"}]}`},
		{"bad refractive index", `{"materials": {"a": {"type": "dielectric"}}, "spheres": [{"center": [0,0,0], "radius": 1, "material": "a"}]}`},
		{"cyclic mix", `{"materials": {"a": {"type": "mix", "materials": ["b", "n"]}, "b": {"type": "mix", "materials": ["a", "n"]}, "n": {"type": "normal"}}, "spheres": [{"center": [0,0,0], "radius": 1, "material": "n"}]}`},
		{"mix of undefined", `{"materials": {"a": {"type": "mix", "materials": ["x", "y"]}}, "spheres": [{"center": [0,0,0], "radius": 1, "material": "a"}]}`},
		{"parallel quad edges", `{"materials": {"a": {"type": "normal"}}, "quads": [{"corner": [0,0,0], "u": [1,0,0], "v": [2,0,0], "material": "a"}]}`},
		{"flat box", `{"materials": {"a": {"type": "normal"}}, "boxes": [{"center": [0,0,0], "size": [1,0,1], "material": "a"}]}`},
		{"unknown background", `{"background": {"type": "stars"}, "materials": {"a": {"type": "normal"}}, "spheres": [{"center": [0,0,0], "radius": 1, "material": "a"}]}`},
		{"mesh outside scene dir", `{"materials": {"a": {"type": "normal"}}, "meshes": [{"file": "../secret.obj", "material": "a"}]}`},
		{"absolute mesh path", `{"materials": {"a": {"type": "normal"}}, "meshes": [{"file": "/etc/mesh.obj", "material": "a"}]}`},
		{"empty mesh path", `{"materials": {"a": {"type": "normal"}}, "meshes": [{"file": "", "material": "a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), "."); !errors.Is(err, ErrMalformedScene) {
				t.Errorf("Expected ErrMalformedScene, got %v", err)
			}
		})
	}
}

func TestParse_UnresolvedMixErrorIsStable(t *testing.T) {
	data := `{"materials": {
		"d": {"type": "mix", "materials": ["c", "x"]},
		"c": {"type": "mix", "materials": ["b", "x"]},
		"b": {"type": "mix", "materials": ["a", "x"]},
		"a": {"type": "mix", "materials": ["d", "x"]}
	}, "spheres": [{"center": [0,0,0], "radius": 1, "material": "a"}]}`

	for i := 0; i < 20; i++ {
		_, err := Parse([]byte(data), ".")
		if !errors.Is(err, ErrMalformedScene) {
			t.Fatalf("Expected ErrMalformedScene, got %v", err)
		}
		if !strings.Contains(err.Error(), `mix material "a"`) {
			t.Fatalf("Expected the error to name material \"a\", got %v", err)
		}
	}
}

func TestParse_GradientBackgroundDefaults(t *testing.T) {
	tests := []struct {
		name   string
		json   string
		bottom core.Vec3
		top    core.Vec3
	}{
		{"no colors", `{"type": "gradient"}`, core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)},
		{"only top", `{"top": [0, 0, 1]}`, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 1)},
		{"explicit black", `{"type": "gradient", "bottom": [0, 0, 0], "top": [0, 0, 0]}`, core.Vec3{}, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{"background": ` + tt.json + `, "materials": {"a": {"type": "normal"}}, "spheres": [{"center": [0,0,0], "radius": 1, "material": "a"}]}`
			s, err := Parse([]byte(data), ".")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			gradient, ok := s.Background.(*integrator.GradientBackground)
			if !ok {
				t.Fatalf("Expected gradient background, got %T", s.Background)
			}
			if gradient.Bottom != tt.bottom || gradient.Top != tt.top {
				t.Errorf("Expected %v -> %v, got %v -> %v", tt.bottom, tt.top, gradient.Bottom, gradient.Top)
			}
		})
	}
}

func TestParse_QuadsBoxesAndMixes(t *testing.T) {
	data := `{
		"materials": {
			"lamp":  {"type": "emissive", "emission": [4, 4, 4]},
			"white": {"type": "lambertian", "albedo": [0.8, 0.8, 0.8]},
			"glow":  {"type": "mix", "materials": ["white", "lamp"], "ratio": 0.25},
			"layer": {"type": "mix", "materials": ["glow", "white"], "ratio": 0.5}
		},
		"quads": [{"corner": [-1, 2, -1], "u": [2, 0, 0], "v": [0, 0, 2], "material": "lamp"}],
		"boxes": [{"center": [0, 0.5, 0], "size": [0.5, 0.5, 0.5], "rotate": [0, 45, 0], "material": "layer"}]
	}`

	s, err := Parse([]byte(data), ".")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(s.Shapes) != 14 {
		t.Fatalf("Expected 2 quad and 12 box triangles, got %d", len(s.Shapes))
	}

	hit, ok := core.NewHittableList(s.Shapes[2:]...).Hit(core.NewRay(core.NewVec3(0.1, 5, 0.05), core.NewVec3(0, -1, 0)), 1e-4, 100)
	if !ok {
		t.Fatal("Expected the box top to be hit")
	}
	mix, ok := hit.Material.(*material.Mix)
	if !ok {
		t.Fatalf("Expected mix material, got %T", hit.Material)
	}
	if _, ok := mix.Material1.(*material.Mix); !ok {
		t.Errorf("Expected nested mix, got %T", mix.Material1)
	}
	if got := mix.Emit(core.Ray{}, *hit); !vecNear(got, core.NewVec3(0.5, 0.5, 0.5), 1e-12) {
		t.Errorf("Expected emission 0.5 from the nested mix, got %v", got)
	}
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestParse_MissingMesh(t *testing.T) {
	data := `{"materials": {"a": {"type": "normal"}}, "meshes": [{"file": "nope.obj", "material": "a"}]}`
	if _, err := Parse([]byte(data), t.TempDir()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestLoad_SceneDirectory(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "scenes", "*.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Skip("no scene files found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			s, err := Load(file)
			if err != nil {
				t.Fatalf("Failed to load: %v", err)
			}
			if err := s.Build(true); err != nil {
				t.Errorf("Failed to build: %v", err)
			}
		})
	}
}
