package scene

import (
	"fmt"
	"sort"
)

// builtinScene describes a scene constructed in code
type builtinScene struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtinScene{
	"default": {
		description: "Ground with diffuse, glass, hollow glass and metal spheres",
		build:       NewDefaultScene,
	},
	"single-sphere": {
		description: "One white diffuse sphere under the sky",
		build:       NewSingleSphereScene,
	},
	"spheregrid": {
		description: "Grid of colored metal and glass spheres",
		build:       NewSphereGridScene,
	},
	"random": {
		description: "Hundreds of random small spheres around three large ones",
		build:       func() *Scene { return NewRandomScene(1) },
	},
	"pyramid": {
		description: "Triangle mesh pyramid, glass sphere and box on a quad floor",
		build:       NewPyramidScene,
	},
}

// Names lists the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs a built-in scene by name
func New(name string) (*Scene, error) {
	builtin, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	s := builtin.build()
	s.Name = name
	return s, nil
}
