package cmd

import (
	"errors"
	"fmt"

	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

// selectScene loads a JSON scene file when one is given, otherwise the
// named built-in scene
func selectScene(name, file string) (*scene.Scene, error) {
	if file != "" {
		return scene.Load(file)
	}
	if name == "" {
		return nil, errors.New("missing scene name")
	}
	return scene.New(name)
}

// loadAndBuild selects a scene, applies overrides and builds it
func loadAndBuild(name, file string, overrides scene.Overrides, useBVH bool) (*scene.Scene, error) {
	sc, err := selectScene(name, file)
	if err != nil {
		return nil, err
	}
	overrides.Apply(sc)

	if err := sc.Build(useBVH); err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	return sc, nil
}
