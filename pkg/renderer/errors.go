package renderer

import "errors"

var (
	// ErrInvalidConfig is returned when render settings cannot produce an image
	ErrInvalidConfig = errors.New("renderer: invalid render config")

	// ErrInvalidCamera is returned when a camera pose has no well-defined basis
	ErrInvalidCamera = errors.New("renderer: invalid camera config")
)
