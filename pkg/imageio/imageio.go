package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-bvh-raytracer/pkg/log"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

var logger = log.New("imageio")

var (
	// ErrUnwritableOutput is returned when the output file cannot be created or written
	ErrUnwritableOutput = errors.New("imageio: cannot write output")

	// ErrUnsupportedFormat is returned for output paths with an unknown extension
	ErrUnsupportedFormat = errors.New("imageio: unsupported image format")
)

// Encoder writes a framebuffer in some image format
type Encoder interface {
	Encode(w io.Writer, fb *renderer.Framebuffer) error
}

// PNGEncoder writes 8-bit RGBA PNG images
type PNGEncoder struct{}

// Encode writes fb as a PNG
func (PNGEncoder) Encode(w io.Writer, fb *renderer.Framebuffer) error {
	return png.Encode(w, fb.ToRGBA())
}

// PPMEncoder writes plain-text (P3) PPM images, top row first
type PPMEncoder struct{}

// Encode writes fb as a P3 PPM
func (PPMEncoder) Encode(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := renderer.Quantize(fb.At(x, y))
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}
	return bw.Flush()
}

// EncoderFor picks an encoder from the path's extension
func EncoderFor(path string) (Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNGEncoder{}, nil
	case ".ppm":
		return PPMEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WriteFile encodes fb to path, creating parent directories as needed
func WriteFile(path string, fb *renderer.Framebuffer) error {
	encoder, err := EncoderFor(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %v", ErrUnwritableOutput, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnwritableOutput, err)
	}

	if err := encoder.Encode(file, fb); err != nil {
		file.Close()
		return fmt.Errorf("%w: %s: %v", ErrUnwritableOutput, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnwritableOutput, path, err)
	}

	logger.Infof("wrote %dx%d image to %s", fb.Width, fb.Height, path)
	return nil
}
