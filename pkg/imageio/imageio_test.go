package imageio

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
)

func testFramebuffer() *renderer.Framebuffer {
	fb := renderer.NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(1, 0, core.NewVec3(0, 1, 0))
	fb.Set(0, 1, core.NewVec3(0, 0, 1))
	fb.Set(1, 1, core.NewVec3(0.5, 2, -1))
	return fb
}

func TestPPMEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := (PPMEncoder{}).Encode(&buf, testFramebuffer()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n127 255 0\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestPNGEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := (PNGEncoder{}).Encode(&buf, testFramebuffer()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("Unexpected bounds %v", b)
	}
	r, g, b, _ := img.At(0, 1).RGBA()
	if r != 0 || g != 0 || b>>8 != 255 {
		t.Errorf("Expected blue lower left pixel, got %d %d %d", r, g, b)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"out.png", "nested/out.ppm", "UPPER.PNG"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, testFramebuffer()); err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s: expected non-empty file, got %v", name, err)
		}
	}
}

func TestWriteFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if err := WriteFile(filepath.Join(dir, "out.bmp"), testFramebuffer()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}

	// A regular file where a directory is needed
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(filepath.Join(blocker, "out.png"), testFramebuffer()); !errors.Is(err, ErrUnwritableOutput) {
		t.Errorf("Expected ErrUnwritableOutput, got %v", err)
	}
}
