package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/df07/go-bvh-raytracer/pkg/imageio"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client. Zero sizes
// and sample counts keep the scene's defaults.
type RenderRequest struct {
	Scene    string
	Width    int
	Height   int
	Samples  int
	MaxDepth int
	Seed     *int64
	VFov     float64
	Aperture float64
}

// parseRenderRequest parses the query parameters shared by render and inspect
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "spp", 0, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", 0, 1, 1000); err != nil {
		return nil, err
	}
	if req.VFov, err = parseFloatParam(query, "vfov", 0, 1, 179); err != nil {
		return nil, err
	}
	if req.Aperture, err = parseFloatParam(query, "aperture", 0, 0, 10); err != nil {
		return nil, err
	}
	if value := query.Get("seed"); value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %s", value)
		}
		req.Seed = &seed
	}

	return req, nil
}

func (req *RenderRequest) overrides() scene.Overrides {
	return scene.Overrides{
		Width:    req.Width,
		Height:   req.Height,
		Samples:  req.Samples,
		MaxDepth: req.MaxDepth,
		Seed:     req.Seed,
		VFov:     req.VFov,
		Aperture: req.Aperture,
	}
}

// buildScene resolves and builds the requested scene, returning the HTTP
// status to report on failure
func (s *Server) buildScene(req *RenderRequest) (*scene.Scene, int, error) {
	sc, err := scene.Resolve(req.Scene, s.scenesDir)
	if err != nil {
		if errors.Is(err, scene.ErrUnknownScene) || errors.Is(err, os.ErrNotExist) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusInternalServerError, err
	}

	req.overrides().Apply(sc)
	if err := sc.Build(true); err != nil {
		if errors.Is(err, renderer.ErrInvalidConfig) || errors.Is(err, renderer.ErrInvalidCamera) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, err
	}
	return sc, http.StatusOK, nil
}

// handleRender renders the requested scene synchronously and returns a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sc, status, err := s.buildScene(req)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	rt, err := sc.NewRaytracer()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config := rt.Config()
	if config.Width*config.Height > 800*600 && config.SamplesPerPixel > 100 {
		logger.Warningf("large image with high samples may render slowly: %dx%d at %d spp",
			config.Width, config.Height, config.SamplesPerPixel)
	}

	fb, stats := rt.Render()
	if err := r.Context().Err(); err != nil {
		logger.Infof("client went away during render of %q: %v", sc.Name, err)
		return
	}

	var buf bytes.Buffer
	if err := (imageio.PNGEncoder{}).Encode(&buf, fb); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Infof("rendered %q at %dx%d in %v", sc.Name, fb.Width, fb.Height, stats.Elapsed)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Round(time.Millisecond).Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
