// Package server exposes the raytracer over HTTP for quick previews.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/elidor/go-phong-raytracer/pkg/core"
	"github.com/elidor/go-phong-raytracer/pkg/renderer"
	"github.com/elidor/go-phong-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string
	Width      int
	Height     int
	Workers    int
	ShadowBias float64
}

// Start starts the web server
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the scenes available for rendering
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode([]string{"default", "shadow", "emission"})
}

// handleRender renders a scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := createScene(req.Scene)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	camera, err := renderer.NewCamera(
		core.NewPoint(0, 1, 3),
		core.NewPoint(0, 0, -4),
		core.NewVector(0, 1, 0),
		60, req.Width, req.Height,
	)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid camera: %v", err), http.StatusBadRequest)
		return
	}

	img, stats := renderer.NewRenderer(sceneObj, camera).
		SetNumWorkers(req.Workers).
		SetShadowBias(req.ShadowBias).
		Render()
	log.Printf("Rendered %q at %dx%d in %v", req.Scene, req.Width, req.Height, stats.Duration)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}

// createScene resolves a scene name to one of the built-in scenes
func createScene(name string) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "shadow":
		return scene.NewShadowScene(), nil
	case "emission":
		return scene.NewEmissionScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene: %s", name)
	}
}

// parseRenderRequest extracts render parameters from the query string
func parseRenderRequest(query url.Values) (RenderRequest, error) {
	req := RenderRequest{
		Scene:      "default",
		Width:      400,
		Height:     225,
		ShadowBias: 0.1,
	}

	if v := query.Get("scene"); v != "" {
		req.Scene = v
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", req.Width, 1, 4096); err != nil {
		return req, err
	}
	if req.Height, err = parseIntParam(query, "height", req.Height, 1, 4096); err != nil {
		return req, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return req, err
	}

	if v := query.Get("bias"); v != "" {
		if req.ShadowBias, err = strconv.ParseFloat(v, 64); err != nil {
			return req, fmt.Errorf("bias: %v", err)
		}
	}

	return req, nil
}

// parseIntParam parses an optional bounded integer query parameter
func parseIntParam(query url.Values, name string, fallback, min, max int) (int, error) {
	v := query.Get(name)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %v", name, err)
	}
	if parsed < min || parsed > max {
		return fallback, fmt.Errorf("%s must be between %d and %d", name, min, max)
	}
	return parsed, nil
}
