package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/elidor/go-phong-raytracer/pkg/core"
	"github.com/elidor/go-phong-raytracer/pkg/scene"
	"github.com/elidor/go-phong-raytracer/pkg/tracer"
)

// RenderStats summarizes one completed render
type RenderStats struct {
	Width       int
	Height      int
	TotalPixels int
	TotalRays   int
	NumWorkers  int
	Duration    time.Duration
}

// Renderer drives a full-image render: one primary ray per pixel, scanlines
// distributed over a worker pool. The scene must be fully constructed before
// Render is called; nothing mutates it afterwards.
type Renderer struct {
	scene      *scene.Scene
	camera     *Camera
	numWorkers int
	shadowBias float64
	logger     core.Logger
}

// NewRenderer creates a renderer for a scene and camera
func NewRenderer(s *scene.Scene, camera *Camera) *Renderer {
	return &Renderer{
		scene:      s,
		camera:     camera,
		shadowBias: tracer.DefaultShadowBias,
	}
}

// SetNumWorkers sets the worker count; <= 0 means one worker per CPU
func (r *Renderer) SetNumWorkers(numWorkers int) *Renderer {
	r.numWorkers = numWorkers
	return r
}

// SetShadowBias overrides the shadow-ray offset used by every worker
func (r *Renderer) SetShadowBias(bias float64) *Renderer {
	r.shadowBias = bias
	return r
}

// SetLogger sets an optional progress logger
func (r *Renderer) SetLogger(logger core.Logger) *Renderer {
	r.logger = logger
	return r
}

// Render traces the whole image and returns it with render statistics
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	width, height := r.camera.Width(), r.camera.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	startTime := time.Now()

	pool := NewWorkerPool(r.scene, r.camera, img, r.numWorkers, r.shadowBias)
	pool.Start()

	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}

	stats := RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: width * height,
		NumWorkers:  pool.GetNumWorkers(),
	}
	for completed := 0; completed < height; completed++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalRays += result.Rays
		if r.logger != nil && (completed+1)%64 == 0 {
			r.logger.Printf("rendered %d/%d rows", completed+1, height)
		}
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)
	return img, stats
}

// toRGBA converts a working color to a display pixel. This is the only place
// channel values are clamped; upstream they are unbounded.
func toRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: 255,
	}
}

// clampChannel clamps a channel on the 0-255 working scale to a byte
func clampChannel(value float64) uint8 {
	if value <= 0 {
		return 0
	}
	if value >= 255 {
		return 255
	}
	return uint8(value + 0.5)
}
