// Command view opens a window and displays the render as scanlines complete.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten"

	"github.com/elidor/go-phong-raytracer/pkg/core"
	"github.com/elidor/go-phong-raytracer/pkg/renderer"
	"github.com/elidor/go-phong-raytracer/pkg/scene"
	"github.com/elidor/go-phong-raytracer/pkg/tracer"
)

// Game displays a progressively filled render buffer
type Game struct {
	mu      sync.Mutex
	display *image.RGBA
	width   int
	height  int
}

// Update implements ebiten.Game; the render runs on its own goroutines
func (g *Game) Update(*ebiten.Image) error {
	return nil
}

// Draw copies the current state of the render buffer to the screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	screen.ReplacePixels(g.display.Pix)
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// renderInto renders the scene row by row, publishing each completed row
// into the display buffer under the game's lock.
func (g *Game) renderInto(s *scene.Scene, camera *renderer.Camera, workers int) {
	target := image.NewRGBA(image.Rect(0, 0, g.width, g.height))

	pool := renderer.NewWorkerPool(s, camera, target, workers, tracer.DefaultShadowBias)
	pool.Start()
	for y := 0; y < g.height; y++ {
		pool.SubmitTask(renderer.RowTask{Y: y})
	}

	for completed := 0; completed < g.height; completed++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		// The workers are done with this row, so copying it is race-free.
		start := target.PixOffset(0, result.Y)
		end := start + 4*g.width
		g.mu.Lock()
		copy(g.display.Pix[start:end], target.Pix[start:end])
		g.mu.Unlock()
	}
	pool.Stop()
}

func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "shadow":
		return scene.NewShadowScene(), nil
	case "emission":
		return scene.NewEmissionScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'shadow' or 'emission'")
	width := flag.Int("width", 800, "Window width in pixels")
	height := flag.Int("height", 450, "Window height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	flag.Parse()

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}

	camera, err := renderer.NewCamera(
		core.NewPoint(0, 1, 3),
		core.NewPoint(0, 0, -4),
		core.NewVector(0, 1, 0),
		60, *width, *height,
	)
	if err != nil {
		log.Fatalf("Error creating camera: %v", err)
	}

	game := &Game{
		display: image.NewRGBA(image.Rect(0, 0, *width, *height)),
		width:   *width,
		height:  *height,
	}
	go game.renderInto(selectedScene, camera, *workers)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Phong Raytracer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
