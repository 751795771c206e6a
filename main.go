package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/elidor/go-phong-raytracer/pkg/core"
	"github.com/elidor/go-phong-raytracer/pkg/renderer"
	"github.com/elidor/go-phong-raytracer/pkg/scene"
)

// createScene resolves a scene name to one of the built-in scenes
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

// defaultCamera builds the standard camera used by the CLI and the web server
func defaultCamera(width, height int) (*renderer.Camera, error) {
	return renderer.NewCamera(
		core.NewPoint(0, 1, 3),
		core.NewPoint(0, 0, -4),
		core.NewVector(0, 1, 0),
		60, width, height,
	)
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'shadow' or 'emission'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	shadowBias := flag.Float64("shadow-bias", 0.1, "Shadow ray offset along the surface normal")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default  - Three shaded spheres over a ground plane")
		fmt.Println("  shadow   - Spot light with a hard occluder shadow")
		fmt.Println("  emission - Lightless scene of self-emitting spheres")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}
	fmt.Printf("Rendering scene %q at %dx%d...\n", selectedScene.Name, *width, *height)

	camera, err := defaultCamera(*width, *height)
	if err != nil {
		log.Fatalf("Error creating camera: %v", err)
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	img, stats := renderer.NewRenderer(selectedScene, camera).
		SetNumWorkers(*workers).
		SetShadowBias(*shadowBias).
		Render()

	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("Traced %d rays over %d pixels with %d workers\n",
		stats.TotalRays, stats.TotalPixels, stats.NumWorkers)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("Error creating file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		log.Fatalf("Error saving PNG: %v", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
