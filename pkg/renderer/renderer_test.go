package renderer

import (
	"bytes"
	"testing"

	"github.com/elidor/go-phong-raytracer/pkg/core"
	"github.com/elidor/go-phong-raytracer/pkg/scene"
)

func testCamera(t *testing.T, width, height int) *Camera {
	t.Helper()
	camera, err := NewCamera(core.NewPoint(0, 1, 3), core.NewPoint(0, 0, -4), core.NewVector(0, 1, 0), 60, width, height)
	if err != nil {
		t.Fatalf("Failed to construct camera: %v", err)
	}
	return camera
}

func TestRenderer_EmptySceneIsBackground(t *testing.T) {
	background := core.NewColor(50, 60, 70)
	s := scene.NewScene("empty").SetBackground(background)

	img, stats := NewRenderer(s, testCamera(t, 8, 4)).Render()

	if stats.TotalPixels != 32 || stats.TotalRays != 32 {
		t.Errorf("Expected 32 pixels and rays, got %d pixels, %d rays", stats.TotalPixels, stats.TotalRays)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			pixel := img.RGBAAt(x, y)
			if pixel.R != 50 || pixel.G != 60 || pixel.B != 70 || pixel.A != 255 {
				t.Fatalf("Pixel (%d,%d): expected background (50,60,70,255), got %v", x, y, pixel)
			}
		}
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	s := scene.NewDefaultScene()
	camera := testCamera(t, 32, 18)

	first, _ := NewRenderer(s, camera).SetNumWorkers(1).Render()
	second, _ := NewRenderer(s, camera).SetNumWorkers(4).Render()

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Expected identical images regardless of worker count")
	}

	third, _ := NewRenderer(s, camera).SetNumWorkers(4).Render()
	if !bytes.Equal(second.Pix, third.Pix) {
		t.Error("Expected bit-identical images across repeated renders")
	}
}

func TestRenderer_SceneContentVisible(t *testing.T) {
	s := scene.NewEmissionScene()
	camera := testCamera(t, 32, 18)

	img, _ := NewRenderer(s, camera).Render()

	// At least one pixel must differ from the background: the emissive
	// spheres sit in front of the camera.
	background := toRGBA(s.Background)
	found := false
	for y := 0; y < 18 && !found; y++ {
		for x := 0; x < 32; x++ {
			if img.RGBAAt(x, y) != background {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Expected emissive spheres to be visible in the render")
	}
}

func TestClampChannel(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected uint8
	}{
		{"negative clamps to zero", -10, 0},
		{"zero", 0, 0},
		{"mid range rounds", 127.6, 128},
		{"exact max", 255, 255},
		{"overbright clamps", 1e6, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampChannel(tt.value); got != tt.expected {
				t.Errorf("clampChannel(%g): expected %d, got %d", tt.value, tt.expected, got)
			}
		})
	}
}
