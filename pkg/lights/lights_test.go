package lights

import (
	"math"
	"testing"

	"github.com/elidor/go-phong-raytracer/pkg/core"
)

func colorsClose(a, b core.Color) bool {
	const tolerance = 1e-9
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance
}

func TestAmbientLight_Intensity(t *testing.T) {
	base := core.NewColor(1, 0.5, 0.25)

	uniform := NewAmbientLight(base, 0.5)
	if !colorsClose(uniform.Intensity(), core.NewColor(0.5, 0.25, 0.125)) {
		t.Errorf("Expected uniformly scaled intensity, got %v", uniform.Intensity())
	}

	perChannel := NewAmbientLightVec(base, core.NewVector(1, 2, 4))
	if !colorsClose(perChannel.Intensity(), core.NewColor(1, 1, 1)) {
		t.Errorf("Expected per-channel scaled intensity, got %v", perChannel.Intensity())
	}

	if None.Intensity() != core.Black {
		t.Errorf("Expected black intensity for None, got %v", None.Intensity())
	}
}

func TestPointLight(t *testing.T) {
	light := NewPointLight(core.NewPoint(0, 4, 0), core.NewColor(8, 8, 8))
	point := core.NewPoint(0, 0, 0)

	if l := light.L(point); l != core.NewVector(0, -1, 0) {
		t.Errorf("Expected direction from light to point (0,-1,0), got %v", l)
	}
	if d := light.Distance(point); math.Abs(d-4) > 1e-12 {
		t.Errorf("Expected distance 4, got %f", d)
	}

	// No attenuation by default.
	if !colorsClose(light.Intensity(point), core.NewColor(8, 8, 8)) {
		t.Errorf("Expected unattenuated intensity, got %v", light.Intensity(point))
	}

	// Quadratic attenuation: 8 / (0 + 0 + 0.5*16) = 1.
	light.SetAttenuation(0, 0, 0.5)
	if !colorsClose(light.Intensity(point), core.NewColor(1, 1, 1)) {
		t.Errorf("Expected quadratically attenuated intensity, got %v", light.Intensity(point))
	}
}

func TestPointLight_AtOwnPosition(t *testing.T) {
	light := NewPointLight(core.NewPoint(1, 1, 1), core.NewColor(1, 1, 1))
	if l := light.L(core.NewPoint(1, 1, 1)); l != core.NewVector(0, 0, 0) {
		t.Errorf("Expected zero direction at the light's own position, got %v", l)
	}
}

func TestDirectionalLight(t *testing.T) {
	light, err := NewDirectionalLight(core.NewVector(0, 0, -3), core.NewColor(2, 2, 2))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	point := core.NewPoint(10, 20, 30)
	if l := light.L(point); l != core.NewVector(0, 0, -1) {
		t.Errorf("Expected normalized direction (0,0,-1), got %v", l)
	}
	if !math.IsInf(light.Distance(point), 1) {
		t.Errorf("Expected infinite distance, got %f", light.Distance(point))
	}
	if light.Intensity(point) != core.NewColor(2, 2, 2) {
		t.Errorf("Expected constant intensity, got %v", light.Intensity(point))
	}

	if _, err := NewDirectionalLight(core.NewVector(0, 0, 0), core.Black); err != core.ErrZeroVector {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}
}

func TestSpotLight(t *testing.T) {
	light, err := NewSpotLight(core.NewPoint(0, 2, 0), core.NewVector(0, -1, 0), core.NewColor(4, 4, 4))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Directly below the light, fully inside the beam.
	below := core.NewPoint(0, 0, 0)
	if !colorsClose(light.Intensity(below), core.NewColor(4, 4, 4)) {
		t.Errorf("Expected full intensity below the light, got %v", light.Intensity(below))
	}

	// Behind the beam direction there is no light at all.
	above := core.NewPoint(0, 4, 0)
	if light.Intensity(above) != core.Black {
		t.Errorf("Expected black behind the beam, got %v", light.Intensity(above))
	}

	// At 45 degrees off axis the cone factor is cos(45°).
	offAxis := core.NewPoint(2, 0, 0)
	expected := core.NewColor(4, 4, 4).Scale(math.Sqrt2 / 2)
	if !colorsClose(light.Intensity(offAxis), expected) {
		t.Errorf("Expected %v at 45 degrees, got %v", expected, light.Intensity(offAxis))
	}

	// A beam exponent tightens the falloff.
	light.SetBeamExponent(2)
	expected = core.NewColor(4, 4, 4).Scale(0.5)
	if !colorsClose(light.Intensity(offAxis), expected) {
		t.Errorf("Expected %v with beam exponent 2, got %v", expected, light.Intensity(offAxis))
	}
}
