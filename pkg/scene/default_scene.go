package scene

import (
	"github.com/elidor/go-phong-raytracer/pkg/core"
	"github.com/elidor/go-phong-raytracer/pkg/geometry"
	"github.com/elidor/go-phong-raytracer/pkg/lights"
)

// NewDefaultScene creates the demo scene used by the CLI, the web server and
// the viewer: three shaded spheres above a ground plane, lit by a point
// light and a dim directional fill.
func NewDefaultScene() *Scene {
	shiny := core.Material{Kd: core.NewVector(0.5, 0.5, 0.5), Ks: core.NewVector(0.5, 0.5, 0.5), Shininess: 100}
	matte := core.Material{Kd: core.NewVector(0.8, 0.8, 0.8), Ks: core.NewVector(0.1, 0.1, 0.1), Shininess: 10}

	ground, err := geometry.NewPlane(core.NewPoint(0, -1, 0), core.NewVector(0, 1, 0), matte)
	if err != nil {
		// Axis-aligned constant normal cannot be degenerate.
		panic(err)
	}
	fill, err := lights.NewDirectionalLight(core.NewVector(1, -1, -1), core.NewColor(30, 30, 30))
	if err != nil {
		panic(err)
	}

	return NewScene("default").
		SetBackground(core.NewColor(20, 25, 40)).
		SetAmbient(lights.NewAmbientLight(core.NewColor(255, 255, 255), 0.1)).
		Add(
			geometry.NewSphere(core.NewPoint(0, 0, -4), 1, shiny).
				SetEmission(core.NewColor(20, 0, 0)),
			geometry.NewSphere(core.NewPoint(-2, 0.25, -5.5), 1.25, shiny).
				SetEmission(core.NewColor(0, 20, 0)),
			geometry.NewSphere(core.NewPoint(2, -0.5, -3), 0.5, matte).
				SetEmission(core.NewColor(0, 0, 20)),
			ground,
		).
		AddLights(
			lights.NewPointLight(core.NewPoint(3, 4, -1), core.NewColor(500, 450, 400)).
				SetAttenuation(1, 0.1, 0.02),
			fill,
		)
}

// NewShadowScene creates a scene built to show hard shadows: a small sphere
// hovering between a spot light and a large matte sphere.
func NewShadowScene() *Scene {
	matte := core.Material{Kd: core.NewVector(0.7, 0.7, 0.7), Ks: core.NewVector(0.2, 0.2, 0.2), Shininess: 30}

	spot, err := lights.NewSpotLight(core.NewPoint(0, 6, -2), core.NewVector(0, -1, -0.5), core.NewColor(800, 800, 700))
	if err != nil {
		panic(err)
	}
	spot.SetAttenuation(1, 0.05, 0.01)
	spot.SetBeamExponent(2)

	return NewScene("shadow").
		SetBackground(core.NewColor(10, 10, 15)).
		SetAmbient(lights.NewAmbientLight(core.NewColor(255, 255, 255), 0.05)).
		Add(
			geometry.NewSphere(core.NewPoint(0, -3, -5), 3, matte),
			geometry.NewSphere(core.NewPoint(0, 2, -3.5), 0.5, matte).
				SetEmission(core.NewColor(10, 10, 0)),
		).
		AddLights(spot)
}

// NewEmissionScene creates a lightless scene: the only color comes from
// ambient light and the spheres' own emission.
func NewEmissionScene() *Scene {
	return NewScene("emission").
		SetBackground(core.NewColor(5, 5, 5)).
		SetAmbient(lights.NewAmbientLight(core.NewColor(40, 40, 60), 1)).
		Add(
			geometry.NewSphere(core.NewPoint(-1.5, 0, -4), 1, core.Material{}).
				SetEmission(core.NewColor(180, 40, 40)),
			geometry.NewSphere(core.NewPoint(1.5, 0, -4), 1, core.Material{}).
				SetEmission(core.NewColor(40, 40, 180)),
		)
}
