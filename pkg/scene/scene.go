// Package scene aggregates the read-only inputs of a render: background
// color, ambient light, primitives and light sources. A scene is built once,
// then treated as frozen; every tracer goroutine reads it without locking.
package scene

import (
	"github.com/elidor/go-phong-raytracer/pkg/core"
	"github.com/elidor/go-phong-raytracer/pkg/geometry"
	"github.com/elidor/go-phong-raytracer/pkg/lights"
)

// Scene holds everything the shading engine reads while tracing
type Scene struct {
	Name       string
	Background core.Color
	Ambient    *lights.AmbientLight
	Geometries *geometry.Geometries
	Lights     []lights.LightSource
}

// NewScene creates an empty scene with a black background and no ambient
// light
func NewScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Background: core.Black,
		Ambient:    lights.None,
		Geometries: geometry.NewGeometries(),
	}
}

// SetBackground sets the color returned for rays that hit nothing
func (s *Scene) SetBackground(background core.Color) *Scene {
	s.Background = background
	return s
}

// SetAmbient sets the scene-wide ambient light
func (s *Scene) SetAmbient(ambient *lights.AmbientLight) *Scene {
	s.Ambient = ambient
	return s
}

// Add appends primitives to the scene
func (s *Scene) Add(geometries ...geometry.Geometry) *Scene {
	s.Geometries.Add(geometries...)
	return s
}

// AddLights appends light sources to the scene. Light order is preserved;
// it only affects floating-point summation order, not correctness.
func (s *Scene) AddLights(sources ...lights.LightSource) *Scene {
	s.Lights = append(s.Lights, sources...)
	return s
}
