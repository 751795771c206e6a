package lights

import (
	"math"

	"github.com/elidor/go-phong-raytracer/pkg/core"
)

// DirectionalLight illuminates the whole scene from a single direction with
// constant intensity, like a distant sun.
type DirectionalLight struct {
	direction core.Vector
	intensity core.Color
}

// NewDirectionalLight creates a directional light. Returns core.ErrZeroVector
// if the direction is degenerate.
func NewDirectionalLight(direction core.Vector, intensity core.Color) (*DirectionalLight, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return nil, err
	}
	return &DirectionalLight{direction: unit, intensity: intensity}, nil
}

// L returns the light's fixed direction of propagation
func (dl *DirectionalLight) L(core.Point) core.Vector {
	return dl.direction
}

// Intensity returns the constant light color
func (dl *DirectionalLight) Intensity(core.Point) core.Color {
	return dl.intensity
}

// Distance returns +Inf: nothing is ever "beyond" a directional light, so a
// shadow ray toward it is unbounded.
func (dl *DirectionalLight) Distance(core.Point) float64 {
	return math.Inf(1)
}
