package lights

import (
	"math"

	"github.com/elidor/go-phong-raytracer/pkg/core"
)

// SpotLight is a point light narrowed to a cone around a direction. The
// intensity falls off with the cosine between the beam direction and the
// direction to the lit point, optionally sharpened by a beam exponent.
type SpotLight struct {
	PointLight
	direction core.Vector
	beam      float64
}

// NewSpotLight creates a spot light aimed along direction. Returns
// core.ErrZeroVector if the direction is degenerate.
func NewSpotLight(position core.Point, direction core.Vector, intensity core.Color) (*SpotLight, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return nil, err
	}
	return &SpotLight{
		PointLight: PointLight{position: position, intensity: intensity, kC: 1},
		direction:  unit,
		beam:       1,
	}, nil
}

// SetBeamExponent sharpens the cone falloff and returns the light for
// chaining during scene construction.
func (sl *SpotLight) SetBeamExponent(beam float64) *SpotLight {
	sl.beam = beam
	return sl
}

// Intensity returns the attenuated point-light color scaled by the cone
// factor; points behind the beam direction get black.
func (sl *SpotLight) Intensity(point core.Point) core.Color {
	cos := core.AlignZero(sl.direction.Dot(sl.L(point)))
	if cos <= 0 {
		return core.Black
	}
	if sl.beam != 1 {
		cos = math.Pow(cos, sl.beam)
	}
	return sl.PointLight.Intensity(point).Scale(cos)
}
