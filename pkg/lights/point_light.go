package lights

import "github.com/elidor/go-phong-raytracer/pkg/core"

// PointLight radiates uniformly in all directions from a position, attenuated
// by distance as 1 / (kC + kL*d + kQ*d²).
type PointLight struct {
	position  core.Point
	intensity core.Color
	kC        float64 // constant attenuation
	kL        float64 // linear attenuation
	kQ        float64 // quadratic attenuation
}

// NewPointLight creates a point light with no distance attenuation
func NewPointLight(position core.Point, intensity core.Color) *PointLight {
	return &PointLight{position: position, intensity: intensity, kC: 1}
}

// SetAttenuation sets the attenuation factors and returns the light for
// chaining during scene construction.
func (pl *PointLight) SetAttenuation(kC, kL, kQ float64) *PointLight {
	pl.kC, pl.kL, pl.kQ = kC, kL, kQ
	return pl
}

// L returns the unit direction from the light toward the point.
// A point coinciding with the light position has no defined direction and
// gets the zero vector, which the shading gates then skip.
func (pl *PointLight) L(point core.Point) core.Vector {
	direction, err := point.Subtract(pl.position).Normalize()
	if err != nil {
		return core.Vector{}
	}
	return direction
}

// Intensity returns the light color attenuated by distance
func (pl *PointLight) Intensity(point core.Point) core.Color {
	d := pl.position.Distance(point)
	return pl.intensity.Scale(1 / (pl.kC + pl.kL*d + pl.kQ*d*d))
}

// Distance returns the distance from the point to the light
func (pl *PointLight) Distance(point core.Point) float64 {
	return pl.position.Distance(point)
}
