package lights

import "github.com/elidor/go-phong-raytracer/pkg/core"

// AmbientLight is uniform, direction-independent scene illumination, added
// unconditionally to every visible point. The intensity is computed once at
// construction and never changes.
type AmbientLight struct {
	intensity core.Color
}

// None is the reserved no-ambient-light value.
var None = &AmbientLight{intensity: core.Black}

// NewAmbientLight creates an ambient light from a base intensity and a
// uniform scale factor.
func NewAmbientLight(base core.Color, k float64) *AmbientLight {
	return &AmbientLight{intensity: base.Scale(k)}
}

// NewAmbientLightVec creates an ambient light from a base intensity and a
// per-channel scale factor.
func NewAmbientLightVec(base core.Color, k core.Vector) *AmbientLight {
	return &AmbientLight{intensity: base.ScaleVec(k)}
}

// Intensity returns the precomputed ambient intensity
func (a *AmbientLight) Intensity() core.Color {
	return a.intensity
}
