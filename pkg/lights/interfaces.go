package lights

import "github.com/elidor/go-phong-raytracer/pkg/core"

// LightSource is the capability set the shading engine consumes from a light.
type LightSource interface {
	// L returns the unit direction of propagation at a point: from the light
	// toward the point. The shading engine negates it for shadow rays.
	L(point core.Point) core.Vector

	// Intensity returns the light's color at a point, after any attenuation.
	Intensity(point core.Point) core.Color

	// Distance returns the distance from the point to the light, or +Inf for
	// directional lights. Shadow rays are bounded by this distance so
	// occluders beyond the light itself are ignored.
	Distance(point core.Point) float64
}
