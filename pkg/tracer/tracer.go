// Package tracer implements single-bounce ray tracing with Phong-style local
// illumination: ambient light, emission, and per-light diffuse and specular
// contributions gated by a shadow test.
package tracer

import (
	"math"

	"github.com/elidor/go-phong-raytracer/pkg/core"
	"github.com/elidor/go-phong-raytracer/pkg/geometry"
	"github.com/elidor/go-phong-raytracer/pkg/lights"
	"github.com/elidor/go-phong-raytracer/pkg/scene"
)

// DefaultShadowBias is the fixed offset applied along the surface normal
// before casting a shadow ray, so the ray cannot re-intersect the surface it
// started on (shadow acne). A fixed additive bias is scale-dependent; scenes
// much smaller or larger than unit scale should tune it via SetShadowBias.
const DefaultShadowBias = 0.1

// RayTracer traces rays through a scene and shades the visible surface
// points. It holds no mutable state of its own, so a single instance may be
// shared by any number of goroutines once the scene is frozen.
type RayTracer struct {
	scene      *scene.Scene
	shadowBias float64
}

// NewRayTracer creates a ray tracer for a scene
func NewRayTracer(s *scene.Scene) *RayTracer {
	return &RayTracer{scene: s, shadowBias: DefaultShadowBias}
}

// SetShadowBias overrides the shadow-ray offset and returns the tracer for
// chaining.
func (rt *RayTracer) SetShadowBias(bias float64) *RayTracer {
	rt.shadowBias = bias
	return rt
}

// TraceRay traces a single ray through the scene and returns its color.
// Rays that hit nothing get the scene's background color.
func (rt *RayTracer) TraceRay(ray core.Ray) core.Color {
	intersections := rt.scene.Geometries.Intersect(ray, math.Inf(1))
	if intersections == nil {
		return rt.scene.Background
	}
	return rt.calcColor(geometry.ClosestGeoPoint(ray, intersections), ray)
}

// calcColor shades an intersection point: scene-wide ambient intensity plus
// the local effects at the point. This is a one-bounce model; there is no
// recursive reflection or refraction term.
func (rt *RayTracer) calcColor(intersection geometry.GeoPoint, ray core.Ray) core.Color {
	return rt.scene.Ambient.Intensity().Add(rt.calcLocalEffects(intersection, ray))
}

// calcLocalEffects accumulates the geometry's emission plus the diffuse and
// specular contribution of every light that reaches the point.
func (rt *RayTracer) calcLocalEffects(intersection geometry.GeoPoint, ray core.Ray) core.Color {
	color := intersection.Geometry.Emission()
	v := ray.Direction
	n := intersection.Geometry.Normal(intersection.Point)
	nv := core.AlignZero(n.Dot(v))

	// Degenerate grazing case: the view direction coincides with the surface
	// normal. No local lighting is computed.
	if n.Subtract(v).NearZero() {
		return color
	}
	material := intersection.Geometry.Material()

	for _, light := range rt.scene.Lights {
		l := light.L(intersection.Point)
		nl := core.AlignZero(n.Dot(l))

		// Back-face culling: the light and the viewer must be on the same
		// side of the surface. Grazing incidence on either side contributes
		// nothing.
		if nl*nv <= 0 {
			continue
		}

		// Shadow gating: an occluded light contributes nothing at all.
		if !rt.unshaded(light, intersection, l, n) {
			continue
		}

		intensity := light.Intensity(intersection.Point)
		color = color.Add(
			intensity.ScaleVec(calcDiffusive(material, nl)),
			intensity.ScaleVec(calcSpecular(material, n, l, nl, v)),
		)
	}
	return color
}

// calcDiffusive returns the per-channel diffuse weight kd * |n·l|. The
// absolute value makes diffuse reflectance side-independent once the
// same-sign gate has validated the configuration.
func calcDiffusive(material core.Material, nl float64) core.Vector {
	return material.Kd.Scale(math.Abs(nl))
}

// calcSpecular returns the per-channel specular weight
// ks * max(-v·r, 0)^shininess, where r is l reflected about the normal.
func calcSpecular(material core.Material, n, l core.Vector, nl float64, v core.Vector) core.Vector {
	r := l.Subtract(n.Scale(2 * nl))
	vr := core.AlignZero(v.Negate().Dot(r))
	if vr < 0 {
		// Reflection points away from the viewer; clamp before
		// exponentiation so the term is zero, never negative or NaN.
		vr = 0
	}
	return material.Ks.Scale(math.Pow(vr, float64(material.Shininess)))
}

// unshaded reports whether a light reaches the intersection point. The
// shadow ray starts slightly off the surface, on the side facing the light,
// and only occluders closer than the light itself count.
func (rt *RayTracer) unshaded(light lights.LightSource, intersection geometry.GeoPoint, l, n core.Vector) bool {
	lightDirection := l.Negate() // from the point toward the light

	bias := rt.shadowBias
	if n.Dot(lightDirection) <= 0 {
		bias = -bias
	}
	origin := intersection.Point.Add(n.Scale(bias))

	// lightDirection is a negated unit vector, so the ray invariant holds
	// without renormalizing.
	shadowRay := core.Ray{Origin: origin, Direction: lightDirection}

	return rt.scene.Geometries.Intersect(shadowRay, light.Distance(origin)) == nil
}
