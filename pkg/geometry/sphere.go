package geometry

import (
	"math"

	"github.com/elidor/go-phong-raytracer/pkg/core"
)

// Sphere represents a sphere defined by a center point and a radius
type Sphere struct {
	center   core.Point
	radius   float64
	material core.Material
	emission core.Color
}

// NewSphere creates a new sphere with the given material.
// The emission color defaults to black; use SetEmission for glowing spheres.
func NewSphere(center core.Point, radius float64, material core.Material) *Sphere {
	return &Sphere{center: center, radius: radius, material: material}
}

// SetEmission sets the sphere's own emitted color and returns the sphere
// for chaining during scene construction.
func (s *Sphere) SetEmission(emission core.Color) *Sphere {
	s.emission = emission
	return s
}

// Center returns the center point of the sphere
func (s *Sphere) Center() core.Point { return s.center }

// Radius returns the radius of the sphere
func (s *Sphere) Radius() float64 { return s.radius }

// Material returns the sphere's material
func (s *Sphere) Material() core.Material { return s.material }

// Emission returns the sphere's emitted color
func (s *Sphere) Emission() core.Color { return s.emission }

// Normal returns the outward normal at a point on the sphere's surface
func (s *Sphere) Normal(point core.Point) core.Vector {
	// A surface point is exactly one radius from the center, so dividing by
	// the radius normalizes without a zero-length hazard.
	return point.Subtract(s.center).Scale(1 / s.radius)
}

// Intersect finds the intersections of a ray with the sphere up to
// maxDistance, using the geometric projection of the center onto the ray
// rather than raw quadratic-formula coefficients.
func (s *Sphere) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	u := s.center.Subtract(ray.Origin)

	// Ray starts at the center: the only intersection ahead is one radius
	// along the direction.
	if u.NearZero() {
		return []GeoPoint{{Geometry: s, Point: ray.At(s.radius)}}
	}

	tm := ray.Direction.Dot(u)
	dSquared := u.LengthSquared() - tm*tm
	thSquared := core.AlignZero(s.radius*s.radius - dSquared)
	if thSquared <= 0 {
		// Miss, or exact tangency which counts as a miss.
		return nil
	}
	th := math.Sqrt(thSquared)

	t2 := core.AlignZero(tm + th)
	if t2 <= 0 {
		// Both intersections are behind the ray origin.
		return nil
	}

	t1 := core.AlignZero(tm - th)
	if core.AlignZero(t1-maxDistance) > 0 {
		// Both intersections lie beyond the allowed range.
		return nil
	}

	if core.AlignZero(t2-maxDistance) <= 0 {
		if t1 <= 0 {
			// Origin is inside the sphere: only the exit point is ahead.
			return []GeoPoint{{Geometry: s, Point: ray.At(t2)}}
		}
		// Farther point first, since t2 >= t1.
		return []GeoPoint{
			{Geometry: s, Point: ray.At(t2)},
			{Geometry: s, Point: ray.At(t1)},
		}
	}

	// t2 is beyond maxDistance; t1 counts only if it is ahead of the origin.
	if t1 <= 0 {
		return nil
	}
	return []GeoPoint{{Geometry: s, Point: ray.At(t1)}}
}
