package geometry

import "github.com/elidor/go-phong-raytracer/pkg/core"

// Plane represents an infinite plane defined by a point and a unit normal
type Plane struct {
	point    core.Point
	normal   core.Vector
	material core.Material
	emission core.Color
}

// NewPlane creates a new plane. Returns core.ErrZeroVector if the normal is
// degenerate.
func NewPlane(point core.Point, normal core.Vector, material core.Material) (*Plane, error) {
	unit, err := normal.Normalize()
	if err != nil {
		return nil, err
	}
	return &Plane{point: point, normal: unit, material: material}, nil
}

// SetEmission sets the plane's own emitted color and returns the plane
// for chaining during scene construction.
func (p *Plane) SetEmission(emission core.Color) *Plane {
	p.emission = emission
	return p
}

// Material returns the plane's material
func (p *Plane) Material() core.Material { return p.material }

// Emission returns the plane's emitted color
func (p *Plane) Emission() core.Color { return p.emission }

// Normal returns the plane's normal, which is the same at every point
func (p *Plane) Normal(core.Point) core.Vector { return p.normal }

// Intersect finds the intersection of a ray with the plane up to maxDistance
func (p *Plane) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	denominator := core.AlignZero(p.normal.Dot(ray.Direction))
	if denominator == 0 {
		// Ray is parallel to the plane.
		return nil
	}

	u := p.point.Subtract(ray.Origin)
	if u.NearZero() {
		// Ray starts on the plane's reference point.
		return nil
	}

	t := core.AlignZero(p.normal.Dot(u) / denominator)
	if t <= 0 || core.AlignZero(t-maxDistance) > 0 {
		return nil
	}
	return []GeoPoint{{Geometry: p, Point: ray.At(t)}}
}
