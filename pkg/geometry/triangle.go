package geometry

import "github.com/elidor/go-phong-raytracer/pkg/core"

// Triangle represents a triangle defined by three vertices
type Triangle struct {
	v0, v1, v2 core.Point
	normal     core.Vector
	material   core.Material
	emission   core.Color
}

// NewTriangle creates a new triangle. Returns core.ErrZeroVector if the
// vertices are collinear.
func NewTriangle(v0, v1, v2 core.Point, material core.Material) (*Triangle, error) {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	normal, err := edge1.Cross(edge2).Normalize()
	if err != nil {
		return nil, err
	}
	return &Triangle{v0: v0, v1: v1, v2: v2, normal: normal, material: material}, nil
}

// SetEmission sets the triangle's own emitted color and returns the triangle
// for chaining during scene construction.
func (tr *Triangle) SetEmission(emission core.Color) *Triangle {
	tr.emission = emission
	return tr
}

// Material returns the triangle's material
func (tr *Triangle) Material() core.Material { return tr.material }

// Emission returns the triangle's emitted color
func (tr *Triangle) Emission() core.Color { return tr.emission }

// Normal returns the triangle's plane normal, which is the same at every point
func (tr *Triangle) Normal(core.Point) core.Vector { return tr.normal }

// Intersect finds the intersection of a ray with the triangle up to
// maxDistance using the Möller–Trumbore algorithm.
func (tr *Triangle) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	edge1 := tr.v1.Subtract(tr.v0)
	edge2 := tr.v2.Subtract(tr.v0)

	h := ray.Direction.Cross(edge2)
	a := core.AlignZero(edge1.Dot(h))
	if a == 0 {
		// Ray is parallel to the triangle's plane.
		return nil
	}

	f := 1 / a
	s := ray.Origin.Subtract(tr.v0)
	u := f * s.Dot(h)
	if core.AlignZero(u) <= 0 || core.AlignZero(u-1) >= 0 {
		return nil
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if core.AlignZero(v) <= 0 || core.AlignZero(u+v-1) >= 0 {
		return nil
	}

	t := core.AlignZero(f * edge2.Dot(q))
	if t <= 0 || core.AlignZero(t-maxDistance) > 0 {
		return nil
	}
	return []GeoPoint{{Geometry: tr, Point: ray.At(t)}}
}
