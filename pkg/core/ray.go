package core

// Ray represents a ray with an origin and a unit-length direction.
// The direction invariant is established at construction and never mutated.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray, normalizing the direction.
// Returns ErrZeroVector if the direction has near-zero length.
func NewRay(origin Point, direction Vector) (Ray, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: origin, Direction: unit}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Scale(t))
}
