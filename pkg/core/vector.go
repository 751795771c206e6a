package core

import (
	"errors"
	"math"
)

// ErrZeroVector is returned when an operation requires a direction but the
// vector has (near-)zero length. This is a degenerate-geometry fault: valid
// scenes avoid it by construction.
var ErrZeroVector = errors.New("core: cannot normalize zero-length vector")

// Vector represents a direction or displacement in 3D space
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns the vector scaled by a scalar
func (v Vector) Scale(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the vector pointing the opposite way
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// NearZero reports whether every component is within Epsilon of zero.
// Vector comparisons go through this rather than exact equality.
func (v Vector) NearZero() bool {
	return math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon && math.Abs(v.Z) < Epsilon
}

// Normalize returns a unit vector in the same direction.
// Returns ErrZeroVector if the vector has near-zero length.
func (v Vector) Normalize() (Vector, error) {
	lengthSq := v.LengthSquared()
	if AlignZero(lengthSq) <= 0 {
		return Vector{}, ErrZeroVector
	}
	length := math.Sqrt(lengthSq)
	return Vector{v.X / length, v.Y / length, v.Z / length}, nil
}
