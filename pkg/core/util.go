package core

import "math"

// Epsilon is the shared tolerance for all floating-point comparisons in the
// tracer: quadratic root zeroing, distance clipping and shading sign gates all
// go through AlignZero so every primitive applies an identical tolerance.
const Epsilon = 1e-10

// AlignZero collapses values within Epsilon of zero to exactly zero, so
// sign-based branching is stable against floating-point noise.
func AlignZero(value float64) float64 {
	if math.Abs(value) < Epsilon {
		return 0
	}
	return value
}
