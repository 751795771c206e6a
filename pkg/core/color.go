package core

// Color represents an additive RGB color. Channels are non-negative reals
// with no upper bound during computation; clamping to a displayable range
// happens only at image-write time.
type Color struct {
	R, G, B float64
}

// Black is the zero color, used for default emission and empty backgrounds.
var Black = Color{}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of this color and any number of others
func (c Color) Add(others ...Color) Color {
	result := c
	for _, other := range others {
		result.R += other.R
		result.G += other.G
		result.B += other.B
	}
	return result
}

// Scale returns the color scaled uniformly by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// ScaleVec returns the color scaled per channel by a weight triple
func (c Color) ScaleVec(weight Vector) Color {
	return Color{c.R * weight.X, c.G * weight.Y, c.B * weight.Z}
}
