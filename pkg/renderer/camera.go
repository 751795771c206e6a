package renderer

import (
	"math"

	"github.com/elidor/go-phong-raytracer/pkg/core"
)

// Camera generates one primary ray per pixel through a viewport one focal
// length in front of the camera position. There is no sampling or lens
// model; every ray goes through its pixel center.
type Camera struct {
	origin          core.Point
	lowerLeftCorner core.Point
	horizontal      core.Vector
	vertical        core.Vector
	width           int
	height          int
}

// NewCamera creates a camera at origin looking at lookAt, with the given
// vertical field of view in degrees and image dimensions in pixels.
// Returns core.ErrZeroVector if lookAt coincides with origin or up is
// parallel to the view direction.
func NewCamera(origin, lookAt core.Point, up core.Vector, vfovDegrees float64, width, height int) (*Camera, error) {
	theta := vfovDegrees * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := viewportHeight * float64(width) / float64(height)

	w, err := origin.Subtract(lookAt).Normalize()
	if err != nil {
		return nil, err
	}
	u, err := up.Cross(w).Normalize()
	if err != nil {
		return nil, err
	}
	v := w.Cross(u)

	horizontal := u.Scale(viewportWidth)
	vertical := v.Scale(viewportHeight)
	lowerLeftCorner := origin.
		Add(horizontal.Scale(-0.5)).
		Add(vertical.Scale(-0.5)).
		Add(w.Negate())

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		width:           width,
		height:          height,
	}, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// RayThrough returns the ray through the center of pixel (i, j), with j=0 at
// the top row.
func (c *Camera) RayThrough(i, j int) core.Ray {
	s := (float64(i) + 0.5) / float64(c.width)
	t := 1 - (float64(j)+0.5)/float64(c.height)

	target := c.lowerLeftCorner.
		Add(c.horizontal.Scale(s)).
		Add(c.vertical.Scale(t))

	// The direction always contains a full focal length toward the viewport,
	// so it can never be zero.
	ray, _ := core.NewRay(c.origin, target.Subtract(c.origin))
	return ray
}
