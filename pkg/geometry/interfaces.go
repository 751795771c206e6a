package geometry

import "github.com/elidor/go-phong-raytracer/pkg/core"

// Geometry is the capability set every primitive implements: surface normal,
// surface material, emission color, and ray intersection bounded by a maximum
// distance. A flat interface, one implementation per primitive kind.
type Geometry interface {
	// Normal returns the outward surface normal at a point.
	// The point must lie on the primitive's surface.
	Normal(point core.Point) core.Vector

	// Material returns the primitive's Phong material.
	Material() core.Material

	// Emission returns the primitive's own emitted color (black by default).
	Emission() core.Color

	// Intersect returns the intersection points of a ray with the primitive
	// up to maxDistance along the ray, or nil if there are none. When two
	// points are returned they are ordered farthest first; callers that need
	// the nearest must select it explicitly.
	Intersect(ray core.Ray, maxDistance float64) []GeoPoint
}

// GeoPoint pairs an intersection point with the primitive that produced it.
// It borrows the Geometry reference for the duration of a single trace; it is
// never persisted.
type GeoPoint struct {
	Geometry Geometry
	Point    core.Point
}

// ClosestGeoPoint returns the intersection nearest to the ray origin.
// The list must be non-empty; intersection queries return nil rather than an
// empty list when nothing is hit.
func ClosestGeoPoint(ray core.Ray, intersections []GeoPoint) GeoPoint {
	closest := intersections[0]
	closestDistSq := ray.Origin.DistanceSquared(closest.Point)
	for _, gp := range intersections[1:] {
		if distSq := ray.Origin.DistanceSquared(gp.Point); distSq < closestDistSq {
			closest = gp
			closestDistSq = distSq
		}
	}
	return closest
}
