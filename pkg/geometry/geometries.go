package geometry

import "github.com/elidor/go-phong-raytracer/pkg/core"

// Geometries is an ordered collection of primitives queried as one unit.
// Intersection is brute force over every member; there is no acceleration
// structure.
type Geometries struct {
	items []Geometry
}

// NewGeometries creates a collection from any number of primitives
func NewGeometries(items ...Geometry) *Geometries {
	return &Geometries{items: items}
}

// Add appends primitives to the collection
func (g *Geometries) Add(items ...Geometry) {
	g.items = append(g.items, items...)
}

// Count returns the number of primitives in the collection
func (g *Geometries) Count() int {
	return len(g.items)
}

// Intersect returns every intersection of the ray with every member up to
// maxDistance, or nil if there are none. Results are in member order; they
// are not sorted by distance.
func (g *Geometries) Intersect(ray core.Ray, maxDistance float64) []GeoPoint {
	var intersections []GeoPoint
	for _, item := range g.items {
		intersections = append(intersections, item.Intersect(ray, maxDistance)...)
	}
	return intersections
}
