package geometry

import (
	"math"
	"testing"

	"github.com/elidor/go-phong-raytracer/pkg/core"
)

func TestGeometries_Intersect(t *testing.T) {
	near := NewSphere(core.NewPoint(0, 0, 2), 0.5, core.Material{})
	far := NewSphere(core.NewPoint(0, 0, 6), 0.5, core.Material{})
	offAxis := NewSphere(core.NewPoint(0, 5, 0), 0.5, core.Material{})

	collection := NewGeometries(near, far, offAxis)
	if collection.Count() != 3 {
		t.Fatalf("Expected 3 primitives, got %d", collection.Count())
	}

	ray := mustRay(t, core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))

	intersections := collection.Intersect(ray, math.Inf(1))
	if len(intersections) != 4 {
		t.Fatalf("Expected 4 intersections from two spheres, got %d", len(intersections))
	}

	// Distance bound cuts off the far sphere entirely.
	intersections = collection.Intersect(ray, 3)
	if len(intersections) != 2 {
		t.Fatalf("Expected 2 intersections within distance 3, got %d", len(intersections))
	}
}

func TestGeometries_Intersect_NoHits(t *testing.T) {
	collection := NewGeometries(
		NewSphere(core.NewPoint(0, 0, 5), 1, core.Material{}),
	)

	ray := mustRay(t, core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))
	if got := collection.Intersect(ray, math.Inf(1)); got != nil {
		t.Errorf("Expected nil for no intersections, got %v", got)
	}

	empty := NewGeometries()
	if got := empty.Intersect(ray, math.Inf(1)); got != nil {
		t.Errorf("Expected nil for empty collection, got %v", got)
	}
}

func TestClosestGeoPoint(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, 0), 1, core.Material{})
	ray := mustRay(t, core.NewPoint(0, 0, 3), core.NewVector(0, 0, -1))

	tests := []struct {
		name     string
		points   []GeoPoint
		expected core.Point
	}{
		{
			name: "farthest-first pair",
			points: []GeoPoint{
				{Geometry: sphere, Point: core.NewPoint(0, 0, -1)},
				{Geometry: sphere, Point: core.NewPoint(0, 0, 1)},
			},
			expected: core.NewPoint(0, 0, 1),
		},
		{
			name: "single point",
			points: []GeoPoint{
				{Geometry: sphere, Point: core.NewPoint(0, 0, -1)},
			},
			expected: core.NewPoint(0, 0, -1),
		},
		{
			name: "closest in the middle",
			points: []GeoPoint{
				{Geometry: sphere, Point: core.NewPoint(0, 0, -4)},
				{Geometry: sphere, Point: core.NewPoint(0, 0, 2)},
				{Geometry: sphere, Point: core.NewPoint(0, 0, 0)},
			},
			expected: core.NewPoint(0, 0, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestGeoPoint(ray, tt.points); got.Point != tt.expected {
				t.Errorf("Expected closest point %v, got %v", tt.expected, got.Point)
			}
		})
	}
}
