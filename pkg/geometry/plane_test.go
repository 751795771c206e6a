package geometry

import (
	"math"
	"testing"

	"github.com/elidor/go-phong-raytracer/pkg/core"
)

func TestNewPlane_DegenerateNormal(t *testing.T) {
	if _, err := NewPlane(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 0), core.Material{}); err != core.ErrZeroVector {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}
}

func TestPlane_Intersect(t *testing.T) {
	// Ground plane at y=0 with an unnormalized input normal.
	plane, err := NewPlane(core.NewPoint(0, 0, 0), core.NewVector(0, 2, 0), core.Material{})
	if err != nil {
		t.Fatalf("Failed to construct plane: %v", err)
	}

	tests := []struct {
		name        string
		origin      core.Point
		direction   core.Vector
		maxDistance float64
		expected    []core.Point
	}{
		{
			name:        "hit from above",
			origin:      core.NewPoint(0, 2, 0),
			direction:   core.NewVector(0, -1, 0),
			maxDistance: math.Inf(1),
			expected:    []core.Point{core.NewPoint(0, 0, 0)},
		},
		{
			name:        "parallel ray misses",
			origin:      core.NewPoint(0, 1, 0),
			direction:   core.NewVector(1, 0, 0),
			maxDistance: math.Inf(1),
			expected:    nil,
		},
		{
			name:        "plane behind origin",
			origin:      core.NewPoint(0, 1, 0),
			direction:   core.NewVector(0, 1, 0),
			maxDistance: math.Inf(1),
			expected:    nil,
		},
		{
			name:        "hit beyond max distance",
			origin:      core.NewPoint(0, 5, 0),
			direction:   core.NewVector(0, -1, 0),
			maxDistance: 2,
			expected:    nil,
		},
		{
			name:        "boundary exactly at max distance is inclusive",
			origin:      core.NewPoint(0, 2, 0),
			direction:   core.NewVector(0, -1, 0),
			maxDistance: 2,
			expected:    []core.Point{core.NewPoint(0, 0, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := mustRay(t, tt.origin, tt.direction)
			got := plane.Intersect(ray, tt.maxDistance)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if !pointsClose(got[i].Point, tt.expected[i]) {
					t.Errorf("Intersection %d: expected %v, got %v", i, tt.expected[i], got[i].Point)
				}
			}
		})
	}
}

func TestPlane_NormalIsConstant(t *testing.T) {
	plane, err := NewPlane(core.NewPoint(0, 0, 5), core.NewVector(0, 0, 3), core.Material{})
	if err != nil {
		t.Fatalf("Failed to construct plane: %v", err)
	}

	expected := core.NewVector(0, 0, 1)
	if got := plane.Normal(core.NewPoint(7, -2, 5)); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got := plane.Normal(core.NewPoint(0, 0, 5)); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
