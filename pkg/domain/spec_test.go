package domain

import (
	"testing"

	"github.com/planform/planform/pkg/geometry"
)

func TestPolygonEdges(t *testing.T) {
	p := Polygon{Coordinates: []geometry.Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0},
	}}

	if got := p.EdgeCount(); got != 4 {
		t.Fatalf("EdgeCount() = %d, want 4", got)
	}

	a, b := p.Edge(0)
	if a != (geometry.Point{X: 0, Y: 0}) || b != (geometry.Point{X: 5, Y: 0}) {
		t.Errorf("Edge(0) = %v-%v, want (0,0)-(5,0)", a, b)
	}
	a, b = p.Edge(3)
	if a != (geometry.Point{X: 0, Y: 4}) || b != (geometry.Point{X: 0, Y: 0}) {
		t.Errorf("Edge(3) = %v-%v, want (0,4)-(0,0)", a, b)
	}
}

func TestPolygonEdgeCount_Degenerate(t *testing.T) {
	if got := (Polygon{}).EdgeCount(); got != 0 {
		t.Errorf("empty polygon EdgeCount() = %d, want 0", got)
	}
	p := Polygon{Coordinates: []geometry.Point{{X: 1, Y: 1}}}
	if got := p.EdgeCount(); got != 0 {
		t.Errorf("single point EdgeCount() = %d, want 0", got)
	}
}

func TestFloorByLevel(t *testing.T) {
	spec := &DesignSpec{Building: Building{Floors: []Floor{
		{Level: 0}, {Level: 2},
	}}}

	if f := spec.FloorByLevel(2); f == nil || f.Level != 2 {
		t.Errorf("FloorByLevel(2) = %v, want level 2", f)
	}
	if f := spec.FloorByLevel(1); f != nil {
		t.Errorf("FloorByLevel(1) = %v, want nil", f)
	}
}
