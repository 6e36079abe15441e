package geometry

import "testing"

func TestOffsetEdge(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		distance float64
		side     Side
		want     Segment
	}{
		{
			"horizontal left",
			Point{0, 0}, Point{4, 0}, 0.1, SideLeft,
			Segment{Start: Point{0, 0.1}, End: Point{4, 0.1}},
		},
		{
			"horizontal right",
			Point{0, 0}, Point{4, 0}, 0.1, SideRight,
			Segment{Start: Point{0, -0.1}, End: Point{4, -0.1}},
		},
		{
			"vertical left",
			Point{4, 0}, Point{4, 3}, 0.1, SideLeft,
			Segment{Start: Point{3.9, 0}, End: Point{3.9, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OffsetEdge(tt.p1, tt.p2, tt.distance, tt.side)
			if !got.Start.Equal(tt.want.Start) || !got.End.Equal(tt.want.End) {
				t.Errorf("OffsetEdge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOffsetEdge_Inverse(t *testing.T) {
	// Offsetting left then right by the same distance restores the edge.
	p1, p2 := Point{1.3, -2.7}, Point{4.1, 0.9}
	left := OffsetEdge(p1, p2, 0.4, SideLeft)
	back := OffsetEdge(left.Start, left.End, 0.4, SideRight)
	if !back.Start.Equal(p1) || !back.End.Equal(p2) {
		t.Errorf("round trip = %+v, want %v-%v", back, p1, p2)
	}
}

func TestOffsetEdge_DegenerateUnshifted(t *testing.T) {
	p := Point{1, 1}
	got := OffsetEdge(p, p, 0.5, SideLeft)
	if !got.Start.Equal(p) || !got.End.Equal(p) {
		t.Errorf("degenerate edge moved: %+v", got)
	}
}

func TestLineIntersection(t *testing.T) {
	a := Segment{Start: Point{0, 0}, End: Point{2, 0}}
	b := Segment{Start: Point{1, -1}, End: Point{1, 1}}
	p, ok := LineIntersection(a, b)
	if !ok || !p.Equal(Point{1, 0}) {
		t.Errorf("LineIntersection() = %v, %v, want (1, 0), true", p, ok)
	}

	// Intersection of the infinite lines may lie outside both segments.
	c := Segment{Start: Point{5, -1}, End: Point{5, 1}}
	p, ok = LineIntersection(a, c)
	if !ok || !p.Equal(Point{5, 0}) {
		t.Errorf("LineIntersection() = %v, %v, want (5, 0), true", p, ok)
	}
}

func TestLineIntersection_Parallel(t *testing.T) {
	a := Segment{Start: Point{0, 0}, End: Point{1, 0}}
	b := Segment{Start: Point{0, 1}, End: Point{1, 1}}
	if _, ok := LineIntersection(a, b); ok {
		t.Error("LineIntersection() on parallel lines reported ok")
	}
}

func TestMiterJoin_RightAngle(t *testing.T) {
	// Inner faces of a square corner at (1, 0): the horizontal edge offset
	// up and the vertical edge offset left meet at (0.9, 0.1).
	prev := OffsetEdge(Point{0, 0}, Point{1, 0}, 0.1, SideLeft)
	next := OffsetEdge(Point{1, 0}, Point{1, 1}, 0.1, SideLeft)
	got := MiterJoin(prev, next)
	if !got.Equal(Point{0.9, 0.1}) {
		t.Errorf("MiterJoin() = %v, want (0.9, 0.1)", got)
	}
}

func TestMiterJoin_CollinearFallback(t *testing.T) {
	prev := OffsetEdge(Point{0, 0}, Point{1, 0}, 0.1, SideLeft)
	next := OffsetEdge(Point{1, 0}, Point{2, 0}, 0.1, SideLeft)
	got := MiterJoin(prev, next)
	if !got.Equal(next.Start) {
		t.Errorf("MiterJoin() = %v, want the shared endpoint %v", got, next.Start)
	}
}
