package geometry

import "math"

// Side selects which side of a directed edge an offset falls on.
type Side int

const (
	// SideLeft offsets to the left of the edge direction (into a
	// counter-clockwise polygon).
	SideLeft Side = 1
	// SideRight offsets to the right of the edge direction.
	SideRight Side = -1
)

// OffsetEdge returns a segment parallel to p1-p2, shifted perpendicular by
// distance to the given side. A degenerate (near-zero-length) edge is
// returned unshifted; stage-3 validation rejects such edges before any
// caller that cares reaches this point.
func OffsetEdge(p1, p2 Point, distance float64, side Side) Segment {
	length := EdgeLength(p1, p2)
	if length <= Epsilon {
		return Segment{Start: p1, End: p2}
	}
	// Unit normal, left of the direction vector.
	nx := -(p2.Y - p1.Y) / length * distance * float64(side)
	ny := (p2.X - p1.X) / length * distance * float64(side)
	return Segment{
		Start: Point{X: p1.X + nx, Y: p1.Y + ny},
		End:   Point{X: p2.X + nx, Y: p2.Y + ny},
	}
}

// LineIntersection returns the intersection of the infinite lines through
// the two segments. ok is false when the lines are parallel within Epsilon;
// callers use the segment endpoints directly in that case (the collinear
// fallback for miter joins).
func LineIntersection(a, b Segment) (Point, bool) {
	d1x := a.End.X - a.Start.X
	d1y := a.End.Y - a.Start.Y
	d2x := b.End.X - b.Start.X
	d2y := b.End.Y - b.Start.Y

	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) <= Epsilon {
		return Point{}, false
	}

	t := ((b.Start.X-a.Start.X)*d2y - (b.Start.Y-a.Start.Y)*d2x) / denom
	return Point{X: a.Start.X + t*d1x, Y: a.Start.Y + t*d1y}, true
}

// MiterJoin resolves the corner shared by two consecutive offset edges.
// prev ends at the corner, next starts at it. When the offset lines are
// parallel (collinear source edges) the shared endpoint is used directly
// instead of computing an intersection.
func MiterJoin(prev, next Segment) Point {
	if p, ok := LineIntersection(prev, next); ok {
		return p
	}
	return next.Start
}
