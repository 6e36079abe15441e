package geometry

import "math"

// Epsilon is the default tolerance used for float comparisons.
// Coordinates are meters, so 1e-9 is far below any drawable feature.
const Epsilon = 1e-9

// Point is a 2D point in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a directed line segment.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Equal reports whether two points coincide within Epsilon.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) <= Epsilon && math.Abs(p.Y-q.Y) <= Epsilon
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return EdgeLength(s.Start, s.End)
}

// EdgeLength returns the Euclidean distance between two points.
func EdgeLength(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// ring returns the polygon vertices without the closing duplicate, so the
// shoelace loops can treat the input uniformly whether or not the caller
// repeated the first point.
func ring(poly []Point) []Point {
	if len(poly) > 1 && poly[0].Equal(poly[len(poly)-1]) {
		return poly[:len(poly)-1]
	}
	return poly
}

// SignedArea returns the shoelace sum divided by two. The sign encodes
// winding order: positive for counter-clockwise rings.
func SignedArea(poly []Point) float64 {
	pts := ring(poly)
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// Area returns the absolute polygon area in square meters.
func Area(poly []Point) float64 {
	return math.Abs(SignedArea(poly))
}

// Perimeter returns the sum of edge lengths, including the closing edge.
func Perimeter(poly []Point) float64 {
	pts := ring(poly)
	if len(pts) < 2 {
		return 0
	}
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += EdgeLength(pts[i], pts[j])
	}
	return sum
}

// Centroid returns the area-weighted centroid. For concave rooms this is the
// correct label anchor; a plain vertex average drifts toward dense vertex
// runs. Degenerate (near-zero area) polygons fall back to the vertex mean so
// the function stays total.
func Centroid(poly []Point) Point {
	pts := ring(poly)
	if len(pts) == 0 {
		return Point{}
	}
	a := SignedArea(pts)
	if math.Abs(a) <= Epsilon {
		var c Point
		for _, p := range pts {
			c.X += p.X
			c.Y += p.Y
		}
		c.X /= float64(len(pts))
		c.Y /= float64(len(pts))
		return c
	}
	var cx, cy float64
	for i := range pts {
		j := (i + 1) % len(pts)
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		cx += (pts[i].X + pts[j].X) * cross
		cy += (pts[i].Y + pts[j].Y) * cross
	}
	return Point{X: cx / (6 * a), Y: cy / (6 * a)}
}

// PointInPolygon reports whether p lies inside the polygon using ray casting
// with the even-odd rule. Points on the boundary count as inside.
func PointInPolygon(p Point, poly []Point) bool {
	pts := ring(poly)
	if len(pts) < 3 {
		return false
	}
	inside := false
	for i := range pts {
		j := (i + 1) % len(pts)
		a, b := pts[i], pts[j]

		if onSegment(a, b, p) {
			return true
		}

		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// Rotate rotates p around pivot by angle radians (counter-clockwise).
func Rotate(p, pivot Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}

// PointAlongEdge linearly interpolates along the edge p1-p2.
// fraction 0 yields p1, fraction 1 yields p2.
func PointAlongEdge(p1, p2 Point, fraction float64) Point {
	return Point{
		X: p1.X + (p2.X-p1.X)*fraction,
		Y: p1.Y + (p2.Y-p1.Y)*fraction,
	}
}

// BoundingBox returns the axis-aligned bounding box of the polygon.
func BoundingBox(poly []Point) BBox {
	pts := ring(poly)
	if len(pts) == 0 {
		return BBox{}
	}
	box := BBox{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		box.MinX = math.Min(box.MinX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}
	return box
}

// Simplify removes vertices whose perpendicular distance to the line through
// their neighbors is within tolerance. The result keeps the closing duplicate
// if the input had one. Simplify is idempotent: once a vertex survives, its
// distance to the retained neighbors can only grow.
func Simplify(poly []Point, tolerance float64) []Point {
	pts := ring(poly)
	closed := len(pts) != len(poly)
	if len(pts) <= 3 {
		return append([]Point(nil), poly...)
	}

	kept := make([]Point, 0, len(pts))
	for i := range pts {
		prev := pts[(i-1+len(pts))%len(pts)]
		next := pts[(i+1)%len(pts)]
		if perpendicularDistance(pts[i], prev, next) > tolerance {
			kept = append(kept, pts[i])
		}
	}
	// Never collapse below a triangle.
	if len(kept) < 3 {
		kept = append([]Point(nil), pts...)
	}
	if closed {
		kept = append(kept, kept[0])
	}
	return kept
}

// perpendicularDistance returns the distance from p to the line through a-b.
// If a and b coincide it degenerates to point distance.
func perpendicularDistance(p, a, b Point) float64 {
	length := EdgeLength(a, b)
	if length <= Epsilon {
		return EdgeLength(p, a)
	}
	cross := (b.X-a.X)*(a.Y-p.Y) - (a.X-p.X)*(b.Y-a.Y)
	return math.Abs(cross) / length
}

// cross2 returns the z-component of (b-a) x (c-a).
func cross2(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegment(a, b, p Point) bool {
	if math.Abs(cross2(a, b, p)) > Epsilon {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-Epsilon && p.X <= math.Max(a.X, b.X)+Epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-Epsilon && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// SegmentsIntersect reports whether segments a-b and c-d share a point,
// including touching endpoints and collinear overlap.
func SegmentsIntersect(a, b, c, d Point) bool {
	d1 := cross2(c, d, a)
	d2 := cross2(c, d, b)
	d3 := cross2(a, b, c)
	d4 := cross2(a, b, d)

	if ((d1 > Epsilon && d2 < -Epsilon) || (d1 < -Epsilon && d2 > Epsilon)) &&
		((d3 > Epsilon && d4 < -Epsilon) || (d3 < -Epsilon && d4 > Epsilon)) {
		return true
	}

	return onSegment(c, d, a) || onSegment(c, d, b) ||
		onSegment(a, b, c) || onSegment(a, b, d)
}
