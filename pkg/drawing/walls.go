package drawing

import (
	"sort"

	"github.com/planform/planform/pkg/domain"
	"github.com/planform/planform/pkg/geometry"
)

// gap is an opening span on one centerline edge, as fractions of the edge.
type gap struct {
	from, to float64
}

// wallPlan holds the resolved wall geometry for one room: the miter-joined
// corner points of both boundary faces and the opening gaps per edge.
type wallPlan struct {
	poly    domain.Polygon
	corners [2][]geometry.Point // [faceLeft|faceRight][vertex]
	gaps    map[int][]gap
	half    float64
}

const (
	faceLeft  = 0
	faceRight = 1
)

func faceSide(face int) geometry.Side {
	if face == faceLeft {
		return geometry.SideLeft
	}
	return geometry.SideRight
}

// planWalls offsets every polygon edge to both sides and resolves the
// corners with miter joins, collecting the opening gaps that will cut the
// boundaries.
func planWalls(room *domain.Room, thickness float64) *wallPlan {
	n := room.Geometry.EdgeCount()
	plan := &wallPlan{
		poly: room.Geometry,
		gaps: make(map[int][]gap),
		half: thickness / 2,
	}

	for face := 0; face < 2; face++ {
		offsets := make([]geometry.Segment, n)
		for i := 0; i < n; i++ {
			p1, p2 := room.Geometry.Edge(i)
			offsets[i] = geometry.OffsetEdge(p1, p2, plan.half, faceSide(face))
		}
		corners := make([]geometry.Point, n)
		for i := 0; i < n; i++ {
			prev := offsets[(i-1+n)%n]
			corners[i] = geometry.MiterJoin(prev, offsets[i])
		}
		plan.corners[face] = corners
	}

	for _, d := range room.Doors {
		plan.addGap(d.WallIndex, d.Position, d.Width)
	}
	for _, w := range room.Windows {
		plan.addGap(w.WallIndex, w.Position, w.Width)
	}
	for e := range plan.gaps {
		gs := plan.gaps[e]
		sort.Slice(gs, func(i, j int) bool { return gs[i].from < gs[j].from })
		plan.gaps[e] = gs
	}
	return plan
}

func (p *wallPlan) addGap(edge int, position, width float64) {
	from, to := p.spanFractions(edge, position, width)
	p.gaps[edge] = append(p.gaps[edge], gap{from: from, to: to})
}

// spanFractions converts an opening's arc-length span into fractions of its
// centerline edge, clamped to the edge.
func (p *wallPlan) spanFractions(edge int, position, width float64) (from, to float64) {
	p1, p2 := p.poly.Edge(edge)
	length := geometry.EdgeLength(p1, p2)
	center := position * length
	return clamp01((center - width/2) / length), clamp01((center + width/2) / length)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// facePoint maps a centerline fraction on an edge onto the given boundary
// face: the perpendicular offset of the interpolated point.
func (p *wallPlan) facePoint(face, edge int, fraction float64) geometry.Point {
	p1, p2 := p.poly.Edge(edge)
	seg := geometry.OffsetEdge(p1, p2, p.half, faceSide(face))
	return geometry.PointAlongEdge(seg.Start, seg.End, fraction)
}

// emit writes both boundary faces to the WALL layer. A face without gaps is
// a single closed polyline; gaps split the face into open chains, with the
// chain crossing the loop seam merged so every gap produces exactly one
// break.
func (p *wallPlan) emit(d *domain.Drawing) {
	for face := 0; face < 2; face++ {
		corners := p.corners[face]
		n := len(corners)

		var chains [][]geometry.Point
		cur := []geometry.Point{corners[0]}
		for i := 0; i < n; i++ {
			for _, g := range p.gaps[i] {
				cur = append(cur, p.facePoint(face, i, g.from))
				chains = append(chains, cur)
				cur = []geometry.Point{p.facePoint(face, i, g.to)}
			}
			cur = append(cur, corners[(i+1)%n])
		}

		if len(chains) == 0 {
			d.Add(domain.LayerWall, domain.Polyline{Points: corners, Closed: true})
			continue
		}
		// cur ends where the first chain started; join them across the seam.
		chains[0] = append(cur, chains[0][1:]...)
		for _, chain := range chains {
			d.Add(domain.LayerWall, domain.Polyline{Points: chain})
		}
	}
}

// emitCaps draws the short perpendicular segments closing the wall ends at
// an opening's jambs, connecting the two boundary faces.
func (p *wallPlan) emitCaps(d *domain.Drawing, edge int, from, to float64) {
	for _, f := range []float64{from, to} {
		d.Add(domain.LayerWall, domain.Line{
			Start: p.facePoint(faceLeft, edge, f),
			End:   p.facePoint(faceRight, edge, f),
		})
	}
}
