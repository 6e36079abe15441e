package validate

import (
	"fmt"
	"sort"

	"github.com/planform/planform/pkg/domain"
	"github.com/planform/planform/pkg/geometry"
)

// opening is the per-edge view of a door or window used for span checks.
type opening struct {
	path     string
	kind     string
	edge     int
	position float64
	width    float64
}

// Geometry runs only the geometric-semantic stage over an already-typed
// specification. The drawing generator uses it as its precondition check.
func (p *Pipeline) Geometry(spec *domain.DesignSpec) domain.Diagnostics {
	return p.semantic(spec)
}

// semantic is stage 3: geometric invariants over the typed model, using the
// geometry engine for every measured quantity.
func (p *Pipeline) semantic(spec *domain.DesignSpec) domain.Diagnostics {
	return p.semanticSkipping(spec, nil)
}

// semanticSkipping runs stage 3 over every room except those whose path is
// flagged, so rooms with model errors are left out of geometric checks.
func (p *Pipeline) semanticSkipping(spec *domain.DesignSpec, flagged map[string]bool) domain.Diagnostics {
	var diags domain.Diagnostics
	for fi := range spec.Building.Floors {
		floor := &spec.Building.Floors[fi]
		for ri := range floor.Rooms {
			roomPath := fmt.Sprintf("/building/floors/%d/rooms/%d", fi, ri)
			if flagged[roomPath] {
				continue
			}
			diags = append(diags, p.semanticRoom(roomPath, &floor.Rooms[ri])...)
		}
	}
	return diags
}

func (p *Pipeline) semanticRoom(path string, room *domain.Room) domain.Diagnostics {
	var diags domain.Diagnostics
	coords := room.Geometry.Coordinates
	geomPath := path + "/geometry/coordinates"

	if len(coords) < 4 {
		diags = append(diags, geomDiag(geomPath,
			fmt.Sprintf("polygon needs at least 3 vertices plus the closing point, got %d points", len(coords))))
		return diags
	}

	if !coords[0].Equal(coords[len(coords)-1]) {
		diags = append(diags, geomDiag(geomPath,
			fmt.Sprintf("polygon is not closed: first point (%g, %g) != last point (%g, %g)",
				coords[0].X, coords[0].Y, coords[len(coords)-1].X, coords[len(coords)-1].Y)))
	}

	distinct := distinctVertices(coords[:len(coords)-1])
	if distinct < 3 {
		diags = append(diags, geomDiag(geomPath,
			fmt.Sprintf("polygon has only %d distinct vertices, need at least 3", distinct)))
	}

	for i := 0; i < len(coords)-1; i++ {
		if geometry.EdgeLength(coords[i], coords[i+1]) <= p.Tolerance {
			diags = append(diags, geomDiag(fmt.Sprintf("%s/%d", geomPath, i),
				fmt.Sprintf("zero-length wall segment at edge %d", i)))
		}
	}

	// Opening invariants are only meaningful on a sound ring.
	if diags.HasErrors() {
		return diags
	}

	var openings []opening
	for di, d := range room.Doors {
		openings = append(openings, opening{
			path:     fmt.Sprintf("%s/doors/%d", path, di),
			kind:     "door",
			edge:     d.WallIndex,
			position: d.Position,
			width:    d.Width,
		})
	}
	for wi, w := range room.Windows {
		openings = append(openings, opening{
			path:     fmt.Sprintf("%s/windows/%d", path, wi),
			kind:     "window",
			edge:     w.WallIndex,
			position: w.Position,
			width:    w.Width,
		})
	}

	perEdge := make(map[int][]opening)
	for _, o := range openings {
		if o.edge < 0 || o.edge >= room.Geometry.EdgeCount() {
			diags = append(diags, geomDiag(o.path+"/wall_index",
				fmt.Sprintf("%s wall_index %d outside edge range 0..%d", o.kind, o.edge, room.Geometry.EdgeCount()-1)))
			continue
		}
		p1, p2 := room.Geometry.Edge(o.edge)
		edgeLen := geometry.EdgeLength(p1, p2)
		if o.width > edgeLen+p.Tolerance {
			diags = append(diags, geomDiag(o.path+"/width",
				fmt.Sprintf("%s width %g exceeds edge %d length %g", o.kind, o.width, o.edge, edgeLen)))
			continue
		}
		perEdge[o.edge] = append(perEdge[o.edge], o)
	}

	diags = append(diags, p.overlapDiags(room, perEdge)...)
	return diags
}

// overlapDiags checks pairwise opening spans per edge. Spans are closed
// intervals in arc length along the edge; touching jambs within tolerance
// are allowed, anything beyond is an overlap.
func (p *Pipeline) overlapDiags(room *domain.Room, perEdge map[int][]opening) domain.Diagnostics {
	var diags domain.Diagnostics

	edges := make([]int, 0, len(perEdge))
	for e := range perEdge {
		edges = append(edges, e)
	}
	sort.Ints(edges)

	for _, e := range edges {
		os := perEdge[e]
		if len(os) < 2 {
			continue
		}
		p1, p2 := room.Geometry.Edge(e)
		edgeLen := geometry.EdgeLength(p1, p2)

		type span struct {
			o          opening
			start, end float64
		}
		spans := make([]span, len(os))
		for i, o := range os {
			center := o.position * edgeLen
			spans[i] = span{o: o, start: center - o.width/2, end: center + o.width/2}
		}
		sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

		for i := 1; i < len(spans); i++ {
			prev, cur := spans[i-1], spans[i]
			if cur.start < prev.end-p.Tolerance {
				diags = append(diags, geomDiag(cur.o.path,
					fmt.Sprintf("%s span [%.3f, %.3f] overlaps %s span [%.3f, %.3f] on edge %d",
						cur.o.kind, cur.start, cur.end, prev.o.kind, prev.start, prev.end, e)))
			}
		}
	}
	return diags
}

func distinctVertices(pts []geometry.Point) int {
	n := 0
	for i, p := range pts {
		dup := false
		for _, q := range pts[:i] {
			if p.Equal(q) {
				dup = true
				break
			}
		}
		if !dup {
			n++
		}
	}
	return n
}

func geomDiag(path, message string) domain.Diagnostic {
	return domain.Diagnostic{
		Stage:    domain.StageGeometry,
		Path:     path,
		Message:  message,
		Severity: domain.SeverityError,
	}
}
