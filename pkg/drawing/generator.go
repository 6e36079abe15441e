package drawing

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/planform/planform/pkg/domain"
	"github.com/planform/planform/pkg/geometry"
	"github.com/planform/planform/pkg/validate"
)

// Generate renders one floor of a validated specification into a drawing
// document. It is all-or-nothing: if any geometric invariant is violated it
// fails with a GeometryError naming the first violation and returns no
// partial drawing.
func Generate(spec *domain.DesignSpec, floorLevel int, opts Options) (*domain.Drawing, error) {
	if opts.WallThickness <= 0 {
		return nil, fmt.Errorf("wall thickness must be positive, got %g", opts.WallThickness)
	}

	floor := spec.FloorByLevel(floorLevel)
	if floor == nil {
		return nil, fmt.Errorf("level %d: %w", floorLevel, domain.ErrFloorNotFound)
	}

	if diags := validate.New(opts.Tolerance).Geometry(spec); diags.HasErrors() {
		first := diags[0]
		return nil, &domain.GeometryError{Path: first.Path, Reason: first.Message}
	}

	// The document ID is derived from the content identity, not drawn fresh,
	// so identical inputs produce identical documents.
	id := uuid.NewSHA1(uuid.NameSpaceOID,
		[]byte(fmt.Sprintf("%s/level-%d", spec.ProjectInfo.Name, floorLevel)))
	d := domain.NewDrawing(id.String(), spec.ProjectInfo.Name, floorLevel)

	for ri := range floor.Rooms {
		emitRoom(d, &floor.Rooms[ri], opts)
	}
	emitTitleBlock(d, spec, floor, opts)
	return d, nil
}

// emitRoom draws one room in the fixed order: walls, doors, windows,
// furniture, label.
func emitRoom(d *domain.Drawing, room *domain.Room, opts Options) {
	plan := planWalls(room, opts.WallThickness)
	plan.emit(d)

	for i := range room.Doors {
		emitDoor(d, plan, &room.Doors[i])
	}
	for i := range room.Windows {
		emitWindow(d, plan, &room.Windows[i], opts.SillMark)
	}
	for i := range room.Furniture {
		emitFurniture(d, &room.Furniture[i], opts.FurnitureLabelHeight)
	}

	d.Add(domain.LayerText, domain.Text{
		Value:    room.Name,
		Position: geometry.Centroid(room.Geometry.Coordinates),
		Height:   opts.RoomLabelHeight,
	})
}

// emitDoor caps the wall gap and draws the opening line plus a
// quarter-circle swing arc hinged at the span's start jamb.
func emitDoor(d *domain.Drawing, plan *wallPlan, door *domain.Door) {
	from, to := plan.spanFractions(door.WallIndex, door.Position, door.Width)
	plan.emitCaps(d, door.WallIndex, from, to)

	p1, p2 := plan.poly.Edge(door.WallIndex)
	hinge := geometry.PointAlongEdge(p1, p2, from)
	latch := geometry.PointAlongEdge(p1, p2, to)

	d.Add(domain.LayerDoor, domain.Line{Start: hinge, End: latch})

	// Arcs sweep counterclockwise from start to end. The leaf opens 90
	// degrees from the closed position: inward doors sweep up from the
	// latch angle, outward doors sweep into it from the other side.
	closed := angleDeg(hinge, latch)
	start, end := closed, closed+90
	if door.Swing == "outward" {
		start, end = closed-90, closed
	}

	d.Add(domain.LayerDoor, domain.Arc{
		Center:     hinge,
		Radius:     door.Width,
		StartAngle: normalizeDeg(start),
		EndAngle:   normalizeDeg(end),
	})
}

// emitWindow caps the wall gap and draws the glass line with sill marks at
// both jambs.
func emitWindow(d *domain.Drawing, plan *wallPlan, win *domain.Window, sillMark float64) {
	from, to := plan.spanFractions(win.WallIndex, win.Position, win.Width)
	plan.emitCaps(d, win.WallIndex, from, to)

	p1, p2 := plan.poly.Edge(win.WallIndex)
	jambA := geometry.PointAlongEdge(p1, p2, from)
	jambB := geometry.PointAlongEdge(p1, p2, to)

	d.Add(domain.LayerWindow, domain.Line{Start: jambA, End: jambB})

	for _, jamb := range []geometry.Point{jambA, jambB} {
		d.Add(domain.LayerWindow, domain.Line{
			Start: perpendicularPoint(p1, p2, jamb, sillMark),
			End:   perpendicularPoint(p1, p2, jamb, -sillMark),
		})
	}
}

// emitFurniture draws the rotated rectangular footprint and an optional
// label at the anchor.
func emitFurniture(d *domain.Drawing, f *domain.Furniture, labelHeight float64) {
	width, depth := f.Kind.DefaultFootprint()
	if f.Dimensions != nil {
		if f.Dimensions.Width > 0 {
			width = f.Dimensions.Width
		}
		if f.Dimensions.Depth > 0 {
			depth = f.Dimensions.Depth
		}
	}

	anchor := geometry.Point{X: f.Position.X, Y: f.Position.Y}
	angle := f.Position.Rotation * math.Pi / 180
	hw, hd := width/2, depth/2

	corners := []geometry.Point{
		{X: anchor.X - hw, Y: anchor.Y - hd},
		{X: anchor.X + hw, Y: anchor.Y - hd},
		{X: anchor.X + hw, Y: anchor.Y + hd},
		{X: anchor.X - hw, Y: anchor.Y + hd},
	}
	for i := range corners {
		corners[i] = geometry.Rotate(corners[i], anchor, angle)
	}
	d.Add(domain.LayerFurniture, domain.Polyline{Points: corners, Closed: true})

	if f.Label != "" {
		d.Add(domain.LayerText, domain.Text{
			Value:    f.Label,
			Position: anchor,
			Height:   labelHeight,
		})
	}
}

// emitTitleBlock draws the static project stamp: a border on DIMENSION and
// the project texts on TEXT. The layout does not depend on floor geometry.
func emitTitleBlock(d *domain.Drawing, spec *domain.DesignSpec, floor *domain.Floor, opts Options) {
	origin := opts.TitleBlockOrigin

	d.Add(domain.LayerDimension, domain.Polyline{
		Points: []geometry.Point{
			{X: origin.X - 0.25, Y: origin.Y + 0.75},
			{X: origin.X + 6.0, Y: origin.Y + 0.75},
			{X: origin.X + 6.0, Y: origin.Y - 2.25},
			{X: origin.X - 0.25, Y: origin.Y - 2.25},
		},
		Closed: true,
	})

	rows := []struct {
		value  string
		height float64
	}{
		{spec.ProjectInfo.Name, 0.5},
		{fmt.Sprintf("Level %d", floor.Level), 0.3},
		{spec.ProjectInfo.Client, 0.2},
	}
	y := origin.Y
	for _, row := range rows {
		if row.value != "" {
			d.Add(domain.LayerText, domain.Text{
				Value:    row.value,
				Position: geometry.Point{X: origin.X, Y: y},
				Height:   row.height,
			})
		}
		y -= row.height * 1.5
	}
}

func angleDeg(from, to geometry.Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi
}

func normalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// perpendicularPoint offsets p perpendicular to the edge direction p1-p2 by
// dist (signed, left positive).
func perpendicularPoint(p1, p2, p geometry.Point, dist float64) geometry.Point {
	length := geometry.EdgeLength(p1, p2)
	if length <= geometry.Epsilon {
		return p
	}
	return geometry.Point{
		X: p.X - (p2.Y-p1.Y)/length*dist,
		Y: p.Y + (p2.X-p1.X)/length*dist,
	}
}
