package drawing

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planform/planform/pkg/domain"
	"github.com/planform/planform/pkg/geometry"
)

func rect(w, h float64) domain.Polygon {
	return domain.Polygon{Coordinates: []geometry.Point{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}, {X: 0, Y: 0},
	}}
}

func testSpec(room domain.Room) *domain.DesignSpec {
	return &domain.DesignSpec{
		ProjectInfo: domain.ProjectInfo{Name: "Test House", Client: "ACME"},
		Building: domain.Building{Floors: []domain.Floor{
			{Level: 0, Height: 2.8, Rooms: []domain.Room{room}},
		}},
	}
}

func TestGenerate_PlainRoom(t *testing.T) {
	spec := testSpec(domain.Room{Name: "Living", Type: domain.RoomLivingRoom, Geometry: rect(5, 4)})

	d, err := Generate(spec, 0, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.Equal(t, "Test House", d.Name)
	assert.Equal(t, 0, d.Level)
	assert.NotEmpty(t, d.ID)

	// Every canonical layer exists even when empty.
	for _, layer := range domain.Layers {
		_, ok := d.Layers[layer]
		assert.True(t, ok, "layer %s missing", layer)
	}
	assert.Empty(t, d.Layers[domain.LayerCenterline])
	assert.Empty(t, d.Layers[domain.LayerDoor])

	// A room without openings draws both wall faces as closed polylines.
	walls := d.Layers[domain.LayerWall]
	require.Len(t, walls, 2)
	for _, e := range walls {
		pl, ok := e.(domain.Polyline)
		require.True(t, ok)
		assert.True(t, pl.Closed)
		assert.Len(t, pl.Points, 4)
	}
}

func TestGenerate_WallFaces(t *testing.T) {
	spec := testSpec(domain.Room{Name: "Living", Geometry: rect(5, 4)})
	opts := DefaultOptions() // thickness 0.2

	d, err := Generate(spec, 0, opts)
	require.NoError(t, err)

	walls := d.Layers[domain.LayerWall]
	require.Len(t, walls, 2)

	// Left face of a counter-clockwise ring is the inner boundary.
	inner := walls[0].(domain.Polyline)
	assert.True(t, pointsContain(inner.Points, geometry.Point{X: 0.1, Y: 0.1}))
	assert.True(t, pointsContain(inner.Points, geometry.Point{X: 4.9, Y: 3.9}))

	outer := walls[1].(domain.Polyline)
	assert.True(t, pointsContain(outer.Points, geometry.Point{X: -0.1, Y: -0.1}))
	assert.True(t, pointsContain(outer.Points, geometry.Point{X: 5.1, Y: 4.1}))
}

func TestGenerate_DoorCutsGapAndDrawsSwing(t *testing.T) {
	spec := testSpec(domain.Room{
		Name:     "Living",
		Geometry: rect(5, 4),
		Doors: []domain.Door{{
			WallIndex: 0, Position: 0.5, Width: 0.9,
			Kind: domain.DoorSingle, Swing: "inward",
		}},
	})

	d, err := Generate(spec, 0, DefaultOptions())
	require.NoError(t, err)

	// One gap splits each face into one merged chain; the two jamb caps are
	// Lines on WALL.
	var chains, caps int
	for _, e := range d.Layers[domain.LayerWall] {
		switch v := e.(type) {
		case domain.Polyline:
			chains++
			assert.False(t, v.Closed)
		case domain.Line:
			caps++
		}
	}
	assert.Equal(t, 2, chains)
	assert.Equal(t, 2, caps)

	door := d.Layers[domain.LayerDoor]
	require.Len(t, door, 2)

	leaf, ok := door[0].(domain.Line)
	require.True(t, ok)
	// Door centered at 2.5 on the 5 m bottom edge spans x in [2.05, 2.95].
	assert.InDelta(t, 2.05, leaf.Start.X, 1e-9)
	assert.InDelta(t, 2.95, leaf.End.X, 1e-9)
	assert.InDelta(t, 0, leaf.Start.Y, 1e-9)

	arc, ok := door[1].(domain.Arc)
	require.True(t, ok)
	assert.Equal(t, geometry.Point{X: 2.05, Y: 0}, arc.Center)
	assert.InDelta(t, 0.9, arc.Radius, 1e-9)
	// Inward swing sweeps from the closed leaf (0 degrees) up to 90.
	assert.InDelta(t, 0, arc.StartAngle, 1e-9)
	assert.InDelta(t, 90, arc.EndAngle, 1e-9)
}

func TestGenerate_DoorSwingArcOrientation(t *testing.T) {
	// Arcs sweep counterclockwise, so a quarter circle may cross the zero
	// angle with end numerically below start.
	cases := []struct {
		name       string
		wall       int
		swing      string
		start, end float64
	}{
		{"bottom inward", 0, "inward", 0, 90},
		{"bottom outward", 0, "outward", 270, 0},
		{"right inward", 1, "inward", 90, 180},
		{"right outward", 1, "outward", 0, 90},
		{"top inward", 2, "inward", 180, 270},
		{"top outward", 2, "outward", 90, 180},
		{"left inward", 3, "inward", 270, 0},
		{"left outward", 3, "outward", 180, 270},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := testSpec(domain.Room{
				Name:     "Living",
				Geometry: rect(5, 4),
				Doors: []domain.Door{{
					WallIndex: tc.wall, Position: 0.5, Width: 0.9,
					Kind: domain.DoorSingle, Swing: tc.swing,
				}},
			})

			d, err := Generate(spec, 0, DefaultOptions())
			require.NoError(t, err)

			door := d.Layers[domain.LayerDoor]
			require.Len(t, door, 2)
			arc, ok := door[1].(domain.Arc)
			require.True(t, ok)

			assert.InDelta(t, tc.start, arc.StartAngle, 1e-9)
			assert.InDelta(t, tc.end, arc.EndAngle, 1e-9)
			sweep := math.Mod(arc.EndAngle-arc.StartAngle+360, 360)
			assert.InDelta(t, 90, sweep, 1e-9)
		})
	}
}

func TestGenerate_WindowGlassAndSills(t *testing.T) {
	spec := testSpec(domain.Room{
		Name:     "Bedroom",
		Geometry: rect(5, 4),
		Windows: []domain.Window{{
			WallIndex: 2, Position: 0.5, Width: 1.5, Kind: domain.WindowSliding,
		}},
	})

	d, err := Generate(spec, 0, DefaultOptions())
	require.NoError(t, err)

	win := d.Layers[domain.LayerWindow]
	require.Len(t, win, 3)

	glass := win[0].(domain.Line)
	// Edge 2 runs from (5, 4) to (0, 4); the window is centered on it.
	assert.InDelta(t, 4, glass.Start.Y, 1e-9)
	assert.InDelta(t, 1.5, geometry.EdgeLength(glass.Start, glass.End), 1e-9)

	// Sill marks are short perpendicular ticks at each jamb.
	for _, e := range win[1:] {
		tick := e.(domain.Line)
		assert.InDelta(t, 0.1, geometry.EdgeLength(tick.Start, tick.End), 1e-9)
	}
}

func TestGenerate_FurnitureFootprint(t *testing.T) {
	spec := testSpec(domain.Room{
		Name:     "Study",
		Geometry: rect(5, 4),
		Furniture: []domain.Furniture{{
			Kind:     domain.FurnitureDesk,
			Position: domain.Placement{X: 2, Y: 2, Rotation: 90},
			Label:    "Desk",
		}},
	})

	d, err := Generate(spec, 0, DefaultOptions())
	require.NoError(t, err)

	fur := d.Layers[domain.LayerFurniture]
	require.Len(t, fur, 1)
	pl := fur[0].(domain.Polyline)
	require.True(t, pl.Closed)
	require.Len(t, pl.Points, 4)

	// Desk default is 1.2 x 0.6; rotated 90 degrees the long side runs in Y.
	box := geometry.BoundingBox(pl.Points)
	assert.InDelta(t, 0.6, box.MaxX-box.MinX, 1e-9)
	assert.InDelta(t, 1.2, box.MaxY-box.MinY, 1e-9)

	// The label lands on TEXT at the anchor, alongside the room label.
	texts := d.Layers[domain.LayerText]
	assert.True(t, hasText(texts, "Desk"))
	assert.True(t, hasText(texts, "Study"))
}

func TestGenerate_ExplicitFurnitureDimensions(t *testing.T) {
	spec := testSpec(domain.Room{
		Name:     "Study",
		Geometry: rect(5, 4),
		Furniture: []domain.Furniture{{
			Kind:       domain.FurnitureTable,
			Position:   domain.Placement{X: 2, Y: 2},
			Dimensions: &domain.Footprint{Width: 2.4, Depth: 1.1},
		}},
	})

	d, err := Generate(spec, 0, DefaultOptions())
	require.NoError(t, err)

	pl := d.Layers[domain.LayerFurniture][0].(domain.Polyline)
	box := geometry.BoundingBox(pl.Points)
	assert.InDelta(t, 2.4, box.MaxX-box.MinX, 1e-9)
	assert.InDelta(t, 1.1, box.MaxY-box.MinY, 1e-9)
}

func TestGenerate_RoomLabelAtCentroid(t *testing.T) {
	spec := testSpec(domain.Room{Name: "Living", Geometry: rect(5, 4)})

	d, err := Generate(spec, 0, DefaultOptions())
	require.NoError(t, err)

	var label *domain.Text
	for _, e := range d.Layers[domain.LayerText] {
		if txt, ok := e.(domain.Text); ok && txt.Value == "Living" {
			label = &txt
			break
		}
	}
	require.NotNil(t, label)
	assert.Equal(t, geometry.Point{X: 2.5, Y: 2}, label.Position)
	assert.Equal(t, 0.3, label.Height)
}

func TestGenerate_TitleBlock(t *testing.T) {
	spec := testSpec(domain.Room{Name: "Living", Geometry: rect(5, 4)})

	d, err := Generate(spec, 0, DefaultOptions())
	require.NoError(t, err)

	dims := d.Layers[domain.LayerDimension]
	require.Len(t, dims, 1)
	border := dims[0].(domain.Polyline)
	assert.True(t, border.Closed)

	texts := d.Layers[domain.LayerText]
	assert.True(t, hasText(texts, "Test House"))
	assert.True(t, hasText(texts, "Level 0"))
	assert.True(t, hasText(texts, "ACME"))
}

func TestGenerate_Deterministic(t *testing.T) {
	spec := testSpec(domain.Room{
		Name:     "Living",
		Geometry: rect(5, 4),
		Doors:    []domain.Door{{WallIndex: 0, Position: 0.5, Width: 0.9, Swing: "inward"}},
		Windows:  []domain.Window{{WallIndex: 2, Position: 0.5, Width: 1.5}},
		Furniture: []domain.Furniture{{
			Kind: domain.FurnitureSofa, Position: domain.Placement{X: 2, Y: 2},
		}},
	})

	a, err := Generate(spec, 0, DefaultOptions())
	require.NoError(t, err)
	b, err := Generate(spec, 0, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	require.True(t, reflect.DeepEqual(a.Layers, b.Layers))
}

func TestGenerate_MissingFloor(t *testing.T) {
	spec := testSpec(domain.Room{Name: "Living", Geometry: rect(5, 4)})

	_, err := Generate(spec, 3, DefaultOptions())
	require.ErrorIs(t, err, domain.ErrFloorNotFound)
}

func TestGenerate_InvalidGeometryFails(t *testing.T) {
	spec := testSpec(domain.Room{
		Name: "Broken",
		Geometry: domain.Polygon{Coordinates: []geometry.Point{
			{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 4},
		}},
	})

	d, err := Generate(spec, 0, DefaultOptions())
	assert.Nil(t, d)
	var geomErr *domain.GeometryError
	require.ErrorAs(t, err, &geomErr)
	assert.Contains(t, geomErr.Path, "/building/floors/0/rooms/0/geometry")
}

func TestGenerate_RejectsZeroThickness(t *testing.T) {
	spec := testSpec(domain.Room{Name: "Living", Geometry: rect(5, 4)})
	opts := DefaultOptions()
	opts.WallThickness = 0

	_, err := Generate(spec, 0, opts)
	require.Error(t, err)
}

func pointsContain(pts []geometry.Point, want geometry.Point) bool {
	for _, p := range pts {
		if p.Equal(want) {
			return true
		}
	}
	return false
}

func hasText(entities []domain.Entity, value string) bool {
	for _, e := range entities {
		if txt, ok := e.(domain.Text); ok && txt.Value == value {
			return true
		}
	}
	return false
}
