package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planform/planform/pkg/domain"
	"github.com/planform/planform/pkg/geometry"
)

// validDoc returns a well-formed single-room document. Tests mutate the
// returned map before running the pipeline.
func validDoc() map[string]any {
	return map[string]any{
		"project_info": map[string]any{
			"name":   "Casa Verde",
			"client": "ACME",
		},
		"building": map[string]any{
			"floors": []any{
				map[string]any{
					"level": float64(0),
					"rooms": []any{
						map[string]any{
							"name": "Living",
							"type": "living_room",
							"geometry": map[string]any{
								"coordinates": []any{
									[]any{0.0, 0.0}, []any{5.0, 0.0}, []any{5.0, 4.0},
									[]any{0.0, 4.0}, []any{0.0, 0.0},
								},
							},
							"doors": []any{
								map[string]any{"wall_index": float64(0), "position": 0.5, "width": 0.9},
							},
							"windows": []any{
								map[string]any{"wall_index": float64(2), "position": 0.5, "width": 1.5},
							},
							"furniture": []any{
								map[string]any{
									"type":     "sofa",
									"position": map[string]any{"x": 2.5, "y": 2.0, "rotation": 90.0},
									"label":    "Sofa",
								},
							},
						},
					},
				},
			},
		},
	}
}

func room(doc map[string]any) map[string]any {
	building := doc["building"].(map[string]any)
	floor := building["floors"].([]any)[0].(map[string]any)
	return floor["rooms"].([]any)[0].(map[string]any)
}

func TestRunDocument_Valid(t *testing.T) {
	p := New(0)
	spec, diags := p.RunDocument(validDoc())

	require.NotNil(t, spec)
	assert.Empty(t, diags)
	assert.Equal(t, "Casa Verde", spec.ProjectInfo.Name)
	require.Len(t, spec.Building.Floors, 1)
	require.Len(t, spec.Building.Floors[0].Rooms, 1)
	assert.Equal(t, domain.RoomLivingRoom, spec.Building.Floors[0].Rooms[0].Type)
}

func TestRunDocument_AppliesDefaults(t *testing.T) {
	spec, diags := New(0).RunDocument(validDoc())
	require.NotNil(t, spec)
	require.Empty(t, diags)

	floor := spec.Building.Floors[0]
	assert.Equal(t, 2.8, floor.Height)

	door := floor.Rooms[0].Doors[0]
	assert.Equal(t, 2.1, door.Height)
	assert.Equal(t, domain.DoorSingle, door.Kind)
	assert.Equal(t, "inward", door.Swing)

	win := floor.Rooms[0].Windows[0]
	assert.Equal(t, 1.2, win.Height)
	assert.Equal(t, 0.9, win.SillHeight)
	assert.Equal(t, domain.WindowSliding, win.Kind)
}

func TestRun_ParsesJSONAndYAML(t *testing.T) {
	jsonDoc := []byte(`{
		"project_info": {"name": "Box"},
		"building": {"floors": [{"level": 0, "rooms": [
			{"name": "Room", "geometry": {"coordinates": [[0,0],[3,0],[3,3],[0,3],[0,0]]}}
		]}]}
	}`)
	yamlDoc := []byte(`
project_info:
  name: Box
building:
  floors:
    - level: 0
      rooms:
        - name: Room
          geometry:
            coordinates: [[0, 0], [3, 0], [3, 3], [0, 3], [0, 0]]
`)

	p := New(0)
	for _, raw := range [][]byte{jsonDoc, yamlDoc} {
		spec, diags, err := p.Run(raw)
		require.NoError(t, err)
		assert.Empty(t, diags)
		require.NotNil(t, spec)
		assert.Equal(t, "Box", spec.ProjectInfo.Name)
	}
}

func TestRun_UnparsableIsFatal(t *testing.T) {
	p := New(0)
	for _, raw := range [][]byte{nil, []byte("   "), []byte("{not json"), []byte("\t- : :")} {
		spec, diags, err := p.Run(raw)
		assert.Nil(t, spec)
		assert.Nil(t, diags)
		var schemaErr *domain.SchemaError
		require.ErrorAs(t, err, &schemaErr, "input %q", raw)
	}
}

func TestStructural_MissingRequiredField(t *testing.T) {
	doc := validDoc()
	delete(doc["project_info"].(map[string]any), "name")

	spec, diags := New(0).RunDocument(doc)
	assert.Nil(t, spec)
	require.Len(t, diags, 1)
	assert.Equal(t, domain.StageStructural, diags[0].Stage)
	assert.Equal(t, "/project_info/name", diags[0].Path)
}

func TestStructural_GatesLaterStages(t *testing.T) {
	doc := validDoc()
	// Bad level type plus an open polygon. Only the structural finding may
	// surface; the geometry stage must not have run.
	floor := doc["building"].(map[string]any)["floors"].([]any)[0].(map[string]any)
	floor["level"] = "zero"
	geom := room(doc)["geometry"].(map[string]any)
	geom["coordinates"] = []any{[]any{0.0, 0.0}, []any{5.0, 0.0}, []any{5.0, 4.0}}

	spec, diags := New(0).RunDocument(doc)
	assert.Nil(t, spec)
	require.NotEmpty(t, diags)
	for _, d := range diags {
		assert.Equal(t, domain.StageStructural, d.Stage)
	}
}

func TestStructural_InvalidEnum(t *testing.T) {
	doc := validDoc()
	room(doc)["type"] = "ballroom"

	spec, diags := New(0).RunDocument(doc)
	assert.Nil(t, spec)
	require.Len(t, diags, 1)
	assert.Equal(t, "/building/floors/0/rooms/0/type", diags[0].Path)
	assert.Contains(t, diags[0].Message, "ballroom")
}

func TestModel_BoundsViolations(t *testing.T) {
	doc := validDoc()
	doors := room(doc)["doors"].([]any)
	doors[0].(map[string]any)["width"] = 0.5
	doors = append(doors, map[string]any{"wall_index": float64(1), "position": 1.5, "width": 0.9})
	room(doc)["doors"] = doors

	spec, diags := New(0).RunDocument(doc)
	assert.Nil(t, spec)
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, domain.StageModel, d.Stage)
	}
	assert.Equal(t, "/building/floors/0/rooms/0/doors/0/width", diags[0].Path)
	assert.Equal(t, "/building/floors/0/rooms/0/doors/1/position", diags[1].Path)
}

func TestSemantic_OpenPolygon(t *testing.T) {
	doc := validDoc()
	geom := room(doc)["geometry"].(map[string]any)
	geom["coordinates"] = []any{
		[]any{0.0, 0.0}, []any{5.0, 0.0}, []any{5.0, 4.0}, []any{0.0, 4.0},
	}

	spec, diags := New(0).RunDocument(doc)
	require.NotNil(t, spec)
	require.NotEmpty(t, diags)
	assert.Equal(t, domain.StageGeometry, diags[0].Stage)
	assert.Contains(t, diags[0].Message, "not closed")
}

func TestSemantic_TooFewPoints(t *testing.T) {
	doc := validDoc()
	geom := room(doc)["geometry"].(map[string]any)
	geom["coordinates"] = []any{[]any{0.0, 0.0}, []any{5.0, 0.0}, []any{0.0, 0.0}}

	_, diags := New(0).RunDocument(doc)
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Message, "at least 3 vertices")
}

func TestSemantic_ZeroLengthEdge(t *testing.T) {
	doc := validDoc()
	geom := room(doc)["geometry"].(map[string]any)
	geom["coordinates"] = []any{
		[]any{0.0, 0.0}, []any{0.0, 0.0}, []any{5.0, 0.0}, []any{5.0, 4.0},
		[]any{0.0, 4.0}, []any{0.0, 0.0},
	}

	_, diags := New(0).RunDocument(doc)
	require.NotEmpty(t, diags)
	found := false
	for _, d := range diags {
		if d.Stage == domain.StageGeometry && d.Path == "/building/floors/0/rooms/0/geometry/coordinates/0" {
			assert.Contains(t, d.Message, "zero-length")
			found = true
		}
	}
	assert.True(t, found, "expected a zero-length edge diagnostic, got %v", diags)
}

func TestSemantic_WallIndexOutOfRange(t *testing.T) {
	doc := validDoc()
	room(doc)["doors"].([]any)[0].(map[string]any)["wall_index"] = float64(7)

	spec, diags := New(0).RunDocument(doc)
	require.NotNil(t, spec)
	require.Len(t, diags, 1)
	assert.Equal(t, "/building/floors/0/rooms/0/doors/0/wall_index", diags[0].Path)
	assert.Contains(t, diags[0].Message, "outside edge range 0..3")
}

func TestSemantic_NegativeWallIndex(t *testing.T) {
	spec := &domain.DesignSpec{
		ProjectInfo: domain.ProjectInfo{Name: "loft"},
		Building: domain.Building{Floors: []domain.Floor{{
			Level: 0,
			Rooms: []domain.Room{{
				Name: "studio",
				Type: domain.RoomLivingRoom,
				Geometry: domain.Polygon{Coordinates: []geometry.Point{
					{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0},
				}},
				Doors: []domain.Door{{WallIndex: -1, Position: 0.5, Width: 0.9}},
			}},
		}}},
	}

	diags := New(0).Geometry(spec)
	require.Len(t, diags, 1)
	assert.Equal(t, "/building/floors/0/rooms/0/doors/0/wall_index", diags[0].Path)
	assert.Contains(t, diags[0].Message, "outside edge range 0..3")
}

func TestRunDocument_ModelErrorOnlySkipsThatRoom(t *testing.T) {
	doc := validDoc()
	// Room 0 fails the model stage; room 1 models cleanly but its ring is
	// open. Both findings must surface in one run.
	room(doc)["doors"].([]any)[0].(map[string]any)["width"] = 0.5
	building := doc["building"].(map[string]any)
	floor := building["floors"].([]any)[0].(map[string]any)
	floor["rooms"] = append(floor["rooms"].([]any), map[string]any{
		"name": "Bedroom",
		"type": "bedroom",
		"geometry": map[string]any{
			"coordinates": []any{
				[]any{6.0, 0.0}, []any{9.0, 0.0}, []any{9.0, 3.0}, []any{6.0, 3.0},
			},
		},
	})

	spec, diags := New(0).RunDocument(doc)
	assert.Nil(t, spec)
	require.Len(t, diags, 2)
	assert.Equal(t, domain.StageModel, diags[0].Stage)
	assert.Equal(t, "/building/floors/0/rooms/0/doors/0/width", diags[0].Path)
	assert.Equal(t, domain.StageGeometry, diags[1].Stage)
	assert.Contains(t, diags[1].Path, "/building/floors/0/rooms/1/geometry")
	assert.Contains(t, diags[1].Message, "not closed")
}

func TestSemantic_WidthExceedsEdge(t *testing.T) {
	doc := validDoc()
	// Edge 2 is 5 meters; a 6 meter window cannot fit.
	room(doc)["windows"].([]any)[0].(map[string]any)["width"] = 6.0

	_, diags := New(0).RunDocument(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, "/building/floors/0/rooms/0/windows/0/width", diags[0].Path)
	assert.Contains(t, diags[0].Message, "exceeds edge 2 length 5")
}

func TestSemantic_OverlappingSpans(t *testing.T) {
	doc := validDoc()
	// Two doors on the 5 m bottom edge: spans [0.55, 1.45] and [1.05, 1.95].
	room(doc)["doors"] = []any{
		map[string]any{"wall_index": float64(0), "position": 0.2, "width": 0.9},
		map[string]any{"wall_index": float64(0), "position": 0.3, "width": 0.9},
	}

	_, diags := New(0).RunDocument(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, domain.StageGeometry, diags[0].Stage)
	assert.Contains(t, diags[0].Message, "overlaps")
}

func TestSemantic_DisjointSpansPass(t *testing.T) {
	doc := validDoc()
	room(doc)["doors"] = []any{
		map[string]any{"wall_index": float64(0), "position": 0.2, "width": 0.9},
		map[string]any{"wall_index": float64(0), "position": 0.8, "width": 0.9},
	}

	spec, diags := New(0).RunDocument(doc)
	require.NotNil(t, spec)
	assert.Empty(t, diags)
}

func TestSemantic_TouchingJambsAllowed(t *testing.T) {
	doc := validDoc()
	// Spans [0.5, 1.5] and [1.5, 2.5] share one jamb exactly.
	room(doc)["doors"] = []any{
		map[string]any{"wall_index": float64(0), "position": 0.2, "width": 1.0},
		map[string]any{"wall_index": float64(0), "position": 0.4, "width": 1.0},
	}

	spec, diags := New(0).RunDocument(doc)
	require.NotNil(t, spec)
	assert.Empty(t, diags)
}

func TestSemantic_MixedDoorWindowOverlap(t *testing.T) {
	doc := validDoc()
	room(doc)["windows"] = []any{
		map[string]any{"wall_index": float64(0), "position": 0.5, "width": 1.5},
	}
	room(doc)["doors"] = []any{
		map[string]any{"wall_index": float64(0), "position": 0.5, "width": 0.9},
	}

	_, diags := New(0).RunDocument(doc)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "window")
	assert.Contains(t, diags[0].Message, "door")
}

func TestParse_DetectsFormatByFirstByte(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1}`))
	require.NoError(t, err)
	assert.Equal(t, float64(1), doc["a"])

	doc, err = Parse([]byte("a: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, doc["a"])
}

func TestPipeline_ZeroValueUsable(t *testing.T) {
	var p Pipeline
	spec, diags := p.RunDocument(validDoc())
	require.NotNil(t, spec)
	assert.Empty(t, diags)
}

func TestRunDocument_MultipleRoomsAndFloors(t *testing.T) {
	doc := validDoc()
	building := doc["building"].(map[string]any)
	floors := building["floors"].([]any)
	floors = append(floors, map[string]any{
		"level": float64(1),
		"rooms": []any{
			map[string]any{
				"name": "Bedroom",
				"type": "bedroom",
				"geometry": map[string]any{
					"coordinates": []any{
						[]any{0.0, 0.0}, []any{4.0, 0.0}, []any{4.0, 3.0},
						[]any{0.0, 3.0}, []any{0.0, 0.0},
					},
				},
			},
		},
	})
	building["floors"] = floors

	spec, diags := New(0).RunDocument(doc)
	require.NotNil(t, spec)
	assert.Empty(t, diags)
	assert.Len(t, spec.Building.Floors, 2)
	assert.NotNil(t, spec.FloorByLevel(1))
	assert.Nil(t, spec.FloorByLevel(2))
}
