package domain

import "github.com/planform/planform/pkg/geometry"

// ProjectInfo carries document metadata. Only Name is required; none of it
// is structurally significant to geometry.
type ProjectInfo struct {
	Name      string `json:"name" mapstructure:"name" validate:"required,min=1"`
	Client    string `json:"client,omitempty" mapstructure:"client"`
	Address   string `json:"address,omitempty" mapstructure:"address"`
	Architect string `json:"architect,omitempty" mapstructure:"architect"`
	Date      string `json:"date,omitempty" mapstructure:"date"`
}

// Polygon is an explicitly closed ring of 2D points in meters. Edge i
// connects vertex i to vertex i+1; the last point repeats the first.
type Polygon struct {
	Coordinates []geometry.Point `json:"coordinates" mapstructure:"coordinates"`
}

// EdgeCount returns the number of edges in the ring (vertices minus the
// closing duplicate). The result is only meaningful for closed rings.
func (p Polygon) EdgeCount() int {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return len(p.Coordinates) - 1
}

// Edge returns the endpoints of edge i. Callers must check EdgeCount first.
func (p Polygon) Edge(i int) (geometry.Point, geometry.Point) {
	return p.Coordinates[i], p.Coordinates[i+1]
}

// Door is an opening consuming a sub-span of one polygon edge.
type Door struct {
	WallIndex int      `json:"wall_index" mapstructure:"wall_index" validate:"gte=0"`
	Position  float64  `json:"position" mapstructure:"position" validate:"gte=0,lte=1"`
	Width     float64  `json:"width" mapstructure:"width" validate:"gte=0.6"`
	Height    float64  `json:"height,omitempty" mapstructure:"height" validate:"omitempty,gte=2.0"`
	Kind      DoorKind `json:"type,omitempty" mapstructure:"type"`
	Swing     string   `json:"swing_direction,omitempty" mapstructure:"swing_direction"`
}

// Window is an opening with a sill, consuming a sub-span of one edge.
type Window struct {
	WallIndex  int        `json:"wall_index" mapstructure:"wall_index" validate:"gte=0"`
	Position   float64    `json:"position" mapstructure:"position" validate:"gte=0,lte=1"`
	Width      float64    `json:"width" mapstructure:"width" validate:"gte=0.6"`
	Height     float64    `json:"height,omitempty" mapstructure:"height" validate:"omitempty,gte=0.6"`
	SillHeight float64    `json:"sill_height,omitempty" mapstructure:"sill_height" validate:"gte=0"`
	Kind       WindowKind `json:"type,omitempty" mapstructure:"type"`
}

// Placement is a 2D anchor with a rotation in degrees.
type Placement struct {
	X        float64 `json:"x" mapstructure:"x"`
	Y        float64 `json:"y" mapstructure:"y"`
	Rotation float64 `json:"rotation,omitempty" mapstructure:"rotation" validate:"gte=0,lte=360"`
}

// Footprint holds optional furniture dimensions in meters.
type Footprint struct {
	Width  float64 `json:"width,omitempty" mapstructure:"width" validate:"gte=0"`
	Depth  float64 `json:"depth,omitempty" mapstructure:"depth" validate:"gte=0"`
	Height float64 `json:"height,omitempty" mapstructure:"height" validate:"gte=0"`
}

// Furniture is a free-standing item anchored inside a room.
type Furniture struct {
	Kind       FurnitureKind `json:"type" mapstructure:"type"`
	Position   Placement     `json:"position" mapstructure:"position"`
	Dimensions *Footprint    `json:"dimensions,omitempty" mapstructure:"dimensions"`
	Label      string        `json:"label,omitempty" mapstructure:"label"`
}

// Room is a named polygon boundary. It exclusively owns the doors, windows
// and furniture attached to it; openings reference edges of its polygon.
type Room struct {
	Name      string      `json:"name" mapstructure:"name" validate:"required,min=1"`
	Type      RoomType    `json:"type,omitempty" mapstructure:"type"`
	Geometry  Polygon     `json:"geometry" mapstructure:"geometry"`
	Doors     []Door      `json:"doors,omitempty" mapstructure:"doors" validate:"dive"`
	Windows   []Window    `json:"windows,omitempty" mapstructure:"windows" validate:"dive"`
	Furniture []Furniture `json:"furniture,omitempty" mapstructure:"furniture" validate:"dive"`
}

// Floor is one level of the building. Room order matters only for stable
// output, not semantics.
type Floor struct {
	Level  int     `json:"level" mapstructure:"level"`
	Height float64 `json:"height,omitempty" mapstructure:"height" validate:"omitempty,gte=2.1"`
	Rooms  []Room  `json:"rooms" mapstructure:"rooms" validate:"required,min=1,dive"`
}

// Building groups the floors of the design.
type Building struct {
	Floors []Floor `json:"floors" mapstructure:"floors" validate:"required,min=1,dive"`
}

// DesignSpec is the root document. It is constructed by the validation
// pipeline and consumed once by the drawing generator.
type DesignSpec struct {
	ProjectInfo ProjectInfo `json:"project_info" mapstructure:"project_info"`
	Building    Building    `json:"building" mapstructure:"building"`
}

// FloorByLevel returns the floor with the given level, or nil.
func (s *DesignSpec) FloorByLevel(level int) *Floor {
	for i := range s.Building.Floors {
		if s.Building.Floors[i].Level == level {
			return &s.Building.Floors[i]
		}
	}
	return nil
}
