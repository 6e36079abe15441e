package domain

import "github.com/planform/planform/pkg/geometry"

// Layer names group drawing entities by semantic role. The set is fixed;
// encoders may map them onto format-specific layer tables.
type Layer string

const (
	LayerWall       Layer = "WALL"
	LayerDoor       Layer = "DOOR"
	LayerWindow     Layer = "WINDOW"
	LayerFurniture  Layer = "FURNITURE"
	LayerDimension  Layer = "DIMENSION"
	LayerText       Layer = "TEXT"
	LayerCenterline Layer = "CENTERLINE"
)

// Layers lists every layer in canonical order. Iteration over a Drawing
// always follows this order so output is reproducible.
var Layers = []Layer{
	LayerWall, LayerDoor, LayerWindow, LayerFurniture,
	LayerDimension, LayerText, LayerCenterline,
}

// Entity is one drawable primitive. Entities are immutable once emitted.
type Entity interface {
	// EntityKind returns the primitive tag ("line", "polyline", "arc",
	// "text"), stable across implementations and encoders.
	EntityKind() string
}

// Line is a single straight segment.
type Line struct {
	Start geometry.Point `json:"start"`
	End   geometry.Point `json:"end"`
}

func (Line) EntityKind() string { return "line" }

// Polyline is an ordered series of connected vertices, optionally closed.
type Polyline struct {
	Points []geometry.Point `json:"points"`
	Closed bool             `json:"closed,omitempty"`
}

func (Polyline) EntityKind() string { return "polyline" }

// Arc is a circular arc. Angles are degrees, counter-clockwise from +X.
type Arc struct {
	Center     geometry.Point `json:"center"`
	Radius     float64        `json:"radius"`
	StartAngle float64        `json:"start_angle"`
	EndAngle   float64        `json:"end_angle"`
}

func (Arc) EntityKind() string { return "arc" }

// Text is an annotation anchored at a point. Height is the cap height in
// meters.
type Text struct {
	Value    string         `json:"value"`
	Position geometry.Point `json:"position"`
	Height   float64        `json:"height"`
}

func (Text) EntityKind() string { return "text" }

// Drawing is the generated document: a write-once mapping from layer to an
// ordered entity sequence. Entity order within a layer is the emission
// order, which generation fixes as room-index-major.
type Drawing struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Level  int                `json:"level"`
	Layers map[Layer][]Entity `json:"layers"`
}

// NewDrawing returns an empty document with every canonical layer present.
func NewDrawing(id, name string, level int) *Drawing {
	layers := make(map[Layer][]Entity, len(Layers))
	for _, l := range Layers {
		layers[l] = nil
	}
	return &Drawing{ID: id, Name: name, Level: level, Layers: layers}
}

// Add appends an entity to a layer.
func (d *Drawing) Add(layer Layer, e Entity) {
	d.Layers[layer] = append(d.Layers[layer], e)
}

// EntityCount returns the total number of entities across all layers.
func (d *Drawing) EntityCount() int {
	n := 0
	for _, es := range d.Layers {
		n += len(es)
	}
	return n
}

// Walk visits every entity in canonical layer order, then emission order
// within the layer. It is the deterministic iteration encoders rely on.
func (d *Drawing) Walk(fn func(layer Layer, e Entity)) {
	for _, l := range Layers {
		for _, e := range d.Layers[l] {
			fn(l, e)
		}
	}
}
