package drawing

import "github.com/planform/planform/pkg/geometry"

// Options carries every numeric default generation uses. Nothing in this
// package reads configuration from globals; callers pass Options explicitly.
type Options struct {
	// WallThickness is the full wall thickness in meters; each boundary
	// face sits half of it from the centerline.
	WallThickness float64
	// Tolerance is the epsilon for the precondition geometry checks.
	Tolerance float64
	// RoomLabelHeight is the cap height of room name labels.
	RoomLabelHeight float64
	// FurnitureLabelHeight is the cap height of furniture labels.
	FurnitureLabelHeight float64
	// SillMark is the half-length of window sill marks at the jambs.
	SillMark float64
	// TitleBlockOrigin anchors the static title block.
	TitleBlockOrigin geometry.Point
}

// DefaultOptions mirrors the documented drawing defaults.
func DefaultOptions() Options {
	return Options{
		WallThickness:        0.2,
		Tolerance:            geometry.Epsilon,
		RoomLabelHeight:      0.3,
		FurnitureLabelHeight: 0.2,
		SillMark:             0.05,
		TitleBlockOrigin:     geometry.Point{X: 20, Y: 15},
	}
}
