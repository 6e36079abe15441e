// Package analysis computes read-only measurements of a validated floor:
// per-room areas, perimeters and centroids plus floor totals. It consumes
// the same typed model as drawing generation and mutates nothing.
package analysis

import (
	"fmt"

	"github.com/planform/planform/pkg/domain"
	"github.com/planform/planform/pkg/geometry"
)

// RoomReport is the measurement of a single room.
type RoomReport struct {
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Area           float64        `json:"area"`
	Perimeter      float64        `json:"perimeter"`
	Centroid       geometry.Point `json:"centroid"`
	DoorCount      int            `json:"door_count"`
	WindowCount    int            `json:"window_count"`
	FurnitureCount int            `json:"furniture_count"`
}

// FloorReport aggregates every room on one floor.
type FloorReport struct {
	FloorLevel     int          `json:"floor_level"`
	TotalRooms     int          `json:"total_rooms"`
	TotalArea      float64      `json:"total_area"`
	TotalPerimeter float64      `json:"total_perimeter"`
	TotalDoors     int          `json:"total_doors"`
	TotalWindows   int          `json:"total_windows"`
	TotalFurniture int          `json:"total_furniture"`
	Rooms          []RoomReport `json:"rooms"`
}

// AnalyzeFloor measures one floor of a design document. The document must
// have passed validation; measurement itself never fails on a modeled floor.
func AnalyzeFloor(spec *domain.DesignSpec, floorLevel int) (*FloorReport, error) {
	floor := spec.FloorByLevel(floorLevel)
	if floor == nil {
		return nil, fmt.Errorf("level %d: %w", floorLevel, domain.ErrFloorNotFound)
	}

	report := &FloorReport{
		FloorLevel: floor.Level,
		TotalRooms: len(floor.Rooms),
		Rooms:      make([]RoomReport, 0, len(floor.Rooms)),
	}
	for _, room := range floor.Rooms {
		coords := room.Geometry.Coordinates
		rr := RoomReport{
			Name:           room.Name,
			Type:           string(room.Type),
			Area:           geometry.Area(coords),
			Perimeter:      geometry.Perimeter(coords),
			Centroid:       geometry.Centroid(coords),
			DoorCount:      len(room.Doors),
			WindowCount:    len(room.Windows),
			FurnitureCount: len(room.Furniture),
		}
		report.TotalArea += rr.Area
		report.TotalPerimeter += rr.Perimeter
		report.TotalDoors += rr.DoorCount
		report.TotalWindows += rr.WindowCount
		report.TotalFurniture += rr.FurnitureCount
		report.Rooms = append(report.Rooms, rr)
	}
	return report, nil
}
