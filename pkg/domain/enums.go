package domain

// RoomType tags the functional use of a room.
type RoomType string

const (
	RoomLivingRoom RoomType = "living_room"
	RoomBedroom    RoomType = "bedroom"
	RoomKitchen    RoomType = "kitchen"
	RoomBathroom   RoomType = "bathroom"
	RoomDiningRoom RoomType = "dining_room"
	RoomStudy      RoomType = "study"
	RoomStorage    RoomType = "storage"
	RoomHallway    RoomType = "hallway"
	RoomBalcony    RoomType = "balcony"
	RoomUtility    RoomType = "utility"
	RoomEntrance   RoomType = "entrance"
	RoomParking    RoomType = "parking"
	RoomOther      RoomType = "other"
)

// RoomTypes lists every valid room tag, in declaration order.
var RoomTypes = []RoomType{
	RoomLivingRoom, RoomBedroom, RoomKitchen, RoomBathroom, RoomDiningRoom,
	RoomStudy, RoomStorage, RoomHallway, RoomBalcony, RoomUtility,
	RoomEntrance, RoomParking, RoomOther,
}

// Valid reports whether t is a known room tag.
func (t RoomType) Valid() bool {
	for _, v := range RoomTypes {
		if t == v {
			return true
		}
	}
	return false
}

// DoorKind tags a door construction style.
type DoorKind string

const (
	DoorSingle  DoorKind = "single"
	DoorDouble  DoorKind = "double"
	DoorSliding DoorKind = "sliding"
	DoorFolding DoorKind = "folding"
)

var DoorKinds = []DoorKind{DoorSingle, DoorDouble, DoorSliding, DoorFolding}

func (k DoorKind) Valid() bool {
	for _, v := range DoorKinds {
		if k == v {
			return true
		}
	}
	return false
}

// WindowKind tags a window construction style.
type WindowKind string

const (
	WindowFixed    WindowKind = "fixed"
	WindowCasement WindowKind = "casement"
	WindowSliding  WindowKind = "sliding"
	WindowAwning   WindowKind = "awning"
)

var WindowKinds = []WindowKind{WindowFixed, WindowCasement, WindowSliding, WindowAwning}

func (k WindowKind) Valid() bool {
	for _, v := range WindowKinds {
		if k == v {
			return true
		}
	}
	return false
}

// FurnitureKind tags a furniture item.
type FurnitureKind string

const (
	FurnitureBed          FurnitureKind = "bed"
	FurnitureDesk         FurnitureKind = "desk"
	FurnitureChair        FurnitureKind = "chair"
	FurnitureSofa         FurnitureKind = "sofa"
	FurnitureTable        FurnitureKind = "table"
	FurnitureCabinet      FurnitureKind = "cabinet"
	FurnitureWardrobe     FurnitureKind = "wardrobe"
	FurnitureRefrigerator FurnitureKind = "refrigerator"
	FurnitureStove        FurnitureKind = "stove"
	FurnitureSink         FurnitureKind = "sink"
	FurnitureToilet       FurnitureKind = "toilet"
	FurnitureBathtub      FurnitureKind = "bathtub"
	FurnitureShower       FurnitureKind = "shower"
	FurnitureOther        FurnitureKind = "other"
)

var FurnitureKinds = []FurnitureKind{
	FurnitureBed, FurnitureDesk, FurnitureChair, FurnitureSofa,
	FurnitureTable, FurnitureCabinet, FurnitureWardrobe,
	FurnitureRefrigerator, FurnitureStove, FurnitureSink,
	FurnitureToilet, FurnitureBathtub, FurnitureShower, FurnitureOther,
}

func (k FurnitureKind) Valid() bool {
	for _, v := range FurnitureKinds {
		if k == v {
			return true
		}
	}
	return false
}

// DefaultFootprint returns the drawn width and depth (meters) for a
// furniture kind when the document omits explicit dimensions.
func (k FurnitureKind) DefaultFootprint() (width, depth float64) {
	switch k {
	case FurnitureBed:
		return 2.0, 1.5
	case FurnitureDesk:
		return 1.2, 0.6
	case FurnitureSofa:
		return 2.0, 0.9
	case FurnitureTable:
		return 1.5, 0.9
	default:
		return 1.0, 1.0
	}
}
