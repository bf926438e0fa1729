package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room types
const (
	RoomSingle    = "SINGLE"
	RoomDouble    = "DOUBLE"
	RoomTriple    = "TRIPLE"
	RoomQuad      = "QUAD"
	RoomDormitory = "DORMITORY"
)

// Room statuses
const (
	RoomAvailable         = "AVAILABLE"
	RoomPartiallyOccupied = "PARTIALLY_OCCUPIED"
	RoomFullyOccupied     = "FULLY_OCCUPIED"
	RoomUnderMaintenance  = "UNDER_MAINTENANCE"
)

type Room struct {
	gorm.Model

	OwnerID    uint   `gorm:"column:owner_id;index:idx_owner_room,unique" json:"owner_id"`
	RoomNumber string `gorm:"column:room_number;index:idx_owner_room,unique;type:varchar(50)" json:"roomNumber"`

	Type      string         `gorm:"size:20" json:"type"`
	Floor     int            `json:"floor"`
	Capacity  int            `gorm:"column:capacity" json:"capacity"`
	Occupancy int            `gorm:"column:occupancy;default:0" json:"occupancy"`
	Status    string         `gorm:"size:30;default:AVAILABLE" json:"status"`
	Price     float64        `json:"price"`
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	Condition string         `gorm:"size:30" json:"condition,omitempty"`

	Owner Owner `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
}

// AvailableSpots is capacity minus current occupancy, never negative.
func (r Room) AvailableSpots() int {
	spots := r.Capacity - r.Occupancy
	if spots < 0 {
		return 0
	}
	return spots
}

// DeriveRoomStatus maps an occupancy level to the stored room status.
// UNDER_MAINTENANCE is set manually and never derived here.
func DeriveRoomStatus(occupancy, capacity int) string {
	switch {
	case occupancy <= 0:
		return RoomAvailable
	case occupancy >= capacity:
		return RoomFullyOccupied
	default:
		return RoomPartiallyOccupied
	}
}
