package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. PENDING moves to exactly one of ACCEPTED or REJECTED;
// both are terminal for the record. A renewal inserts a new ACCEPTED row
// rather than mutating the old one.
const (
	BookingPending  = "PENDING"
	BookingAccepted = "ACCEPTED"
	BookingRejected = "REJECTED"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID    uint  `gorm:"index;column:user_id" json:"user_id"`
	OwnerID   uint  `gorm:"index;column:owner_id" json:"owner_id"`
	PackageID uint  `gorm:"column:package_id" json:"package_id"`
	RoomID    *uint `gorm:"column:room_id;index" json:"roomId,omitempty"` // assigned at acceptance

	ReferenceCode string     `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code,omitempty"`
	Status        string     `gorm:"column:status;size:20;default:PENDING" json:"status"`
	CheckIn       *time.Time `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut      *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`
	Guests        int        `gorm:"column:guests;default:1" json:"guests"`
	TotalPrice    float64    `gorm:"column:total_price" json:"total_price"`
	Active        bool       `gorm:"column:active;default:true" json:"active"`

	User       User       `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Owner      Owner      `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	Package    Package    `gorm:"foreignKey:PackageID;references:ID" json:"package,omitempty"`
	Room       *Room      `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Membership *Membership `gorm:"foreignKey:BookingID;references:ID" json:"membership,omitempty"`
}
