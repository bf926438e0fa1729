package models

import (
	"time"

	"gorm.io/gorm"
)

// Membership statuses
const (
	MembershipActive   = "ACTIVE"
	MembershipInactive = "INACTIVE"
	MembershipExpired  = "EXPIRED"
)

// Membership records an accepted, ongoing stay tied to one booking.
// Read paths assume at most one ACTIVE membership per (user, hostel); the
// accept transaction enforces that before creating a new one.
type Membership struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID    uint `gorm:"column:user_id;index:idx_member_lookup" json:"user_id"`
	OwnerID   uint `gorm:"column:owner_id;index:idx_member_lookup" json:"owner_id"`
	PackageID uint `gorm:"column:package_id" json:"package_id"`
	BookingID uint `gorm:"column:booking_id;index" json:"booking_id"`

	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`
	Status    string    `gorm:"column:status;size:20;default:ACTIVE;index:idx_member_lookup" json:"status"`

	User    User    `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Owner   Owner   `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	Package Package `gorm:"foreignKey:PackageID;references:ID" json:"package,omitempty"`
	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
}
