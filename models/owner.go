package models

import (
	"time"

	"gorm.io/gorm"
)

// Owner is a hostel owner account. One hostel per owner: rooms, packages,
// bookings and memberships all reference the owner as the hostel reference.
type Owner struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	HostelName string `gorm:"size:255" json:"hostelName"`
	Email      string `gorm:"uniqueIndex;size:150" json:"email"`
	Password   string `gorm:"size:255" json:"-"`
	Phone      string `gorm:"size:30" json:"phone,omitempty"`

	Address     string  `gorm:"size:500" json:"address"`
	City        string  `gorm:"size:100;index" json:"city"`
	Latitude    float64 `gorm:"column:latitude" json:"latitude"`
	Longitude   float64 `gorm:"column:longitude" json:"longitude"`
	Description string  `gorm:"type:text" json:"description,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
