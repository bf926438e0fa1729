package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:255" json:"fullName"`
	Email     string         `gorm:"uniqueIndex;size:150" json:"email"`
	Phone     string         `gorm:"size:30" json:"phone,omitempty"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role      string         `gorm:"size:20;default:user" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
