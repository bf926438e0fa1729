package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Package is a hostel-defined pricing/duration/services bundle. Immutable
// reference data from the point of view of bookings and memberships.
type Package struct {
	gorm.Model

	OwnerID     uint   `gorm:"index;column:owner_id" json:"owner_id"`
	Name        string `gorm:"size:150" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Price        float64        `json:"price"`
	DurationDays int            `gorm:"column:duration_days" json:"durationDays"`
	Services     datatypes.JSON `gorm:"column:services" json:"services,omitempty"`
	MealPlan     string         `gorm:"size:100" json:"mealPlan,omitempty"`
	Cancellation string         `gorm:"column:cancellation_policy;size:255" json:"cancellationPolicy,omitempty"`

	Owner Owner `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
}
