package models

import "gorm.io/gorm"

// Meal types
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

type Meal struct {
	gorm.Model

	OwnerID    uint    `gorm:"index;column:owner_id" json:"owner_id"`
	Name       string  `gorm:"size:150" json:"name"`
	Type       string  `gorm:"size:20" json:"type"`
	Price      float64 `json:"price"`
	Vegetarian bool    `gorm:"column:vegetarian;default:false" json:"vegetarian"`

	Owner Owner `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
}
