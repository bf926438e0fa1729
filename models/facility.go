package models

import "gorm.io/gorm"

type Facility struct {
	gorm.Model

	OwnerID     uint   `gorm:"index;column:owner_id" json:"owner_id"`
	Name        string `gorm:"size:150" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Available   bool   `gorm:"column:available;default:true" json:"available"`

	Owner Owner `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
}
