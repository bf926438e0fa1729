package models

import (
	"time"

	"gorm.io/gorm"
)

type Deal struct {
	gorm.Model

	OwnerID     uint   `gorm:"index;column:owner_id" json:"owner_id"`
	Title       string `gorm:"size:150" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	DiscountPercent float64    `gorm:"column:discount_percent" json:"discountPercent"`
	ValidFrom       *time.Time `gorm:"column:valid_from" json:"validFrom,omitempty"`
	ValidTo         *time.Time `gorm:"column:valid_to" json:"validTo,omitempty"`
	Active          bool       `gorm:"column:active;default:true" json:"active"`

	Owner Owner `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
}
