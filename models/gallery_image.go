package models

import "gorm.io/gorm"

// GalleryImage is hostel content shown on the public pages. URLs only;
// uploads live outside this service.
type GalleryImage struct {
	gorm.Model

	OwnerID uint   `gorm:"index;column:owner_id" json:"owner_id"`
	URL     string `gorm:"size:500" json:"url"`
	Caption string `gorm:"size:255" json:"caption,omitempty"`

	Owner Owner `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
}
