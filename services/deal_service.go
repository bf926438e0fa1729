package services

import (
	"time"

	"hostel-backend/config"
	"hostel-backend/models"
)

type DealService struct{}

func (s DealService) Create(deal models.Deal) (models.Deal, error) {
	err := config.DB.Create(&deal).Error
	return deal, err
}

// GetCurrent lists deals that are active and within their validity window.
func (s DealService) GetCurrent(ownerID uint) ([]models.Deal, error) {
	now := time.Now().UTC()
	var deals []models.Deal
	q := config.DB.
		Where("active = ?", true).
		Where("(valid_from IS NULL OR valid_from <= ?)", now).
		Where("(valid_to IS NULL OR valid_to >= ?)", now)
	if ownerID != 0 {
		q = q.Where("owner_id = ?", ownerID)
	}
	err := q.Order("created_at DESC").Find(&deals).Error
	return deals, err
}

func (s DealService) GetByID(id uint) (models.Deal, error) {
	var deal models.Deal
	err := config.DB.First(&deal, id).Error
	return deal, err
}

// Update applies caller-provided fields. Map-based so zero values stick
// (setting active=false deactivates a deal).
func (s DealService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "owner_id")
	delete(fields, "created_at")
	return config.DB.Model(&models.Deal{}).Where("id = ?", id).Updates(fields).Error
}

func (s DealService) Delete(id uint) error {
	return config.DB.Delete(&models.Deal{}, id).Error
}
