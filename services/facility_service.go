package services

import (
	"hostel-backend/config"
	"hostel-backend/models"
)

type FacilityService struct{}

func (s FacilityService) Create(f models.Facility) (models.Facility, error) {
	err := config.DB.Create(&f).Error
	return f, err
}

func (s FacilityService) GetAllForOwner(ownerID uint) ([]models.Facility, error) {
	var list []models.Facility
	err := config.DB.Where("owner_id = ?", ownerID).Find(&list).Error
	return list, err
}

func (s FacilityService) Update(f models.Facility) error {
	return config.DB.Model(&models.Facility{}).Where("id = ?", f.ID).Updates(map[string]interface{}{
		"name":        f.Name,
		"description": f.Description,
		"available":   f.Available,
	}).Error
}

func (s FacilityService) Delete(id uint) error {
	return config.DB.Delete(&models.Facility{}, id).Error
}
