package services

import (
	"hostel-backend/config"
	"hostel-backend/models"
)

type GalleryService struct{}

func (s GalleryService) Add(img models.GalleryImage) (models.GalleryImage, error) {
	err := config.DB.Create(&img).Error
	return img, err
}

func (s GalleryService) GetAllForOwner(ownerID uint) ([]models.GalleryImage, error) {
	var list []models.GalleryImage
	err := config.DB.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s GalleryService) Delete(id uint) error {
	return config.DB.Delete(&models.GalleryImage{}, id).Error
}
