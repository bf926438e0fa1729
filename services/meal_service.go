package services

import (
	"hostel-backend/config"
	"hostel-backend/models"
)

type MealService struct{}

func (s MealService) Create(m models.Meal) (models.Meal, error) {
	err := config.DB.Create(&m).Error
	return m, err
}

func (s MealService) GetAllForOwner(ownerID uint) ([]models.Meal, error) {
	var list []models.Meal
	err := config.DB.Where("owner_id = ?", ownerID).Order("type, name").Find(&list).Error
	return list, err
}

func (s MealService) Update(m models.Meal) error {
	return config.DB.Model(&models.Meal{}).Where("id = ?", m.ID).Updates(m).Error
}

func (s MealService) Delete(id uint) error {
	return config.DB.Delete(&models.Meal{}, id).Error
}
