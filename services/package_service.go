package services

import (
	"hostel-backend/config"
	"hostel-backend/models"
)

type PackageService struct{}

func (s PackageService) Create(pkg models.Package) (models.Package, error) {
	err := config.DB.Create(&pkg).Error
	return pkg, err
}

func (s PackageService) GetAllForOwner(ownerID uint) ([]models.Package, error) {
	var pkgs []models.Package
	err := config.DB.Where("owner_id = ?", ownerID).Find(&pkgs).Error
	return pkgs, err
}

func (s PackageService) GetByID(id uint) (models.Package, error) {
	var pkg models.Package
	err := config.DB.First(&pkg, id).Error
	return pkg, err
}

func (s PackageService) Update(pkg models.Package) error {
	return config.DB.Model(&models.Package{}).Where("id = ?", pkg.ID).Updates(pkg).Error
}

func (s PackageService) Delete(id uint) error {
	return config.DB.Delete(&models.Package{}, id).Error
}
