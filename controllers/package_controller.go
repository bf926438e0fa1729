package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

var packageSvc services.PackageService

// GetPackages — GET /package (public, by hostel) or owner's own
func GetPackages(c *gin.Context) {
	ownerID := middleware.CallerID(c)
	pkgs, err := packageSvc.GetAllForOwner(ownerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve packages", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Packages retrieved", gin.H{"packages": pkgs})
}

// GetHostelPackages — GET /owner/:id/packages (public, for booking forms)
func GetHostelPackages(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	pkgs, err := packageSvc.GetAllForOwner(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve packages", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Packages retrieved", gin.H{"packages": pkgs})
}

// CreatePackage — POST /package
func CreatePackage(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	if pkg.DurationDays < 1 {
		utils.JSONError(c, http.StatusBadRequest, "Duration must be at least 1 day", nil)
		return
	}
	pkg.OwnerID = middleware.CallerID(c)

	created, err := packageSvc.Create(pkg)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create package", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Package created", gin.H{"package": created})
}

// DeletePackage — DELETE /package/:id
func DeletePackage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	pkg, err := packageSvc.GetByID(id)
	if err != nil || pkg.OwnerID != middleware.CallerID(c) {
		utils.JSONError(c, http.StatusNotFound, "Package not found", nil)
		return
	}

	if err := packageSvc.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete package", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Package deleted", gin.H{"id": id})
}
