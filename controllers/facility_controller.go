package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

var facilitySvc services.FacilityService

// GetFacilities — GET /facility
func GetFacilities(c *gin.Context) {
	list, err := facilitySvc.GetAllForOwner(middleware.CallerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve facilities", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Facilities retrieved", gin.H{"facilities": list})
}

// CreateFacility — POST /facility
func CreateFacility(c *gin.Context) {
	var f models.Facility
	if err := c.ShouldBindJSON(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	f.OwnerID = middleware.CallerID(c)

	created, err := facilitySvc.Create(f)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create facility", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Facility created", gin.H{"facility": created})
}

// DeleteFacility — DELETE /facility/:id
func DeleteFacility(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := facilitySvc.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete facility", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Facility deleted", gin.H{"id": id})
}
