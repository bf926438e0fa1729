package controllers

import (
	"net/http"
	"strconv"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

var ownerSvc services.OwnerService

// NearbyHostels — GET /owner/nearby?lat=&lng=&radius= (public)
func NearbyHostels(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		utils.JSONError(c, http.StatusBadRequest, "lat and lng query params are required", nil)
		return
	}

	radius := 5000
	if raw := c.Query("radius"); raw != "" {
		if r, err := strconv.Atoi(raw); err == nil && r > 0 {
			radius = r
		}
	}

	hostels, err := ownerSvc.Nearby(lat, lng, radius)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to search hostels", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Hostels retrieved", gin.H{"hostels": hostels})
}

// GetHostel — GET /owner/:id (public hostel profile)
func GetHostel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	owner, err := ownerSvc.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Hostel not found", nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Hostel retrieved", gin.H{"hostel": owner})
}
