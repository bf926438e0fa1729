package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

var gallerySvc services.GalleryService

// GetGallery — GET /gallery?ownerId= (public hostel photos)
func GetGallery(c *gin.Context) {
	ownerID := middleware.CallerID(c)
	if raw := c.Query("ownerId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			ownerID = uint(id)
		}
	}

	list, err := gallerySvc.GetAllForOwner(ownerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve gallery", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Gallery retrieved", gin.H{"images": list})
}

// AddGalleryImage — POST /gallery (owner)
func AddGalleryImage(c *gin.Context) {
	var img models.GalleryImage
	if err := c.ShouldBindJSON(&img); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	if strings.TrimSpace(img.URL) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Image URL is required", nil)
		return
	}
	img.OwnerID = middleware.CallerID(c)

	created, err := gallerySvc.Add(img)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add image", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Image added", gin.H{"image": created})
}

// DeleteGalleryImage — DELETE /gallery/:id (owner)
func DeleteGalleryImage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := gallerySvc.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete image", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Image deleted", gin.H{"id": id})
}
