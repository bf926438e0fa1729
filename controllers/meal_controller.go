package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

var mealSvc services.MealService

// GetMeals — GET /meal
func GetMeals(c *gin.Context) {
	list, err := mealSvc.GetAllForOwner(middleware.CallerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve meals", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Meals retrieved", gin.H{"meals": list})
}

// CreateMeal — POST /meal
func CreateMeal(c *gin.Context) {
	var m models.Meal
	if err := c.ShouldBindJSON(&m); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	switch m.Type {
	case models.MealBreakfast, models.MealLunch, models.MealDinner:
	default:
		utils.JSONError(c, http.StatusBadRequest, "Meal type must be breakfast, lunch or dinner", nil)
		return
	}
	m.OwnerID = middleware.CallerID(c)

	created, err := mealSvc.Create(m)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create meal", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Meal created", gin.H{"meal": created})
}

// DeleteMeal — DELETE /meal/:id
func DeleteMeal(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := mealSvc.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete meal", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Meal deleted", gin.H{"id": id})
}
