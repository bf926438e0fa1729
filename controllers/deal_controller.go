package controllers

import (
	"net/http"
	"strconv"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

var dealSvc services.DealService

// GetDeals — GET /deal?ownerId= (public listing of current deals)
func GetDeals(c *gin.Context) {
	var ownerID uint
	if raw := c.Query("ownerId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			ownerID = uint(id)
		}
	}

	deals, err := dealSvc.GetCurrent(ownerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve deals", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Deals retrieved", gin.H{"deals": deals})
}

// CreateDeal — POST /deal (owner)
func CreateDeal(c *gin.Context) {
	var deal models.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	if deal.DiscountPercent < 0 || deal.DiscountPercent > 100 {
		utils.JSONError(c, http.StatusBadRequest, "Discount must be between 0 and 100", nil)
		return
	}
	deal.OwnerID = middleware.CallerID(c)

	created, err := dealSvc.Create(deal)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create deal", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Deal created", gin.H{"deal": created})
}

type UpdateDealPayload struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	DiscountPercent *float64 `json:"discountPercent" binding:"omitempty,gte=0,lte=100"`
	Active          *bool    `json:"active"`
}

// UpdateDeal — PATCH /deal/:id (owner). Pointer fields so an explicit
// false/zero still lands in the update.
func UpdateDeal(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var payload UpdateDealPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	deal, err := dealSvc.GetByID(id)
	if err != nil || deal.OwnerID != middleware.CallerID(c) {
		utils.JSONError(c, http.StatusNotFound, "Deal not found", nil)
		return
	}

	fields := map[string]interface{}{}
	if payload.Title != nil {
		fields["title"] = *payload.Title
	}
	if payload.Description != nil {
		fields["description"] = *payload.Description
	}
	if payload.DiscountPercent != nil {
		fields["discount_percent"] = *payload.DiscountPercent
	}
	if payload.Active != nil {
		fields["active"] = *payload.Active
	}
	if len(fields) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No updatable fields in payload", nil)
		return
	}

	if err := dealSvc.Update(id, fields); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update deal", err)
		return
	}

	updated, _ := dealSvc.GetByID(id)
	utils.JSONSuccess(c, http.StatusOK, "Deal updated", gin.H{"deal": updated})
}

// DeleteDeal — DELETE /deal/:id (owner)
func DeleteDeal(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := dealSvc.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete deal", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Deal deleted", gin.H{"id": id})
}
