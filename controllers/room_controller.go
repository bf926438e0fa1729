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

var roomSvc services.RoomService

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id", err)
		return 0, false
	}
	return uint(id), true
}

// GetRooms — GET /room (owner's rooms)
func GetRooms(c *gin.Context) {
	rooms, err := roomSvc.GetAllForOwner(middleware.CallerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve rooms", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Rooms retrieved", gin.H{"rooms": rooms})
}

// CreateRoom — POST /room
func CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	room.OwnerID = middleware.CallerID(c)
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room number is required", nil)
		return
	}
	if room.Capacity < 1 {
		utils.JSONError(c, http.StatusBadRequest, "Capacity must be at least 1", nil)
		return
	}
	room.Occupancy = 0

	created, err := roomSvc.Create(room)
	if err != nil {
		if isDuplicateErr(err) {
			utils.JSONError(c, http.StatusConflict, "Room number already exists", nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Room created", gin.H{"room": created})
}

// UpdateRoom — PATCH /room/:id
func UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	room, err := roomSvc.GetByID(id)
	if err != nil || room.OwnerID != middleware.CallerID(c) {
		utils.JSONError(c, http.StatusNotFound, "Room not found", nil)
		return
	}

	if err := roomSvc.Update(id, fields); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room", err)
		return
	}

	updated, _ := roomSvc.GetByID(id)
	utils.JSONSuccess(c, http.StatusOK, "Room updated", gin.H{"room": updated})
}

// DeleteRoom — DELETE /room/:id
func DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	room, err := roomSvc.GetByID(id)
	if err != nil || room.OwnerID != middleware.CallerID(c) {
		utils.JSONError(c, http.StatusNotFound, "Room not found", nil)
		return
	}
	if room.Occupancy > 0 {
		utils.JSONError(c, http.StatusConflict, "Room has occupants", nil)
		return
	}

	if err := roomSvc.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Room deleted", gin.H{"id": id})
}
