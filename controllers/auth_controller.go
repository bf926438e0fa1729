package controllers

import (
	"net/http"
	"strings"

	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type registerPayload struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ownerRegisterPayload struct {
	HostelName string  `json:"hostelName" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone"`
	Password   string  `json:"password" binding:"required,min=6"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// RegisterUser — POST /user/register
func RegisterUser(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to hash password", err)
		return
	}

	user := models.User{
		FullName: strings.TrimSpace(payload.FullName),
		Email:    strings.ToLower(strings.TrimSpace(payload.Email)),
		Phone:    strings.TrimSpace(payload.Phone),
		Password: string(hash),
		Role:     models.RoleUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			utils.JSONError(c, http.StatusConflict, "Email already registered", nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register", err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Registered", gin.H{"user": user, "token": token})
}

// LoginUser — POST /user/login
func LoginUser(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(payload.Email))).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Logged in", gin.H{"user": user, "token": token})
}

// RegisterOwner — POST /owner/register
func RegisterOwner(c *gin.Context) {
	var payload ownerRegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to hash password", err)
		return
	}

	owner := models.Owner{
		HostelName: strings.TrimSpace(payload.HostelName),
		Email:      strings.ToLower(strings.TrimSpace(payload.Email)),
		Phone:      strings.TrimSpace(payload.Phone),
		Password:   string(hash),
		Address:    strings.TrimSpace(payload.Address),
		City:       strings.TrimSpace(payload.City),
		Latitude:   payload.Latitude,
		Longitude:  payload.Longitude,
	}
	if err := config.DB.Create(&owner).Error; err != nil {
		if isDuplicateErr(err) {
			utils.JSONError(c, http.StatusConflict, "Email already registered", nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register", err)
		return
	}

	token, err := utils.GenerateToken(owner.ID, models.RoleOwner)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Registered", gin.H{"owner": owner, "token": token})
}

// LoginOwner — POST /owner/login
func LoginOwner(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	var owner models.Owner
	if err := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(payload.Email))).First(&owner).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := utils.GenerateToken(owner.ID, models.RoleOwner)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Logged in", gin.H{"owner": owner, "token": token})
}
