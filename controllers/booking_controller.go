// controllers/booking_controller.go
package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type AddBookingPayload struct {
	OwnerID    uint    `json:"ownerId" binding:"required"`
	PackageID  uint    `json:"packageId" binding:"required"`
	CheckIn    string  `json:"checkIn" binding:"required,bookdate"`
	Guests     int     `json:"guests" binding:"required,min=1"`
	TotalPrice float64 `json:"totalPrice" binding:"min=0"`
}

type AcceptBookingPayload struct {
	BookingID uint `json:"bookingId" binding:"required"`
	RoomID    uint `json:"roomId" binding:"required"`
}

type RejectBookingPayload struct {
	BookingID uint `json:"bookingId" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// actorOwnerID scopes accept/reject to the calling owner's hostel.
// Admins act across hostels (zero scope).
func actorOwnerID(c *gin.Context) uint {
	if c.GetString(middleware.CtxRole) == models.RoleAdmin {
		return 0
	}
	return middleware.CallerID(c)
}

// AddBooking — POST /booking/addBooking
func (bc *BookingController) AddBooking(c *gin.Context) {
	var payload AddBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	booking, err := bc.BookingSvc.Submit(services.SubmitBookingInput{
		UserID:     middleware.CallerID(c),
		OwnerID:    payload.OwnerID,
		PackageID:  payload.PackageID,
		CheckIn:    payload.CheckIn,
		Guests:     payload.Guests,
		TotalPrice: payload.TotalPrice,
	})
	if err != nil {
		utils.JSONError(c, statusForServiceError(err), "Failed to create booking", err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Booking submitted", gin.H{"booking": booking})
}

// GetBookings — GET /booking/getBookings (admin / owner view)
func (bc *BookingController) GetBookings(c *gin.Context) {
	filter := services.BookingFilter{Status: c.Query("status")}

	if raw := c.Query("ownerId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.OwnerID = uint(id)
		}
	}
	if raw := c.Query("from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.From = &t
		}
	}
	if raw := c.Query("to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.To = &t
		}
	}

	list, err := bc.BookingSvc.ListAll(filter)
	if err != nil {
		log.Printf("❌ GetBookings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve bookings", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Bookings retrieved", gin.H{"bookings": list})
}

// UserBookings — GET /booking/userBookings (scoped to caller)
func (bc *BookingController) UserBookings(c *gin.Context) {
	list, err := bc.BookingSvc.ListForUser(middleware.CallerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve bookings", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Bookings retrieved", gin.H{"bookings": list})
}

// AcceptBooking — POST /booking/acceptBooking
func (bc *BookingController) AcceptBooking(c *gin.Context) {
	var payload AcceptBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	booking, err := bc.BookingSvc.Accept(payload.BookingID, payload.RoomID, actorOwnerID(c))
	if err != nil {
		utils.JSONError(c, statusForServiceError(err), "Failed to accept booking", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Booking accepted", gin.H{
		"booking":    booking,
		"membership": booking.Membership,
	})
}

// RejectBooking — POST /booking/rejectBooking
func (bc *BookingController) RejectBooking(c *gin.Context) {
	var payload RejectBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	booking, err := bc.BookingSvc.Reject(payload.BookingID, actorOwnerID(c))
	if err != nil {
		utils.JSONError(c, statusForServiceError(err), "Failed to reject booking", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Booking rejected", gin.H{"booking": booking})
}
