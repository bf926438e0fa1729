package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type RecordPaymentPayload struct {
	BookingID uint    `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method" binding:"required,oneof=card cash upi transfer"`
}

type PaymentController struct {
	PaymentSvc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentSvc: svc}
}

// RecordPayment — POST /payment/record
func (pc *PaymentController) RecordPayment(c *gin.Context) {
	var payload RecordPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	payment, err := pc.PaymentSvc.Record(middleware.CallerID(c), payload.BookingID, payload.Amount, payload.Method)
	if err != nil {
		utils.JSONError(c, statusForServiceError(err), "Failed to record payment", err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Payment recorded", gin.H{"payment": payment})
}

// UserPayments — GET /payment/userPayments
func (pc *PaymentController) UserPayments(c *gin.Context) {
	list, err := pc.PaymentSvc.ListForUser(middleware.CallerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve payments", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Payments retrieved", gin.H{"payments": list})
}
