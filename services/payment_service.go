package services

import (
	"errors"
	"fmt"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/gorm"
)

var ErrPaymentBookingMismatch = errors.New("payment_booking_mismatch")

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// Record stores a payment against the caller's booking. The booking must
// belong to the paying user.
func (s *PaymentService) Record(userID, bookingID uint, amount float64, method string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("validation: amount must be positive")
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("db error checking booking %d: %w", bookingID, err)
	}
	if booking.UserID != userID {
		return nil, ErrPaymentBookingMismatch
	}

	payment := models.Payment{
		BookingID:     bookingID,
		UserID:        userID,
		Amount:        amount,
		Method:        method,
		Status:        models.PaymentCompleted,
		TransactionID: utils.NewTransactionReference(),
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return &payment, nil
}

func (s *PaymentService) ListForUser(userID uint) ([]models.Payment, error) {
	var list []models.Payment
	err := s.DB.
		Preload("Booking").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
