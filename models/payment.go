package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses
const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`
	UserID    uint `gorm:"index;column:user_id" json:"user_id"`

	Amount        float64 `gorm:"column:amount" json:"amount"`
	Method        string  `gorm:"size:30" json:"method"`
	Status        string  `gorm:"size:20;default:PENDING" json:"status"`
	TransactionID string  `gorm:"column:transaction_id;size:100" json:"transactionId,omitempty"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
	User    User    `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}
