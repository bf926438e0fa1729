package models

import (
	"time"

	"gorm.io/gorm"
)

type ChatMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SenderID    uint   `gorm:"index;column:sender_id" json:"senderID"`
	RecipientID uint   `gorm:"index;column:recipient_id" json:"recipientID"`
	Content     string `gorm:"type:text" json:"content"`

	Sender User `gorm:"foreignKey:SenderID;references:ID" json:"sender,omitempty"`
}
