package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// NewBookingReference returns a short uppercase reference code for a booking,
// e.g. "BK-9F2C41D8". Derived from a v4 UUID so collisions are negligible;
// the column still carries a unique index.
func NewBookingReference() string {
	id := uuid.New()
	return "BK-" + strings.ToUpper(hex.EncodeToString(id[:4]))
}

// NewTransactionReference returns a payment transaction reference.
func NewTransactionReference() string {
	return "TXN-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateSecureToken returns a hex token of the given byte length.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
