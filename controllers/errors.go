package controllers

import (
	"errors"
	"net/http"
	"strings"

	"hostel-backend/services"
)

// statusForServiceError maps service sentinel errors onto HTTP status codes.
// Capacity and duplicate-membership failures are business-rule conflicts
// (409), wrong-state transitions are 422, everything unknown is 500.
func statusForServiceError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case strings.HasPrefix(err.Error(), "validation:"):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrPackageNotFound),
		errors.Is(err, services.ErrMembershipNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotMembershipOwner),
		errors.Is(err, services.ErrNotBookingOwner),
		errors.Is(err, services.ErrPaymentBookingMismatch):
		return http.StatusForbidden
	case errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrMembershipExists),
		errors.Is(err, services.ErrRoomWrongHostel):
		return http.StatusConflict
	case errors.Is(err, services.ErrBookingNotPending),
		errors.Is(err, services.ErrMembershipNotActive):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
