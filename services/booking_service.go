// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors mapped to HTTP status codes by the controllers.
var (
	ErrPackageNotFound   = errors.New("package_not_found")
	ErrBookingNotFound   = errors.New("booking_not_found")
	ErrRoomNotFound      = errors.New("room_not_found")
	ErrRoomWrongHostel   = errors.New("room_wrong_hostel")
	ErrBookingNotPending = errors.New("booking_not_pending")
	ErrNotBookingOwner   = errors.New("not_booking_owner")
	ErrCapacityExceeded  = errors.New("room_capacity_exceeded")
	ErrMembershipExists  = errors.New("membership_exists")
)

// BookingService owns the request -> accept/reject -> membership state
// machine and the room occupancy invariant.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type SubmitBookingInput struct {
	UserID     uint
	OwnerID    uint
	PackageID  uint
	CheckIn    string // YYYY-MM-DD
	Guests     int
	TotalPrice float64
}

// Submit creates a PENDING booking. Check-out is derived from the package
// duration, never taken from the caller.
func (s *BookingService) Submit(in SubmitBookingInput) (*models.Booking, error) {
	if in.UserID == 0 || in.OwnerID == 0 || in.PackageID == 0 {
		return nil, fmt.Errorf("validation: user, hostel and package are required")
	}
	if in.Guests < 1 {
		return nil, fmt.Errorf("validation: guests must be at least 1")
	}
	if in.TotalPrice < 0 {
		return nil, fmt.Errorf("validation: total price must not be negative")
	}

	checkIn, err := time.Parse("2006-01-02", in.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("validation: invalid check_in format: %v", err)
	}

	var pkg models.Package
	if err := s.DB.First(&pkg, in.PackageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("db error checking package %d: %w", in.PackageID, err)
	}
	if pkg.OwnerID != in.OwnerID {
		return nil, ErrPackageNotFound
	}

	checkOut := checkIn.AddDate(0, 0, pkg.DurationDays)

	booking := models.Booking{
		UserID:        in.UserID,
		OwnerID:       in.OwnerID,
		PackageID:     in.PackageID,
		ReferenceCode: utils.NewBookingReference(),
		Status:        models.BookingPending,
		CheckIn:       &checkIn,
		CheckOut:      &checkOut,
		Guests:        in.Guests,
		TotalPrice:    in.TotalPrice,
		Active:        true,
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &booking, nil
}

// Accept assigns a room to a PENDING booking and creates the membership.
// actorOwnerID scopes the operation to the acting hostel owner; zero means
// an admin acting across hostels. Runs as one transaction with the booking
// and room rows locked, so two concurrent accepts against the same room
// serialize on the capacity check and can never overshoot it together.
func (s *BookingService) Accept(bookingID, roomID, actorOwnerID uint) (*models.Booking, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if actorOwnerID != 0 && booking.OwnerID != actorOwnerID {
			return ErrNotBookingOwner
		}

		// accept and reject are mutually exclusive terminal transitions
		if booking.Status != models.BookingPending {
			return ErrBookingNotPending
		}

		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.OwnerID != booking.OwnerID {
			return ErrRoomWrongHostel
		}

		newOccupancy := room.Occupancy + booking.Guests
		if newOccupancy > room.Capacity {
			return ErrCapacityExceeded
		}

		// one ACTIVE membership per (user, hostel)
		var active int64
		if err := tx.Model(&models.Membership{}).
			Where("user_id = ? AND owner_id = ? AND status = ?",
				booking.UserID, booking.OwnerID, models.MembershipActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrMembershipExists
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Updates(map[string]interface{}{
				"occupancy": newOccupancy,
				"status":    models.DeriveRoomStatus(newOccupancy, room.Capacity),
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":  models.BookingAccepted,
			"room_id": room.ID,
		}).Error; err != nil {
			return err
		}

		membership := models.Membership{
			UserID:    booking.UserID,
			OwnerID:   booking.OwnerID,
			PackageID: booking.PackageID,
			BookingID: booking.ID,
			StartDate: *booking.CheckIn,
			EndDate:   *booking.CheckOut,
			Status:    models.MembershipActive,
		}
		return tx.Create(&membership).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	var result models.Booking
	if err := s.DB.
		Preload("Room").
		Preload("Package").
		Preload("User").
		Preload("Membership").
		First(&result, bookingID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload accepted booking: %w", err)
	}
	return &result, nil
}

// Reject marks a PENDING booking REJECTED. No room or membership writes.
// actorOwnerID works as in Accept. Re-rejecting an already-rejected booking
// is a no-op success; rejecting an accepted booking fails.
func (s *BookingService) Reject(bookingID, actorOwnerID uint) (*models.Booking, error) {
	var result models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if actorOwnerID != 0 && booking.OwnerID != actorOwnerID {
			return ErrNotBookingOwner
		}

		switch booking.Status {
		case models.BookingRejected:
			result = booking
			return nil
		case models.BookingPending:
			// fallthrough to the update below
		default:
			return ErrBookingNotPending
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status": models.BookingRejected,
			"active": false,
		}).Error; err != nil {
			return err
		}
		result = booking
		result.Status = models.BookingRejected
		result.Active = false
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &result, nil
}

// BookingFilter narrows the admin listing. Zero values mean "no filter".
type BookingFilter struct {
	Status  string
	OwnerID uint
	From    *time.Time
	To      *time.Time
}

// ListAll returns bookings across hostels, newest first.
func (s *BookingService) ListAll(filter BookingFilter) ([]models.Booking, error) {
	q := s.DB.
		Preload("User").
		Preload("Package").
		Preload("Room").
		Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.OwnerID != 0 {
		q = q.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.From != nil {
		q = q.Where("check_in >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("check_in <= ?", *filter.To)
	}

	var list []models.Booking
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// ListForUser returns the caller's bookings ordered by check-in date.
func (s *BookingService) ListForUser(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Package").
		Preload("Room").
		Preload("Owner").
		Where("user_id = ?", userID).
		Order("check_in DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve user bookings: %w", err)
	}
	return list, nil
}
