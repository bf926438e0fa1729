// services/membership_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMembershipNotFound  = errors.New("membership_not_found")
	ErrNotMembershipOwner  = errors.New("not_membership_owner")
	ErrMembershipNotActive = errors.New("membership_not_active")
)

// MembershipService extends active memberships and materializes each
// extension as a new ACCEPTED booking row.
type MembershipService struct {
	DB *gorm.DB
}

func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{DB: db}
}

// GetActive returns the caller's ACTIVE membership with its booking, room
// and package loaded.
func (s *MembershipService) GetActive(userID uint) (*models.Membership, error) {
	var m models.Membership
	err := s.DB.
		Preload("Package").
		Preload("Owner").
		Preload("Booking").
		Preload("Booking.Room").
		Where("user_id = ? AND status = ?", userID, models.MembershipActive).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to retrieve membership: %w", err)
	}
	return &m, nil
}

// Extend pushes the membership end date forward by one package duration and
// inserts the renewal booking covering the new period. The renewal keeps the
// original room without a capacity re-check: the occupants already hold
// their spots and no decrement has happened for them (see DESIGN.md).
func (s *MembershipService) Extend(membershipID, requesterID uint) (*models.Membership, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var m models.Membership
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&m, membershipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMembershipNotFound
			}
			return err
		}

		if m.UserID != requesterID {
			return ErrNotMembershipOwner
		}
		if m.Status != models.MembershipActive {
			return ErrMembershipNotActive
		}

		var pkg models.Package
		if err := tx.First(&pkg, m.PackageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPackageNotFound
			}
			return err
		}

		var original models.Booking
		if err := tx.First(&original, m.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		oldEnd := m.EndDate
		newEnd := oldEnd.AddDate(0, 0, pkg.DurationDays)

		if err := tx.Model(&m).Updates(map[string]interface{}{
			"end_date": newEnd,
			"status":   models.MembershipActive,
		}).Error; err != nil {
			return err
		}

		renewal := models.Booking{
			UserID:        m.UserID,
			OwnerID:       m.OwnerID,
			PackageID:     m.PackageID,
			RoomID:        original.RoomID,
			ReferenceCode: utils.NewBookingReference(),
			Status:        models.BookingAccepted,
			CheckIn:       &oldEnd,
			CheckOut:      &newEnd,
			Guests:        original.Guests,
			TotalPrice:    pkg.Price,
			Active:        true,
		}
		return tx.Create(&renewal).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	var result models.Membership
	if err := s.DB.
		Preload("User").
		Preload("Package").
		Preload("Booking").
		Preload("Booking.Room").
		First(&result, membershipID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload membership: %w", err)
	}
	return &result, nil
}

// ExpireDue sweeps memberships whose end date has passed: marks them EXPIRED
// and releases their occupants from the room. Run daily from main.go; this
// is the single place occupancy is ever decremented.
func (s *MembershipService) ExpireDue(now time.Time) (int, error) {
	var due []models.Membership
	if err := s.DB.
		Where("status = ? AND end_date < ?", models.MembershipActive, now).
		Find(&due).Error; err != nil {
		return 0, fmt.Errorf("failed to list due memberships: %w", err)
	}

	expired := 0
	for _, candidate := range due {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			var m models.Membership
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&m, candidate.ID).Error; err != nil {
				return err
			}
			// re-check under lock; another sweep may have beaten us
			if m.Status != models.MembershipActive || !m.EndDate.Before(now) {
				return nil
			}

			var booking models.Booking
			if err := tx.First(&booking, m.BookingID).Error; err != nil {
				return err
			}

			if booking.RoomID != nil {
				var room models.Room
				if err := tx.
					Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&room, *booking.RoomID).Error; err != nil {
					return err
				}
				newOccupancy := room.Occupancy - booking.Guests
				if newOccupancy < 0 {
					newOccupancy = 0
				}
				if err := tx.Model(&models.Room{}).
					Where("id = ?", room.ID).
					Updates(map[string]interface{}{
						"occupancy": newOccupancy,
						"status":    models.DeriveRoomStatus(newOccupancy, room.Capacity),
					}).Error; err != nil {
					return err
				}
			}

			if err := tx.Model(&booking).Update("active", false).Error; err != nil {
				return err
			}
			if err := tx.Model(&m).Update("status", models.MembershipExpired).Error; err != nil {
				return err
			}
			expired++
			return nil
		})
		if err != nil {
			log.Printf("warning: failed to expire membership %d: %v", candidate.ID, err)
		}
	}
	return expired, nil
}
