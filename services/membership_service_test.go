package services

import (
	"testing"
	"time"

	"hostel-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActiveNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMembershipService(db)

	mock.ExpectQuery("SELECT \\* FROM `memberships`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GetActive(1)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestExtendMembershipNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMembershipService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `memberships`.*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.Extend(42, 1)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExtendRequiresOwnership(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMembershipService(db)

	// requester 8 does not own membership 5: nothing may be written
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `memberships`.*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "owner_id", "package_id", "booking_id", "status", "start_date", "end_date"}).
			AddRow(5, 1, 2, 9, 1, models.MembershipActive, day("2025-01-01"), day("2025-01-31")))
	mock.ExpectRollback()

	_, err := svc.Extend(5, 8)
	assert.ErrorIs(t, err, ErrNotMembershipOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExtendRequiresActiveStatus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMembershipService(db)

	for _, status := range []string{models.MembershipInactive, models.MembershipExpired} {
		t.Run(status, func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery("SELECT \\* FROM `memberships`.*FOR UPDATE").
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "owner_id", "package_id", "booking_id", "status", "start_date", "end_date"}).
					AddRow(5, 1, 2, 9, 1, status, day("2025-01-01"), day("2025-01-31")))
			mock.ExpectRollback()

			_, err := svc.Extend(5, 1)
			assert.ErrorIs(t, err, ErrMembershipNotActive)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExtendPushesEndDateAndCreatesRenewalBooking(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMembershipService(db)

	mock.MatchExpectationsInOrder(false)

	oldEnd := day("2025-01-31")
	newEnd := oldEnd.AddDate(0, 0, 30) // 2025-03-02

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `memberships`.*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "owner_id", "package_id", "booking_id", "status", "start_date", "end_date"}).
			AddRow(5, 1, 2, 9, 1, models.MembershipActive, day("2025-01-01"), oldEnd))
	mock.ExpectQuery("SELECT \\* FROM `packages`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "duration_days", "price"}).
			AddRow(9, 2, 30, 4500.0))
	mock.ExpectQuery("SELECT \\* FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "owner_id", "package_id", "room_id", "guests", "status"}).
			AddRow(1, 1, 2, 9, 7, 2, models.BookingAccepted))
	mock.ExpectExec("UPDATE `memberships`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	// reload with preloads
	mock.ExpectQuery("SELECT \\* FROM `memberships` WHERE `memberships`.`id`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "owner_id", "package_id", "booking_id", "status", "start_date", "end_date"}).
			AddRow(5, 1, 2, 9, 1, models.MembershipActive, day("2025-01-01"), newEnd))
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}).AddRow(1, "Asha"))
	mock.ExpectQuery("SELECT \\* FROM `packages` WHERE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "duration_days", "price"}).
			AddRow(9, 2, 30, 4500.0))
	mock.ExpectQuery("SELECT \\* FROM `bookings` WHERE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "owner_id", "package_id", "room_id", "guests", "status"}).
			AddRow(1, 1, 2, 9, 7, 2, models.BookingAccepted))
	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "capacity", "occupancy"}).
			AddRow(7, 2, 4, 2))

	membership, err := svc.Extend(5, 1)
	require.NoError(t, err)
	require.NotNil(t, membership)

	assert.Equal(t, models.MembershipActive, membership.Status)
	assert.Equal(t, newEnd, membership.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExtendRenewalDates(t *testing.T) {
	// 30-day package ending 2025-01-31 renews through 2025-03-02
	oldEnd := day("2025-01-31")
	assert.Equal(t, day("2025-03-02"), oldEnd.AddDate(0, 0, 30))

	// 30-day package starting 2024-01-01 runs through 2024-01-31
	assert.Equal(t, day("2024-01-31"), day("2024-01-01").AddDate(0, 0, 30))
}

func TestExpireDueReleasesOccupancy(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMembershipService(db)

	now := day("2025-06-01")

	mock.MatchExpectationsInOrder(false)

	// sweep listing
	mock.ExpectQuery("SELECT \\* FROM `memberships`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "owner_id", "package_id", "booking_id", "status", "end_date"}).
			AddRow(5, 1, 2, 9, 1, models.MembershipActive, day("2025-05-01")))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `memberships`.*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "owner_id", "package_id", "booking_id", "status", "end_date"}).
			AddRow(5, 1, 2, 9, 1, models.MembershipActive, day("2025-05-01")))
	mock.ExpectQuery("SELECT \\* FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "owner_id", "room_id", "guests", "status", "active"}).
			AddRow(1, 1, 2, 7, 2, models.BookingAccepted, true))
	mock.ExpectQuery("SELECT \\* FROM `rooms`.*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "capacity", "occupancy", "status"}).
			AddRow(7, 2, 4, 2, models.RoomPartiallyOccupied))
	mock.ExpectExec("UPDATE `rooms`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `bookings`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `memberships`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := svc.ExpireDue(now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireDueSkipsStillActivePeriods(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMembershipService(db)

	// nothing due
	mock.ExpectQuery("SELECT \\* FROM `memberships`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	n, err := svc.ExpireDue(time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
