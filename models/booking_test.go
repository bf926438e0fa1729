package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingMembershipRelation(t *testing.T) {
	// the relation is bidirectional: a membership carries its booking and an
	// accepted booking carries its membership
	booking := Booking{
		ID:     1,
		Status: BookingAccepted,
		Membership: &Membership{
			ID:        5,
			BookingID: 1,
			Status:    MembershipActive,
			Booking:   Booking{ID: 1, Status: BookingAccepted},
		},
	}

	require.NotNil(t, booking.Membership)
	assert.Equal(t, MembershipActive, booking.Membership.Status)
	assert.Equal(t, booking.ID, booking.Membership.BookingID)
}

func TestBookingJSONOmitsMissingMembership(t *testing.T) {
	pending, err := json.Marshal(Booking{ID: 1, Status: BookingPending})
	require.NoError(t, err)
	assert.NotContains(t, string(pending), `"membership"`)

	accepted, err := json.Marshal(Booking{
		ID:         2,
		Status:     BookingAccepted,
		Membership: &Membership{ID: 5, BookingID: 2, Status: MembershipActive},
	})
	require.NoError(t, err)
	assert.Contains(t, string(accepted), `"membership"`)
}
