package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRoomStatus(t *testing.T) {
	assert.Equal(t, RoomAvailable, DeriveRoomStatus(0, 4))
	assert.Equal(t, RoomPartiallyOccupied, DeriveRoomStatus(1, 4))
	assert.Equal(t, RoomPartiallyOccupied, DeriveRoomStatus(3, 4))
	assert.Equal(t, RoomFullyOccupied, DeriveRoomStatus(4, 4))
	// occupancy should never exceed capacity, but derivation stays sane if it does
	assert.Equal(t, RoomFullyOccupied, DeriveRoomStatus(5, 4))
}

func TestAvailableSpots(t *testing.T) {
	assert.Equal(t, 4, Room{Capacity: 4}.AvailableSpots())
	assert.Equal(t, 1, Room{Capacity: 4, Occupancy: 3}.AvailableSpots())
	assert.Equal(t, 0, Room{Capacity: 4, Occupancy: 4}.AvailableSpots())
	assert.Equal(t, 0, Room{Capacity: 4, Occupancy: 5}.AvailableSpots())
}
