package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	// same point
	assert.Zero(t, haversine(13.7563, 100.5018, 13.7563, 100.5018))

	// Bangkok city pillar to Siam Paragon, roughly 4.4 km
	d := haversine(13.7525, 100.4942, 13.7462, 100.5347)
	assert.InDelta(t, 4400, d, 300)

	// one degree of latitude is about 111 km anywhere
	d = haversine(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 100)

	// symmetric
	assert.InDelta(t, haversine(10, 20, 30, 40), haversine(30, 40, 10, 20), 0.001)
}
