package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLibration_WithinObservedRange(t *testing.T) {
	info := Libration(MakeTime(2024, 1, 1, 0, 0, 0))
	// Optical libration in longitude/latitude stays within about +-8 degrees.
	assert.True(t, info.LongitudeDeg > -8.5 && info.LongitudeDeg < 8.5)
	assert.True(t, info.LatitudeDeg > -8.5 && info.LatitudeDeg < 8.5)
	assert.True(t, info.DiameterDeg > 0.4 && info.DiameterDeg < 0.6)
}
