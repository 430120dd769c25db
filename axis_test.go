package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxis_Earth(t *testing.T) {
	info, status := Axis(Earth, MakeTime(2024, 1, 1, 0, 0, 0))
	require.Equal(t, Success, status)
	assert.InDelta(t, 90.0, info.DecDeg, 1e-9)
	assert.InDelta(t, 1.0, info.NorthPole.Length(), 1e-9)
}

func TestAxis_UnknownBody(t *testing.T) {
	_, status := Axis(Moon, MakeTime(2024, 1, 1, 0, 0, 0))
	assert.Equal(t, InvalidBody, status)
}

func TestAxis_SpinWrapsWithinRange(t *testing.T) {
	info, status := Axis(Mars, MakeTime(2030, 6, 15, 0, 0, 0))
	require.Equal(t, Success, status)
	assert.True(t, info.SpinDeg >= 0 && info.SpinDeg < 360)
}
