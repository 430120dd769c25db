package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIllumination_VenusPlausibleMagnitude(t *testing.T) {
	info, status := Illumination(Venus, MakeTime(2024, 1, 1, 0, 0, 0))
	require.Equal(t, Success, status)
	// Venus ranges roughly -3.8 to -4.9 in apparent magnitude.
	assert.True(t, info.Magnitude < -3.0 && info.Magnitude > -5.5)
	assert.True(t, info.PhaseFraction >= 0 && info.PhaseFraction <= 1)
}

func TestIllumination_UnsupportedBody(t *testing.T) {
	_, status := Illumination(Moon, MakeTime(2024, 1, 1, 0, 0, 0))
	assert.Equal(t, InvalidBody, status)
}

func TestMoonMagnitude_BrighterAtFullPhase(t *testing.T) {
	const meanDistAU = 384400.0 / 1.495978707e8
	full := MoonMagnitude(0, meanDistAU)
	quarter := MoonMagnitude(90, meanDistAU)
	assert.True(t, full < quarter, "full moon should be brighter (lower magnitude) than quarter moon")
}

func TestPlanetaryMagnitudeFromPhase_JupiterPlausible(t *testing.T) {
	mag, status := PlanetaryMagnitudeFromPhase(Jupiter, 0.5, 5.2, 4.2)
	require.Equal(t, Success, status)
	assert.True(t, mag > -3.0 && mag < -2.0)
}

func TestPlanetaryMagnitudeFromPhase_UnsupportedBody(t *testing.T) {
	_, status := PlanetaryMagnitudeFromPhase(Moon, 0, 1, 1)
	assert.Equal(t, InvalidBody, status)
}

func TestSearchPeakMagnitude_Venus(t *testing.T) {
	start := MakeTime(2024, 1, 1, 0, 0, 0)
	peakTime, mag, status := SearchPeakMagnitude(Venus, start.Ut(), 600)
	require.Equal(t, Success, status)
	assert.True(t, peakTime.Ut() >= start.Ut())
	assert.True(t, mag < -3.0)
}
