package ephemeris

import (
	"testing"

	"github.com/stellarcore/ephemeris/kepler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ceres's approximate orbital elements (J2000 ecliptic), for a
// plausibility check rather than a precision regression test.
func ceresOrbit() *kepler.Orbit {
	return &kepler.Orbit{
		SemiMajorAxisAU: 2.7675,
		Eccentricity:    0.0757,
		InclinationDeg:  10.594,
		LongAscNodeDeg:  80.305,
		ArgPeriapsisDeg: 73.597,
		MeanAnomalyDeg:  77.372,
		EpochJD:         2458849.5,
	}
}

func TestMinorPlanetVector_CeresDistancePlausible(t *testing.T) {
	v := MinorPlanetVector(ceresOrbit(), MakeTime(2024, 1, 1, 0, 0, 0))
	// Ceres stays within its perihelion/aphelion bounds (~2.55-2.98 AU).
	assert.True(t, v.Length() > 2.4 && v.Length() < 3.1)
}

func TestMinorPlanetGeoVector_Success(t *testing.T) {
	_, status := MinorPlanetGeoVector(ceresOrbit(), MakeTime(2024, 1, 1, 0, 0, 0))
	require.Equal(t, Success, status)
}

func TestMinorPlanetState_PositionMatchesMinorPlanetVector(t *testing.T) {
	tm := MakeTime(2024, 1, 1, 0, 0, 0)
	v := MinorPlanetVector(ceresOrbit(), tm)
	state := MinorPlanetState(ceresOrbit(), tm)

	assert.InDelta(t, v.X, state.X, 1e-12)
	assert.InDelta(t, v.Y, state.Y, 1e-12)
	assert.InDelta(t, v.Z, state.Z, 1e-12)

	speedAUPerDay := (Vector{X: state.VX, Y: state.VY, Z: state.VZ}).Length()
	// Ceres's orbital speed is roughly 0.0096-0.0112 AU/day (17-19 km/s)
	// between aphelion and perihelion.
	assert.True(t, speedAUPerDay > 0.009 && speedAUPerDay < 0.012)
}
