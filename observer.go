package ephemeris

import (
	"math"

	"github.com/stellarcore/ephemeris/coord"
)

// Observer is a location on or near Earth's surface: geodetic latitude and
// longitude in degrees, and height above the WGS84 ellipsoid in meters.
type Observer struct {
	LatitudeDeg  float64
	LongitudeDeg float64
	HeightM      float64
}

// ObserverVector returns the observer's geocentric position at time t, in
// the requested equatorial frame (EQJ or EQD), AU.
func ObserverVector(t Time, obs Observer, eq EquatorDate) Vector {
	x, y, z := coord.GeodeticToICRF(obs.LatitudeDeg, obs.LongitudeDeg, t.UtJD())
	v := Vector{X: x / auKm, Y: y / auKm, Z: z / auKm, T: t}
	if eq == OfDate {
		v = RotateVector(Rotation_EQJ_EQD(t), v)
	}
	return v
}

// ObserverState returns the observer's geocentric position and velocity
// (AU, AU/day) at time t, accounting for Earth's rotation. Height above the
// ellipsoid is not modeled in the velocity term (negligible compared to the
// rotational velocity at any reasonable elevation).
func ObserverState(t Time, obs Observer, eq EquatorDate) StateVector {
	const omegaEarth = 360.9856235 // degrees/day, Earth's sidereal rotation rate
	pos := ObserverVector(t, obs, OfDate)
	// A fixed ground station's geocentric velocity is purely rotational
	// about Earth's polar axis: v = omega x r, exact in the of-date frame
	// where that axis is the z-axis by construction.
	omegaRadPerDay := omegaEarth * deg2rad
	state := StateVector{
		X: pos.X, Y: pos.Y, Z: pos.Z,
		VX: -omegaRadPerDay * pos.Y, VY: omegaRadPerDay * pos.X, VZ: 0,
		T: t,
	}
	if eq == J2000 {
		state = RotateState(Rotation_EQD_EQJ(t), state)
	}
	return state
}

// Horizon returns a vector's altitude and azimuth (degrees) as seen by obs
// at time t, plus distance in AU. refraction optionally applies Bennett's
// atmospheric refraction formula to the altitude.
func Horizon(t Time, obs Observer, v Vector, refraction Refraction) (altDeg, azDeg, distAU float64) {
	hv := RotateVector(Rotation_EQJ_HOR(t, obs), v)
	// In the HOR frame, x points south along the horizon, y east, z up;
	// azimuth is measured clockwise from north, hence atan2(y, -x).
	altDeg = math.Asin(hv.Z/hv.Length()) * rad2deg
	azDeg = math.Mod(math.Atan2(hv.Y, -hv.X)*rad2deg+360.0, 360.0)
	distAU = hv.Length()
	if refraction == NormalRefraction {
		altDeg += coord.Refraction(altDeg, 10.0, 1010.0)
	}
	return
}

// ApparentAltitude converts a true (geometric) altitude in degrees to the
// apparent altitude an observer would see after atmospheric refraction,
// under the given temperature (Celsius) and pressure (millibars). Unlike
// Horizon's single-pass NormalRefraction correction, this iterates Bennett's
// formula to convergence (~0.1 arcsecond), for callers that already have a
// true altitude and want the more precise refracted value directly rather
// than the one-step approximation.
func ApparentAltitude(trueAltDeg, tempC, pressureMbar float64) float64 {
	return coord.Refract(trueAltDeg, tempC, pressureMbar)
}

// VectorFromHorizon reconstructs an EQJ vector from altitude, azimuth
// (degrees) and distance (AU) as seen by obs at time t — the inverse of
// Horizon (refraction is not un-applied; pass a refraction-free altitude).
func VectorFromHorizon(t Time, obs Observer, altDeg, azDeg, distAU float64) Vector {
	alt := altDeg * deg2rad
	az := azDeg * deg2rad
	cosAlt := math.Cos(alt)
	hv := Vector{
		X: -distAU * cosAlt * math.Cos(az),
		Y: distAU * cosAlt * math.Sin(az),
		Z: distAU * math.Sin(alt),
		T: t,
	}
	m := InverseRotation(Rotation_EQJ_HOR(t, obs))
	return RotateVector(m, hv)
}

// EquatorFromVector returns a vector's right ascension (hours) and
// declination (degrees) directly from its Cartesian components.
func EquatorFromVector(v Vector) (raHours, decDeg float64) {
	s := SphereFromVector(v)
	raHours = math.Mod(s.Lon/15.0+24.0, 24.0)
	decDeg = s.Lat
	return
}
