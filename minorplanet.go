package ephemeris

import "github.com/stellarcore/ephemeris/kepler"

// MinorPlanetVector returns a minor planet or comet's heliocentric position
// at time t, EQJ frame, AU, given its osculating orbital elements (as
// published by the Minor Planet Center or JPL Small-Body Database).
func MinorPlanetVector(orbit *kepler.Orbit, t Time) Vector {
	au := orbit.PositionAU(t.TtJD())
	return Vector{X: au[0], Y: au[1], Z: au[2], T: t}
}

// MinorPlanetGeoVector returns a minor planet's geocentric position at time
// t, EQJ frame, AU, corrected for light-time.
func MinorPlanetGeoVector(orbit *kepler.Orbit, t Time) (Vector, Status) {
	earth, status := HelioVector(Earth, t)
	if status != Success {
		return Vector{}, status
	}
	emitTime := t
	var helio Vector
	for iter := 0; iter < 2; iter++ {
		helio = MinorPlanetVector(orbit, emitTime)
		geo := Vector{X: helio.X - earth.X, Y: helio.Y - earth.Y, Z: helio.Z - earth.Z}
		emitTime = t.AddDays(-geo.Length() * auLightDaysInv)
	}
	return Vector{X: helio.X - earth.X, Y: helio.Y - earth.Y, Z: helio.Z - earth.Z, T: t}, Success
}

// MinorPlanetState returns a minor planet or comet's heliocentric state
// vector (position and velocity) at time t, EQJ frame, using the orbit's
// closed-form perifocal velocity rather than a finite-difference estimate.
func MinorPlanetState(orbit *kepler.Orbit, t Time) StateVector {
	pos, vel := orbit.StateAU(t.TtJD())
	return StateVector{
		X: pos[0], Y: pos[1], Z: pos[2],
		VX: vel[0], VY: vel[1], VZ: vel[2],
		T: t,
	}
}
