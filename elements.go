package ephemeris

import (
	"github.com/stellarcore/ephemeris/elements"
	"github.com/stellarcore/ephemeris/units"
)

// OrbitalElements computes body's osculating Keplerian orbital elements
// (instantaneous ellipse matching its current position and velocity) at
// time t, relative to the Sun.
func OrbitalElements(body Body, t Time) (elements.OsculatingElements, Status) {
	state, status := BaryState(body, t)
	if status != Success {
		return elements.OsculatingElements{}, status
	}
	posKm := [3]float64{state.X * auKm, state.Y * auKm, state.Z * auKm}
	velKmS := [3]float64{
		units.NewVelocity(state.VX).KmPerSec(),
		units.NewVelocity(state.VY).KmPerSec(),
		units.NewVelocity(state.VZ).KmPerSec(),
	}
	return elements.FromStateVector(posKm, velKmS, gmKm3S2[Sun]), Success
}

// StateVectorFromElements reconstructs body's state vector at the osculating
// epoch the elements describe, the inverse of OrbitalElements. Mainly useful
// for round-tripping an orbit determination through its elements.
func StateVectorFromElements(el elements.OsculatingElements, t Time) StateVector {
	posKm, velKmS := el.ToStateVector(gmKm3S2[Sun])
	return StateVector{
		X: posKm[0] / auKm, Y: posKm[1] / auKm, Z: posKm[2] / auKm,
		VX: units.VelocityFromKmPerSec(velKmS[0]).AUPerDay(),
		VY: units.VelocityFromKmPerSec(velKmS[1]).AUPerDay(),
		VZ: units.VelocityFromKmPerSec(velKmS[2]).AUPerDay(),
		T:  t,
	}
}
