package ephemeris

import (
	"math"

	"github.com/stellarcore/ephemeris/moon"
)

// LibrationInfo describes the Moon's optical libration — the small apparent
// rocking that lets an observer see slightly more than half its surface over
// time, caused by the inclination of the lunar equator to the ecliptic and
// the eccentricity/inclination of its orbit.
type LibrationInfo struct {
	T            Time
	LongitudeDeg float64 // positive: more of the east limb visible
	LatitudeDeg  float64 // positive: more of the north limb visible
	DistanceKm   float64
	DiameterDeg  float64 // Moon's apparent angular diameter
}

// moonEquatorInclinationDeg is I, the inclination of the mean lunar equator
// to the ecliptic (Meeus, Astronomical Algorithms ch. 53).
const moonEquatorInclinationDeg = 1.54242

// moonRadiusKm is the Moon's mean radius, used for DiameterDeg.
const moonRadiusKm = 1737.4

// Libration computes the Moon's optical libration in longitude and latitude
// at time t (Meeus ch. 53). Physical libration — the small additional
// rocking driven by the Moon's non-spherical mass distribution, a few
// hundredths of a degree — is not modeled.
func Libration(t Time) LibrationInfo {
	jd := t.TtJD()
	T := (jd - 2451545.0) / 36525.0
	T2, T3, T4 := T*T, T*T*T, T*T*T*T

	Lp := 218.3164477 + 481267.88123421*T - 0.0015786*T2 + T3/538841 - T4/65194000
	F := 93.2720950 + 483202.0175233*T - 0.0036539*T2 - T3/3526000 + T4/863310000
	omega := 125.0445479 - 1934.1362891*T + 0.0020754*T2 + T3/467441 - T4/60616000

	lonDeg, latDeg, distKm := moon.GeocentricEcliptic(jd)

	I := moonEquatorInclinationDeg * deg2rad
	W := (lonDeg-omega)*deg2rad
	beta := latDeg * deg2rad

	A := math.Atan2(math.Sin(W)*math.Cos(beta)*math.Cos(I)-math.Sin(beta)*math.Sin(I), math.Cos(W)*math.Cos(beta))
	l := normalizeDeg(A*rad2deg - F)
	b := math.Asin(-math.Sin(W)*math.Cos(beta)*math.Sin(I) - math.Sin(beta)*math.Cos(I))

	return LibrationInfo{
		T: t, LongitudeDeg: l, LatitudeDeg: b * rad2deg, DistanceKm: distKm,
		DiameterDeg: 2 * math.Asin(moonRadiusKm/distKm) * rad2deg,
	}
}

// normalizeDeg wraps a longitude-libration angle into [-180, 180).
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg+180.0, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg - 180.0
}
