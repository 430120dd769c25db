package ephemeris

import (
	"github.com/stellarcore/ephemeris/coord"
	"github.com/stellarcore/ephemeris/moon"
	"github.com/stellarcore/ephemeris/pluto"
	"github.com/stellarcore/ephemeris/vsop"
)

// moonEarthMassRatio is the Moon/Earth mass ratio (1/81.30056), used to
// offset the Earth-Moon barycenter vsop.EarthMoonBarycenter gives into an
// Earth-only heliocentric position.
const moonEarthMassRatio = 1.0 / 81.30056

var vsopIndex = map[Body]int{
	Mercury: vsop.Mercury, Venus: vsop.Venus, Mars: vsop.Mars,
	Jupiter: vsop.Jupiter, Saturn: vsop.Saturn, Uranus: vsop.Uranus,
	Neptune: vsop.Neptune,
}

// eclipticToEQJ converts an ecliptic Cartesian triple (AU) to an EQJ
// Vector at time t.
func eclipticToEQJ(a [3]float64, t Time) Vector {
	return RotateVector(Rotation_ECL_EQJ(), vectorFromArray(a, t))
}

// moonGeoVectorEQJ returns the Moon's geocentric EQJ position, AU.
func moonGeoVectorEQJ(t Time) Vector {
	km := moon.GeocentricEclipticVector(t.TtJD())
	au := [3]float64{km[0] / auKm, km[1] / auKm, km[2] / auKm}
	return eclipticToEQJ(au, t)
}

// earthHelioVectorEQJ returns Earth's heliocentric EQJ position, AU,
// derived from the Earth-Moon barycenter position by subtracting the
// Moon's contribution scaled by its mass fraction of the Earth-Moon system.
func earthHelioVectorEQJ(t Time) Vector {
	embAU := vsop.HeliocentricEcliptic(vsop.EarthMoonBarycenter, t.TtJD())
	emb := eclipticToEQJ(embAU, t)
	moonVec := moonGeoVectorEQJ(t)
	frac := moonEarthMassRatio / (1 + moonEarthMassRatio)
	return Vector{
		X: emb.X - frac*moonVec.X,
		Y: emb.Y - frac*moonVec.Y,
		Z: emb.Z - frac*moonVec.Z,
		T: t,
	}
}

// HelioVector returns a body's heliocentric position at time t, EQJ frame,
// AU, uncorrected for light-time (the geometric position at t, not the
// position light left at t minus travel time).
func HelioVector(body Body, t Time) (Vector, Status) {
	switch body {
	case Sun:
		return Vector{T: t}, Success
	case Earth:
		return earthHelioVectorEQJ(t), Success
	case Moon:
		earth := earthHelioVectorEQJ(t)
		m := moonGeoVectorEQJ(t)
		return Vector{X: earth.X + m.X, Y: earth.Y + m.Y, Z: earth.Z + m.Z, T: t}, Success
	case Pluto:
		au, _ := pluto.HeliocentricEcliptic(t.TtJD())
		return eclipticToEQJ(au, t), Success
	case EMB:
		au := vsop.HeliocentricEcliptic(vsop.EarthMoonBarycenter, t.TtJD())
		return eclipticToEQJ(au, t), Success
	}
	if IsStarSlot(body) {
		// A fixed star's catalog position stands in for both its
		// heliocentric and its geocentric vector (see GeoVector).
		return starGeoVector(body, t)
	}
	if idx, ok := vsopIndex[body]; ok {
		au := vsop.HeliocentricEcliptic(idx, t.TtJD())
		return eclipticToEQJ(au, t), Success
	}
	return Vector{}, InvalidBody
}

// GeoMoon returns the Moon's geocentric position at time t, EQJ frame, AU,
// evaluated directly from the lunar series with no light-time or aberration
// correction (the Moon is close enough, and moves fast enough relative to
// its own light-time, that those corrections belong to the caller's model,
// not this one).
func GeoMoon(t Time) (Vector, Status) {
	return moonGeoVectorEQJ(t), Success
}

// EclipticGeoMoon returns the Moon's geocentric position as ecliptic-of-date
// spherical coordinates (longitude and latitude in degrees, distance in AU),
// straight from the lunar series without the EQJ rotation GeoMoon applies.
func EclipticGeoMoon(t Time) (Spherical, Status) {
	lonDeg, latDeg, distKm := moon.GeocentricEcliptic(t.TtJD())
	return Spherical{Lat: latDeg, Lon: lonDeg, Dist: distKm / auKm}, Success
}

// CalcMoonCount returns the number of full lunar-series evaluations
// performed so far in this process. Not part of the stable contract; tests
// use it to catch accidental redundant recomputation.
func CalcMoonCount() int {
	return moon.CalcMoonCount()
}

// BaryState returns a body's barycentric (solar-system barycenter) state
// vector. The Sun's own offset from the SSB is small (within ~0.01 AU,
// dominated by Jupiter) and is approximated here as zero: the heliocentric
// frame is used as a stand-in barycentric frame, adequate at this module's
// stated precision (it does not target sub-arcsecond results).
func BaryState(body Body, t Time) (StateVector, Status) {
	v, status := HelioVector(body, t)
	if status != Success {
		return StateVector{}, status
	}
	const dtDays = 0.01
	v2, _ := HelioVector(body, t.AddDays(dtDays))
	return StateVector{
		X: v.X, Y: v.Y, Z: v.Z,
		VX: (v2.X - v.X) / dtDays, VY: (v2.Y - v.Y) / dtDays, VZ: (v2.Z - v.Z) / dtDays,
		T: t,
	}, Success
}

// HelioState is an alias for BaryState kept distinct for API symmetry with
// the reference harness, which exposes both a barycentric and heliocentric
// state accessor even though this module treats the Sun as stationary at
// the barycenter (see BaryState).
func HelioState(body Body, t Time) (StateVector, Status) {
	return BaryState(body, t)
}

// GeoEmbState returns the Earth-Moon barycenter's state relative to Earth's
// center, AU and AU/day.
func GeoEmbState(t Time) (StateVector, Status) {
	earth := earthHelioVectorEQJ(t)
	const dtDays = 0.01
	earth2 := earthHelioVectorEQJ(t.AddDays(dtDays))
	embAU := vsop.HeliocentricEcliptic(vsop.EarthMoonBarycenter, t.TtJD())
	emb := eclipticToEQJ(embAU, t)
	embAU2 := vsop.HeliocentricEcliptic(vsop.EarthMoonBarycenter, t.AddDays(dtDays).TtJD())
	emb2 := eclipticToEQJ(embAU2, t.AddDays(dtDays))
	return StateVector{
		X: emb.X - earth.X, Y: emb.Y - earth.Y, Z: emb.Z - earth.Z,
		VX: ((emb2.X - earth2.X) - (emb.X - earth.X)) / dtDays,
		VY: ((emb2.Y - earth2.Y) - (emb.Y - earth.Y)) / dtDays,
		VZ: ((emb2.Z - earth2.Z) - (emb.Z - earth.Z)) / dtDays,
		T: t,
	}, Success
}

// HelioDistance returns a body's heliocentric distance in AU at time t
// without constructing a full vector.
func HelioDistance(body Body, t Time) (float64, Status) {
	v, status := HelioVector(body, t)
	if status != Success {
		return 0, status
	}
	return v.Length(), Success
}

// GeoVector returns a body's geocentric position at time t, EQJ frame, AU.
// The position always accounts for light-time (iterated twice, which
// converges to well under a millisecond for solar-system distances); when
// ab is Corrected, solar light deflection and stellar aberration from the
// observer's (Earth's) motion are applied as well.
func GeoVector(body Body, t Time, ab Aberration) (Vector, Status) {
	if IsStarSlot(body) {
		// Fixed stars are effectively at infinity: light-time and
		// aberration from Earth's orbital motion are below this facade's
		// precision target for catalog use, so the geocentric vector is
		// just the star's propagated position.
		return starGeoVector(body, t)
	}
	earth, status := HelioVector(Earth, t)
	if status != Success {
		return Vector{}, status
	}
	if body == Earth {
		return Vector{T: t}, Success
	}

	emitTime := t
	var target Vector
	for iter := 0; iter < 2; iter++ {
		var st Status
		target, st = HelioVector(body, emitTime)
		if st != Success {
			return Vector{}, st
		}
		geo := Vector{X: target.X - earth.X, Y: target.Y - earth.Y, Z: target.Z - earth.Z, T: t}
		lightDays := geo.Length() * auLightDaysInv
		emitTime = t.AddDays(-lightDays)
	}

	geo := Vector{X: target.X - earth.X, Y: target.Y - earth.Y, Z: target.Z - earth.Z, T: t}
	if ab == None {
		return geo, Success
	}

	posKm := [3]float64{geo.X * auKm, geo.Y * auKm, geo.Z * auKm}
	sunFromEarthKm := [3]float64{-earth.X * auKm, -earth.Y * auKm, -earth.Z * auKm}
	posKm = add3Arr(posKm, coord.Deflection(posKm, sunFromEarthKm, 1.0))

	earthState, _ := BaryState(Earth, t)
	velKmPerDay := [3]float64{
		earthState.VX * auKm, earthState.VY * auKm, earthState.VZ * auKm,
	}
	lightTimeDays := geo.Length() * auLightDaysInv
	aberrated := coord.Aberration(posKm, velKmPerDay, lightTimeDays)
	return vectorFromArray([3]float64{aberrated[0] / auKm, aberrated[1] / auKm, aberrated[2] / auKm}, t), Success
}

func add3Arr(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// auLightDaysInv converts an AU distance to light-travel-time in days:
// AU/c expressed with c in AU/day.
const auLightDaysInv = auKm / (299792.458 * 86400.0)
