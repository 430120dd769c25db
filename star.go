package ephemeris

import (
	"github.com/stellarcore/ephemeris/coord"
	"github.com/stellarcore/ephemeris/star"
)

var userStars [8]*star.Star

// DefineStar assigns catalog data (J2000 RA/Dec, parallax, proper motion,
// radial velocity) to one of the eight fixed star slots (Star1..Star8), so
// it can be passed to GeoVector/HelioVector/Horizon like any other Body.
func DefineStar(slot Body, raHours, decDeg, parallaxMas, pmRAMasPerYear, pmDecMasPerYear, radialKmPerS float64) Status {
	if !IsStarSlot(slot) {
		return InvalidBody
	}
	userStars[slot-Star1] = &star.Star{
		RAHours: raHours, DecDeg: decDeg, ParallaxMas: parallaxMas,
		RAMasPerYear: pmRAMasPerYear, DecMasPerYear: pmDecMasPerYear,
		RadialKmPerS: radialKmPerS, Epoch: j2000JD,
	}
	return Success
}

// StarEquatorB1950 converts a defined star's J2000 RA/Dec into the mean
// equator and equinox of B1950 (FK4), for cross-referencing against
// catalogs published before the IAU's 1976/1980 switch to J2000.
func StarEquatorB1950(slot Body) (raHours, decDeg float64, status Status) {
	if !IsStarSlot(slot) {
		return 0, 0, InvalidBody
	}
	s := userStars[slot-Star1]
	if s == nil {
		return 0, 0, InvalidBody
	}
	x, y, z := coord.RADecToICRF(s.RAHours, s.DecDeg)
	lat, lon := coord.B1950.LatLon([3]float64{x, y, z})
	return lon / 15.0, lat, Success
}

// StarGalacticLongitude returns a defined star's Galactic latitude and
// longitude in degrees, for placing it relative to the Milky Way's disk and
// center rather than the equatorial grid.
func StarGalacticLongitude(slot Body) (latDeg, lonDeg float64, status Status) {
	if !IsStarSlot(slot) {
		return 0, 0, InvalidBody
	}
	s := userStars[slot-Star1]
	if s == nil {
		return 0, 0, InvalidBody
	}
	x, y, z := coord.RADecToICRF(s.RAHours, s.DecDeg)
	latDeg, lonDeg = coord.Galactic.LatLon([3]float64{x, y, z})
	return latDeg, lonDeg, Success
}

// galacticCenterICRF exposes the Galactic Center's fixed ICRF unit vector,
// grounded on star.GalacticCenterICRF's J2000 position of Sgr A*.
// Used by tests to cross-check that coord.Galactic places it near (0, 0).
func galacticCenterICRF() [3]float64 {
	x, y, z := star.GalacticCenterICRF()
	return [3]float64{x, y, z}
}

// starGeoVector returns a user-defined star's geocentric position, EQJ, AU.
func starGeoVector(slot Body, t Time) (Vector, Status) {
	s := userStars[slot-Star1]
	if s == nil {
		return Vector{}, InvalidBody
	}
	au := s.PositionAU(t.TtJD())
	return Vector{X: au[0], Y: au[1], Z: au[2], T: t}, Success
}
