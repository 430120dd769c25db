package ephemeris

import "github.com/stellarcore/ephemeris/constellation"

// Constellation identifies the IAU constellation containing a body's
// apparent position at time t. constellation.At expects coordinates of the
// standard B1875 boundary epoch; the body's equator-of-date RA/Dec are passed
// to it directly, and the precession offset this introduces only matters
// near a boundary.
func Constellation(body Body, t Time) (abbreviation, name string, status Status) {
	geo, st := GeoVector(body, t, Corrected)
	if st != Success {
		return "", "", st
	}
	eqd := RotateVector(Rotation_EQJ_EQD(t), geo)
	raHours, decDeg := EquatorFromVector(eqd)
	abbr := constellation.At(raHours, decDeg)
	return abbr, constellation.Name(abbr), Success
}

// ConstellationByName looks up the IAU abbreviation for a constellation given
// its full name (e.g. "Orion" -> "Ori"), for callers that have a name from a
// catalog or user input rather than a sky position. Returns InvalidBody if
// the name is not one of the 88 IAU constellations.
func ConstellationByName(name string) (abbreviation string, status Status) {
	abbr := constellation.Abbreviation(name)
	if abbr == "" {
		return "", InvalidBody
	}
	return abbr, Success
}

// ConstellationNames returns all 88 IAU constellation abbreviation/name
// pairs, for populating a catalog or a user-facing picker.
func ConstellationNames() [][2]string {
	return constellation.Names()
}
