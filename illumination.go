package ephemeris

import (
	"math"

	"github.com/stellarcore/ephemeris/coord"
	"github.com/stellarcore/ephemeris/magnitude"
	"github.com/stellarcore/ephemeris/search"
)

// naifID maps a Body to the NAIF planet barycenter ID magnitude expects.
var naifID = map[Body]int{
	Mercury: 1, Venus: 2, Earth: 3, Mars: 4,
	Jupiter: 5, Saturn: 6, Uranus: 7, Neptune: 8,
}

// IlluminationInfo bundles the phase geometry and brightness of a body as
// seen from Earth at a given time.
type IlluminationInfo struct {
	T               Time
	Magnitude       float64
	PhaseAngleDeg   float64
	PhaseFraction   float64
	HelioDistanceAU float64
	GeoDistanceAU   float64
}

// Illumination computes a planet's phase geometry and visual magnitude at
// time t. The Moon and Sun are not supported here (the Moon's phase curve
// differs from the Mallama & Hilton planetary model, and the Sun has no
// phase); use MoonPhase and MoonMagnitude for the Moon.
func Illumination(body Body, t Time) (IlluminationInfo, Status) {
	id, ok := naifID[body]
	if !ok {
		return IlluminationInfo{}, InvalidBody
	}
	helio, status := HelioVector(body, t)
	if status != Success {
		return IlluminationInfo{}, status
	}
	geo, status := GeoVector(body, t, Corrected)
	if status != Success {
		return IlluminationInfo{}, status
	}
	sunToPlanet := helio.array()
	earthHelio := earthHelioVectorEQJ(t)
	obsToPlanet := [3]float64{
		helio.X - earthHelio.X, helio.Y - earthHelio.Y, helio.Z - earthHelio.Z,
	}
	year := 2000.0 + (t.TtJD()-2451545.0)/365.25
	mag := magnitude.PlanetaryMagnitudeWithGeometry(id, sunToPlanet, obsToPlanet, year)
	phaseAngle := coord.PhaseAngle(obsToPlanet, sunToPlanet)
	return IlluminationInfo{
		T: t, Magnitude: mag, PhaseAngleDeg: phaseAngle,
		PhaseFraction:   coord.FractionIlluminated(phaseAngle),
		HelioDistanceAU: helio.Length(), GeoDistanceAU: geo.Length(),
	}, Success
}

// PlanetaryMagnitudeFromPhase computes a planet's visual magnitude directly
// from its Sun-planet-observer phase angle and distances, for callers that
// already have those scalars (e.g. from an external orbit solution) rather
// than full position vectors. Saturn and Uranus, whose curves also depend on
// ring/pole sub-latitude, fall back to their equator-on case here; use
// Illumination for their full geometry-aware magnitude.
func PlanetaryMagnitudeFromPhase(body Body, phaseAngleDeg, helioDistanceAU, geoDistanceAU float64) (float64, Status) {
	id, ok := naifID[body]
	if !ok {
		return 0, InvalidBody
	}
	return magnitude.PlanetaryMagnitude(id, phaseAngleDeg, helioDistanceAU, geoDistanceAU), Success
}

// MoonMagnitude approximates the Moon's visual magnitude from its phase
// angle (degrees), using Allen's classic empirical formula rather than the
// planetary Mallama & Hilton curves (the Moon's regolith phase function is
// markedly non-Lambertian near full phase and isn't covered by them).
func MoonMagnitude(phaseAngleDeg, distanceAU float64) float64 {
	const meanDistanceAU = 384400.0 / 1.495978707e8
	baseline := -12.7
	phaseTerm := 0.026*phaseAngleDeg + 4e-9*phaseAngleDeg*phaseAngleDeg*phaseAngleDeg*phaseAngleDeg
	distTerm := 5 * math.Log10(distanceAU/meanDistanceAU)
	return baseline + phaseTerm + distTerm
}

// SearchPeakMagnitude finds the first time in [startUt, startUt+limitDays]
// at which body (Mercury or Venus, whose brightness varies non-monotonically
// with elongation) passes through a peak in brightness (a local minimum of
// apparent magnitude). Later peaks in the window are not compared with it.
func SearchPeakMagnitude(body Body, startUt, limitDays float64) (Time, float64, Status) {
	f := func(ut float64) float64 {
		info, status := Illumination(body, TimeFromDays(ut))
		if status != Success {
			return 1e9
		}
		return -info.Magnitude // brighter = more negative magnitude = larger -mag
	}
	const stepDays = 1.0
	extrema, err := search.FindMaxima(startUt, startUt+limitDays, stepDays, f, 0)
	if err != nil || len(extrema) == 0 {
		return Time{}, 0, SearchFailure
	}
	return TimeFromDays(extrema[0].T), -extrema[0].Value, Success
}
