package ephemeris

import "strings"

// Body identifies a celestial object the engine can compute a position for.
type Body int

// Defined bodies. Star1..Star8 are empty slots until populated by DefineStar.
const (
	Invalid Body = iota - 1
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Sun
	Moon
	EMB // Earth-Moon barycenter
	SSB // Solar System barycenter
	Star1
	Star2
	Star3
	Star4
	Star5
	Star6
	Star7
	Star8
)

var bodyNames = map[Body]string{
	Mercury: "Mercury", Venus: "Venus", Earth: "Earth", Mars: "Mars",
	Jupiter: "Jupiter", Saturn: "Saturn", Uranus: "Uranus", Neptune: "Neptune",
	Pluto: "Pluto", Sun: "Sun", Moon: "Moon", EMB: "EMB", SSB: "SSB",
	Star1: "Star1", Star2: "Star2", Star3: "Star3", Star4: "Star4",
	Star5: "Star5", Star6: "Star6", Star7: "Star7", Star8: "Star8",
}

// BodyName returns a body's canonical name, or "" for Invalid or an unknown
// value.
func BodyName(b Body) string {
	return bodyNames[b]
}

// BodyCode returns the Body whose name matches s case-insensitively, or
// Invalid if no body matches. It never panics on unrecognized input.
func BodyCode(s string) Body {
	for b, name := range bodyNames {
		if strings.EqualFold(name, s) {
			return b
		}
	}
	return Invalid
}

// IsStarSlot reports whether b names one of the eight user-definable fixed
// star slots.
func IsStarSlot(b Body) bool {
	return b >= Star1 && b <= Star8
}

// gmKm3S2 holds each body's gravitational parameter (GM), km^3/s^2, from
// DE-series-consistent published values (IAU/JPL). Used for barycentric
// corrections and the gravity simulator.
var gmKm3S2 = map[Body]float64{
	Sun:     132712440018.0,
	Mercury: 22031.86855,
	Venus:   324858.592,
	Earth:   398600.435507,
	Moon:    4902.800118,
	Mars:    42828.375816,
	Jupiter: 126712764.0,
	Saturn:  37940584.8418,
	Uranus:  5794556.4,
	Neptune: 6836527.10058,
	Pluto:   975.500,
}

// MassProduct returns a body's gravitational parameter GM in km^3/s^2, or 0
// if b has no defined mass (barycenters, stars, Invalid).
func MassProduct(b Body) float64 {
	return gmKm3S2[b]
}

// orbitalPeriodDays holds each planet's sidereal orbital period around the
// Sun, used by PlanetOrbitalPeriod and as a search-step heuristic for
// opposition/conjunction and apsis searches.
var orbitalPeriodDays = map[Body]float64{
	Mercury: 87.9691,
	Venus:   224.701,
	Earth:   365.256,
	Mars:    686.980,
	Jupiter: 4332.589,
	Saturn:  10759.22,
	Uranus:  30685.4,
	Neptune: 60189.0,
	Pluto:   90560.0,
}

// PlanetOrbitalPeriod returns a planet's sidereal orbital period in days, or
// 0 for a body this isn't defined for.
func PlanetOrbitalPeriod(b Body) float64 {
	return orbitalPeriodDays[b]
}
