package ephemeris

import "github.com/stellarcore/ephemeris/units"

// FormatRA renders a right ascension in hours as sexagesimal HMS text.
func FormatRA(raHours float64, decimals int) string {
	return units.AngleFromHours(raHours).FormatHMS(decimals)
}

// FormatDec renders a declination in degrees as sexagesimal DMS text.
func FormatDec(decDeg float64, decimals int) string {
	return units.AngleFromDegrees(decDeg).FormatDMS(decimals)
}

// FormatDistanceAU renders a distance given in AU as kilometers, for
// display contexts that prefer metric units.
func FormatDistanceAU(distanceAU float64) float64 {
	return units.DistanceFromAU(distanceAU).Km()
}
