package ephemeris

import "github.com/stellarcore/ephemeris/search"

// ApsisKind distinguishes perigee/perihelion from apogee/aphelion.
type ApsisKind int

const (
	Pericenter ApsisKind = iota
	Apocenter
)

// Apsis is a time of closest or farthest approach and the associated
// distance in AU.
type Apsis struct {
	T        Time
	Kind     ApsisKind
	Distance float64
}

// SearchLunarApsis finds the first lunar perigee or apogee after t.
func SearchLunarApsis(t Time) (Apsis, Status) {
	f := func(ut float64) float64 {
		v, _ := GeoVector(Moon, TimeFromDays(ut), None)
		return v.Length()
	}
	const stepDays = 3.0
	const searchSpan = 40.0 // a lunar month plus margin
	minima, errMin := search.FindMinima(t.Ut(), t.Ut()+searchSpan, stepDays, f, 0)
	maxima, errMax := search.FindMaxima(t.Ut(), t.Ut()+searchSpan, stepDays, f, 0)
	if errMin != nil || errMax != nil {
		return Apsis{}, SearchFailure
	}
	return earliestApsis(t, minima, maxima)
}

// NextLunarApsis finds the lunar apsis following a previously found one,
// alternating perigee and apogee roughly every anomalistic half-month.
func NextLunarApsis(prev Apsis) (Apsis, Status) {
	const gapDays = 1.0
	next, status := SearchLunarApsis(prev.T.AddDays(gapDays))
	if status == Success && next.Kind == prev.Kind {
		// A degenerate bracket found the same apsis again; push past it.
		next, status = SearchLunarApsis(prev.T.AddDays(gapDays * 10))
	}
	return next, status
}

// SearchPlanetApsis finds the first perihelion or aphelion of body after t.
func SearchPlanetApsis(body Body, t Time) (Apsis, Status) {
	f := func(ut float64) float64 {
		d, _ := HelioDistance(body, TimeFromDays(ut))
		return d
	}
	period := PlanetOrbitalPeriod(body)
	if period <= 0 {
		return Apsis{}, InvalidBody
	}
	step := period / 60.0
	minima, errMin := search.FindMinima(t.Ut(), t.Ut()+period*1.1, step, f, 0)
	maxima, errMax := search.FindMaxima(t.Ut(), t.Ut()+period*1.1, step, f, 0)
	if errMin != nil || errMax != nil {
		return Apsis{}, SearchFailure
	}
	return earliestApsis(t, minima, maxima)
}

// NextPlanetApsis finds body's apsis following a previously found one,
// alternating perihelion and aphelion roughly every half orbital period.
func NextPlanetApsis(body Body, prev Apsis) (Apsis, Status) {
	const gapFraction = 1.0 / 60.0
	period := PlanetOrbitalPeriod(body)
	if period <= 0 {
		return Apsis{}, InvalidBody
	}
	next, status := SearchPlanetApsis(body, prev.T.AddDays(period*gapFraction))
	if status == Success && next.Kind == prev.Kind {
		next, status = SearchPlanetApsis(body, prev.T.AddDays(period*0.3))
	}
	return next, status
}

func earliestApsis(t Time, minima, maxima []search.Extremum) (Apsis, Status) {
	var best *search.Extremum
	var kind ApsisKind
	for i := range minima {
		if minima[i].T > t.Ut() && (best == nil || minima[i].T < best.T) {
			best, kind = &minima[i], Pericenter
		}
	}
	for i := range maxima {
		if maxima[i].T > t.Ut() && (best == nil || maxima[i].T < best.T) {
			best, kind = &maxima[i], Apocenter
		}
	}
	if best == nil {
		return Apsis{}, SearchFailure
	}
	return Apsis{T: TimeFromDays(best.T), Kind: kind, Distance: best.Value}, Success
}
