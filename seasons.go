package ephemeris

import (
	"math"

	"github.com/stellarcore/ephemeris/coord"
	"github.com/stellarcore/ephemeris/search"
)

// sunEclipticLongitude returns the Sun's apparent geocentric ecliptic
// longitude of date in degrees at time t — Earth's heliocentric position
// reversed (the Sun seen from Earth is antipodal to it), rotated to the
// equator and then the ecliptic of date, less the ~20.5 arcsecond annual
// aberration.
func sunEclipticLongitude(t Time) float64 {
	earth := earthHelioVectorEQJ(t)
	sunGeo := vectorFromArray([3]float64{-earth.X, -earth.Y, -earth.Z}, t)
	ect := RotateVector(Rotation_EQD_ECT(t), RotateVector(Rotation_EQJ_EQD(t), sunGeo))
	return math.Mod(SphereFromVector(ect).Lon-20.4898/3600.0+360.0, 360.0)
}

// Season names the four equinox/solstice crossings Seasons searches for.
type Season int

const (
	MarchEquinox Season = iota
	JuneSolstice
	SeptemberEquinox
	DecemberSolstice
)

var seasonTargetDeg = map[Season]float64{
	MarchEquinox: 0, JuneSolstice: 90, SeptemberEquinox: 180, DecemberSolstice: 270,
}

// Seasons returns the four equinoxes/solstices of the given year, found by
// locating the Sun ecliptic-longitude crossings of 0/90/180/270 degrees.
func Seasons(year int) (map[Season]Time, Status) {
	out := make(map[Season]Time, 4)
	for season, target := range seasonTargetDeg {
		// Each crossing falls within the month starting 1 Mar/Jun/Sep/Dec,
		// where the wrapped longitude difference changes sign only once.
		start := MakeTime(year, 3*int(season)+3, 1, 0, 0, 0)
		end := start.AddDays(31)
		f := func(ut float64) float64 {
			lon := sunEclipticLongitude(TimeFromDays(ut))
			diff := math.Mod(lon-target+540, 360) - 180
			return diff
		}
		root, err := search.Search(start.Ut(), end.Ut(), f, 0)
		if err != nil {
			return nil, SearchFailure
		}
		out[season] = TimeFromDays(root)
	}
	return out, Success
}

// MoonPhase returns the Moon's ecliptic elongation from the Sun in degrees
// (0 = new moon, 90 = first quarter, 180 = full moon, 270 = last quarter).
func MoonPhase(t Time) float64 {
	moonVec := moonGeoVectorEQJ(t)
	moonEct := RotateVector(Rotation_EQD_ECT(t), RotateVector(Rotation_EQJ_EQD(t), moonVec))
	moonLon := SphereFromVector(moonEct).Lon
	sunLon := sunEclipticLongitude(t)
	return coord.Elongation(moonLon, sunLon)
}

// SearchMoonPhase searches for the next time on or after startUt that the
// Moon's phase angle equals targetDeg.
func SearchMoonPhase(startUt, targetDeg float64) (Time, Status) {
	f := func(ut float64) float64 {
		diff := math.Mod(MoonPhase(TimeFromDays(ut))-targetDeg+540, 360) - 180
		return diff
	}
	// The phase angle advances ~13 deg/day; scan forward in half-day steps
	// looking for the bracket, then refine.
	const stepDays = 0.5
	prev := startUt
	fPrev := f(prev)
	for i := 0; i < int(29.6/stepDays)+2; i++ {
		cur := startUt + float64(i+1)*stepDays
		fCur := f(cur)
		if (fPrev <= 0 && fCur > 0) || fPrev == 0 {
			root, err := search.Search(prev, cur, f, 0)
			if err != nil {
				return Time{}, SearchFailure
			}
			return TimeFromDays(root), Success
		}
		prev, fPrev = cur, fCur
	}
	return Time{}, SearchFailure
}

// MoonQuarter is a new moon, first quarter, full moon, or last quarter
// crossing (Quarter 0=new, 1=first, 2=full, 3=last).
type MoonQuarter struct {
	T       Time
	Quarter int
}

// SearchMoonQuarter returns the first new moon, first quarter, full moon, or
// last quarter after t.
func SearchMoonQuarter(t Time) (MoonQuarter, Status) {
	phase := MoonPhase(t)
	quarter := int(math.Floor(phase/90.0)+1) % 4
	target := float64(quarter) * 90.0
	result, status := SearchMoonPhase(t.Ut(), target)
	return MoonQuarter{T: result, Quarter: quarter}, status
}

// NextMoonQuarter returns the quarter following a previously found one,
// which is always the next quarter in sequence roughly a week later.
func NextMoonQuarter(prev MoonQuarter) (MoonQuarter, Status) {
	return SearchMoonQuarter(prev.T.AddDays(1.0))
}

// SearchMaxElongation finds the next time after startUt that body (Mercury
// or Venus) reaches greatest elongation from the Sun as seen from Earth,
// and returns the elongation angle in degrees.
func SearchMaxElongation(body Body, startUt float64) (Time, float64, Status) {
	f := func(ut float64) float64 {
		t := TimeFromDays(ut)
		geo, status := GeoVector(body, t, None)
		if status != Success {
			return 0
		}
		sunGeo, _ := GeoVector(Sun, t, None)
		return coord.SeparationAngle(geo.array(), sunGeo.array())
	}
	period := PlanetOrbitalPeriod(body)
	extrema, err := search.FindMaxima(startUt, startUt+period, period/60.0, f, 0)
	if err != nil || len(extrema) == 0 {
		return Time{}, 0, SearchFailure
	}
	return TimeFromDays(extrema[0].T), extrema[0].Value, Success
}

// SearchRelativeLongitude finds the next time after startUt that body's
// heliocentric ecliptic longitude differs from Earth's by targetDeg — the
// general search behind opposition (targetDeg=180) and conjunction
// (targetDeg=0) events.
func SearchRelativeLongitude(body Body, targetDeg, startUt float64) (Time, Status) {
	f := func(ut float64) float64 {
		t := TimeFromDays(ut)
		bodyVec, _ := HelioVector(body, t)
		earthVec, _ := HelioVector(Earth, t)
		_, bLon := coord.ICRFToEcliptic(bodyVec.X, bodyVec.Y, bodyVec.Z)
		_, eLon := coord.ICRFToEcliptic(earthVec.X, earthVec.Y, earthVec.Z)
		diff := math.Mod(bLon-eLon-targetDeg+540, 360) - 180
		return diff
	}
	period := PlanetOrbitalPeriod(body)
	// Steps stay short enough that the relative longitude moves well under
	// 180 degrees per step, so a sign change across the ±180 wrap can be
	// told apart from a real crossing.
	step := math.Min(period/60.0, 30.0)
	prev := startUt
	fPrev := f(prev)
	for cur := startUt + step; cur < startUt+period*1.5; cur += step {
		fCur := f(cur)
		if (fPrev <= 0) != (fCur <= 0) && math.Abs(fCur-fPrev) < 180 {
			root, err := search.Search(prev, cur, f, 0)
			if err != nil {
				return Time{}, SearchFailure
			}
			return TimeFromDays(root), Success
		}
		prev, fPrev = cur, fCur
	}
	return Time{}, SearchFailure
}
