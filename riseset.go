package ephemeris

import "github.com/stellarcore/ephemeris/search"

// TwilightLevel names a band of Sun altitude used to classify daylight
// state, per the conventional astronomical/nautical/civil twilight
// boundaries.
type TwilightLevel int

const (
	Night TwilightLevel = iota
	AstronomicalTwilight
	NauticalTwilight
	CivilTwilight
	Daylight
)

// sunAltitudeThreshold is the standard sunrise/sunset altitude:
// -50 arcminutes (16' solar radius + 34' refraction).
const sunAltitudeThreshold = -0.8333

// TwilightTransitions finds the times the Sun's altitude at obs crosses a
// twilight boundary within [startUt, startUt+limitDays].
func TwilightTransitions(obs Observer, startUt, limitDays float64) ([]search.DiscreteEvent, Status) {
	f := func(ut float64) int {
		alt := altitudeOf(Sun, TimeFromDays(ut), obs)
		switch {
		case alt >= sunAltitudeThreshold:
			return int(Daylight)
		case alt >= -6.0:
			return int(CivilTwilight)
		case alt >= -12.0:
			return int(NauticalTwilight)
		case alt >= -18.0:
			return int(AstronomicalTwilight)
		default:
			return int(Night)
		}
	}
	events, err := search.FindDiscrete(startUt, startUt+limitDays, 0.01, f, 0)
	if err != nil {
		return nil, SearchFailure
	}
	return events, Success
}

// Direction selects which horizon crossing SearchRiseSet looks for.
type Direction int

const (
	Rising Direction = iota
	Setting
)

// altitudeOf returns body's topocentric altitude in degrees for obs at time
// t, corrected for light-time but not stellar aberration (aberration has
// negligible effect on a rise/set time).
func altitudeOf(body Body, t Time, obs Observer) float64 {
	geo, status := GeoVector(body, t, None)
	if status != Success {
		return -90
	}
	alt, _, _ := Horizon(t, obs, geo, NoRefraction)
	return alt
}

// SearchRiseSet finds the next time after startUt that body crosses the
// horizon (altitude 0, ignoring refraction and body radius) in the given
// direction, searching no further than limitDays ahead.
func SearchRiseSet(body Body, obs Observer, dir Direction, startUt, limitDays float64) (Time, Status) {
	const stepDays = 1.0 / 24.0 // hourly sampling resolves diurnal crossings
	f := func(ut float64) float64 { return altitudeOf(body, TimeFromDays(ut), obs) }
	if dir == Setting {
		neg := f
		f = func(ut float64) float64 { return -neg(ut) }
	}
	root, err := search.FindAscent(startUt, startUt+limitDays, stepDays, 0, f, 0)
	if err != nil {
		return Time{}, SearchFailure
	}
	return TimeFromDays(root), Success
}

// SearchAltitude finds the next time after startUt that body crosses the
// given altitude threshold (degrees) while ascending, within limitDays.
func SearchAltitude(body Body, obs Observer, thresholdDeg, startUt, limitDays float64) (Time, Status) {
	const stepDays = 1.0 / 24.0
	f := func(ut float64) float64 { return altitudeOf(body, TimeFromDays(ut), obs) }
	root, err := search.FindAscent(startUt, startUt+limitDays, stepDays, thresholdDeg, f, 0)
	if err != nil {
		return Time{}, SearchFailure
	}
	return TimeFromDays(root), Success
}

// SearchHourAngle finds the next time after startUt that body's local hour
// angle (as seen from obs) equals targetHours, within limitDays. An hour
// angle of 0 is upper transit (culmination).
func SearchHourAngle(body Body, obs Observer, targetHours, startUt, limitDays float64) (Time, Status) {
	f := func(ut float64) float64 {
		t := TimeFromDays(ut)
		geo, status := GeoVector(body, t, None)
		if status != Success {
			return 0
		}
		eqd := RotateVector(Rotation_EQJ_EQD(t), geo)
		ra, _ := EquatorFromVector(eqd)
		gast := t.GAST()
		lst := gast + obs.LongitudeDeg
		ha := lst/15.0 - ra
		for ha < -12 {
			ha += 24
		}
		for ha > 12 {
			ha -= 24
		}
		return ha - targetHours
	}
	const stepDays = 1.0 / 24.0
	prev := startUt
	fPrev := f(prev)
	for cur := startUt + stepDays; cur <= startUt+limitDays; cur += stepDays {
		fCur := f(cur)
		if (fPrev <= 0 && fCur > 0) || (fPrev < 0 && fCur >= 0) {
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
