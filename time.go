package ephemeris

import (
	"fmt"
	"math"

	"github.com/stellarcore/ephemeris/coord"
)

// Time represents an instant, carrying both the UT and TT Julian dates
// counted from J2000.0 (2000-01-01 12:00 TT). ΔT = TT − UT is evaluated
// once at construction and sidereal time (GAST) is memoized on first use,
// since a single Time value is typically consulted by
// several downstream computations (position, horizon coordinates, sidereal
// time) in the course of one call.
type Time struct {
	ut float64 // days since J2000.0, UT
	tt float64 // days since J2000.0, TT

	sidereal *float64 // GAST, degrees, memoized
}

const j2000JD = 2451545.0

// TimeFromDays constructs a Time from a UT offset in days since J2000.0.
func TimeFromDays(ut float64) Time {
	tt := ut + deltaTDays(ut)
	return Time{ut: ut, tt: tt}
}

// MakeTime constructs a Time from a proleptic Gregorian calendar date and
// time of day (UT). Month and day follow the Gregorian convention
// extrapolated indefinitely backward and forward (no Julian-calendar
// switchover), matching the reference harness's documented behavior.
func MakeTime(year, month, day, hour, minute int, second float64) Time {
	jd := gregorianToJD(year, month, day) +
		(float64(hour)-12.0)/24.0 + float64(minute)/1440.0 + second/86400.0
	return TimeFromDays(jd - j2000JD)
}

func gregorianToJD(year, month, day int) float64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return float64(jdn)
}

// Ut returns the UT offset in days since J2000.0.
func (t Time) Ut() float64 { return t.ut }

// Tt returns the TT offset in days since J2000.0 (equivalently, the TDB
// Julian day minus j2000JD to within a few milliseconds, well under this
// module's accuracy floor).
func (t Time) Tt() float64 { return t.tt }

// TtJD returns the TT Julian date, the argument every numeric subpackage in
// this module takes.
func (t Time) TtJD() float64 { return t.tt + j2000JD }

// UtJD returns the UT Julian date.
func (t Time) UtJD() float64 { return t.ut + j2000JD }

// AddDays returns a new Time offset by the given number of days (UT).
func (t Time) AddDays(days float64) Time {
	return TimeFromDays(t.ut + days)
}

// deltaTDays returns ΔT = TT − UT in days, from the Espenak & Meeus (2006)
// piecewise polynomial approximation: its branches for 1986-2150, its
// long-term parabola after 2150, and a flat value before 1986 (the
// polynomials diverge quickly past their fit intervals).
func deltaTDays(ut float64) float64 {
	year := 2000.0 + ut/365.25
	var deltaTSec float64
	switch {
	case year < 1986:
		// Flat at the 1986 value; pre-1986 users are outside this module's
		// stated accuracy target anyway.
		deltaTSec = 54.87
	case year < 2005:
		t := year - 2000.0
		deltaTSec = 63.86 + 0.3345*t - 0.060374*t*t + 0.0017275*t*t*t +
			0.000651814*t*t*t*t + 0.00002373599*t*t*t*t*t
	case year < 2050:
		t := year - 2000.0
		deltaTSec = 62.92 + 0.32217*t + 0.005589*t*t
	case year < 2150:
		u := (year - 1820.0) / 100.0
		deltaTSec = -20.0 + 32.0*u*u - 0.5628*(2150.0-year)
	default:
		u := (year - 1820.0) / 100.0
		deltaTSec = -20.0 + 32.0*u*u
	}
	return deltaTSec / 86400.0
}

// julianCenturiesTT returns T, Julian centuries of TT since J2000.0.
func (t Time) julianCenturiesTT() float64 {
	return t.tt / 36525.0
}

// EquationOfEquinoxesDeg returns GAST − GMST in degrees: nutation's
// contribution to sidereal time. coord's own nutation series is private, so
// rotation.go recovers the equivalent rotation directly from GAST rather
// than duplicating the Delaunay-argument series here.
func (t *Time) EquationOfEquinoxesDeg() float64 {
	return math.Mod(t.GAST()-coord.GMST(t.UtJD())+540, 360) - 180
}

// GAST returns Greenwich Apparent Sidereal Time in degrees, memoized.
func (t *Time) GAST() float64 {
	if t.sidereal == nil {
		v := coord.GAST(t.UtJD())
		t.sidereal = &v
	}
	return *t.sidereal
}

// FormatTime renders t as an ISO-8601-like UTC string with the seconds
// rounded half-to-even to the given number of fractional digits; a carry
// from that rounding propagates into the minutes, hours and date.
func FormatTime(t Time, secondsDecimals int) string {
	jd := t.UtJD() + 0.5
	z := math.Floor(jd)
	f := jd - z

	var a float64
	if z < 2299161 {
		a = z
	} else {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	dayFrac := b - d - math.Floor(30.6001*e) + f
	day := int(dayFrac)
	var month int
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	var year int
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}

	secOfDay := (dayFrac - float64(day)) * 86400.0
	scale := math.Pow(10, float64(secondsDecimals))
	secOfDay = roundHalfToEven(secOfDay*scale) / scale
	if secOfDay >= 86400 {
		// Rounded up to the next midnight: format that instant instead.
		return FormatTime(TimeFromDays(z+0.5-j2000JD), secondsDecimals)
	}

	hour := int(secOfDay / 3600)
	minute := int(math.Mod(secOfDay, 3600) / 60)
	second := math.Mod(secOfDay, 60)

	if secondsDecimals <= 0 {
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", year, month, day, hour, minute, int(second))
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%0*.*fZ", year, month, day, hour, minute,
		secondsDecimals+3, secondsDecimals, second)
}

func roundHalfToEven(x float64) float64 {
	floor := math.Floor(x)
	diff := x - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			return floor
		}
		return floor + 1
	}
}
