package ephemeris

import "math"

// AxisInfo describes a planet's rotational pole direction and current spin
// angle at a given time.
type AxisInfo struct {
	T        Time
	RaHours  float64 // J2000 equatorial right ascension of the north pole
	DecDeg   float64 // J2000 equatorial declination of the north pole
	SpinDeg  float64 // rotation angle of the prime meridian, degrees
	NorthPole Vector // unit vector toward the north pole, EQJ
}

// poleElements holds the IAU (2015-epoch) linear model for a body's
// rotation axis direction and prime-meridian spin: RA and Dec of the pole
// (degrees, constant terms only — the small T-dependent terms in the full
// IAU report are below this module's precision target) and the spin rate.
type poleElements struct {
	ra0, dec0 float64 // degrees, J2000 equatorial
	w0, wdot  float64 // degrees, degrees/day (prime meridian at J2000 and its rate)
}

var poleTable = map[Body]poleElements{
	Mercury: {281.0103, 61.4155, 329.5988, 6.1385108},
	Venus:   {272.76, 67.16, 160.20, -1.4813688},
	Earth:   {0.00, 90.00, 190.147, 360.9856235},
	Mars:    {317.269, 54.432, 176.630, 350.89198226},
	Jupiter: {268.057, 64.495, 284.95, 870.5360000},
	Saturn:  {40.589, 83.537, 38.90, 810.7939024},
	Uranus:  {257.311, -15.175, 203.81, -501.1600928},
	Neptune: {299.36, 43.46, 253.18, 536.3128492},
	Pluto:   {132.993, -6.163, 302.695, 56.3625225},
}

// Axis returns the rotational pole direction and spin angle of body at
// time t, from the IAU's constant-term rotation model (Archinal et al.
// 2018 "Report of the IAU Working Group on Cartographic Coordinates").
// Secular and periodic pole-precession terms beyond the linear W rate are
// not modeled; for Jupiter, Saturn, Uranus and Neptune (whose poles precess
// measurably over centuries) this is accurate to within this module's
// stated precision only within a few decades of J2000.
func Axis(body Body, t Time) (AxisInfo, Status) {
	pole, ok := poleTable[body]
	if !ok {
		return AxisInfo{}, InvalidBody
	}
	d := t.TtJD() - 2451545.0
	spin := math.Mod(pole.w0+pole.wdot*d, 360.0)
	if spin < 0 {
		spin += 360.0
	}
	x, y, z := raDecToVector(pole.ra0/15.0, pole.dec0)
	return AxisInfo{
		T: t, RaHours: pole.ra0 / 15.0, DecDeg: pole.dec0, SpinDeg: spin,
		NorthPole: Vector{X: x, Y: y, Z: z, T: t},
	}, Success
}

func raDecToVector(raHours, decDeg float64) (x, y, z float64) {
	ra := raHours * 15.0 * deg2rad
	dec := decDeg * deg2rad
	return math.Cos(dec) * math.Cos(ra), math.Cos(dec) * math.Sin(ra), math.Sin(dec)
}
