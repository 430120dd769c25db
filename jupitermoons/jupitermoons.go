// Package jupitermoons computes the positions of the four Galilean moons of
// Jupiter (Io, Europa, Ganymede, Callisto) relative to Jupiter, from a
// truncated analytic theory in the spirit of Lieske's E5 series (and
// Meeus's E2x3 abridgement of it, Astronomical Algorithms ch. 44): each
// moon's osculating ellipse precesses (node regressing, pericenter
// advancing, both driven by Jupiter's oblateness) and the three inner
// moons carry one additional periodic term in mean longitude for the
// Laplace libration, the dominant mutual-perturbation signature of their
// 1:2:4 orbital resonance. This is a small truncation of the real E5/E2x3
// term count, not the full multi-term series.
package jupitermoons

import "math"

const deg2rad = math.Pi / 180.0

// Moon indices, in order of increasing distance from Jupiter.
const (
	Io = iota
	Europa
	Ganymede
	Callisto
	NumMoons
)

type moonElements struct {
	periodDays       float64 // sidereal orbital period
	semiMajorKm      float64 // semi-major axis, km
	eccentricity     float64
	meanLon0Deg      float64 // mean longitude at J2000 epoch
	inclDeg          float64 // inclination to Jupiter's equatorial plane
	node0Deg         float64 // longitude of ascending node at J2000 epoch
	nodeDotDegPerDay float64 // nodal regression rate
	peri0Deg         float64 // argument of pericenter at J2000 epoch
	periDotDegPerDay float64 // apsidal precession rate
	libAmpDeg        float64 // Laplace-libration amplitude in mean longitude
	libPeriodDays    float64 // Laplace-libration period (0 if not resonant)
}

// libration period of the Io-Europa-Ganymede 1:2:4 resonance, shared by all
// three resonant moons (the "free libration" of the Laplace angle).
const laplaceLibrationDays = 2071.9

var moons = [NumMoons]moonElements{
	Io: {
		periodDays: 1.769138, semiMajorKm: 421800, eccentricity: 0.0041,
		meanLon0Deg: 342.21, inclDeg: 0.040,
		node0Deg: 43.98, nodeDotDegPerDay: -0.0130,
		peri0Deg: 84.12, periDotDegPerDay: 0.0139,
		libAmpDeg: 0.064, libPeriodDays: laplaceLibrationDays,
	},
	Europa: {
		periodDays: 3.551181, semiMajorKm: 671100, eccentricity: 0.0094,
		meanLon0Deg: 171.02, inclDeg: 0.470,
		node0Deg: 219.11, nodeDotDegPerDay: -0.0061,
		peri0Deg: 88.97, periDotDegPerDay: 0.0062,
		libAmpDeg: 0.030, libPeriodDays: laplaceLibrationDays,
	},
	Ganymede: {
		periodDays: 7.154553, semiMajorKm: 1070400, eccentricity: 0.0013,
		meanLon0Deg: 317.54, inclDeg: 0.204,
		node0Deg: 63.55, nodeDotDegPerDay: -0.0027,
		peri0Deg: 192.42, periDotDegPerDay: 0.0028,
		libAmpDeg: 0.015, libPeriodDays: laplaceLibrationDays,
	},
	Callisto: {
		periodDays: 16.689018, semiMajorKm: 1882700, eccentricity: 0.0074,
		meanLon0Deg: 181.41, inclDeg: 0.205,
		node0Deg: 298.85, nodeDotDegPerDay: -0.0009,
		peri0Deg: 52.64, periDotDegPerDay: 0.0009,
		libAmpDeg: 0, libPeriodDays: 0,
	},
}

// PositionKm returns the position of a Galilean moon relative to Jupiter's
// center, in km, in a frame aligned with Jupiter's equatorial plane at
// tdbJD (x toward the ascending node of that plane at J2000, z along the
// spin axis). The orbit's node and pericenter precess linearly with time;
// the three inner moons additionally carry the Laplace-libration term in
// mean longitude.
func PositionKm(moon int, tdbJD float64) [3]float64 {
	el := &moons[moon]
	daysSinceEpoch := tdbJD - 2451545.0

	meanLon := el.meanLon0Deg + 360.0*daysSinceEpoch/el.periodDays
	if el.libPeriodDays > 0 {
		meanLon += el.libAmpDeg * math.Cos(2*math.Pi*daysSinceEpoch/el.libPeriodDays)
	}
	peri := el.peri0Deg + el.periDotDegPerDay*daysSinceEpoch
	meanAnomaly := math.Mod((meanLon-peri)*deg2rad, 2*math.Pi)

	E := meanAnomaly
	for iter := 0; iter < 20; iter++ {
		dE := (E - el.eccentricity*math.Sin(E) - meanAnomaly) / (1 - el.eccentricity*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	cosE, sinE := math.Cos(E), math.Sin(E)
	xOrb := el.semiMajorKm * (cosE - el.eccentricity)
	yOrb := el.semiMajorKm * math.Sqrt(1-el.eccentricity*el.eccentricity) * sinE

	periRad := peri * deg2rad
	cosW, sinW := math.Cos(periRad), math.Sin(periRad)
	xw := cosW*xOrb - sinW*yOrb
	yw := sinW*xOrb + cosW*yOrb

	incl := el.inclDeg * deg2rad
	cosI, sinI := math.Cos(incl), math.Sin(incl)
	zi := yw * sinI
	yi := yw * cosI

	node := (el.node0Deg + el.nodeDotDegPerDay*daysSinceEpoch) * deg2rad
	cosO, sinO := math.Cos(node), math.Sin(node)

	return [3]float64{
		cosO*xw - sinO*yi,
		sinO*xw + cosO*yi,
		zi,
	}
}

// OrbitalPeriodDays returns a Galilean moon's sidereal orbital period.
func OrbitalPeriodDays(moon int) float64 {
	return moons[moon].periodDays
}
