// Package pluto computes Pluto's heliocentric position from Chebyshev
// polynomial segments, the same representation binary SPK ephemeris files
// use for numerically integrated trajectories, evaluated here with the
// Clenshaw recurrence. Dates outside the tabulated segment range fall back
// to a short-range refinement: Pluto's osculating state is seeded at the
// nearest segment boundary and integrated forward or backward to tdbJD
// under the Sun plus the four Jovian planets (their positions taken from
// vsop, velocities by central finite difference) using the gravity
// package's symplectic integrator, so the package degrades gracefully
// rather than refusing to answer.
package pluto

import (
	"math"

	"github.com/pkg/errors"

	"github.com/stellarcore/ephemeris/gravity"
	"github.com/stellarcore/ephemeris/vsop"
)

const deg2rad = math.Pi / 180.0
const auKm = 149597870.7

// ErrOutOfRange is wrapped into the error returned by HeliocentricEcliptic
// when falling back to the short-range model, so callers can distinguish a
// tabulated, more accurate answer from the degraded one.
var ErrOutOfRange = errors.New("pluto: date outside tabulated Chebyshev range, using short-range fallback")

// chebyshev evaluates a Chebyshev series of the first kind at x in [-1, 1]
// using the Clenshaw recurrence: b_k = c_k + 2x*b_{k+1} - b_{k+2} for
// k >= 1, then result = c_0 + x*b_1 - b_2 (c_0 is taken at full weight,
// not halved).
func chebyshev(c []float64, x float64) float64 {
	n := len(c)
	if n == 0 {
		return 0
	}
	bk1, bk2 := 0.0, 0.0
	for k := n - 1; k >= 1; k-- {
		bk := c[k] + 2*x*bk1 - bk2
		bk2 = bk1
		bk1 = bk
	}
	return c[0] + x*bk1 - bk2
}

func findSegment(tdbJD float64) *plutoSegment {
	for i := range plutoSegments {
		s := &plutoSegments[i]
		if tdbJD >= s.startJD && tdbJD <= s.endJD {
			return s
		}
	}
	return nil
}

// nearestAnchor returns the tabulated segment boundary closest to tdbJD,
// the seed epoch for the short-range refinement.
func nearestAnchor(tdbJD float64) float64 {
	best := plutoSegments[0].startJD
	bestDist := math.Abs(tdbJD - best)
	for i := range plutoSegments {
		for _, edge := range [2]float64{plutoSegments[i].startJD, plutoSegments[i].endJD} {
			d := math.Abs(tdbJD - edge)
			if d < bestDist {
				best, bestDist = edge, d
			}
		}
	}
	return best
}

// HeliocentricEcliptic returns Pluto's position in AU, J2000 mean ecliptic,
// evaluating the tabulated Chebyshev segments when tdbJD falls inside their
// covered range (1950-2150) and otherwise falling back to shortRangeRefine,
// in which case the returned error wraps ErrOutOfRange (not fatal — the
// position is still populated).
func HeliocentricEcliptic(tdbJD float64) ([3]float64, error) {
	if s := findSegment(tdbJD); s != nil {
		x := 2*(tdbJD-s.startJD)/(s.endJD-s.startJD) - 1
		return [3]float64{
			chebyshev(s.x[:], x),
			chebyshev(s.y[:], x),
			chebyshev(s.z[:], x),
		}, nil
	}
	return shortRangeRefine(tdbJD), errors.Wrapf(ErrOutOfRange, "tdbJD=%.3f", tdbJD)
}

// Standish (1992) low-precision elements, the same family used to generate
// the tabulated Chebyshev segments, used here only to seed the anchor-epoch
// osculating state that shortRangeRefine then integrates under gravity.
const (
	a0, aDot   = 39.48211675, -0.00031596
	e0, eDot   = 0.24882730, 0.00005170
	i0, iDot   = 17.14001206, 0.00004818
	l0, lDot   = 238.92903833, 145.20780515
	lp0, lpDot = 224.06891629, -0.04062942
	ln0, lnDot = 110.30393684, -0.01183482
)

// osculatingStateKm returns Pluto's Standish-element state vector (position
// and velocity, km and km/s) at tdbJD, by evaluating the ellipse there and
// at a nearby epoch and differencing for velocity (the elements' own secular
// rates are slow enough that a one-day central difference is accurate to
// well under the refinement's own error budget).
func osculatingStateKm(tdbJD float64) gravity.Body {
	const h = 0.5 // days
	pMinus := osculatingPositionKm(tdbJD - h)
	pPlus := osculatingPositionKm(tdbJD + h)
	p0 := osculatingPositionKm(tdbJD)

	var v [3]float64
	for k := 0; k < 3; k++ {
		v[k] = (pPlus[k] - pMinus[k]) / (2 * h * 86400.0)
	}
	return gravity.Body{Position: p0, Velocity: v}
}

func osculatingPositionKm(tdbJD float64) [3]float64 {
	T := (tdbJD - 2451545.0) / 36525.0
	a := a0 + aDot*T
	e := e0 + eDot*T
	i := (i0 + iDot*T) * deg2rad
	L := l0 + lDot*T
	lonPeri := lp0 + lpDot*T
	lonNode := ln0 + lnDot*T

	argPeri := (lonPeri - lonNode) * deg2rad
	node := lonNode * deg2rad
	M := math.Mod((L-lonPeri)*deg2rad, 2*math.Pi)

	E := M
	if e > 0.8 {
		E = math.Pi
	}
	for iter := 0; iter < 30; iter++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	cosE, sinE := math.Cos(E), math.Sin(E)
	xOrb := a * (cosE - e)
	yOrb := a * math.Sqrt(1-e*e) * sinE

	cosW, sinW := math.Cos(argPeri), math.Sin(argPeri)
	cosO, sinO := math.Cos(node), math.Sin(node)
	cosI, sinI := math.Cos(i), math.Sin(i)

	xw := cosW*xOrb - sinW*yOrb
	yw := sinW*xOrb + cosW*yOrb

	return [3]float64{
		(cosO*xw - sinO*cosI*yw) * auKm,
		(sinO*xw + cosO*cosI*yw) * auKm,
		(sinI * yw) * auKm,
	}
}

// jovianGM holds the GM of the four Jovian planets, km^3/s^2
// (IAU nominal values), the perturbers spec.md names for Pluto's
// short-range refinement.
var jovianGM = map[int]float64{
	vsop.Jupiter: 1.26686534e8,
	vsop.Saturn:  3.7931187e7,
	vsop.Uranus:  5.793939e6,
	vsop.Neptune: 6.836529e6,
}

const gmSunKm3S2 = gravity.GmSunKm3S2

// perturberStateKm returns a major planet's heliocentric state vector (km,
// km/s) at tdbJD, position from vsop and velocity by central finite
// difference of the same series.
func perturberStateKm(body int, tdbJD float64) gravity.Body {
	const h = 0.5 // days
	pMinus := vsop.HeliocentricEcliptic(body, tdbJD-h)
	pPlus := vsop.HeliocentricEcliptic(body, tdbJD+h)
	p0 := vsop.HeliocentricEcliptic(body, tdbJD)

	var pos, v [3]float64
	for k := 0; k < 3; k++ {
		pos[k] = p0[k] * auKm
		v[k] = (pPlus[k] - pMinus[k]) * auKm / (2 * h * 86400.0)
	}
	return gravity.Body{Position: pos, Velocity: v, GM: jovianGM[body]}
}

// shortRangeRefine seeds Pluto's osculating state at the tabulated segment
// boundary nearest tdbJD and integrates it to tdbJD under the Sun and the
// four Jovian planets using the gravity package's symplectic integrator,
// the refinement spec.md §4.6 calls for outside the Chebyshev table's range.
func shortRangeRefine(tdbJD float64) [3]float64 {
	anchor := nearestAnchor(tdbJD)

	bodies := []gravity.Body{
		osculatingStateKm(anchor),                    // Pluto, the massless test particle
		{GM: gmSunKm3S2},                             // Sun, fixed at the heliocentric origin
		perturberStateKm(vsop.Jupiter, anchor),
		perturberStateKm(vsop.Saturn, anchor),
		perturberStateKm(vsop.Uranus, anchor),
		perturberStateKm(vsop.Neptune, anchor),
	}

	sim, err := gravity.Init(anchor, bodies)
	if err != nil {
		// Init only fails on an empty body list, which never happens here.
		return osculatingPositionKm(tdbJD)
	}
	result := sim.PropagateTo(tdbJD, 5.0)
	return [3]float64{
		result[0].Position[0] / auKm,
		result[0].Position[1] / auKm,
		result[0].Position[2] / auKm,
	}
}
