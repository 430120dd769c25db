package ephemeris

import "github.com/stellarcore/ephemeris/search"

// NodeKind distinguishes the Moon's ascending node (crossing the ecliptic
// northward) from its descending node.
type NodeKind int

const (
	AscendingNode NodeKind = iota
	DescendingNode
)

// MoonNode is a time the Moon's geocentric ecliptic latitude crosses zero.
type MoonNode struct {
	T    Time
	Kind NodeKind
}

// moonEclipticLatitude returns the Moon's geocentric ecliptic latitude in
// degrees at time t.
func moonEclipticLatitude(t Time) float64 {
	_, lat, _ := moonEclipticSpherical(t)
	return lat
}

// moonEclipticSpherical returns the Moon's geocentric ecliptic longitude,
// latitude (degrees) and distance (AU).
func moonEclipticSpherical(t Time) (lonDeg, latDeg, distAU float64) {
	v := moonGeoVectorEQJ(t)
	ecl := RotateVector(Rotation_EQJ_ECL(), v)
	s := SphereFromVector(ecl)
	return s.Lon, s.Lat, s.Dist
}

// SearchMoonNode finds the Moon's first ecliptic-plane crossing after t.
func SearchMoonNode(t Time) (MoonNode, Status) {
	const stepDays = 2.0
	const searchSpan = 30.0
	f := func(ut float64) float64 { return moonEclipticLatitude(TimeFromDays(ut)) }

	prev := t.Ut()
	fPrev := f(prev)
	for cur := prev + stepDays; cur <= prev+searchSpan; cur += stepDays {
		fCur := f(cur)
		if (fPrev <= 0) != (fCur <= 0) {
			root, err := search.Search(prev, cur, f, 0)
			if err != nil {
				return MoonNode{}, SearchFailure
			}
			kind := AscendingNode
			if fPrev > fCur {
				kind = DescendingNode
			}
			return MoonNode{T: TimeFromDays(root), Kind: kind}, Success
		}
		prev, fPrev = cur, fCur
	}
	return MoonNode{}, SearchFailure
}

// NextMoonNode finds the Moon's ecliptic-plane crossing following a
// previously found one (ascending and descending nodes alternate roughly
// every half draconic month).
func NextMoonNode(prev MoonNode) (MoonNode, Status) {
	const gapDays = 1.0
	return SearchMoonNode(prev.T.AddDays(gapDays))
}
