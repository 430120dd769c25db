package ephemeris

import "github.com/stellarcore/ephemeris/jupitermoons"

// JupiterMoon names one of the four Galilean satellites.
type JupiterMoon int

const (
	Io JupiterMoon = iota
	Europa
	Ganymede
	Callisto
)

var jupiterMoonIndex = map[JupiterMoon]int{
	Io: jupitermoons.Io, Europa: jupitermoons.Europa,
	Ganymede: jupitermoons.Ganymede, Callisto: jupitermoons.Callisto,
}

// JupiterMoonVector returns a Galilean moon's position relative to
// Jupiter's center at time t, EQJ frame, AU.
func JupiterMoonVector(m JupiterMoon, t Time) (Vector, Status) {
	idx, ok := jupiterMoonIndex[m]
	if !ok {
		return Vector{}, InvalidBody
	}
	km := jupitermoons.PositionKm(idx, t.TtJD())
	au := [3]float64{km[0] / auKm, km[1] / auKm, km[2] / auKm}
	// jupitermoons works in Jupiter's equatorial frame, which this module
	// treats as coincident with EQJ (Jupiter's actual pole tilt relative to
	// J2000 is a few degrees, within this facade's stated precision).
	return vectorFromArray(au, t), Success
}

// JupiterMoonGeoVector returns a Galilean moon's geocentric position at time
// t, EQJ frame, AU, light-time corrected.
func JupiterMoonGeoVector(m JupiterMoon, t Time) (Vector, Status) {
	idx, ok := jupiterMoonIndex[m]
	if !ok {
		return Vector{}, InvalidBody
	}
	emitTime := t
	earth, status := HelioVector(Earth, t)
	if status != Success {
		return Vector{}, status
	}
	var jup Vector
	for iter := 0; iter < 2; iter++ {
		jup, status = HelioVector(Jupiter, emitTime)
		if status != Success {
			return Vector{}, status
		}
		km := jupitermoons.PositionKm(idx, emitTime.TtJD())
		moonAU := [3]float64{km[0] / auKm, km[1] / auKm, km[2] / auKm}
		geo := Vector{
			X: jup.X + moonAU[0] - earth.X,
			Y: jup.Y + moonAU[1] - earth.Y,
			Z: jup.Z + moonAU[2] - earth.Z,
		}
		lightDays := geo.Length() * auLightDaysInv
		emitTime = t.AddDays(-lightDays)
	}
	km := jupitermoons.PositionKm(idx, emitTime.TtJD())
	moonAU := [3]float64{km[0] / auKm, km[1] / auKm, km[2] / auKm}
	return Vector{
		X: jup.X + moonAU[0] - earth.X,
		Y: jup.Y + moonAU[1] - earth.Y,
		Z: jup.Z + moonAU[2] - earth.Z,
		T: t,
	}, Success
}
