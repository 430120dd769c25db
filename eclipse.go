package ephemeris

import (
	"math"

	"github.com/stellarcore/ephemeris/coord"
	"github.com/stellarcore/ephemeris/geometry"
	"github.com/stellarcore/ephemeris/search"
)

// EclipseKind classifies the depth of a lunar eclipse, or whether a solar
// eclipse is total, annular, or merely partial as seen from a given point.
type EclipseKind int

const (
	NoEclipse EclipseKind = iota
	Penumbral
	PartialEclipse
	TotalEclipse
	AnnularEclipse
)

const (
	sunRadiusKm   = 695700.0
	earthRadiusKm = 6371.0
	lunarRadiusKm = 1737.4

	// danjonFactor enlarges Earth's shadow 2% for atmospheric refraction
	// (Danjon's empirical correction).
	danjonFactor = 1.02
)

// LunarEclipse describes the Moon's passage through Earth's shadow.
type LunarEclipse struct {
	Peak              Time
	Kind              EclipseKind
	UmbralMagnitude   float64
	PenumbralMagnitude float64
	ClosestApproachKm float64
}

// shadowGeometry returns the Sun-Earth-Moon shadow geometry at time t: the
// Moon's perpendicular distance from Earth's antisolar shadow axis (km),
// and the umbral/penumbral shadow cone radii at the Moon's distance.
func shadowGeometry(t Time) (sepKm, rUmbra, rPenumbra float64) {
	sunGeo, _ := GeoVector(Sun, t, None)
	moonGeo, _ := GeoVector(Moon, t, None)

	sunDistKm := sunGeo.Length() * auKm
	axis := [3]float64{-sunGeo.X / sunGeo.Length(), -sunGeo.Y / sunGeo.Length(), -sunGeo.Z / sunGeo.Length()}

	moonKm := [3]float64{moonGeo.X * auKm, moonGeo.Y * auKm, moonGeo.Z * auKm}
	dAlong := moonKm[0]*axis[0] + moonKm[1]*axis[1] + moonKm[2]*axis[2]
	perp := [3]float64{moonKm[0] - dAlong*axis[0], moonKm[1] - dAlong*axis[1], moonKm[2] - dAlong*axis[2]}
	sepKm = math.Sqrt(perp[0]*perp[0] + perp[1]*perp[1] + perp[2]*perp[2])

	rUmbra = geometry.UmbraConeRadius(earthRadiusKm, sunRadiusKm, sunDistKm, dAlong) * danjonFactor
	rPenumbra = geometry.PenumbraConeRadius(earthRadiusKm, sunRadiusKm, sunDistKm, dAlong) * danjonFactor
	return
}

// classifyLunarEclipse computes the full shadow geometry at t and returns a
// LunarEclipse (Kind is NoEclipse if the Moon misses the penumbra).
func classifyLunarEclipse(t Time) LunarEclipse {
	sep, rUmbra, rPenumbra := shadowGeometry(t)
	umbralMag := (rUmbra + lunarRadiusKm - sep) / (2.0 * lunarRadiusKm)
	penumbralMag := (rPenumbra + lunarRadiusKm - sep) / (2.0 * lunarRadiusKm)

	ecl := LunarEclipse{
		Peak: t, UmbralMagnitude: umbralMag, PenumbralMagnitude: penumbralMag,
		ClosestApproachKm: sep,
	}
	switch {
	case umbralMag >= 1.0:
		ecl.Kind = TotalEclipse
	case umbralMag > 0:
		ecl.Kind = PartialEclipse
	case penumbralMag > 0:
		ecl.Kind = Penumbral
	default:
		ecl.Kind = NoEclipse
	}
	return ecl
}

// SearchLunarEclipse finds the next lunar eclipse (penumbral or deeper)
// after startUt, searching no more than limitDays ahead.
func SearchLunarEclipse(startUt, limitDays float64) (LunarEclipse, Status) {
	const stepDays = 5.0
	phaseFunc := func(ut float64) int {
		return int(math.Floor(MoonPhase(TimeFromDays(ut))/90.0)) % 4
	}
	transitions, err := search.FindDiscrete(startUt, startUt+limitDays, stepDays, phaseFunc, 0)
	if err != nil {
		return LunarEclipse{}, SearchFailure
	}
	for _, ev := range transitions {
		if ev.NewValue != 2 { // full-moon quadrant
			continue
		}
		sepFunc := func(ut float64) float64 {
			sep, _, _ := shadowGeometry(TimeFromDays(ut))
			return sep
		}
		const window = 1.5
		minima, err := search.FindMinima(ev.T-window, ev.T+window, 0.02, sepFunc, 0)
		if err != nil || len(minima) == 0 {
			continue
		}
		best := minima[0]
		for _, m := range minima[1:] {
			if math.Abs(m.T-ev.T) < math.Abs(best.T-ev.T) {
				best = m
			}
		}
		ecl := classifyLunarEclipse(TimeFromDays(best.T))
		if ecl.Kind != NoEclipse {
			return ecl, Success
		}
	}
	return LunarEclipse{}, SearchFailure
}

// NextLunarEclipse finds the next lunar eclipse after prevEclipseTime,
// skipping the ~10-day dead zone right after it (too soon for a new full
// moon) so it doesn't just return the same event again.
func NextLunarEclipse(prevEclipseTime Time) (LunarEclipse, Status) {
	const gapDays = 10.0
	const lunarEclipseWindowDays = 200.0
	return SearchLunarEclipse(prevEclipseTime.Ut()+gapDays, lunarEclipseWindowDays)
}

// GlobalSolarEclipse describes the Moon's shadow falling somewhere on
// Earth at new moon: the geocentric geometry, without resolving which
// ground locations see totality.
type GlobalSolarEclipse struct {
	Peak              Time
	Kind              EclipseKind
	ClosestApproachKm float64 // Moon-shadow-axis separation at Earth's center
	SubEclipseLatDeg  float64 // geodetic latitude under the Moon at Peak
	SubEclipseLonDeg  float64 // geodetic longitude under the Moon at Peak
}

// subLunarGeodetic returns the geodetic latitude and longitude of the point
// on Earth's surface directly beneath the Moon at time t: an approximation
// of the eclipse path's center (exact only where the Sun, Moon and that
// point are collinear, which a new moon's small Sun-Moon angular separation
// makes close enough for a rough path-location estimate).
func subLunarGeodetic(t Time) (latDeg, lonDeg float64) {
	moonGeo, _ := GeoVector(Moon, t, None)
	dist := moonGeo.Length()
	if dist == 0 {
		return 0, 0
	}
	surfaceKm := [3]float64{
		moonGeo.X / dist * earthRadiusKm,
		moonGeo.Y / dist * earthRadiusKm,
		moonGeo.Z / dist * earthRadiusKm,
	}

	era := coord.EarthRotationAngle(t.UtJD()) * deg2rad
	cosE, sinE := math.Cos(era), math.Sin(era)
	xFixed := cosE*surfaceKm[0] + sinE*surfaceKm[1]
	yFixed := -sinE*surfaceKm[0] + cosE*surfaceKm[1]
	zFixed := surfaceKm[2]

	latDeg, lonDeg, _ = coord.ITRFToGeodetic(xFixed, yFixed, zFixed)
	return
}

// shadowAxisSeparation returns the perpendicular distance (km) from Earth's
// center to the Moon-Sun shadow axis at time t — the geocentric solar
// eclipse indicator (near zero at new moon when an eclipse is visible
// somewhere on Earth).
func shadowAxisSeparation(t Time) float64 {
	sunGeo, _ := GeoVector(Sun, t, None)
	moonGeo, _ := GeoVector(Moon, t, None)
	moonKm := [3]float64{moonGeo.X * auKm, moonGeo.Y * auKm, moonGeo.Z * auKm}
	sunKm := [3]float64{sunGeo.X * auKm, sunGeo.Y * auKm, sunGeo.Z * auKm}
	dir := [3]float64{sunKm[0] - moonKm[0], sunKm[1] - moonKm[1], sunKm[2] - moonKm[2]}
	dirLen := math.Sqrt(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2])
	axis := [3]float64{dir[0] / dirLen, dir[1] / dirLen, dir[2] / dirLen}
	dAlong := moonKm[0]*axis[0] + moonKm[1]*axis[1] + moonKm[2]*axis[2]
	perp := [3]float64{moonKm[0] - dAlong*axis[0], moonKm[1] - dAlong*axis[1], moonKm[2] - dAlong*axis[2]}
	return math.Sqrt(perp[0]*perp[0] + perp[1]*perp[1] + perp[2]*perp[2])
}

// SearchGlobalSolarEclipse finds the next new moon after startUt whose
// shadow axis passes close enough to Earth's center that an eclipse is
// visible from somewhere on the surface, within limitDays.
func SearchGlobalSolarEclipse(startUt, limitDays float64) (GlobalSolarEclipse, Status) {
	newMoonCount := int(limitDays/29.53) + 2
	cursor := startUt
	for i := 0; i < newMoonCount; i++ {
		t, status := SearchMoonPhase(cursor, 0)
		if status != Success || t.Ut() > startUt+limitDays {
			break
		}
		sepFunc := func(ut float64) float64 { return shadowAxisSeparation(TimeFromDays(ut)) }
		minima, err := search.FindMinima(t.Ut()-0.5, t.Ut()+0.5, 0.02, sepFunc, 0)
		if err == nil && len(minima) > 0 {
			closest := minima[0]
			// Within ~1.5 Earth radii plus Moon's own radius the umbra or
			// penumbra can reach the surface.
			if closest.Value < earthRadiusKm*1.5+lunarRadiusKm {
				kind := PartialEclipse
				if closest.Value < earthRadiusKm*0.5 {
					kind = TotalEclipse
				}
				peak := TimeFromDays(closest.T)
				subLat, subLon := subLunarGeodetic(peak)
				return GlobalSolarEclipse{
					Peak: peak, Kind: kind, ClosestApproachKm: closest.Value,
					SubEclipseLatDeg: subLat, SubEclipseLonDeg: subLon,
				}, Success
			}
		}
		cursor = t.Ut() + 20.0
	}
	return GlobalSolarEclipse{}, SearchFailure
}

// NextGlobalSolarEclipse finds the next solar eclipse after prevEclipseTime,
// skipping the same dead zone NextLunarEclipse does.
func NextGlobalSolarEclipse(prevEclipseTime Time) (GlobalSolarEclipse, Status) {
	const gapDays = 10.0
	const solarEclipseWindowDays = 200.0
	return SearchGlobalSolarEclipse(prevEclipseTime.Ut()+gapDays, solarEclipseWindowDays)
}

// TransitInfo describes Mercury or Venus crossing the solar disc as seen
// from Earth.
type TransitInfo struct {
	Peak             Time
	SeparationArcmin float64
}

// SearchTransit finds the next transit of Mercury or Venus across the Sun's
// disc after startUt, within limitDays. A transit occurs only at inferior
// conjunction (relative longitude 0) when the planet's ecliptic latitude is
// also near zero; this checks the minimum angular separation from the Sun
// near each inferior conjunction against the Sun's apparent radius.
func SearchTransit(body Body, startUt, limitDays float64) (TransitInfo, Status) {
	if body != Mercury && body != Venus {
		return TransitInfo{}, InvalidBody
	}
	sepFunc := func(ut float64) float64 {
		t := TimeFromDays(ut)
		p, _ := GeoVector(body, t, None)
		s, _ := GeoVector(Sun, t, None)
		return coordSeparationArcmin(p, s)
	}
	const sunAngularRadiusArcmin = 16.0
	cursor := startUt
	for {
		conj, status := SearchRelativeLongitude(body, 0, cursor)
		if status != Success || conj.Ut() > startUt+limitDays {
			return TransitInfo{}, SearchFailure
		}
		minima, err := search.FindMinima(conj.Ut()-1, conj.Ut()+1, 0.05, sepFunc, 0)
		if err == nil && len(minima) > 0 && minima[0].Value <= sunAngularRadiusArcmin {
			return TransitInfo{Peak: TimeFromDays(minima[0].T), SeparationArcmin: minima[0].Value}, Success
		}
		cursor = conj.Ut() + 10
	}
}

// NextTransit finds the next transit of Mercury or Venus after
// prevTransitTime, searching up to one and a half orbital periods ahead
// (inferior conjunctions recur roughly once per synodic period).
func NextTransit(body Body, prevTransitTime Time) (TransitInfo, Status) {
	const gapDays = 10.0
	period := PlanetOrbitalPeriod(body)
	return SearchTransit(body, prevTransitTime.Ut()+gapDays, period*1.5)
}

func coordSeparationArcmin(a, b Vector) float64 {
	return AngleBetween(a, b) * 60.0
}

// MoonIsSunlit reports whether the Moon is outside Earth's shadow at time t,
// a quick geometric query (no bracketed search) a caller can use to sample a
// single instant without paying for SearchLunarEclipse's full scan.
func MoonIsSunlit(t Time) bool {
	sunGeo, _ := GeoVector(Sun, t, None)
	moonGeo, _ := GeoVector(Moon, t, None)
	sunKm := [3]float64{sunGeo.X * auKm, sunGeo.Y * auKm, sunGeo.Z * auKm}
	moonKm := [3]float64{moonGeo.X * auKm, moonGeo.Y * auKm, moonGeo.Z * auKm}
	return coord.IsSunlit(moonKm, sunKm)
}

// IsBodyBehindEarth reports whether body is geometrically behind Earth as
// seen from obs at time t — a line-of-sight occlusion test distinct from
// the horizon altitude test SearchRiseSet uses (this one accounts for
// Earth's bulk, not the local horizon plane).
func IsBodyBehindEarth(body Body, obs Observer, t Time) bool {
	bodyGeo, status := GeoVector(body, t, None)
	if status != Success {
		return false
	}
	obsVec := ObserverVector(t, obs, J2000)
	bodyKm := [3]float64{bodyGeo.X * auKm, bodyGeo.Y * auKm, bodyGeo.Z * auKm}
	obsKm := [3]float64{obsVec.X * auKm, obsVec.Y * auKm, obsVec.Z * auKm}
	return coord.IsBehindEarth(obsKm, bodyKm)
}

// LocalSolarEclipseVisible reports whether a solar eclipse is visible from
// obs at time t: whether the line of sight from the observer to the Sun
// passes through the Moon's sphere before reaching it.
func LocalSolarEclipseVisible(t Time, obs Observer) bool {
	sunGeo, statusSun := GeoVector(Sun, t, None)
	moonGeo, statusMoon := GeoVector(Moon, t, None)
	if statusSun != Success || statusMoon != Success {
		return false
	}
	obsVec := ObserverVector(t, obs, J2000)

	toSunKm := [3]float64{
		(sunGeo.X - obsVec.X) * auKm, (sunGeo.Y - obsVec.Y) * auKm, (sunGeo.Z - obsVec.Z) * auKm,
	}
	toMoonKm := [3]float64{
		(moonGeo.X - obsVec.X) * auKm, (moonGeo.Y - obsVec.Y) * auKm, (moonGeo.Z - obsVec.Z) * auKm,
	}
	sunDist := math.Sqrt(toSunKm[0]*toSunKm[0] + toSunKm[1]*toSunKm[1] + toSunKm[2]*toSunKm[2])

	near, far := geometry.IntersectLineSphere(toSunKm, toMoonKm, lunarRadiusKm)
	if math.IsNaN(near) {
		return false
	}
	return near > 0 && near < sunDist && far > 0
}
