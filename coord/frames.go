package coord

import "math"

// GalacticMatrix is the rotation matrix from ICRF (J2000) to Galactic
// System II (IAU 1958). Apply as v_gal = GalacticMatrix * v_icrf.
// Source: SPICE Toolkit / Skyfield.
var GalacticMatrix = [3][3]float64{
	{-0.054875539395742523, -0.87343710472759606, -0.48383499177002515},
	{0.49410945362774389, -0.44482959429757496, 0.74698224869989183},
	{-0.86766613568337381, -0.19807638961301985, 0.45598379452141991},
}

// B1950Matrix is the rotation matrix from ICRF (J2000) to the mean equator
// and equinox of B1950 (FK4). Apply as v_B1950 = B1950Matrix * v_icrf.
// Source: SPICE Toolkit / Skyfield.
var B1950Matrix = [3][3]float64{
	{0.99992570795236291, 0.011178938126427691, 0.0048590038414544293},
	{-0.011178938137770135, 0.9999375133499887, -2.715792625851078e-05},
	{-0.0048590038153592712, -2.7162594714247048e-05, 0.9999881946023742},
}

// ICRSToJ2000Matrix is the frame bias matrix from ICRS to the dynamical
// mean equator and equinox of J2000. The bias is a few milliarcseconds.
// Source: IERS Conventions 2003, Chapter 5.
var ICRSToJ2000Matrix [3][3]float64

func init() {
	const asec2rad = deg2rad / 3600.0

	// ICRS frame biases in arcseconds
	xi0 := -0.0166170 * asec2rad
	eta0 := -0.0068192 * asec2rad
	da0 := -0.01460 * asec2rad

	yx := -da0
	zx := xi0
	xy := da0
	zy := eta0
	xz := -xi0
	yz := -eta0

	// Second-order diagonal corrections
	xx := 1.0 - 0.5*(yx*yx+zx*zx)
	yy := 1.0 - 0.5*(yx*yx+zy*zy)
	zz := 1.0 - 0.5*(zy*zy+zx*zx)

	ICRSToJ2000Matrix = [3][3]float64{
		{xx, xy, xz},
		{yx, yy, yz},
		{zx, zy, zz},
	}
}

// ICRFToGalactic converts an ICRF Cartesian vector to Galactic latitude and
// longitude in degrees. Longitude is in [0, 360).
func ICRFToGalactic(x, y, z float64) (latDeg, lonDeg float64) {
	gx := GalacticMatrix[0][0]*x + GalacticMatrix[0][1]*y + GalacticMatrix[0][2]*z
	gy := GalacticMatrix[1][0]*x + GalacticMatrix[1][1]*y + GalacticMatrix[1][2]*z
	gz := GalacticMatrix[2][0]*x + GalacticMatrix[2][1]*y + GalacticMatrix[2][2]*z

	r := math.Sqrt(gx*gx + gy*gy + gz*gz)
	if r == 0 {
		return 0, 0
	}

	latDeg = math.Asin(gz/r) * rad2deg
	lonDeg = math.Atan2(gy, gx) * rad2deg
	lonDeg = math.Mod(lonDeg+360.0, 360.0)
	return latDeg, lonDeg
}

// InertialFrame is a fixed rotation from ICRF into another inertial frame
// (one that does not rotate with Earth), such as Galactic or ecliptic
// coordinates.
type InertialFrame struct {
	Name   string
	Matrix [3][3]float64
}

// XYZ rotates an ICRF Cartesian position vector into this frame.
func (f InertialFrame) XYZ(posICRF [3]float64) [3]float64 {
	m := f.Matrix
	return [3]float64{
		m[0][0]*posICRF[0] + m[0][1]*posICRF[1] + m[0][2]*posICRF[2],
		m[1][0]*posICRF[0] + m[1][1]*posICRF[1] + m[1][2]*posICRF[2],
		m[2][0]*posICRF[0] + m[2][1]*posICRF[1] + m[2][2]*posICRF[2],
	}
}

// LatLon returns this frame's latitude and longitude (degrees) for an ICRF
// position vector. Longitude is in [0, 360).
func (f InertialFrame) LatLon(posICRF [3]float64) (latDeg, lonDeg float64) {
	p := f.XYZ(posICRF)
	r := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
	if r == 0 {
		return 0, 0
	}
	latDeg = math.Asin(p[2]/r) * rad2deg
	lonDeg = math.Mod(math.Atan2(p[1], p[0])*rad2deg+360.0, 360.0)
	return latDeg, lonDeg
}

// eclipticMatrix rotates ICRF (equatorial) into the J2000 mean ecliptic
// frame by a rotation of the mean obliquity about the X-axis.
var eclipticMatrix = [3][3]float64{
	{1, 0, 0},
	{0, obliquityCos, obliquitySin},
	{0, -obliquitySin, obliquityCos},
}

// Galactic is the ICRF -> Galactic System II (IAU 1958) frame.
var Galactic = InertialFrame{Name: "Galactic", Matrix: GalacticMatrix}

// Ecliptic is the ICRF -> J2000 mean ecliptic frame.
var Ecliptic = InertialFrame{Name: "Ecliptic", Matrix: eclipticMatrix}

// B1950 is the ICRF -> mean equator and equinox of B1950 (FK4) frame, used
// to cross-reference coordinates against older catalogs published in B1950.
var B1950 = InertialFrame{Name: "B1950", Matrix: B1950Matrix}

// TimeBasedFrame is a rotation from ICRF that depends on a UT1 Julian date,
// used for frames that rotate with Earth.
type TimeBasedFrame struct {
	Name   string
	Matrix func(jdUT1 float64) [3][3]float64
}

// XYZ rotates an ICRF Cartesian position vector into this frame at jdUT1.
func (f TimeBasedFrame) XYZ(posICRF [3]float64, jdUT1 float64) [3]float64 {
	m := f.Matrix(jdUT1)
	return [3]float64{
		m[0][0]*posICRF[0] + m[0][1]*posICRF[1] + m[0][2]*posICRF[2],
		m[1][0]*posICRF[0] + m[1][1]*posICRF[1] + m[1][2]*posICRF[2],
		m[2][0]*posICRF[0] + m[2][1]*posICRF[1] + m[2][2]*posICRF[2],
	}
}

// ITRFFrame returns the ICRF -> ITRF (Earth-fixed) frame, a single Z-axis
// rotation by the Earth Rotation Angle. Polar motion is not modeled.
func ITRFFrame() TimeBasedFrame {
	return TimeBasedFrame{
		Name: "ITRF",
		Matrix: func(jdUT1 float64) [3][3]float64 {
			era := EarthRotationAngle(jdUT1) * deg2rad
			sinE, cosE := math.Sincos(era)
			return [3][3]float64{
				{cosE, sinE, 0},
				{-sinE, cosE, 0},
				{0, 0, 1},
			}
		},
	}
}
