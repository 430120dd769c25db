package coord

import "math"

// PrecessionMatrixDateToJ2000 returns the IAU 2006 precession matrix that
// transforms a vector from the mean equator and equinox of date (TT Julian
// date jdTT) to J2000. It is the exported form of precessionMatrixInverse,
// for use by packages that need to build a full EQJ<->EQD rotation chain.
func PrecessionMatrixDateToJ2000(jdTT float64) [3][3]float64 {
	T := (jdTT - j2000JD) / 36525.0
	return precessionMatrixInverse(T)
}

// NutationMatrixDateToMean returns N^T, the matrix transforming a vector
// from the true equator/equinox of date to the mean equator/equinox of
// date, at TT Julian date jdTT.
func NutationMatrixDateToMean(jdTT float64) [3][3]float64 {
	T := (jdTT - j2000JD) / 36525.0
	dpsi, deps := nutationAngles(T)
	epsM := meanObliquity(T)
	return nutationMatrixTranspose(dpsi, deps, epsM)
}

// MeanObliquityDeg returns the mean obliquity of the ecliptic at TT Julian
// date jdTT, in degrees.
func MeanObliquityDeg(jdTT float64) float64 {
	T := (jdTT - j2000JD) / 36525.0
	return meanObliquity(T) * rad2deg
}

// MatMulVec applies a 3x3 rotation matrix to a vector.
func MatMulVec(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// MatTranspose returns the transpose of a 3x3 matrix, which for a pure
// rotation matrix is also its inverse.
func MatTranspose(m [3][3]float64) [3][3]float64 {
	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// MatMul multiplies two 3x3 rotation matrices: result applies b first, then
// a (result = a * b).
func MatMul(a, b [3][3]float64) [3][3]float64 {
	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// IdentityMatrix3 returns the 3x3 identity matrix.
func IdentityMatrix3() [3][3]float64 {
	return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// EclipticMatrixJ2000 returns the rotation from ICRF/J2000 equatorial to the
// J2000 mean ecliptic frame (a fixed rotation about the x-axis by the J2000
// mean obliquity).
func EclipticMatrixJ2000() [3][3]float64 {
	return [3][3]float64{
		{1, 0, 0},
		{0, obliquityCos, obliquitySin},
		{0, -obliquitySin, obliquityCos},
	}
}

// PivotMatrix returns the rotation matrix for a right-handed rotation of
// angleDeg degrees about coordinate axis 0 (x), 1 (y) or 2 (z).
func PivotMatrix(axis int, angleDeg float64) [3][3]float64 {
	s, c := sincosDeg(angleDeg)
	switch axis {
	case 0:
		return [3][3]float64{{1, 0, 0}, {0, c, s}, {0, -s, c}}
	case 1:
		return [3][3]float64{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}
	default:
		return [3][3]float64{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
	}
}

func sincosDeg(deg float64) (float64, float64) {
	return math.Sincos(deg * deg2rad)
}
