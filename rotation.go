package ephemeris

import "github.com/stellarcore/ephemeris/coord"

// RotationMatrix is a 3x3 rotation between two reference frames. Applying
// it to a vector in the source frame yields the equivalent vector in the
// destination frame.
type RotationMatrix struct {
	Rot [3][3]float64
}

// IdentityMatrix returns the identity rotation.
func IdentityMatrix() RotationMatrix {
	return RotationMatrix{Rot: coord.IdentityMatrix3()}
}

// Pivot returns m rotated by angleDeg degrees about the given body-fixed
// axis (0=x, 1=y, 2=z), composed as Pivot(m) = R(axis, angle) * m.
func Pivot(m RotationMatrix, axis int, angleDeg float64) RotationMatrix {
	return RotationMatrix{Rot: coord.MatMul(coord.PivotMatrix(axis, angleDeg), m.Rot)}
}

// CombineRotation returns the rotation equivalent to applying a first, then
// b: CombineRotation(a, b) transforms a vector the way RotateVector(b,
// RotateVector(a, v)) would, in one matrix.
func CombineRotation(a, b RotationMatrix) RotationMatrix {
	return RotationMatrix{Rot: coord.MatMul(b.Rot, a.Rot)}
}

// InverseRotation returns the rotation that undoes m.
func InverseRotation(m RotationMatrix) RotationMatrix {
	return RotationMatrix{Rot: coord.MatTranspose(m.Rot)}
}

// RotateVector applies m to v, returning the vector in m's destination
// frame. The time tag is carried through unchanged.
func RotateVector(m RotationMatrix, v Vector) Vector {
	return vectorFromArray(coord.MatMulVec(m.Rot, v.array()), v.T)
}

// RotateState applies m to both the position and velocity of s.
func RotateState(m RotationMatrix, s StateVector) StateVector {
	p := coord.MatMulVec(m.Rot, [3]float64{s.X, s.Y, s.Z})
	v := coord.MatMulVec(m.Rot, [3]float64{s.VX, s.VY, s.VZ})
	return StateVector{X: p[0], Y: p[1], Z: p[2], VX: v[0], VY: v[1], VZ: v[2], T: s.T}
}

// Rotation_EQJ_EQD returns the rotation from J2000 mean equatorial (EQJ) to
// true-of-date equatorial (EQD) at time t: precession then nutation.
func Rotation_EQJ_EQD(t Time) RotationMatrix {
	jdTT := t.TtJD()
	precJ2000ToDate := coord.MatTranspose(coord.PrecessionMatrixDateToJ2000(jdTT))
	dateMeanToTrue := coord.MatTranspose(coord.NutationMatrixDateToMean(jdTT))
	return RotationMatrix{Rot: coord.MatMul(dateMeanToTrue, precJ2000ToDate)}
}

// Rotation_EQD_EQJ is the inverse of Rotation_EQJ_EQD.
func Rotation_EQD_EQJ(t Time) RotationMatrix {
	return InverseRotation(Rotation_EQJ_EQD(t))
}

// Rotation_EQJ_ECL returns the fixed rotation from J2000 equatorial to
// J2000 mean ecliptic.
func Rotation_EQJ_ECL() RotationMatrix {
	return RotationMatrix{Rot: coord.EclipticMatrixJ2000()}
}

// Rotation_ECL_EQJ is the inverse of Rotation_EQJ_ECL.
func Rotation_ECL_EQJ() RotationMatrix {
	return InverseRotation(Rotation_EQJ_ECL())
}

// Rotation_EQD_ECT returns the rotation from true-of-date equatorial to
// ecliptic of date at time t. The rotation uses the mean obliquity of
// date; the nutation in obliquity (at most about 9 arcseconds) is not
// included.
func Rotation_EQD_ECT(t Time) RotationMatrix {
	eps := coord.MeanObliquityDeg(t.TtJD())
	return RotationMatrix{Rot: coord.PivotMatrix(0, eps)}
}

// Rotation_ECT_EQD is the inverse of Rotation_EQD_ECT.
func Rotation_ECT_EQD(t Time) RotationMatrix {
	return InverseRotation(Rotation_EQD_ECT(t))
}

// Rotation_EQJ_GAL returns the fixed rotation from J2000 equatorial to
// Galactic coordinates.
func Rotation_EQJ_GAL() RotationMatrix {
	return RotationMatrix{Rot: coord.GalacticMatrix}
}

// Rotation_GAL_EQJ is the inverse of Rotation_EQJ_GAL.
func Rotation_GAL_EQJ() RotationMatrix {
	return InverseRotation(Rotation_EQJ_GAL())
}

// Rotation_EQD_HOR returns the rotation from true-of-date equatorial to the
// observer's topocentric horizontal frame (x=south, y=east, z=up) at time t.
func Rotation_EQD_HOR(t Time, obs Observer) RotationMatrix {
	latTerm := 90.0 - obs.LatitudeDeg
	gast := t.GAST()
	lst := gast + obs.LongitudeDeg

	m := coord.PivotMatrix(2, lst)
	m = coord.MatMul(coord.PivotMatrix(1, latTerm), m)
	return RotationMatrix{Rot: m}
}

// Rotation_HOR_EQD is the inverse of Rotation_EQD_HOR.
func Rotation_HOR_EQD(t Time, obs Observer) RotationMatrix {
	return InverseRotation(Rotation_EQD_HOR(t, obs))
}

// Rotation_EQJ_HOR composes Rotation_EQJ_EQD with Rotation_EQD_HOR.
func Rotation_EQJ_HOR(t Time, obs Observer) RotationMatrix {
	return CombineRotation(Rotation_EQJ_EQD(t), Rotation_EQD_HOR(t, obs))
}

// Rotation_HOR_EQJ is the inverse of Rotation_EQJ_HOR.
func Rotation_HOR_EQJ(t Time, obs Observer) RotationMatrix {
	return InverseRotation(Rotation_EQJ_HOR(t, obs))
}

// Rotation_ECL_EQD composes Rotation_ECL_EQJ with Rotation_EQJ_EQD.
func Rotation_ECL_EQD(t Time) RotationMatrix {
	return CombineRotation(Rotation_ECL_EQJ(), Rotation_EQJ_EQD(t))
}

// Rotation_EQD_ECL is the inverse of Rotation_ECL_EQD.
func Rotation_EQD_ECL(t Time) RotationMatrix {
	return InverseRotation(Rotation_ECL_EQD(t))
}

// Rotation_ECL_HOR composes Rotation_ECL_EQJ with Rotation_EQJ_HOR.
func Rotation_ECL_HOR(t Time, obs Observer) RotationMatrix {
	return CombineRotation(Rotation_ECL_EQJ(), Rotation_EQJ_HOR(t, obs))
}

// Rotation_HOR_ECL is the inverse of Rotation_ECL_HOR.
func Rotation_HOR_ECL(t Time, obs Observer) RotationMatrix {
	return InverseRotation(Rotation_ECL_HOR(t, obs))
}

// Rotation_ECT_EQJ composes Rotation_ECT_EQD with Rotation_EQD_EQJ.
func Rotation_ECT_EQJ(t Time) RotationMatrix {
	return CombineRotation(Rotation_ECT_EQD(t), Rotation_EQD_EQJ(t))
}

// Rotation_EQJ_ECT is the inverse of Rotation_ECT_EQJ.
func Rotation_EQJ_ECT(t Time) RotationMatrix {
	return InverseRotation(Rotation_ECT_EQJ(t))
}

// Rotation_ECT_HOR composes Rotation_ECT_EQD with Rotation_EQD_HOR.
func Rotation_ECT_HOR(t Time, obs Observer) RotationMatrix {
	return CombineRotation(Rotation_ECT_EQD(t), Rotation_EQD_HOR(t, obs))
}

// Rotation_HOR_ECT is the inverse of Rotation_ECT_HOR.
func Rotation_HOR_ECT(t Time, obs Observer) RotationMatrix {
	return InverseRotation(Rotation_ECT_HOR(t, obs))
}

// RotationBetween looks up the rotation from one named frame to another at
// time t. obs is required when either frame is HOR and ignored otherwise.
// Requesting a rotation into or out of HOR without an observer, or an
// unrecognized frame, reports InvalidParameter.
func RotationBetween(from, to Frame, t Time, obs *Observer) (RotationMatrix, Status) {
	if from == to {
		return IdentityMatrix(), Success
	}
	if (from == HOR || to == HOR) && obs == nil {
		return RotationMatrix{}, InvalidParameter
	}

	switch {
	case from == EQJ && to == EQD:
		return Rotation_EQJ_EQD(t), Success
	case from == EQD && to == EQJ:
		return Rotation_EQD_EQJ(t), Success
	case from == EQJ && to == ECL:
		return Rotation_EQJ_ECL(), Success
	case from == ECL && to == EQJ:
		return Rotation_ECL_EQJ(), Success
	case from == EQD && to == ECT:
		return Rotation_EQD_ECT(t), Success
	case from == ECT && to == EQD:
		return Rotation_ECT_EQD(t), Success
	case from == EQJ && to == GAL:
		return Rotation_EQJ_GAL(), Success
	case from == GAL && to == EQJ:
		return Rotation_GAL_EQJ(), Success
	case from == EQD && to == HOR:
		return Rotation_EQD_HOR(t, *obs), Success
	case from == HOR && to == EQD:
		return Rotation_HOR_EQD(t, *obs), Success
	case from == EQJ && to == HOR:
		return Rotation_EQJ_HOR(t, *obs), Success
	case from == HOR && to == EQJ:
		return Rotation_HOR_EQJ(t, *obs), Success
	case from == ECL && to == EQD:
		return Rotation_ECL_EQD(t), Success
	case from == EQD && to == ECL:
		return Rotation_EQD_ECL(t), Success
	case from == ECL && to == HOR:
		return Rotation_ECL_HOR(t, *obs), Success
	case from == HOR && to == ECL:
		return Rotation_HOR_ECL(t, *obs), Success
	case from == ECT && to == EQJ:
		return Rotation_ECT_EQJ(t), Success
	case from == EQJ && to == ECT:
		return Rotation_EQJ_ECT(t), Success
	case from == ECT && to == HOR:
		return Rotation_ECT_HOR(t, *obs), Success
	case from == HOR && to == ECT:
		return Rotation_HOR_ECT(t, *obs), Success
	default:
		return RotationMatrix{}, InvalidParameter
	}
}
