package spatialmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// If the pitch is within this many radians of ±π/2, the Euler decomposition is
// considered gimbal locked and the yaw is fixed to zero.
const gimbalLockEpsilon = 1e-7

// RotationMatrix is a 3x3 matrix in row major order.
// m[3*r + c] is the element in the rth row and cth column.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates the rotation matrix from a slice of floats.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, newRotationMatrixInputError(m)
	}
	mat := [9]float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]}
	return &RotationMatrix{mat}, nil
}

func newRotationMatrixInputError(m []float64) error {
	return fmt.Errorf("input slice has %d elements, need exactly 9", len(m))
}

// Quaternion returns orientation in quaternion representation.
func (rm *RotationMatrix) Quaternion() quat.Number {
	var q quat.Number
	m := rm.mat

	// converting to quaternion form involves taking the square root of the trace
	// the directly calculated element must be nonzero, so the findings of
	// https://doi.org/10.1145/3306346.3322979 are followed here
	tr := m[0] + m[4] + m[8]
	switch {
	case tr > 0:
		s := 0.5 / math.Sqrt(tr+1.0)
		q = quat.Number{Real: 0.25 / s, Imag: (m[7] - m[5]) * s, Jmag: (m[2] - m[6]) * s, Kmag: (m[3] - m[1]) * s}
	case (m[0] > m[4]) && (m[0] > m[8]):
		s := 2.0 * math.Sqrt(1.0+m[0]-m[4]-m[8])
		q = quat.Number{Real: (m[7] - m[5]) / s, Imag: 0.25 * s, Jmag: (m[1] + m[3]) / s, Kmag: (m[2] + m[6]) / s}
	case m[4] > m[8]:
		s := 2.0 * math.Sqrt(1.0+m[4]-m[0]-m[8])
		q = quat.Number{Real: (m[2] - m[6]) / s, Imag: (m[1] + m[3]) / s, Jmag: 0.25 * s, Kmag: (m[5] + m[7]) / s}
	default:
		s := 2.0 * math.Sqrt(1.0+m[8]-m[0]-m[4])
		q = quat.Number{Real: (m[3] - m[1]) / s, Imag: (m[2] + m[6]) / s, Jmag: (m[5] + m[7]) / s, Kmag: 0.25 * s}
	}

	return Normalize(q)
}

// EulerAngles returns the orientation in Euler angle representation. When the
// pitch is within gimbalLockEpsilon of ±π/2 the roll and yaw axes coincide, the
// decomposition is no longer unique, and the convention of zero yaw is used.
func (rm *RotationMatrix) EulerAngles() *EulerAngles {
	m := rm.mat
	switch {
	case m[6] <= -1+gimbalLockEpsilon: // pitch locked at π/2
		return &EulerAngles{Roll: math.Atan2(m[1], m[2]), Pitch: math.Pi / 2, Yaw: 0}
	case m[6] >= 1-gimbalLockEpsilon: // pitch locked at -π/2
		return &EulerAngles{Roll: math.Atan2(-m[1], -m[2]), Pitch: -math.Pi / 2, Yaw: 0}
	default:
		return &EulerAngles{
			Roll:  math.Atan2(m[7], m[8]),
			Pitch: math.Asin(-m[6]),
			Yaw:   math.Atan2(m[3], m[0]),
		}
	}
}

// AxisAngles returns the orientation in axis angle representation.
func (rm *RotationMatrix) AxisAngles() *R4AA {
	return QuatToR4AA(rm.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}

// QuatToRotationMatrix converts a quat to a rotation matrix.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	mat := [9]float64{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*z*w, 2*x*z + 2*y*w,
		2*x*y + 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*w,
		2*x*z - 2*y*w, 2*y*z + 2*x*w, 1 - 2*x*x - 2*y*y,
	}
	return &RotationMatrix{mat}
}

// At returns the float corresponding to the element at the specified location.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a 3 element vector corresponding to the specified row.
func (rm *RotationMatrix) Row(row int) [3]float64 {
	return [3]float64{rm.mat[3*row], rm.mat[3*row+1], rm.mat[3*row+2]}
}

func (rm *RotationMatrix) String() string {
	return fmt.Sprintf("%v %v %v\n%v %v %v\n%v %v %v",
		rm.mat[0], rm.mat[1], rm.mat[2], rm.mat[3], rm.mat[4], rm.mat[5], rm.mat[6], rm.mat[7], rm.mat[8])
}
