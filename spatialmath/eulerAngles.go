package spatialmath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// EulerAngles are three angles used to represent the rotation of an object in 3D Euclidean space.
// The Tait-Bryan angle formalism is used, with rotations around the extrinsic axes in the order
// x-y-z, equivalent to intrinsic z-y'-x''. Roll is a rotation about the X axis, Pitch about Y,
// and Yaw about Z.
type EulerAngles struct {
	Roll  float64 `json:"roll"`  // rotation about x
	Pitch float64 `json:"pitch"` // rotation about y
	Yaw   float64 `json:"yaw"`   // rotation about z
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// Quaternion returns orientation in quaternion representation. The Euler angles
// are composed in the fixed roll-about-X, pitch-about-Y, yaw-about-Z order.
func (ea *EulerAngles) Quaternion() quat.Number {
	sRoll := math.Sin(ea.Roll / 2)
	cRoll := math.Cos(ea.Roll / 2)
	sPitch := math.Sin(ea.Pitch / 2)
	cPitch := math.Cos(ea.Pitch / 2)
	sYaw := math.Sin(ea.Yaw / 2)
	cYaw := math.Cos(ea.Yaw / 2)

	q := quat.Number{}
	q.Real = cRoll*cPitch*cYaw + sRoll*sPitch*sYaw
	q.Imag = sRoll*cPitch*cYaw - cRoll*sPitch*sYaw
	q.Jmag = cRoll*sPitch*cYaw + sRoll*cPitch*sYaw
	q.Kmag = cRoll*cPitch*sYaw - sRoll*sPitch*cYaw

	return q
}

// AxisAngles returns the orientation in axis angle representation.
func (ea *EulerAngles) AxisAngles() *R4AA {
	return QuatToR4AA(ea.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(ea.Quaternion())
}

// QuatToEulerAngles converts a quaternion to the euler angle representation.
// The decomposition is not unique when the pitch is near ±π/2 (gimbal lock);
// in that region the yaw is fixed to zero and the remaining rotation is
// absorbed into the roll.
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	return QuatToRotationMatrix(q).EulerAngles()
}

func (ea *EulerAngles) String() string {
	return fmt.Sprintf("(%.20g, %.20g, %.20g)", ea.Roll, ea.Pitch, ea.Yaw)
}
