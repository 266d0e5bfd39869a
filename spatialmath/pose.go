package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Pose represents a rigid transform: a 6dof pose, position and orientation,
// relative to the origin of whatever frame it is expressed in.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

// NewZeroPose returns a pose at (0,0,0) with no rotation.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPose takes in a position and orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		return NewPoseFromPoint(p)
	}
	q := newDualQuaternionFromRotation(o)
	q.SetTranslation(p)
	return q
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a vector.
// It will have the same orientation as the frame it is in reference to.
func NewPoseFromPoint(point r3.Vector) Pose {
	q := newDualQuaternion()
	q.SetTranslation(point)
	return q
}

// NewPoseFromOrientation takes in an orientation and returns a Pose at the origin.
func NewPoseFromOrientation(o Orientation) Pose {
	if o == nil {
		return NewZeroPose()
	}
	return newDualQuaternionFromRotation(o)
}

// Compose treats Poses as functions applied to points and returns the result of
// applying a to the result of applying b, e.g. the pose of b expressed through a.
func Compose(a, b Pose) Pose {
	result := &dualQuaternion{dualquat.Mul(dqFromPose(a).Number, dqFromPose(b).Number)}

	// Normalization
	if vecLen := quat.Abs(result.Real); vecLen != 1 {
		result.Real = quat.Scale(1/vecLen, result.Real)
	}
	return result
}

// PoseInverse returns the pose representing the inverse transform, such that
// Compose(p, PoseInverse(p)) is the zero pose.
func PoseInverse(p Pose) Pose {
	q := dqFromPose(p)
	return &dualQuaternion{dualquat.Number{
		Real: quat.Conj(q.Real),
		Dual: quat.Conj(q.Dual),
	}}
}

// PoseDelta returns the difference between two poses: the translation offset and
// the orientation between them in axis angle form.
func PoseDelta(a, b Pose) (r3.Vector, *R4AA) {
	offset := b.Point().Sub(a.Point())
	aa := QuatToR4AA(quat.Mul(b.Orientation().Quaternion(), quat.Conj(a.Orientation().Quaternion())))
	return offset, aa
}

// PoseAlmostEqual will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostEqualEps(a, b, 1e-6)
}

// PoseAlmostEqualEps will return a bool describing whether 2 poses are
// approximately the same, with the point components compared to within epsilon.
func PoseAlmostEqualEps(a, b Pose, epsilon float64) bool {
	return a.Point().Sub(b.Point()).Norm() <= epsilon && OrientationAlmostEqual(a.Orientation(), b.Orientation())
}

// PoseToString returns a human readable description of the pose, with the
// orientation given as roll, pitch, yaw.
func PoseToString(p Pose) string {
	pt := p.Point()
	return fmt.Sprintf("Origin: (%.20g %.20g %.20g) Rotation (RPY): %v", pt.X, pt.Y, pt.Z, p.Orientation().EulerAngles())
}

// dualQuaternion defines functions to perform rigid transformations in 3D.
type dualQuaternion struct {
	dualquat.Number
}

// newDualQuaternion returns a pointer to a new dualQuaternion object whose
// rotation quaternion is an identity quaternion. Since the real part of a dual
// quaternion should be a unit quaternion, not all zeroes, this should be used
// instead of &dualQuaternion{}.
func newDualQuaternion() *dualQuaternion {
	return &dualQuaternion{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

// newDualQuaternionFromRotation returns a pointer to a new dualQuaternion
// object whose rotation quaternion is set from a provided orientation.
func newDualQuaternionFromRotation(o Orientation) *dualQuaternion {
	return &dualQuaternion{dualquat.Number{
		Real: Normalize(o.Quaternion()),
		Dual: quat.Number{},
	}}
}

func dqFromPose(p Pose) *dualQuaternion {
	if q, ok := p.(*dualQuaternion); ok {
		return q
	}
	q := newDualQuaternionFromRotation(p.Orientation())
	q.SetTranslation(p.Point())
	return q
}

// Point multiplies the dual quaternion by its own conjugate to recover the
// transformed translation.
func (q *dualQuaternion) Point() r3.Vector {
	tmQuat := dualquat.Mul(q.Number, dualquat.Conj(q.Number)).Dual
	return r3.Vector{X: tmQuat.Imag, Y: tmQuat.Jmag, Z: tmQuat.Kmag}
}

// Orientation returns the rotation of the pose.
func (q *dualQuaternion) Orientation() Orientation {
	o := quaternion(q.Real)
	return &o
}

// SetTranslation correctly sets the translation quaternion against the rotation.
func (q *dualQuaternion) SetTranslation(pt r3.Vector) {
	q.Dual = quat.Number{Real: 0, Imag: pt.X / 2, Jmag: pt.Y / 2, Kmag: pt.Z / 2}
	q.rotate()
}

// rotate multiplies the dual part of the quaternion by the real part to give the correct rotation.
func (q *dualQuaternion) rotate() {
	q.Dual = quat.Mul(q.Dual, q.Real)
}
