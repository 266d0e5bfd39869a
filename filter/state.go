// Package filter holds the state vector layout of the pose estimation filter
// and conversions between state vectors and rigid transforms.
package filter

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/DynoRobotics/robot-localization/spatialmath"
)

// Indices of the members of the estimation state vector. The binding of index
// to meaning is fixed and must never be reordered.
const (
	StateMemberX = iota
	StateMemberY
	StateMemberZ
	StateMemberRoll
	StateMemberPitch
	StateMemberYaw
	StateMemberVx
	StateMemberVy
	StateMemberVz
	StateMemberVroll
	StateMemberVpitch
	StateMemberVyaw
	StateMemberAx
	StateMemberAy
	StateMemberAz

	// StateSize is the full length of the state vector: pose, velocity, and
	// linear acceleration.
	StateSize = 15
)

// NewStateVector returns a zeroed state vector of the full state size.
func NewStateVector() *mat.VecDense {
	return mat.NewVecDense(StateSize, nil)
}

// StateToPose builds the rigid transform described by the pose members of the
// state: translation from the X/Y/Z members and orientation from the
// Roll/Pitch/Yaw members. Angle ranges are not validated; wrap-around is the
// caller's responsibility.
func StateToPose(state mat.Vector) spatialmath.Pose {
	return spatialmath.NewPose(
		r3.Vector{
			X: state.AtVec(StateMemberX),
			Y: state.AtVec(StateMemberY),
			Z: state.AtVec(StateMemberZ),
		},
		&spatialmath.EulerAngles{
			Roll:  state.AtVec(StateMemberRoll),
			Pitch: state.AtVec(StateMemberPitch),
			Yaw:   state.AtVec(StateMemberYaw),
		},
	)
}

// PoseToState writes the pose into the pose members of the state, leaving the
// derivative members untouched. The orientation is decomposed into Euler
// angles; near a pitch of ±π/2 the decomposition is not unique (gimbal lock)
// and the roll and yaw members will hold one of the equivalent solutions.
func PoseToState(pose spatialmath.Pose, state *mat.VecDense) {
	pt := pose.Point()
	state.SetVec(StateMemberX, pt.X)
	state.SetVec(StateMemberY, pt.Y)
	state.SetVec(StateMemberZ, pt.Z)

	ea := pose.Orientation().EulerAngles()
	state.SetVec(StateMemberRoll, ea.Roll)
	state.SetVec(StateMemberPitch, ea.Pitch)
	state.SetVec(StateMemberYaw, ea.Yaw)
}

// GetYaw returns the yaw component of an orientation.
func GetYaw(o spatialmath.Orientation) float64 {
	return o.EulerAngles().Yaw
}
