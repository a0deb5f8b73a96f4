package abbegm

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/robohouse-delft/abbegm/egmpb"
)

// Conversions between EGM geometry messages and gonum spatial types.
// Vectors are in millimeters (or mm/s for speeds), quaternions should be
// unit quaternions with the scalar part in Real.

var (
	// ErrPoseMissingPosition is returned when a pose lacks a position.
	ErrPoseMissingPosition = errors.New("pose has no position")

	// ErrPoseMissingOrientation is returned when a pose lacks an
	// orientation quaternion.
	ErrPoseMissingOrientation = errors.New("pose has no orientation")
)

// VecFromCartesian converts a cartesian position to an r3 vector.
func VecFromCartesian(m *egmpb.EgmCartesian) r3.Vec {
	return r3.Vec{X: m.X, Y: m.Y, Z: m.Z}
}

// CartesianFromVec converts an r3 vector to a cartesian position.
func CartesianFromVec(v r3.Vec) *egmpb.EgmCartesian {
	return egmpb.CartesianFromMM(v.X, v.Y, v.Z)
}

// VecFromCartesianSpeed converts a cartesian speed to an r3 vector.
// The speed message must carry exactly three values.
func VecFromCartesianSpeed(m *egmpb.EgmCartesianSpeed) (r3.Vec, error) {
	if len(m.Value) != 3 {
		return r3.Vec{}, fmt.Errorf("cartesian speed has %d values, want 3", len(m.Value))
	}
	return r3.Vec{X: m.Value[0], Y: m.Value[1], Z: m.Value[2]}, nil
}

// CartesianSpeedFromVec converts an r3 vector to a cartesian speed in mm/s.
func CartesianSpeedFromVec(v r3.Vec) *egmpb.EgmCartesianSpeed {
	return egmpb.CartesianSpeedMM(v.X, v.Y, v.Z)
}

// QuatFromQuaternion converts an orientation message to a quaternion.
func QuatFromQuaternion(m *egmpb.EgmQuaternion) quat.Number {
	return quat.Number{Real: m.U0, Imag: m.U1, Jmag: m.U2, Kmag: m.U3}
}

// QuaternionFromQuat converts a quaternion to an orientation message.
func QuaternionFromQuat(q quat.Number) *egmpb.EgmQuaternion {
	return egmpb.QuaternionWXYZ(q.Real, q.Imag, q.Jmag, q.Kmag)
}

// PoseFromParts builds a 6-DOF pose from a position and an orientation.
func PoseFromParts(pos r3.Vec, orient quat.Number) *egmpb.EgmPose {
	return egmpb.NewPose(CartesianFromVec(pos), QuaternionFromQuat(orient))
}

// PoseParts splits a 6-DOF pose into position and orientation.
// Fails if the pose lacks either component.
func PoseParts(m *egmpb.EgmPose) (r3.Vec, quat.Number, error) {
	if m.Pos == nil {
		return r3.Vec{}, quat.Number{}, ErrPoseMissingPosition
	}
	if m.Orient == nil {
		return r3.Vec{}, quat.Number{}, ErrPoseMissingOrientation
	}
	return VecFromCartesian(m.Pos), QuatFromQuaternion(m.Orient), nil
}
