package egmpb

import "google.golang.org/protobuf/proto"

// Constructors for the sensor-side (command) messages and their components.

// NewHeader creates a message header.
func NewHeader(seqno, timestampMS uint32, kind MessageType) *EgmHeader {
	return &EgmHeader{
		Seqno: proto.Uint32(seqno),
		Tm:    proto.Uint32(timestampMS),
		Mtype: kind.Enum(),
	}
}

// CorrectionHeader creates the header of a position-guidance message.
func CorrectionHeader(seqno, timestampMS uint32) *EgmHeader {
	return NewHeader(seqno, timestampMS, MsgTypeCorrection)
}

// PathCorrectionHeader creates the header of a path-correction message.
func PathCorrectionHeader(seqno, timestampMS uint32) *EgmHeader {
	return NewHeader(seqno, timestampMS, MsgTypePathCorrection)
}

// CartesianFromMM creates a cartesian position from x, y, z in millimeters.
func CartesianFromMM(x, y, z float64) *EgmCartesian {
	return &EgmCartesian{X: x, Y: y, Z: z}
}

// AsMM returns the position as an [x, y, z] array in millimeters.
func (m *EgmCartesian) AsMM() [3]float64 {
	return [3]float64{m.X, m.Y, m.Z}
}

// QuaternionWXYZ creates a quaternion from w, x, y, z components.
func QuaternionWXYZ(w, x, y, z float64) *EgmQuaternion {
	return &EgmQuaternion{U0: w, U1: x, U2: y, U3: z}
}

// AsWXYZ returns the quaternion as a [w, x, y, z] array.
func (m *EgmQuaternion) AsWXYZ() [4]float64 {
	return [4]float64{m.U0, m.U1, m.U2, m.U3}
}

// EulerXYZDegrees creates a rotation from X, Y, Z rotations in degrees.
func EulerXYZDegrees(x, y, z float64) *EgmEuler {
	return &EgmEuler{X: x, Y: y, Z: z}
}

// NewPose creates a 6-DOF pose from a position and an orientation.
func NewPose(position *EgmCartesian, orientation *EgmQuaternion) *EgmPose {
	return &EgmPose{Pos: position, Orient: orientation}
}

// JointsFromDegrees creates a joint list from joint values in degrees.
func JointsFromDegrees(joints ...float64) *EgmJoints {
	return &EgmJoints{Joints: joints}
}

// CartesianSpeedMM creates a cartesian speed from linear velocity in mm/s.
func CartesianSpeedMM(x, y, z float64) *EgmCartesianSpeed {
	return &EgmCartesianSpeed{Value: []float64{x, y, z}}
}

// JointsPlanned creates a joint space target.
func JointsPlanned(joints *EgmJoints, t EgmClock) *EgmPlanned {
	return &EgmPlanned{Joints: joints, Time: &t}
}

// PosePlanned creates a 6-DOF pose target.
func PosePlanned(pose *EgmPose, t EgmClock) *EgmPlanned {
	return &EgmPlanned{Cartesian: pose, Time: &t}
}

// JointSpeedRef creates a joint space speed reference.
func JointSpeedRef(joints *EgmJoints) *EgmSpeedRef {
	return &EgmSpeedRef{Joints: joints}
}

// CartesianSpeedRef creates a cartesian speed reference.
func CartesianSpeedRef(speed *EgmCartesianSpeed) *EgmSpeedRef {
	return &EgmSpeedRef{Cartesians: speed}
}

// JointTarget creates a command message with a joint space target.
// The header timestamp is derived from t.
func JointTarget(seqno uint32, joints *EgmJoints, t EgmClock) *EgmSensor {
	return &EgmSensor{
		Header:  CorrectionHeader(seqno, t.TimestampMS()),
		Planned: JointsPlanned(joints, t),
	}
}

// JointTargetWithSpeed creates a command message with a joint space target
// and a joint space speed reference. The header timestamp is derived from t.
func JointTargetWithSpeed(seqno uint32, joints, speed *EgmJoints, t EgmClock) *EgmSensor {
	return &EgmSensor{
		Header:   CorrectionHeader(seqno, t.TimestampMS()),
		Planned:  JointsPlanned(joints, t),
		SpeedRef: JointSpeedRef(speed),
	}
}

// PoseTarget creates a command message with a 6-DOF pose target.
// The header timestamp is derived from t.
func PoseTarget(seqno uint32, pose *EgmPose, t EgmClock) *EgmSensor {
	return &EgmSensor{
		Header:  CorrectionHeader(seqno, t.TimestampMS()),
		Planned: PosePlanned(pose, t),
	}
}

// PoseTargetWithSpeed creates a command message with a 6-DOF pose target and
// a cartesian speed reference. The header timestamp is derived from t.
func PoseTargetWithSpeed(seqno uint32, pose *EgmPose, speed *EgmCartesianSpeed, t EgmClock) *EgmSensor {
	return &EgmSensor{
		Header:   CorrectionHeader(seqno, t.TimestampMS()),
		Planned:  PosePlanned(pose, t),
		SpeedRef: CartesianSpeedRef(speed),
	}
}

// PathCorrection creates a path-correction message. The correction is
// relative to the sensor tool frame, ageMS is the measurement age.
func PathCorrection(seqno, timestampMS uint32, correction *EgmCartesian, ageMS uint32) *EgmSensorPathCorr {
	return &EgmSensorPathCorr{
		Header:   PathCorrectionHeader(seqno, timestampMS),
		PathCorr: &EgmPathCorr{Pos: *correction, Age: ageMS},
	}
}
