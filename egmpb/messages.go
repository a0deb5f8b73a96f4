package egmpb

// MessageType identifies the role of a message in the EGM exchange.
type MessageType int32

const (
	MsgTypeUndefined MessageType = 0
	// MsgTypeCommand is reserved by ABB for future use.
	MsgTypeCommand MessageType = 1
	// MsgTypeData marks messages sent by the robot controller.
	MsgTypeData MessageType = 2
	// MsgTypeCorrection marks sensor messages carrying position guidance.
	MsgTypeCorrection MessageType = 3
	// MsgTypePathCorrection marks sensor messages carrying path corrections.
	MsgTypePathCorrection MessageType = 4
)

// Enum returns a pointer to t, for use in optional message fields.
func (t MessageType) Enum() *MessageType { return &t }

// MotorStateType describes the state of the robot motors.
type MotorStateType int32

const (
	MotorsUndefined MotorStateType = 0
	MotorsOn        MotorStateType = 1
	MotorsOff       MotorStateType = 2
)

// Enum returns a pointer to t, for use in optional message fields.
func (t MotorStateType) Enum() *MotorStateType { return &t }

// MciStateType describes the state of the motion control interface.
type MciStateType int32

const (
	MciUndefined MciStateType = 0
	MciError     MciStateType = 1
	MciStopped   MciStateType = 2
	MciRunning   MciStateType = 3
)

// Enum returns a pointer to t, for use in optional message fields.
func (t MciStateType) Enum() *MciStateType { return &t }

// RapidCtrlExecStateType describes the RAPID program execution state.
type RapidCtrlExecStateType int32

const (
	RapidUndefined RapidCtrlExecStateType = 0
	RapidStopped   RapidCtrlExecStateType = 1
	RapidRunning   RapidCtrlExecStateType = 2
)

// Enum returns a pointer to t, for use in optional message fields.
func (t RapidCtrlExecStateType) Enum() *RapidCtrlExecStateType { return &t }

// EgmHeader is the common header of all EGM messages.
type EgmHeader struct {
	// Seqno is a sequence number, used to detect lost messages.
	Seqno *uint32
	// Tm is the sender timestamp in milliseconds.
	Tm    *uint32
	Mtype *MessageType
}

// EgmCartesian is a cartesian position in millimeters.
type EgmCartesian struct {
	X float64
	Y float64
	Z float64
}

// EgmQuaternion is an orientation as a quaternion with scalar part U0.
type EgmQuaternion struct {
	U0 float64
	U1 float64
	U2 float64
	U3 float64
}

// EgmEuler is an orientation as X, Y, Z rotations in degrees.
//
// If a pose carries both a quaternion and Euler angles, the controller gives
// the Euler angles priority.
type EgmEuler struct {
	X float64
	Y float64
	Z float64
}

// EgmClock is a point in time as seconds and microseconds since an epoch
// chosen by the robot controller.
//
// Both fields wrap per unsigned 32-bit arithmetic, matching the controller's
// own representation. See clock.go for arithmetic.
type EgmClock struct {
	Sec  uint32
	Usec uint32
}

// EgmPose is a 6-DOF pose.
type EgmPose struct {
	Pos    *EgmCartesian
	Orient *EgmQuaternion
	Euler  *EgmEuler
}

// EgmCartesianSpeed is a cartesian speed reference in mm/s.
type EgmCartesianSpeed struct {
	Value []float64
}

// EgmJoints is a list of joint values in degrees.
type EgmJoints struct {
	Joints []float64
}

// EgmExternalJoints is a list of external joint values in degrees.
type EgmExternalJoints struct {
	Joints []float64
}

// EgmPlanned carries a position: streamed by the controller, or sent by the
// sensor as a guidance target.
type EgmPlanned struct {
	Joints         *EgmJoints
	Cartesian      *EgmPose
	ExternalJoints *EgmJoints
	Time           *EgmClock
}

// EgmSpeedRef is a speed reference accompanying a position target.
type EgmSpeedRef struct {
	Joints         *EgmJoints
	Cartesians     *EgmCartesianSpeed
	ExternalJoints *EgmJoints
}

// EgmPathCorr is a path correction measured by a sensor.
type EgmPathCorr struct {
	// Pos is the sensor measurement relative to the sensor tool frame.
	Pos EgmCartesian
	// Age is the measurement age in milliseconds.
	Age uint32
}

// EgmFeedBack is the measured state reported by the robot controller.
type EgmFeedBack struct {
	Joints         *EgmJoints
	Cartesian      *EgmPose
	ExternalJoints *EgmJoints
	Time           *EgmClock
}

// EgmMotorState reports the robot motor state.
type EgmMotorState struct {
	State MotorStateType
}

// EgmMciState reports the motion control interface state.
type EgmMciState struct {
	State MciStateType
}

// EgmRapidCtrlExecState reports the RAPID execution state.
type EgmRapidCtrlExecState struct {
	State RapidCtrlExecStateType
}

// EgmTestSignals carries controller test signals.
type EgmTestSignals struct {
	Signals []float64
}

// EgmMeasuredForce carries measured force values.
type EgmMeasuredForce struct {
	Force []float64
}

// EgmRobot is the status message sent by the robot controller during position
// guidance and position streaming.
type EgmRobot struct {
	Header            *EgmHeader
	FeedBack          *EgmFeedBack
	Planned           *EgmPlanned
	MotorState        *EgmMotorState
	MciState          *EgmMciState
	MciConvergenceMet *bool
	TestSignals       *EgmTestSignals
	RapidExecState    *EgmRapidCtrlExecState
	MeasuredForce     *EgmMeasuredForce
	UtilizationRate   *float64
}

// EgmSensor is the command message sent to the robot controller during
// position guidance.
type EgmSensor struct {
	Header   *EgmHeader
	Planned  *EgmPlanned
	SpeedRef *EgmSpeedRef
}

// EgmSensorPathCorr is the command message sent to the robot controller
// during path correction.
type EgmSensorPathCorr struct {
	Header   *EgmHeader
	PathCorr *EgmPathCorr
}
