package egmpb

// Read accessors for the robot status message. All of them tolerate missing
// optional sub-messages and report absence through the second return value.

// SequenceNumber returns the header sequence number.
func (m *EgmRobot) SequenceNumber() (uint32, bool) {
	if m.Header == nil || m.Header.Seqno == nil {
		return 0, false
	}
	return *m.Header.Seqno, true
}

// TimestampMS returns the header timestamp in milliseconds.
func (m *EgmRobot) TimestampMS() (uint32, bool) {
	if m.Header == nil || m.Header.Tm == nil {
		return 0, false
	}
	return *m.Header.Tm, true
}

// FeedbackJoints returns the measured joint values in degrees.
func (m *EgmRobot) FeedbackJoints() ([]float64, bool) {
	if m.FeedBack == nil || m.FeedBack.Joints == nil {
		return nil, false
	}
	return m.FeedBack.Joints.Joints, true
}

// FeedbackPose returns the measured 6-DOF pose.
func (m *EgmRobot) FeedbackPose() (*EgmPose, bool) {
	if m.FeedBack == nil || m.FeedBack.Cartesian == nil {
		return nil, false
	}
	return m.FeedBack.Cartesian, true
}

// FeedbackExternalJoints returns the measured external joint values.
func (m *EgmRobot) FeedbackExternalJoints() ([]float64, bool) {
	if m.FeedBack == nil || m.FeedBack.ExternalJoints == nil {
		return nil, false
	}
	return m.FeedBack.ExternalJoints.Joints, true
}

// FeedbackTime returns the controller clock of the measured state.
func (m *EgmRobot) FeedbackTime() (EgmClock, bool) {
	if m.FeedBack == nil || m.FeedBack.Time == nil {
		return EgmClock{}, false
	}
	return *m.FeedBack.Time, true
}

// PlannedJoints returns the planned joint values in degrees.
func (m *EgmRobot) PlannedJoints() ([]float64, bool) {
	if m.Planned == nil || m.Planned.Joints == nil {
		return nil, false
	}
	return m.Planned.Joints.Joints, true
}

// PlannedPose returns the planned 6-DOF pose.
func (m *EgmRobot) PlannedPose() (*EgmPose, bool) {
	if m.Planned == nil || m.Planned.Cartesian == nil {
		return nil, false
	}
	return m.Planned.Cartesian, true
}

// PlannedExternalJoints returns the planned external joint values.
func (m *EgmRobot) PlannedExternalJoints() ([]float64, bool) {
	if m.Planned == nil || m.Planned.ExternalJoints == nil {
		return nil, false
	}
	return m.Planned.ExternalJoints.Joints, true
}

// PlannedTime returns the controller clock of the planned state.
func (m *EgmRobot) PlannedTime() (EgmClock, bool) {
	if m.Planned == nil || m.Planned.Time == nil {
		return EgmClock{}, false
	}
	return *m.Planned.Time, true
}

// MotorsEnabled reports whether the robot motors are on.
// The second return value is false if the controller reported no state or an
// undefined state.
func (m *EgmRobot) MotorsEnabled() (bool, bool) {
	if m.MotorState == nil {
		return false, false
	}
	switch m.MotorState.State {
	case MotorsOn:
		return true, true
	case MotorsOff:
		return false, true
	default:
		return false, false
	}
}

// RapidRunning reports whether the RAPID program is executing.
// The second return value is false if the controller reported no state or an
// undefined state.
func (m *EgmRobot) RapidRunning() (bool, bool) {
	if m.RapidExecState == nil {
		return false, false
	}
	switch m.RapidExecState.State {
	case RapidRunning:
		return true, true
	case RapidStopped:
		return false, true
	default:
		return false, false
	}
}

// TestSignalValues returns the controller test signals.
func (m *EgmRobot) TestSignalValues() ([]float64, bool) {
	if m.TestSignals == nil {
		return nil, false
	}
	return m.TestSignals.Signals, true
}

// MeasuredForceValues returns the measured force values.
func (m *EgmRobot) MeasuredForceValues() ([]float64, bool) {
	if m.MeasuredForce == nil {
		return nil, false
	}
	return m.MeasuredForce.Force, true
}
