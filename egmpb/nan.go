package egmpb

import "math"

// Non-finite validation. Sending a NaN or infinite target to a robot is an
// unconditional fault, so every message that can carry float fields reports
// whether any of them is non-finite. The peer refuses to transmit a command
// for which HasNaN returns true.

func nonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

func anyNonFinite(vs []float64) bool {
	for _, v := range vs {
		if nonFinite(v) {
			return true
		}
	}
	return false
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmCartesian) HasNaN() bool {
	return nonFinite(m.X) || nonFinite(m.Y) || nonFinite(m.Z)
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmQuaternion) HasNaN() bool {
	return nonFinite(m.U0) || nonFinite(m.U1) || nonFinite(m.U2) || nonFinite(m.U3)
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmEuler) HasNaN() bool {
	return nonFinite(m.X) || nonFinite(m.Y) || nonFinite(m.Z)
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmPose) HasNaN() bool {
	if m.Pos != nil && m.Pos.HasNaN() {
		return true
	}
	if m.Orient != nil && m.Orient.HasNaN() {
		return true
	}
	return m.Euler != nil && m.Euler.HasNaN()
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmCartesianSpeed) HasNaN() bool {
	return anyNonFinite(m.Value)
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmJoints) HasNaN() bool {
	return anyNonFinite(m.Joints)
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmExternalJoints) HasNaN() bool {
	return anyNonFinite(m.Joints)
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmPlanned) HasNaN() bool {
	if m.Joints != nil && m.Joints.HasNaN() {
		return true
	}
	if m.Cartesian != nil && m.Cartesian.HasNaN() {
		return true
	}
	return m.ExternalJoints != nil && m.ExternalJoints.HasNaN()
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmSpeedRef) HasNaN() bool {
	if m.Joints != nil && m.Joints.HasNaN() {
		return true
	}
	if m.Cartesians != nil && m.Cartesians.HasNaN() {
		return true
	}
	return m.ExternalJoints != nil && m.ExternalJoints.HasNaN()
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmPathCorr) HasNaN() bool {
	return m.Pos.HasNaN()
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmFeedBack) HasNaN() bool {
	if m.Joints != nil && m.Joints.HasNaN() {
		return true
	}
	if m.Cartesian != nil && m.Cartesian.HasNaN() {
		return true
	}
	return m.ExternalJoints != nil && m.ExternalJoints.HasNaN()
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmTestSignals) HasNaN() bool {
	return anyNonFinite(m.Signals)
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmMeasuredForce) HasNaN() bool {
	return anyNonFinite(m.Force)
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmSensor) HasNaN() bool {
	if m.Planned != nil && m.Planned.HasNaN() {
		return true
	}
	return m.SpeedRef != nil && m.SpeedRef.HasNaN()
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmSensorPathCorr) HasNaN() bool {
	return m.PathCorr != nil && m.PathCorr.HasNaN()
}

// HasNaN reports whether any value is NaN or infinite.
func (m *EgmRobot) HasNaN() bool {
	if m.FeedBack != nil && m.FeedBack.HasNaN() {
		return true
	}
	if m.Planned != nil && m.Planned.HasNaN() {
		return true
	}
	if m.MeasuredForce != nil && m.MeasuredForce.HasNaN() {
		return true
	}
	return m.UtilizationRate != nil && nonFinite(*m.UtilizationRate)
}
