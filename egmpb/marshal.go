package egmpb

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Encoding helpers shared by all messages. The controller sends repeated
// doubles unpacked, so the encoder does the same.

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendDoubles(b []byte, num protowire.Number, vs []float64) []byte {
	for _, v := range vs {
		b = appendDouble(b, num, v)
	}
	return b
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendEmbedded(b []byte, num protowire.Number, enc []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, enc)
}

// Marshal encodes the message for transmission to the robot controller.
func (m *EgmSensor) Marshal() []byte { return m.encode(nil) }

// Marshal encodes the message for transmission to the robot controller.
func (m *EgmSensorPathCorr) Marshal() []byte { return m.encode(nil) }

// Marshal encodes the message as the robot controller would send it.
func (m *EgmRobot) Marshal() []byte { return m.encode(nil) }

func (m *EgmHeader) encode(b []byte) []byte {
	if m.Seqno != nil {
		b = appendVarint(b, 1, uint64(*m.Seqno))
	}
	if m.Tm != nil {
		b = appendVarint(b, 2, uint64(*m.Tm))
	}
	if m.Mtype != nil {
		b = appendVarint(b, 3, uint64(*m.Mtype))
	}
	return b
}

func (m *EgmCartesian) encode(b []byte) []byte {
	b = appendDouble(b, 1, m.X)
	b = appendDouble(b, 2, m.Y)
	return appendDouble(b, 3, m.Z)
}

func (m *EgmQuaternion) encode(b []byte) []byte {
	b = appendDouble(b, 1, m.U0)
	b = appendDouble(b, 2, m.U1)
	b = appendDouble(b, 3, m.U2)
	return appendDouble(b, 4, m.U3)
}

func (m *EgmEuler) encode(b []byte) []byte {
	b = appendDouble(b, 1, m.X)
	b = appendDouble(b, 2, m.Y)
	return appendDouble(b, 3, m.Z)
}

func (m *EgmClock) encode(b []byte) []byte {
	b = appendVarint(b, 1, uint64(m.Sec))
	return appendVarint(b, 2, uint64(m.Usec))
}

func (m *EgmPose) encode(b []byte) []byte {
	if m.Pos != nil {
		b = appendEmbedded(b, 1, m.Pos.encode(nil))
	}
	if m.Orient != nil {
		b = appendEmbedded(b, 2, m.Orient.encode(nil))
	}
	if m.Euler != nil {
		b = appendEmbedded(b, 3, m.Euler.encode(nil))
	}
	return b
}

func (m *EgmCartesianSpeed) encode(b []byte) []byte {
	return appendDoubles(b, 1, m.Value)
}

func (m *EgmJoints) encode(b []byte) []byte {
	return appendDoubles(b, 1, m.Joints)
}

func (m *EgmExternalJoints) encode(b []byte) []byte {
	return appendDoubles(b, 1, m.Joints)
}

func (m *EgmPlanned) encode(b []byte) []byte {
	if m.Joints != nil {
		b = appendEmbedded(b, 1, m.Joints.encode(nil))
	}
	if m.Cartesian != nil {
		b = appendEmbedded(b, 2, m.Cartesian.encode(nil))
	}
	if m.ExternalJoints != nil {
		b = appendEmbedded(b, 3, m.ExternalJoints.encode(nil))
	}
	if m.Time != nil {
		b = appendEmbedded(b, 4, m.Time.encode(nil))
	}
	return b
}

func (m *EgmSpeedRef) encode(b []byte) []byte {
	if m.Joints != nil {
		b = appendEmbedded(b, 1, m.Joints.encode(nil))
	}
	if m.Cartesians != nil {
		b = appendEmbedded(b, 2, m.Cartesians.encode(nil))
	}
	if m.ExternalJoints != nil {
		b = appendEmbedded(b, 3, m.ExternalJoints.encode(nil))
	}
	return b
}

func (m *EgmPathCorr) encode(b []byte) []byte {
	b = appendEmbedded(b, 1, m.Pos.encode(nil))
	return appendVarint(b, 2, uint64(m.Age))
}

func (m *EgmFeedBack) encode(b []byte) []byte {
	if m.Joints != nil {
		b = appendEmbedded(b, 1, m.Joints.encode(nil))
	}
	if m.Cartesian != nil {
		b = appendEmbedded(b, 2, m.Cartesian.encode(nil))
	}
	if m.ExternalJoints != nil {
		b = appendEmbedded(b, 3, m.ExternalJoints.encode(nil))
	}
	if m.Time != nil {
		b = appendEmbedded(b, 4, m.Time.encode(nil))
	}
	return b
}

func (m *EgmMotorState) encode(b []byte) []byte {
	return appendVarint(b, 1, uint64(m.State))
}

func (m *EgmMciState) encode(b []byte) []byte {
	return appendVarint(b, 1, uint64(m.State))
}

func (m *EgmRapidCtrlExecState) encode(b []byte) []byte {
	return appendVarint(b, 1, uint64(m.State))
}

func (m *EgmTestSignals) encode(b []byte) []byte {
	return appendDoubles(b, 1, m.Signals)
}

func (m *EgmMeasuredForce) encode(b []byte) []byte {
	return appendDoubles(b, 1, m.Force)
}

func (m *EgmRobot) encode(b []byte) []byte {
	if m.Header != nil {
		b = appendEmbedded(b, 1, m.Header.encode(nil))
	}
	if m.FeedBack != nil {
		b = appendEmbedded(b, 2, m.FeedBack.encode(nil))
	}
	if m.Planned != nil {
		b = appendEmbedded(b, 3, m.Planned.encode(nil))
	}
	if m.MotorState != nil {
		b = appendEmbedded(b, 4, m.MotorState.encode(nil))
	}
	if m.MciState != nil {
		b = appendEmbedded(b, 5, m.MciState.encode(nil))
	}
	if m.MciConvergenceMet != nil {
		b = appendVarint(b, 6, protowire.EncodeBool(*m.MciConvergenceMet))
	}
	if m.TestSignals != nil {
		b = appendEmbedded(b, 7, m.TestSignals.encode(nil))
	}
	if m.RapidExecState != nil {
		b = appendEmbedded(b, 8, m.RapidExecState.encode(nil))
	}
	if m.MeasuredForce != nil {
		b = appendEmbedded(b, 9, m.MeasuredForce.encode(nil))
	}
	if m.UtilizationRate != nil {
		b = appendDouble(b, 10, *m.UtilizationRate)
	}
	return b
}

func (m *EgmSensor) encode(b []byte) []byte {
	if m.Header != nil {
		b = appendEmbedded(b, 1, m.Header.encode(nil))
	}
	if m.Planned != nil {
		b = appendEmbedded(b, 2, m.Planned.encode(nil))
	}
	if m.SpeedRef != nil {
		b = appendEmbedded(b, 3, m.SpeedRef.encode(nil))
	}
	return b
}

func (m *EgmSensorPathCorr) encode(b []byte) []byte {
	if m.Header != nil {
		b = appendEmbedded(b, 1, m.Header.encode(nil))
	}
	if m.PathCorr != nil {
		b = appendEmbedded(b, 2, m.PathCorr.encode(nil))
	}
	return b
}
