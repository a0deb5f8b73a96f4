package egmpb

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

type unmarshaler interface {
	Unmarshal(data []byte) error
}

func consumeVarint(data []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeDouble(data []byte) (float64, int, error) {
	v, n := protowire.ConsumeFixed64(data)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return math.Float64frombits(v), n, nil
}

func consumeEmbedded(data []byte, m unmarshaler) (int, error) {
	v, n := protowire.ConsumeBytes(data)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, m.Unmarshal(v)
}

// consumeDoubles appends one or more values of a repeated double field,
// accepting both the unpacked encoding used by the controller and the packed
// encoding some senders produce.
func consumeDoubles(vs []float64, data []byte, num protowire.Number, typ protowire.Type) ([]float64, int, error) {
	switch typ {
	case protowire.Fixed64Type:
		v, n, err := consumeDouble(data)
		if err != nil {
			return vs, 0, err
		}
		return append(vs, v), n, nil
	case protowire.BytesType:
		pk, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return vs, 0, protowire.ParseError(n)
		}
		for len(pk) > 0 {
			v, vn, err := consumeDouble(pk)
			if err != nil {
				return vs, 0, err
			}
			vs = append(vs, v)
			pk = pk[vn:]
		}
		return vs, n, nil
	default:
		return vs, 0, fmt.Errorf("repeated double field %d: unexpected wire type %d", num, typ)
	}
}

func skipField(data []byte, num protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, data)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmHeader) Unmarshal(data []byte) error {
	*m = EgmHeader{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			var v uint64
			v, n, err = consumeVarint(data)
			m.Seqno = proto.Uint32(uint32(v))
		case num == 2 && typ == protowire.VarintType:
			var v uint64
			v, n, err = consumeVarint(data)
			m.Tm = proto.Uint32(uint32(v))
		case num == 3 && typ == protowire.VarintType:
			var v uint64
			v, n, err = consumeVarint(data)
			m.Mtype = MessageType(v).Enum()
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmCartesian) Unmarshal(data []byte) error {
	*m = EgmCartesian{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.Fixed64Type:
			m.X, n, err = consumeDouble(data)
		case num == 2 && typ == protowire.Fixed64Type:
			m.Y, n, err = consumeDouble(data)
		case num == 3 && typ == protowire.Fixed64Type:
			m.Z, n, err = consumeDouble(data)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmQuaternion) Unmarshal(data []byte) error {
	*m = EgmQuaternion{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.Fixed64Type:
			m.U0, n, err = consumeDouble(data)
		case num == 2 && typ == protowire.Fixed64Type:
			m.U1, n, err = consumeDouble(data)
		case num == 3 && typ == protowire.Fixed64Type:
			m.U2, n, err = consumeDouble(data)
		case num == 4 && typ == protowire.Fixed64Type:
			m.U3, n, err = consumeDouble(data)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmEuler) Unmarshal(data []byte) error {
	*m = EgmEuler{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.Fixed64Type:
			m.X, n, err = consumeDouble(data)
		case num == 2 && typ == protowire.Fixed64Type:
			m.Y, n, err = consumeDouble(data)
		case num == 3 && typ == protowire.Fixed64Type:
			m.Z, n, err = consumeDouble(data)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
//
// Values beyond 32 bits are truncated; the controller clock never reaches
// them within a realistic controller uptime.
func (m *EgmClock) Unmarshal(data []byte) error {
	*m = EgmClock{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.VarintType:
			var v uint64
			v, n, err = consumeVarint(data)
			m.Sec = uint32(v)
		case num == 2 && typ == protowire.VarintType:
			var v uint64
			v, n, err = consumeVarint(data)
			m.Usec = uint32(v)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmPose) Unmarshal(data []byte) error {
	*m = EgmPose{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Pos = new(EgmCartesian)
			n, err = consumeEmbedded(data, m.Pos)
		case num == 2 && typ == protowire.BytesType:
			m.Orient = new(EgmQuaternion)
			n, err = consumeEmbedded(data, m.Orient)
		case num == 3 && typ == protowire.BytesType:
			m.Euler = new(EgmEuler)
			n, err = consumeEmbedded(data, m.Euler)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmCartesianSpeed) Unmarshal(data []byte) error {
	*m = EgmCartesianSpeed{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		if num == 1 {
			m.Value, n, err = consumeDoubles(m.Value, data, num, typ)
		} else {
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmJoints) Unmarshal(data []byte) error {
	*m = EgmJoints{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		if num == 1 {
			m.Joints, n, err = consumeDoubles(m.Joints, data, num, typ)
		} else {
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmExternalJoints) Unmarshal(data []byte) error {
	*m = EgmExternalJoints{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		if num == 1 {
			m.Joints, n, err = consumeDoubles(m.Joints, data, num, typ)
		} else {
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmPlanned) Unmarshal(data []byte) error {
	*m = EgmPlanned{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Joints = new(EgmJoints)
			n, err = consumeEmbedded(data, m.Joints)
		case num == 2 && typ == protowire.BytesType:
			m.Cartesian = new(EgmPose)
			n, err = consumeEmbedded(data, m.Cartesian)
		case num == 3 && typ == protowire.BytesType:
			m.ExternalJoints = new(EgmJoints)
			n, err = consumeEmbedded(data, m.ExternalJoints)
		case num == 4 && typ == protowire.BytesType:
			m.Time = new(EgmClock)
			n, err = consumeEmbedded(data, m.Time)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmSpeedRef) Unmarshal(data []byte) error {
	*m = EgmSpeedRef{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Joints = new(EgmJoints)
			n, err = consumeEmbedded(data, m.Joints)
		case num == 2 && typ == protowire.BytesType:
			m.Cartesians = new(EgmCartesianSpeed)
			n, err = consumeEmbedded(data, m.Cartesians)
		case num == 3 && typ == protowire.BytesType:
			m.ExternalJoints = new(EgmJoints)
			n, err = consumeEmbedded(data, m.ExternalJoints)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmPathCorr) Unmarshal(data []byte) error {
	*m = EgmPathCorr{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			n, err = consumeEmbedded(data, &m.Pos)
		case num == 2 && typ == protowire.VarintType:
			var v uint64
			v, n, err = consumeVarint(data)
			m.Age = uint32(v)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmFeedBack) Unmarshal(data []byte) error {
	*m = EgmFeedBack{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Joints = new(EgmJoints)
			n, err = consumeEmbedded(data, m.Joints)
		case num == 2 && typ == protowire.BytesType:
			m.Cartesian = new(EgmPose)
			n, err = consumeEmbedded(data, m.Cartesian)
		case num == 3 && typ == protowire.BytesType:
			m.ExternalJoints = new(EgmJoints)
			n, err = consumeEmbedded(data, m.ExternalJoints)
		case num == 4 && typ == protowire.BytesType:
			m.Time = new(EgmClock)
			n, err = consumeEmbedded(data, m.Time)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmMotorState) Unmarshal(data []byte) error {
	*m = EgmMotorState{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		if num == 1 && typ == protowire.VarintType {
			var v uint64
			v, n, err = consumeVarint(data)
			m.State = MotorStateType(v)
		} else {
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmMciState) Unmarshal(data []byte) error {
	*m = EgmMciState{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		if num == 1 && typ == protowire.VarintType {
			var v uint64
			v, n, err = consumeVarint(data)
			m.State = MciStateType(v)
		} else {
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmRapidCtrlExecState) Unmarshal(data []byte) error {
	*m = EgmRapidCtrlExecState{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		if num == 1 && typ == protowire.VarintType {
			var v uint64
			v, n, err = consumeVarint(data)
			m.State = RapidCtrlExecStateType(v)
		} else {
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmTestSignals) Unmarshal(data []byte) error {
	*m = EgmTestSignals{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		if num == 1 {
			m.Signals, n, err = consumeDoubles(m.Signals, data, num, typ)
		} else {
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a datagram payload into m, replacing its contents.
func (m *EgmMeasuredForce) Unmarshal(data []byte) error {
	*m = EgmMeasuredForce{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		if num == 1 {
			m.Force, n, err = consumeDoubles(m.Force, data, num, typ)
		} else {
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a status datagram into m, replacing its contents.
func (m *EgmRobot) Unmarshal(data []byte) error {
	*m = EgmRobot{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Header = new(EgmHeader)
			n, err = consumeEmbedded(data, m.Header)
		case num == 2 && typ == protowire.BytesType:
			m.FeedBack = new(EgmFeedBack)
			n, err = consumeEmbedded(data, m.FeedBack)
		case num == 3 && typ == protowire.BytesType:
			m.Planned = new(EgmPlanned)
			n, err = consumeEmbedded(data, m.Planned)
		case num == 4 && typ == protowire.BytesType:
			m.MotorState = new(EgmMotorState)
			n, err = consumeEmbedded(data, m.MotorState)
		case num == 5 && typ == protowire.BytesType:
			m.MciState = new(EgmMciState)
			n, err = consumeEmbedded(data, m.MciState)
		case num == 6 && typ == protowire.VarintType:
			var v uint64
			v, n, err = consumeVarint(data)
			m.MciConvergenceMet = proto.Bool(protowire.DecodeBool(v))
		case num == 7 && typ == protowire.BytesType:
			m.TestSignals = new(EgmTestSignals)
			n, err = consumeEmbedded(data, m.TestSignals)
		case num == 8 && typ == protowire.BytesType:
			m.RapidExecState = new(EgmRapidCtrlExecState)
			n, err = consumeEmbedded(data, m.RapidExecState)
		case num == 9 && typ == protowire.BytesType:
			m.MeasuredForce = new(EgmMeasuredForce)
			n, err = consumeEmbedded(data, m.MeasuredForce)
		case num == 10 && typ == protowire.Fixed64Type:
			var v float64
			v, n, err = consumeDouble(data)
			m.UtilizationRate = proto.Float64(v)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a command datagram into m, replacing its contents.
func (m *EgmSensor) Unmarshal(data []byte) error {
	*m = EgmSensor{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Header = new(EgmHeader)
			n, err = consumeEmbedded(data, m.Header)
		case num == 2 && typ == protowire.BytesType:
			m.Planned = new(EgmPlanned)
			n, err = consumeEmbedded(data, m.Planned)
		case num == 3 && typ == protowire.BytesType:
			m.SpeedRef = new(EgmSpeedRef)
			n, err = consumeEmbedded(data, m.SpeedRef)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Unmarshal decodes a path-correction datagram into m, replacing its contents.
func (m *EgmSensorPathCorr) Unmarshal(data []byte) error {
	*m = EgmSensorPathCorr{}
	for len(data) > 0 {
		num, typ, tn := protowire.ConsumeTag(data)
		if tn < 0 {
			return protowire.ParseError(tn)
		}
		data = data[tn:]

		var n int
		var err error
		switch {
		case num == 1 && typ == protowire.BytesType:
			m.Header = new(EgmHeader)
			n, err = consumeEmbedded(data, m.Header)
		case num == 2 && typ == protowire.BytesType:
			m.PathCorr = new(EgmPathCorr)
			n, err = consumeEmbedded(data, m.PathCorr)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
