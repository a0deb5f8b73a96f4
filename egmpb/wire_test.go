package egmpb

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
)

func TestHeaderWireFormat(t *testing.T) {
	h := CorrectionHeader(1, 2)
	got := h.encode(nil)
	want := []byte{
		0x08, 0x01, // seqno = 1
		0x10, 0x02, // tm = 2
		0x18, 0x03, // mtype = MSGTYPE_CORRECTION
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("header encoding mismatch (-want +got):\n%s", diff)
	}
}

func TestClockWireFormat(t *testing.T) {
	c := EgmClock{Sec: 1, Usec: 500_000}
	got := c.encode(nil)
	want := []byte{
		0x08, 0x01, // sec = 1
		0x10, 0xA0, 0xC2, 0x1E, // usec = 500000
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clock encoding mismatch (-want +got):\n%s", diff)
	}
}

func TestCartesianWireFormat(t *testing.T) {
	le := func(v float64) []byte {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, math.Float64bits(v))
		return b
	}
	m := CartesianFromMM(1, 2, 3)
	got := m.encode(nil)
	var want []byte
	want = append(want, 0x09)
	want = append(want, le(1)...)
	want = append(want, 0x11)
	want = append(want, le(2)...)
	want = append(want, 0x19)
	want = append(want, le(3)...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cartesian encoding mismatch (-want +got):\n%s", diff)
	}
}

func TestSensorRoundTrip(t *testing.T) {
	msg := PoseTargetWithSpeed(7,
		NewPose(CartesianFromMM(100, -50, 812.5), QuaternionWXYZ(0.7071, 0, 0.7071, 0)),
		CartesianSpeedMM(10, 0, -10),
		EgmClock{Sec: 1234, Usec: 567_890},
	)

	var decoded EgmSensor
	if err := decoded.Unmarshal(msg.Marshal()); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if diff := cmp.Diff(msg, &decoded); diff != "" {
		t.Errorf("round trip mismatch (-sent +decoded):\n%s", diff)
	}
}

func TestRobotRoundTrip(t *testing.T) {
	msg := &EgmRobot{
		Header: NewHeader(42, 123_456, MsgTypeData),
		FeedBack: &EgmFeedBack{
			Joints:    JointsFromDegrees(0, 10.5, -20.25, 30, 40, 50),
			Cartesian: NewPose(CartesianFromMM(1, 2, 3), QuaternionWXYZ(1, 0, 0, 0)),
			Time:      &EgmClock{Sec: 100, Usec: 250_000},
		},
		Planned: &EgmPlanned{
			Joints: JointsFromDegrees(0, 10, -20, 30, 40, 50),
			Time:   &EgmClock{Sec: 100, Usec: 254_000},
		},
		MotorState:        &EgmMotorState{State: MotorsOn},
		MciState:          &EgmMciState{State: MciRunning},
		MciConvergenceMet: proto.Bool(true),
		RapidExecState:    &EgmRapidCtrlExecState{State: RapidRunning},
		MeasuredForce:     &EgmMeasuredForce{Force: []float64{0.5, -0.25, 12}},
		UtilizationRate:   proto.Float64(0.25),
	}

	var decoded EgmRobot
	if err := decoded.Unmarshal(msg.Marshal()); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if diff := cmp.Diff(msg, &decoded); diff != "" {
		t.Errorf("round trip mismatch (-sent +decoded):\n%s", diff)
	}
}

func TestPathCorrRoundTrip(t *testing.T) {
	msg := PathCorrection(3, 777, CartesianFromMM(0.5, -0.5, 0), 12)

	var decoded EgmSensorPathCorr
	if err := decoded.Unmarshal(msg.Marshal()); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if diff := cmp.Diff(msg, &decoded); diff != "" {
		t.Errorf("round trip mismatch (-sent +decoded):\n%s", diff)
	}
}

// The controller sends repeated doubles unpacked, but other senders may pack
// them; the decoder accepts both.
func TestJointsAcceptsPackedEncoding(t *testing.T) {
	le := func(v float64) []byte {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, math.Float64bits(v))
		return b
	}
	packed := []byte{0x0A, 16}
	packed = append(packed, le(1.5)...)
	packed = append(packed, le(-2.5)...)

	var m EgmJoints
	if err := m.Unmarshal(packed); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if diff := cmp.Diff([]float64{1.5, -2.5}, m.Joints); diff != "" {
		t.Errorf("packed joints mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	data := CorrectionHeader(9, 10).encode(nil)
	// Unknown varint field 15.
	data = append(data, 0x78, 0x2A)

	var h EgmHeader
	if err := h.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if h.Seqno == nil || *h.Seqno != 9 {
		t.Errorf("Seqno = %v, want 9", h.Seqno)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated tag", []byte{0xFF}},
		{"truncated varint", []byte{0x08, 0x80}},
		{"truncated embedded message", []byte{0x0A, 0x05, 0x01}},
		{"truncated double", []byte{0x09, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m EgmRobot
			if err := m.Unmarshal(tt.data); err == nil {
				t.Errorf("Unmarshal(%x) succeeded, want error", tt.data)
			}
		})
	}
}
