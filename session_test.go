package abbegm

import (
	"errors"
	"math"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robohouse-delft/abbegm/egmpb"
)

var controllerAddr = &net.UDPAddr{IP: net.IPv4(192, 168, 125, 1), Port: 6510}

// statusDatagram builds an encoded status message with the given sequence
// number.
func statusDatagram(seq uint32) []byte {
	msg := &egmpb.EgmRobot{
		Header: egmpb.NewHeader(seq, seq*4, egmpb.MsgTypeData),
		FeedBack: &egmpb.EgmFeedBack{
			Joints: egmpb.JointsFromDegrees(0, 0, 0, 0, 0, float64(seq)),
			Time:   &egmpb.EgmClock{Sec: 1, Usec: 4000 * seq},
		},
	}
	return msg.Marshal()
}

func requireSeq(t *testing.T, msg *egmpb.EgmRobot, want uint32) {
	t.Helper()
	seq, ok := msg.SequenceNumber()
	require.True(t, ok, "status message has no sequence number")
	require.Equal(t, want, seq)
}

func validCommand() *egmpb.EgmSensor {
	pose := egmpb.NewPose(egmpb.CartesianFromMM(100, 0, 500), egmpb.QuaternionWXYZ(1, 0, 0, 0))
	return egmpb.PoseTarget(0, pose, egmpb.EgmClock{Sec: 1})
}

func TestRecvReturnsNewestQueued(t *testing.T) {
	sock := NewMockSocket()
	for seq := uint32(0); seq < 3; seq++ {
		sock.QueueDatagram(statusDatagram(seq), controllerAddr)
	}
	peer := &Peer{s: newSession(sock)}

	msg, err := peer.Recv(time.Second)
	require.NoError(t, err)
	requireSeq(t, msg, 2)
	assert.Equal(t, controllerAddr, peer.RemoteAddr())

	// A frame that arrived after the first receive is the only one a
	// subsequent receive may see.
	sock.QueueDatagram(statusDatagram(3), controllerAddr)
	msg, err = peer.Recv(time.Second)
	require.NoError(t, err)
	requireSeq(t, msg, 3)
}

func TestRecvSkipsCorruptBacklogEntries(t *testing.T) {
	sock := NewMockSocket()
	sock.QueueDatagram(statusDatagram(1), controllerAddr)
	sock.QueueDatagram([]byte{0xFF}, controllerAddr)
	sock.QueueDatagram(statusDatagram(3), controllerAddr)
	peer := &Peer{s: newSession(sock)}

	msg, err := peer.Recv(time.Second)
	require.NoError(t, err)
	requireSeq(t, msg, 3)
}

func TestRecvBlocksForLateArrival(t *testing.T) {
	sock := NewMockSocket()
	peer := &Peer{s: newSession(sock)}

	go func() {
		time.Sleep(50 * time.Millisecond)
		sock.Deliver(statusDatagram(9), controllerAddr)
	}()

	msg, err := peer.Recv(time.Second)
	require.NoError(t, err)
	requireSeq(t, msg, 9)
}

func TestRecvFallsThroughCorruptOnlyBacklog(t *testing.T) {
	sock := NewMockSocket()
	sock.QueueDatagram([]byte{0xFF}, controllerAddr)
	sock.QueueDatagram([]byte{0xFF}, controllerAddr)
	peer := &Peer{s: newSession(sock)}

	go func() {
		time.Sleep(50 * time.Millisecond)
		sock.Deliver(statusDatagram(4), controllerAddr)
	}()

	msg, err := peer.Recv(time.Second)
	require.NoError(t, err)
	requireSeq(t, msg, 4)
}

func TestRecvTimeout(t *testing.T) {
	sock := NewMockSocket()
	peer := &Peer{s: newSession(sock)}

	start := time.Now()
	_, err := peer.Recv(30 * time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRecvDecodeErrorOnBlockingRead(t *testing.T) {
	sock := NewMockSocket()
	peer := &Peer{s: newSession(sock)}

	go func() {
		time.Sleep(20 * time.Millisecond)
		sock.Deliver([]byte{0xFF}, controllerAddr)
	}()

	_, err := peer.Recv(time.Second)
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestSendBeforeReceiveFails(t *testing.T) {
	sock := NewMockSocket()
	peer := &Peer{s: newSession(sock)}

	err := peer.Send(validCommand())
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Empty(t, sock.Sent())
}

func TestSendStampsSequenceNumbers(t *testing.T) {
	sock := NewMockSocket()
	sock.QueueDatagram(statusDatagram(0), controllerAddr)
	peer := &Peer{s: newSession(sock)}

	_, err := peer.Recv(time.Second)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, peer.Send(validCommand()))
	}
	assert.Equal(t, uint32(3), peer.SequenceNumber())

	sent := sock.Sent()
	require.Len(t, sent, 3)
	for i, d := range sent {
		assert.Equal(t, controllerAddr, d.Addr)
		var cmd egmpb.EgmSensor
		require.NoError(t, cmd.Unmarshal(d.Data))
		require.NotNil(t, cmd.Header)
		require.NotNil(t, cmd.Header.Seqno)
		assert.Equal(t, uint32(i), *cmd.Header.Seqno)
	}
}

func TestSendRejectsNonFiniteMessage(t *testing.T) {
	sock := NewMockSocket()
	sock.QueueDatagram(statusDatagram(0), controllerAddr)
	peer := &Peer{s: newSession(sock)}

	_, err := peer.Recv(time.Second)
	require.NoError(t, err)

	bad := validCommand()
	bad.Planned.Cartesian.Pos.Y = math.NaN()
	err = peer.Send(bad)
	assert.ErrorIs(t, err, ErrInvalidMessage)
	assert.Empty(t, sock.Sent(), "invalid message must never reach the wire")
	assert.Equal(t, uint32(0), peer.SequenceNumber())
}

func TestSendShortWriteKeepsSequenceNumber(t *testing.T) {
	sock := NewMockSocket()
	sock.QueueDatagram(statusDatagram(0), controllerAddr)
	peer := &Peer{s: newSession(sock)}

	_, err := peer.Recv(time.Second)
	require.NoError(t, err)

	sock.ShortWrite = true
	err = peer.Send(validCommand())
	var incomplete *IncompleteSendError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, uint32(0), peer.SequenceNumber())

	// The next successful send reuses the failed number.
	sock.ShortWrite = false
	require.NoError(t, peer.Send(validCommand()))
	assert.Equal(t, uint32(1), peer.SequenceNumber())
}

func TestPurgeReadQueue(t *testing.T) {
	sock := NewMockSocket()
	sock.QueueDatagram(statusDatagram(1), controllerAddr)
	sock.QueueDatagram([]byte{0xFF}, controllerAddr)
	sock.QueueDatagram(statusDatagram(2), controllerAddr)
	sock.QueueDatagram(statusDatagram(3), controllerAddr)
	peer := &Peer{s: newSession(sock)}

	count, err := peer.PurgeReadQueue()
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, controllerAddr, peer.RemoteAddr())

	count, err = peer.PurgeReadQueue()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRecvPropagatesDrainError(t *testing.T) {
	sock := NewMockSocket()
	sock.TryErr = errors.New("socket gone")
	peer := &Peer{s: newSession(sock)}

	_, err := peer.Recv(time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "socket gone")
}
