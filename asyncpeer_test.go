package abbegm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncRecvReturnsNewestQueued(t *testing.T) {
	sock := NewMockSocket()
	for seq := uint32(0); seq < 3; seq++ {
		sock.QueueDatagram(statusDatagram(seq), controllerAddr)
	}
	peer := &AsyncPeer{s: newSession(sock)}

	msg, err := peer.Recv(context.Background())
	require.NoError(t, err)
	requireSeq(t, msg, 2)
}

func TestAsyncRecvCancellation(t *testing.T) {
	sock := NewMockSocket()
	peer := &AsyncPeer{s: newSession(sock)}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := peer.Recv(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "cancellation must unblock promptly")

	// The socket stays usable after an aborted receive.
	go func() {
		time.Sleep(20 * time.Millisecond)
		sock.Deliver(statusDatagram(7), controllerAddr)
	}()
	msg, err := peer.Recv(context.Background())
	require.NoError(t, err)
	requireSeq(t, msg, 7)
}

func TestAsyncRecvDeadline(t *testing.T) {
	sock := NewMockSocket()
	peer := &AsyncPeer{s: newSession(sock)}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := peer.Recv(ctx)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestAsyncRecvDrainsBeforeContextCheck(t *testing.T) {
	sock := NewMockSocket()
	sock.QueueDatagram(statusDatagram(5), controllerAddr)
	peer := &AsyncPeer{s: newSession(sock)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A queued message is already available, so no suspension is needed and
	// the cancelled context does not get in the way.
	msg, err := peer.Recv(ctx)
	require.NoError(t, err)
	requireSeq(t, msg, 5)
}

func TestAsyncSendChecksContext(t *testing.T) {
	sock := NewMockSocket()
	sock.QueueDatagram(statusDatagram(0), controllerAddr)
	peer := &AsyncPeer{s: newSession(sock)}

	_, err := peer.Recv(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = peer.Send(ctx, validCommand())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sock.Sent())

	require.NoError(t, peer.Send(context.Background(), validCommand()))
	assert.Equal(t, uint32(1), peer.SequenceNumber())
}

func TestAsyncSendBeforeReceiveFails(t *testing.T) {
	sock := NewMockSocket()
	peer := &AsyncPeer{s: newSession(sock)}

	err := peer.Send(context.Background(), validCommand())
	assert.ErrorIs(t, err, ErrNotConnected)
}
