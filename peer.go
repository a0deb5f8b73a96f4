package abbegm

import (
	"fmt"
	"net"
	"time"

	"github.com/robohouse-delft/abbegm/egmpb"
)

// Peer is a blocking EGM peer for exchanging messages with one robot
// controller over UDP.
//
// A Peer must not be used from multiple goroutines concurrently. It owns its
// socket exclusively; Close releases it.
type Peer struct {
	s *session
}

// Bind creates a peer on a newly bound UDP socket.
//
// The controller address is learned from the first received datagram, so
// Send fails with ErrNotConnected until a status message has been received.
func Bind(addr string) (*Peer, error) {
	s, err := bindSession(addr)
	if err != nil {
		return nil, err
	}
	return &Peer{s: s}, nil
}

// Recv returns the most recent status message.
//
// Any backlog queued on the socket is drained without blocking and only the
// newest decodable message is kept, so staleness is bounded to one protocol
// cycle no matter how far the caller fell behind. If nothing was queued,
// Recv blocks for at most timeout waiting for one datagram and fails with
// ErrTimeout when none arrives. A timeout of zero or less blocks
// indefinitely. The timeout never applies to the drain, which is immediate.
func (p *Peer) Recv(timeout time.Duration) (*egmpb.EgmRobot, error) {
	msg, err := p.s.recvQueued()
	if err != nil || msg != nil {
		return msg, err
	}

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if err := p.s.sock.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("setting receive deadline: %w", err)
	}
	return p.s.recvOne()
}

// Send transmits one command message to the most recently observed
// controller address. The message header is stamped with the peer's
// sequence number, which advances by one per successful send.
//
// Send fails with ErrNotConnected before the first received status message,
// and with ErrInvalidMessage if msg contains NaN or infinite values; in both
// cases nothing is transmitted.
func (p *Peer) Send(msg *egmpb.EgmSensor) error {
	return p.s.send(msg)
}

// PurgeReadQueue discards all queued datagrams without blocking and returns
// the number discarded. Useful to ignore old messages when the socket has
// been left unpolled for a while.
func (p *Peer) PurgeReadQueue() (int, error) {
	return p.s.purge()
}

// SequenceNumber returns the sequence number the next successful Send will
// stamp. The counter is peer-local, for the caller's correlation only; it is
// not required to match the controller's counters.
func (p *Peer) SequenceNumber() uint32 {
	return p.s.seq
}

// LocalAddr returns the bound local address.
func (p *Peer) LocalAddr() net.Addr {
	return p.s.sock.LocalAddr()
}

// RemoteAddr returns the most recently observed controller address, or nil
// if no datagram has been received yet.
func (p *Peer) RemoteAddr() *net.UDPAddr {
	return p.s.remote
}

// Close releases the socket.
func (p *Peer) Close() error {
	return p.s.sock.Close()
}
