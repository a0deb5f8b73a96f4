package abbegm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/robohouse-delft/abbegm/egmpb"
)

// aLongTimeAgo is a non-zero time far in the past, used to force pending
// reads to fail immediately.
var aLongTimeAgo = time.Unix(1, 0)

// AsyncPeer is a context-driven EGM peer. It shares the blocking peer's
// receive semantics, but suspends in a cancellable way: a Recv aborted
// through its context returns promptly and leaves the socket usable.
//
// An AsyncPeer must not be used from multiple goroutines concurrently. It
// owns its socket exclusively; Close releases it.
type AsyncPeer struct {
	s *session
}

// BindAsync creates an async peer on a newly bound UDP socket. Binding
// itself never blocks; this constructor is safe to call from any context.
//
// The controller address is learned from the first received datagram, so
// Send fails with ErrNotConnected until a status message has been received.
func BindAsync(addr string) (*AsyncPeer, error) {
	s, err := bindSession(addr)
	if err != nil {
		return nil, err
	}
	return &AsyncPeer{s: s}, nil
}

// BindAsyncContext is like BindAsync but threads ctx through address
// resolution and socket creation. The resulting endpoint state is identical:
// bound, no controller address known yet.
func BindAsyncContext(ctx context.Context, addr string) (*AsyncPeer, error) {
	var lc net.ListenConfig
	pc, err := lc.ListenPacket(ctx, "udp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	conn, ok := pc.(*net.UDPConn)
	if !ok {
		pc.Close()
		return nil, &BindError{Addr: addr, Err: fmt.Errorf("unexpected connection type %T", pc)}
	}
	sock, err := newUDPSocket(conn)
	if err != nil {
		conn.Close()
		return nil, &BindError{Addr: addr, Err: err}
	}
	return &AsyncPeer{s: newSession(sock)}, nil
}

// Recv returns the most recent status message.
//
// The queued backlog is drained without blocking first, keeping only the
// newest decodable message. If nothing was queued, Recv suspends until one
// datagram arrives, ctx is cancelled, or the ctx deadline expires (reported
// as ErrTimeout). Cancellation aborts the pending read without lasting
// effect on the socket.
func (p *AsyncPeer) Recv(ctx context.Context) (*egmpb.EgmRobot, error) {
	msg, err := p.s.recvQueued()
	if err != nil || msg != nil {
		return msg, err
	}
	if err := ctx.Err(); err != nil {
		return nil, p.ctxError(ctx)
	}

	var deadline time.Time
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := p.s.sock.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("setting receive deadline: %w", err)
	}

	// Watch ctx while blocked in the read; a cancellation pokes the read
	// deadline to wake it up.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-ctx.Done():
			p.s.sock.SetReadDeadline(aLongTimeAgo)
		case <-stop:
		}
	}()

	msg, err = p.s.recvOne()
	close(stop)
	<-done

	if ctxErr := ctx.Err(); ctxErr != nil {
		// Undo the wake-up poke so the next operation starts clean.
		p.s.sock.SetReadDeadline(time.Time{})
		return nil, p.ctxError(ctx)
	}
	return msg, err
}

func (p *AsyncPeer) ctxError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("receiving status message: %w", ErrTimeout)
	}
	return ctx.Err()
}

// Send transmits one command message to the most recently observed
// controller address, stamping the peer's sequence number. UDP sends do not
// suspend; ctx is only checked for prior cancellation.
//
// Send fails with ErrNotConnected before the first received status message,
// and with ErrInvalidMessage if msg contains NaN or infinite values; in both
// cases nothing is transmitted.
func (p *AsyncPeer) Send(ctx context.Context, msg *egmpb.EgmSensor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.s.send(msg)
}

// PurgeReadQueue discards all queued datagrams without blocking and returns
// the number discarded.
func (p *AsyncPeer) PurgeReadQueue() (int, error) {
	return p.s.purge()
}

// SequenceNumber returns the sequence number the next successful Send will
// stamp.
func (p *AsyncPeer) SequenceNumber() uint32 {
	return p.s.seq
}

// LocalAddr returns the bound local address.
func (p *AsyncPeer) LocalAddr() net.Addr {
	return p.s.sock.LocalAddr()
}

// RemoteAddr returns the most recently observed controller address, or nil
// if no datagram has been received yet.
func (p *AsyncPeer) RemoteAddr() *net.UDPAddr {
	return p.s.remote
}

// Close releases the socket. A Recv blocked in another goroutine returns
// with an error.
func (p *AsyncPeer) Close() error {
	return p.s.sock.Close()
}
