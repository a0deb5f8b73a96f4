package abbegm

import (
	"errors"
	"fmt"
	"net"
	"os"

	"google.golang.org/protobuf/proto"

	"github.com/robohouse-delft/abbegm/egmpb"
)

// session owns the socket, the learned controller address and the sequence
// counter. It implements the freshness read policy shared by both peer
// flavours: drain everything queued without blocking, keep the newest
// decodable status message, and only fall back to a single blocking read
// when the drain produced nothing.
//
// A session must not be used from multiple goroutines concurrently; each
// peer exclusively owns its session for its lifetime.
type session struct {
	sock   Socket
	remote *net.UDPAddr
	seq    uint32
	buf    []byte
}

func newSession(sock Socket) *session {
	return &session{sock: sock, buf: make([]byte, maxDatagramSize)}
}

func bindSession(addr string) (*session, error) {
	laddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	conn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	sock, err := newUDPSocket(conn)
	if err != nil {
		conn.Close()
		return nil, &BindError{Addr: addr, Err: err}
	}
	return newSession(sock), nil
}

// recvQueued drains the socket without blocking and returns the last queued
// datagram that decodes as a status message, or nil if none was queued.
// Malformed backlog entries are skipped: one corrupt datagram must not abort
// an otherwise healthy read.
func (s *session) recvQueued() (*egmpb.EgmRobot, error) {
	var latest *egmpb.EgmRobot
	for {
		n, addr, ok, err := s.sock.TryReadFromUDP(s.buf)
		if err != nil {
			return nil, fmt.Errorf("draining receive queue: %w", err)
		}
		if !ok {
			return latest, nil
		}
		s.remote = addr
		msg := new(egmpb.EgmRobot)
		if err := msg.Unmarshal(s.buf[:n]); err != nil {
			continue
		}
		latest = msg
	}
}

// recvOne performs exactly one blocking read, governed by the read deadline
// set by the caller, and decodes the result.
func (s *session) recvOne() (*egmpb.EgmRobot, error) {
	n, addr, err := s.sock.ReadFromUDP(s.buf)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("receiving status message: %w", ErrTimeout)
		}
		return nil, fmt.Errorf("receiving status message: %w", err)
	}
	s.remote = addr
	msg := new(egmpb.EgmRobot)
	if err := msg.Unmarshal(s.buf[:n]); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return msg, nil
}

// purge discards every datagram queued on the socket without blocking and
// returns the number discarded. Useful to drop a backlog after a pause in
// the control loop without performing a receive.
func (s *session) purge() (int, error) {
	count := 0
	for {
		_, addr, ok, err := s.sock.TryReadFromUDP(s.buf)
		if err != nil {
			return count, fmt.Errorf("purging receive queue: %w", err)
		}
		if !ok {
			return count, nil
		}
		s.remote = addr
		count++
	}
}

// send validates, stamps and transmits one command message to the most
// recently observed controller address. The sequence counter advances by one
// only after a fully successful transmit, so a failed send reuses its number.
func (s *session) send(msg *egmpb.EgmSensor) error {
	if s.remote == nil {
		return ErrNotConnected
	}
	if msg.HasNaN() {
		return fmt.Errorf("refusing to send: %w", ErrInvalidMessage)
	}
	if msg.Header == nil {
		msg.Header = &egmpb.EgmHeader{Mtype: egmpb.MsgTypeCorrection.Enum()}
	}
	msg.Header.Seqno = proto.Uint32(s.seq)

	data := msg.Marshal()
	n, err := s.sock.WriteToUDP(data, s.remote)
	if err != nil {
		return fmt.Errorf("sending command message: %w", err)
	}
	if n != len(data) {
		return &IncompleteSendError{Sent: n, Total: len(data)}
	}
	s.seq++
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
