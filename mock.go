package abbegm

import (
	"net"
	"os"
	"sync"
	"time"
)

// MockSocket implements Socket for testing without a real network.
//
// Datagrams added with QueueDatagram form the backlog visible to
// TryReadFromUDP; datagrams passed to Deliver wake a blocked ReadFromUDP.
// A deadline update interrupts a blocked read, like a real socket.
type MockSocket struct {
	mu       sync.Mutex
	queued   []MockDatagram
	sent     []MockDatagram
	deadline time.Time
	closed   bool

	incoming   chan MockDatagram
	deadlineCh chan struct{}

	// TryErr is returned (once) by the next TryReadFromUDP call.
	TryErr error
	// WriteErr is returned by WriteToUDP if set.
	WriteErr error
	// ShortWrite truncates the reported write size by one byte if set.
	ShortWrite bool
	// Local is returned by LocalAddr.
	Local *net.UDPAddr
}

// MockDatagram is a datagram held by a MockSocket.
type MockDatagram struct {
	Data []byte
	Addr *net.UDPAddr
}

// NewMockSocket creates an empty mock socket.
func NewMockSocket() *MockSocket {
	return &MockSocket{
		incoming:   make(chan MockDatagram),
		deadlineCh: make(chan struct{}, 1),
		Local:      &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 6510},
	}
}

// QueueDatagram appends a datagram to the non-blocking backlog.
func (m *MockSocket) QueueDatagram(data []byte, addr *net.UDPAddr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queued = append(m.queued, MockDatagram{Data: data, Addr: addr})
}

// Deliver hands a datagram to a blocked ReadFromUDP call.
// It blocks until a reader accepts the datagram.
func (m *MockSocket) Deliver(data []byte, addr *net.UDPAddr) {
	m.incoming <- MockDatagram{Data: data, Addr: addr}
}

// Sent returns the datagrams written so far.
func (m *MockSocket) Sent() []MockDatagram {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockDatagram(nil), m.sent...)
}

// Closed reports whether Close was called.
func (m *MockSocket) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *MockSocket) TryReadFromUDP(b []byte) (int, *net.UDPAddr, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TryErr != nil {
		err := m.TryErr
		m.TryErr = nil
		return 0, nil, false, err
	}
	if len(m.queued) == 0 {
		return 0, nil, false, nil
	}
	d := m.queued[0]
	m.queued = m.queued[1:]
	return copy(b, d.Data), d.Addr, true, nil
}

func (m *MockSocket) ReadFromUDP(b []byte) (int, *net.UDPAddr, error) {
	// The backlog is visible to blocking reads as well.
	if n, addr, ok, err := m.TryReadFromUDP(b); ok || err != nil {
		return n, addr, err
	}
	for {
		m.mu.Lock()
		deadline := m.deadline
		m.mu.Unlock()

		var expire <-chan time.Time
		if !deadline.IsZero() {
			wait := time.Until(deadline)
			if wait <= 0 {
				return 0, nil, os.ErrDeadlineExceeded
			}
			timer := time.NewTimer(wait)
			defer timer.Stop()
			expire = timer.C
		}

		select {
		case d := <-m.incoming:
			return copy(b, d.Data), d.Addr, nil
		case <-expire:
			return 0, nil, os.ErrDeadlineExceeded
		case <-m.deadlineCh:
			// Deadline changed; re-evaluate.
		}
	}
}

func (m *MockSocket) WriteToUDP(b []byte, addr *net.UDPAddr) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	data := append([]byte(nil), b...)
	m.sent = append(m.sent, MockDatagram{Data: data, Addr: addr})
	if m.ShortWrite && len(b) > 0 {
		return len(b) - 1, nil
	}
	return len(b), nil
}

func (m *MockSocket) SetReadDeadline(t time.Time) error {
	m.mu.Lock()
	m.deadline = t
	m.mu.Unlock()
	select {
	case m.deadlineCh <- struct{}{}:
	default:
	}
	return nil
}

func (m *MockSocket) LocalAddr() net.Addr {
	return m.Local
}

func (m *MockSocket) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
