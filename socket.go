package abbegm

import (
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// maxDatagramSize is the receive buffer size for a single EGM datagram.
// EGM messages are well under 1 KiB on the wire.
const maxDatagramSize = 1024

// Socket defines the UDP socket operations the peer needs.
// This abstraction enables unit testing without real network connections.
type Socket interface {
	// ReadFromUDP reads one datagram, blocking until data arrives or the
	// read deadline expires.
	ReadFromUDP(b []byte) (n int, addr *net.UDPAddr, err error)

	// TryReadFromUDP reads one datagram without blocking. It returns
	// ok == false when nothing is queued on the socket.
	TryReadFromUDP(b []byte) (n int, addr *net.UDPAddr, ok bool, err error)

	// WriteToUDP writes one datagram to the given address.
	WriteToUDP(b []byte, addr *net.UDPAddr) (n int, err error)

	// SetReadDeadline sets the deadline for future blocking reads.
	// A zero deadline means reads block indefinitely.
	SetReadDeadline(t time.Time) error

	// LocalAddr returns the local network address.
	LocalAddr() net.Addr

	// Close closes the socket.
	Close() error
}

// udpSocket implements Socket on a *net.UDPConn. Non-blocking reads go
// through the raw file descriptor with MSG_DONTWAIT so they never touch the
// read deadline used by blocking reads.
type udpSocket struct {
	conn *net.UDPConn
	raw  syscall.RawConn
}

func newUDPSocket(conn *net.UDPConn) (*udpSocket, error) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return nil, err
	}
	return &udpSocket{conn: conn, raw: raw}, nil
}

func (s *udpSocket) ReadFromUDP(b []byte) (int, *net.UDPAddr, error) {
	return s.conn.ReadFromUDP(b)
}

func (s *udpSocket) TryReadFromUDP(b []byte) (int, *net.UDPAddr, bool, error) {
	var (
		n    int
		addr *net.UDPAddr
		ok   bool
		rerr error
	)
	err := s.raw.Read(func(fd uintptr) bool {
		for {
			nn, sa, err := unix.Recvfrom(int(fd), b, unix.MSG_DONTWAIT)
			switch err {
			case unix.EINTR:
				continue
			case unix.EAGAIN:
				// Nothing queued; report instead of waiting for readiness.
				return true
			case nil:
				n = nn
				addr = sockaddrToUDPAddr(sa)
				ok = true
				return true
			default:
				rerr = err
				return true
			}
		}
	})
	if err != nil {
		return 0, nil, false, err
	}
	if rerr != nil {
		return 0, nil, false, &net.OpError{Op: "read", Net: "udp", Addr: s.conn.LocalAddr(), Err: rerr}
	}
	return n, addr, ok, nil
}

func (s *udpSocket) WriteToUDP(b []byte, addr *net.UDPAddr) (int, error) {
	return s.conn.WriteToUDP(b, addr)
}

func (s *udpSocket) SetReadDeadline(t time.Time) error {
	return s.conn.SetReadDeadline(t)
}

func (s *udpSocket) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

func (s *udpSocket) Close() error {
	return s.conn.Close()
}

func sockaddrToUDPAddr(sa unix.Sockaddr) *net.UDPAddr {
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		ip := make(net.IP, net.IPv4len)
		copy(ip, sa.Addr[:])
		return &net.UDPAddr{IP: ip, Port: sa.Port}
	case *unix.SockaddrInet6:
		ip := make(net.IP, net.IPv6len)
		copy(ip, sa.Addr[:])
		var zone string
		if sa.ZoneId != 0 {
			if ifi, err := net.InterfaceByIndex(int(sa.ZoneId)); err == nil {
				zone = ifi.Name
			}
		}
		return &net.UDPAddr{IP: ip, Port: sa.Port, Zone: zone}
	default:
		return nil
	}
}
