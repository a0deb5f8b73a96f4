package abbegm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned by Send when no status message has been
	// received since the peer was bound, so no controller address is known.
	// Retry after a successful receive.
	ErrNotConnected = errors.New("no robot controller address known yet")

	// ErrTimeout is returned by Recv when no status message arrived within
	// the configured timeout.
	ErrTimeout = errors.New("timed out waiting for a status message")

	// ErrInvalidMessage is returned by Send when the command message
	// contains a NaN or infinite value. The datagram is never transmitted.
	ErrInvalidMessage = errors.New("message contains NaN or infinite values")
)

// BindError reports a failure to bind the local UDP endpoint.
// It is fatal to the peer; a new Bind is required.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind to local endpoint %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// DecodeError reports a received datagram that did not parse as a status
// message. Recoverable: the next receive reads fresh data.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed status message: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IncompleteSendError reports a command datagram that was only partially
// written to the socket.
type IncompleteSendError struct {
	// Sent is the number of bytes that were written.
	Sent int
	// Total is the size of the encoded message.
	Total int
}

func (e *IncompleteSendError) Error() string {
	return fmt.Sprintf("incomplete send: wrote only %d of %d bytes", e.Sent, e.Total)
}
