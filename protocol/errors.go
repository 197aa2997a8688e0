package protocol

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrConnection is returned when the TCP connection could not be established.
	ErrConnection = errors.New("connection failed")

	// ErrConnectionRefused is returned when the server refused the connection.
	ErrConnectionRefused = errors.New("connection refused")

	// ErrAuthFailed is returned when the server rejected the RCON password.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrConnectionLost is returned when the connection closed while requests
	// were still outstanding, or when a request is made on a closed session.
	ErrConnectionLost = errors.New("connection lost")

	// ErrTimeout is returned when a request did not receive a response within
	// the session timeout.
	ErrTimeout = errors.New("request timed out")

	// ErrMessage is returned when the server sent a response that violates a
	// shape or type invariant.
	ErrMessage = errors.New("unexpected server response")

	// ErrProtocol is returned when the inbound byte stream cannot be parsed.
	// It is fatal to the session.
	ErrProtocol = errors.New("protocol violation")
)

// ConnectError is returned when the TCP connection to the server could not be
// established.
type ConnectError struct {
	// Host is the address that was dialed.
	Host string
	// Port is the port that was dialed.
	Port int
	// Refused reports whether the server actively refused the connection.
	Refused bool
	// Cause is the underlying dial error.
	Cause error
}

// Error returns a human-readable description of the dial failure.
func (e *ConnectError) Error() string {
	if e.Refused {
		return fmt.Sprintf("the server refused connection over port %d", e.Port)
	}
	return fmt.Sprintf("address %s could not be resolved", e.Host)
}

// Unwrap returns the underlying dial error.
func (e *ConnectError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error. It supports
// errors.Is(err, ErrConnection) and, for refused connections,
// errors.Is(err, ErrConnectionRefused).
func (e *ConnectError) Is(target error) bool {
	return target == ErrConnection || (e.Refused && target == ErrConnectionRefused)
}

// AuthError is returned when the Login exchange of the handshake fails.
type AuthError struct {
	// StatusCode is the status code of the Login response.
	StatusCode StatusCode
	// StatusMessage is the status message of the Login response.
	StatusMessage string
}

// Error returns a human-readable description of the authentication failure.
func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %d %s", e.StatusCode, e.StatusMessage)
}

// Is reports whether this error matches the target error. It supports
// errors.Is(err, ErrAuthFailed).
func (e *AuthError) Is(target error) bool {
	return target == ErrAuthFailed
}

// ConnectionLostError is returned to every caller with an outstanding request
// when the transport fails or closes.
type ConnectionLostError struct {
	// Cause is the transport error, or nil if the connection was closed
	// gracefully.
	Cause error
}

// Error returns a human-readable description of the connection loss.
func (e *ConnectionLostError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("connection lost: %v", e.Cause)
	}
	return "connection lost"
}

// Unwrap returns the transport error that caused the loss, if any.
func (e *ConnectionLostError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error. It supports
// errors.Is(err, ErrConnectionLost).
func (e *ConnectionLostError) Is(target error) bool {
	return target == ErrConnectionLost
}

// CommandError is returned when the server answers a request with a
// non-OK status code.
type CommandError struct {
	// StatusCode is the status code returned by the server.
	StatusCode StatusCode
	// StatusMessage is the status message returned by the server.
	StatusMessage string
}

// Error returns a human-readable description of the command failure.
func (e *CommandError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.StatusMessage)
}

// MessageError is returned when a response violates a shape or type
// invariant, such as a ServerConnect content body that is not a string.
type MessageError struct {
	// Reason describes the violated invariant.
	Reason string
}

// Error returns the violated invariant.
func (e *MessageError) Error() string {
	return e.Reason
}

// Is reports whether this error matches the target error. It supports
// errors.Is(err, ErrMessage).
func (e *MessageError) Is(target error) bool {
	return target == ErrMessage
}

// ProtocolError is returned when the inbound byte stream cannot be parsed
// into frames. A ProtocolError is fatal to the session.
type ProtocolError struct {
	// Reason describes the parse failure.
	Reason string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a human-readable description of the parse failure.
func (e *ProtocolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Cause)
	}
	return e.Reason
}

// Unwrap returns the underlying error, if any.
func (e *ProtocolError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error. It supports
// errors.Is(err, ErrProtocol).
func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}
