// Package protocol implements the RCON v2 wire protocol of Hell Let Loose:
// length-framed, XOR-masked, JSON-bodied requests and responses over a single
// TCP connection.
//
// A Session is single-use. Once its connection is lost it cannot be revived;
// higher layers decide whether and when to dial a replacement.
package protocol

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"syscall"
	"time"
)

const (
	// DefaultTimeout is the default budget for a single request/response
	// exchange.
	DefaultTimeout = 10 * time.Second

	// connectTimeout is the fixed budget for establishing the TCP connection.
	connectTimeout = 15 * time.Second

	// readChunkSize is the size of the reader's scratch buffer.
	readChunkSize = 4096
)

// completion carries the outcome of one request to its waiter.
type completion struct {
	resp *Response
	err  error
}

// Session is a single live RCON connection. It sends frames, demultiplexes
// responses to per-request waiters by request ID, and performs the
// ServerConnect/Login handshake on dial.
//
// Execute may be called from multiple goroutines; the session interleaves
// the exchanges by request ID.
type Session struct {
	conn    net.Conn
	timeout time.Duration
	logger  *slog.Logger

	// writeMu serialises writes so the header||body of distinct requests
	// never interleaves at the byte level.
	writeMu sync.Mutex

	mu               sync.Mutex
	waiters          map[uint32]chan completion
	counter          uint32
	xorKey           []byte
	authToken        string
	closed           bool
	userClosed       bool
	onConnectionLost func(error)

	done chan struct{}
}

// Option configures a Session before it is dialed.
type Option func(*Session)

// WithTimeout sets the budget for a single request/response exchange.
// A non-positive duration disables the timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.timeout = d
	}
}

// WithLogger sets the logger used by the session. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithConnectionLostHandler sets the hook invoked when the connection is
// lost. The hook receives the transport error, or nil if the connection was
// closed gracefully. It fires after all outstanding waiters have been failed.
func WithConnectionLostHandler(fn func(error)) Option {
	return func(s *Session) {
		s.onConnectionLost = fn
	}
}

// Dial establishes a connection to the given RCON server and authenticates
// with the provided password.
//
// It returns a *ConnectError if the address could not be resolved or the
// server refused the connection, and a *AuthError if the password was
// rejected. On any handshake failure the transport is closed before the
// error is returned.
func Dial(ctx context.Context, host string, port int, password string, opts ...Option) (*Session, error) {
	s := &Session{
		timeout: DefaultTimeout,
		logger:  slog.Default(),
		waiters: make(map[uint32]chan completion),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "rcon-protocol", "addr", net.JoinHostPort(host, strconv.Itoa(port)))

	dialer := net.Dialer{Timeout: connectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, &ConnectError{Host: host, Port: port, Refused: true, Cause: err}
		}
		return nil, &ConnectError{Host: host, Port: port, Cause: err}
	}
	s.conn = conn
	s.logger.Info("connected")

	go s.readLoop()

	if err := s.authenticate(ctx, password); err != nil {
		s.Disconnect()
		return nil, err
	}
	return s, nil
}

// Execute sends a command to the server and waits for the matching response.
//
// The returned response may carry a non-OK status code; callers decide
// whether to treat that as an error (see Response.Err). Execute returns a
// *ConnectionLostError if the session is closed, and an error matching
// ErrTimeout if the session timeout elapses first.
func (s *Session) Execute(ctx context.Context, command string, version uint32, contentBody any) (*Response, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, &ConnectionLostError{}
	}
	id := s.counter
	s.counter++
	waiter := make(chan completion, 1)
	s.waiters[id] = waiter
	key := s.xorKey
	token := s.authToken
	s.mu.Unlock()

	req := &Request{
		ID:          id,
		Name:        command,
		Version:     version,
		AuthToken:   token,
		ContentBody: contentBody,
	}
	header, body, err := req.Pack()
	if err != nil {
		s.removeWaiter(id)
		return nil, err
	}
	xorMask(body, key)

	s.logger.Debug("writing request", "request_id", id, "command", command)
	s.writeMu.Lock()
	_, err = s.conn.Write(append(header, body...))
	s.writeMu.Unlock()
	if err != nil {
		s.removeWaiter(id)
		return nil, fmt.Errorf("write request: %w", err)
	}

	var timeoutCh <-chan time.Time
	if s.timeout > 0 {
		timer := time.NewTimer(s.timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case c := <-waiter:
		if c.err != nil {
			return nil, c.err
		}
		s.logger.Debug("response received", "request_id", id, "command", c.resp.Name, "status", int(c.resp.StatusCode))
		return c.resp, nil
	case <-timeoutCh:
		s.removeWaiter(id)
		return nil, fmt.Errorf("%w after %s waiting for %q", ErrTimeout, s.timeout, command)
	case <-ctx.Done():
		s.removeWaiter(id)
		return nil, ctx.Err()
	}
}

// authenticate performs the two-step handshake: ServerConnect installs the
// XOR key, Login yields the auth token. The two requests are strictly
// ordered and must not run concurrently with anything else.
func (s *Session) authenticate(ctx context.Context, password string) error {
	keyResp, err := s.Execute(ctx, "ServerConnect", 2, "")
	if err != nil {
		return err
	}
	if err := keyResp.Err(); err != nil {
		return err
	}
	encodedKey, err := keyResp.StringContent()
	if err != nil {
		return err
	}
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return &MessageError{Reason: fmt.Sprintf("ServerConnect content body is not valid base64: %v", err)}
	}

	s.mu.Lock()
	s.xorKey = key
	s.mu.Unlock()
	s.logger.Debug("received xor key")

	tokenResp, err := s.Execute(ctx, "Login", 2, password)
	if err != nil {
		return err
	}
	if tokenResp.StatusCode != StatusOK {
		return &AuthError{StatusCode: tokenResp.StatusCode, StatusMessage: tokenResp.StatusMessage}
	}

	s.mu.Lock()
	s.authToken = tokenResp.ContentBody
	s.mu.Unlock()
	s.logger.Info("authenticated")
	return nil
}

// Disconnect closes the connection. It is safe to call repeatedly and after
// the connection has already been lost.
func (s *Session) Disconnect() {
	s.mu.Lock()
	s.userClosed = true
	s.mu.Unlock()
	_ = s.conn.Close()
}

// IsConnected reports whether the session can still carry requests.
func (s *Session) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// AuthToken returns the token received during the handshake, or the empty
// string before the handshake completes.
func (s *Session) AuthToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authToken
}

// Done returns a channel that is closed once the connection is lost and all
// waiters have been completed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// SetConnectionLostHandler replaces the connection-lost hook. If the
// connection is already lost, the hook is invoked right away, after the
// teardown has completed.
func (s *Session) SetConnectionLostHandler(fn func(error)) {
	s.mu.Lock()
	if !s.closed {
		s.onConnectionLost = fn
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	// The session is already closed; once the in-flight teardown finishes,
	// deliver the loss to the late subscriber as well.
	<-s.done
	s.invokeConnectionLost(fn, nil)
}

// readLoop owns the inbound buffer. It appends every chunk, drains complete
// frames, and completes the matching waiters. It exits when the transport
// fails or closes.
func (s *Session) readLoop() {
	var buf []byte
	chunk := make([]byte, readChunkSize)

	for {
		n, err := s.conn.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)

			s.mu.Lock()
			key := s.xorKey
			s.mu.Unlock()

			resps, rest, perr := decodeFrames(buf, key)
			for _, resp := range resps {
				s.dispatch(resp)
			}
			if perr != nil {
				s.logger.Error("fatal frame decode error", "error", perr)
				_ = s.conn.Close()
				s.connectionLost(perr)
				return
			}
			buf = rest
		}
		if err != nil {
			s.mu.Lock()
			graceful := s.userClosed
			s.mu.Unlock()
			// A remote FIN is an orderly close, same as a local disconnect.
			if graceful || errors.Is(err, io.EOF) {
				err = nil
			}
			s.connectionLost(err)
			return
		}
	}
}

// dispatch hands a decoded response to its waiter. A response with no waiter
// implies the caller timed out or was cancelled; it is dropped with a
// warning.
func (s *Session) dispatch(resp *Response) {
	s.mu.Lock()
	waiter, ok := s.waiters[resp.RequestID]
	if ok {
		delete(s.waiters, resp.RequestID)
	}
	s.mu.Unlock()

	if !ok {
		s.logger.Warn("no waiter for response", "request_id", resp.RequestID, "command", resp.Name)
		return
	}
	waiter <- completion{resp: resp}
}

// removeWaiter forgets an outstanding request so a late response is silently
// dropped.
func (s *Session) removeWaiter(id uint32) {
	s.mu.Lock()
	delete(s.waiters, id)
	s.mu.Unlock()
}

// connectionLost fails every outstanding waiter, invokes the hook, and marks
// the session terminal. exc is nil when the close was graceful; EOF from the
// remote is also treated as an error-free close.
func (s *Session) connectionLost(exc error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	waiters := s.waiters
	s.waiters = make(map[uint32]chan completion)
	hook := s.onConnectionLost
	s.mu.Unlock()

	if exc != nil {
		s.logger.Warn("connection lost", "error", exc)
	} else {
		s.logger.Info("connection closed")
	}
	for _, waiter := range waiters {
		waiter <- completion{err: &ConnectionLostError{Cause: exc}}
	}

	if hook != nil {
		s.invokeConnectionLost(hook, exc)
	}
	close(s.done)
}

// invokeConnectionLost runs the hook, logging and swallowing panics so a
// misbehaving callback cannot take down the reader.
func (s *Session) invokeConnectionLost(fn func(error), exc error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("connection lost hook panicked", "panic", r)
		}
	}()
	fn(exc)
}
