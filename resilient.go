package rcon

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/hlladmin/rcon/internal/metrics"
	"github.com/hlladmin/rcon/protocol"
)

// DefaultReconnectAfterFailures is how many consecutive network failures are
// tolerated before the held connection is disposed, so that the next command
// establishes a fresh one.
const DefaultReconnectAfterFailures = 3

// connAttempt is the shared handle for one connect attempt. Concurrent
// callers coalesce on it; a finished-but-broken handle never satisfies a
// future caller.
type connAttempt struct {
	done   chan struct{}
	conn   *Connection
	err    error
	cancel context.CancelFunc
}

// Rcon is a resilient RCON client. It holds at most one underlying
// connection and will (re)connect on demand: only when no connection is
// available at the time of executing a command is a new one attempted.
//
// The client never silently reconnects mid-request. The caller sees the
// error for the failed call; the next call triggers a fresh connect attempt.
type Rcon struct {
	Commands

	host     string
	port     int
	password string

	timeout                time.Duration
	reconnectAfterFailures int
	logger                 *slog.Logger
	metrics                *metrics.Metrics

	mu           sync.Mutex
	attempt      *connAttempt
	failureCount int
}

// Option configures an Rcon client.
type Option func(*Rcon)

// WithTimeout sets the budget for a single request/response exchange on the
// underlying session. Defaults to protocol.DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Rcon) {
		r.timeout = d
	}
}

// WithReconnectAfterFailures sets after how many consecutive network
// failures the held connection is disposed. Zero disables the reset.
// Defaults to DefaultReconnectAfterFailures.
func WithReconnectAfterFailures(n int) Option {
	return func(r *Rcon) {
		r.reconnectAfterFailures = max(0, n)
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Rcon) {
		r.logger = logger
	}
}

// WithMetrics attaches Prometheus instrumentation to the client. Without it
// no metrics are recorded.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Rcon) {
		r.metrics = m
	}
}

// New creates a resilient RCON client for the given server. No connection is
// made until the first command executes; see WaitUntilConnected to probe
// eagerly.
func New(host string, port int, password string, opts ...Option) *Rcon {
	r := &Rcon{
		host:                   host,
		port:                   port,
		password:               password,
		timeout:                protocol.DefaultTimeout,
		reconnectAfterFailures: DefaultReconnectAfterFailures,
		logger:                 slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Commands = Commands{exec: r}
	return r
}

// getConnection returns the live connection, starting a new connect attempt
// if none is in flight. Concurrent callers share a single attempt. The
// attempt itself is shielded from caller cancellation: cancelling ctx only
// abandons the local wait.
func (r *Rcon) getConnection(ctx context.Context) (*Connection, error) {
	r.mu.Lock()
	if a := r.attempt; a != nil {
		select {
		case <-a.done:
			if a.err != nil || !a.conn.IsConnected() {
				r.attempt = nil
			}
		default:
		}
	}
	if r.attempt == nil {
		attemptCtx, cancel := context.WithCancel(context.Background())
		a := &connAttempt{done: make(chan struct{}), cancel: cancel}
		r.attempt = a
		go r.runAttempt(attemptCtx, a)
	}
	a := r.attempt
	r.mu.Unlock()

	select {
	case <-a.done:
		return a.conn, a.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// runAttempt establishes a connection and resolves the shared handle. On
// failure the handle is dropped before it resolves, so the next call
// retries.
func (r *Rcon) runAttempt(ctx context.Context, a *connAttempt) {
	conn, err := Connect(ctx, r.host, r.port, r.password,
		protocol.WithTimeout(r.timeout),
		protocol.WithLogger(r.logger),
	)
	if err != nil {
		a.err = err
		r.mu.Lock()
		if r.attempt == a {
			r.attempt = nil
		}
		r.mu.Unlock()
		r.metrics.ConnectFinished(false)
		close(a.done)
		return
	}

	r.mu.Lock()
	if r.attempt != a {
		// Disconnect raced the attempt and won; the connection is unwanted.
		r.mu.Unlock()
		conn.Disconnect()
		a.err = context.Canceled
		close(a.done)
		return
	}
	r.mu.Unlock()

	a.conn = conn
	r.metrics.ConnectFinished(true)
	close(a.done)
}

// IsConnected reports whether a live, authenticated connection is held.
func (r *Rcon) IsConnected() bool {
	r.mu.Lock()
	a := r.attempt
	r.mu.Unlock()
	if a == nil {
		return false
	}
	select {
	case <-a.done:
		return a.err == nil && a.conn.IsConnected()
	default:
		return false
	}
}

// WaitUntilConnected blocks until a connection is established, sharing any
// in-flight attempt.
func (r *Rcon) WaitUntilConnected(ctx context.Context) error {
	_, err := r.getConnection(ctx)
	return err
}

// WithConnection opens the connection, invokes fn, and guarantees Disconnect
// runs on all exit paths.
func (r *Rcon) WithConnection(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, err := r.getConnection(ctx); err != nil {
		return err
	}
	defer r.Disconnect()
	return fn(ctx)
}

// Disconnect drops the held connection. A pending connect attempt is
// cancelled; a live connection is closed. The failure counter resets to
// zero. Safe to call repeatedly.
func (r *Rcon) Disconnect() {
	r.mu.Lock()
	a := r.attempt
	r.attempt = nil
	r.failureCount = 0
	r.mu.Unlock()

	if a == nil {
		return
	}
	select {
	case <-a.done:
		if a.err == nil {
			a.conn.Disconnect()
		}
	default:
		a.cancel()
	}
}

// Execute sends a command over the held connection, establishing one first
// if needed. Network-class failures (timeouts, transport I/O errors) count
// toward the reconnect threshold; command and message errors do not.
func (r *Rcon) Execute(ctx context.Context, command string, version uint32, body any) (string, error) {
	conn, err := r.getConnection(ctx)
	if err != nil {
		return "", err
	}

	start := time.Now()
	out, err := conn.Execute(ctx, command, version, body)
	r.metrics.ObserveRequest(command, err, time.Since(start))
	if err != nil {
		if isNetworkFailure(err) {
			r.countFailure(command)
		}
		return "", err
	}
	return out, nil
}

// countFailure bumps the consecutive-failure counter and disposes the
// connection once the threshold is reached. The counter is reset only by
// Disconnect, never by a successful response.
func (r *Rcon) countFailure(command string) {
	r.mu.Lock()
	r.failureCount++
	count := r.failureCount
	threshold := r.reconnectAfterFailures
	r.mu.Unlock()

	if threshold > 0 && count >= threshold {
		r.logger.Warn("failure threshold reached, disposing connection",
			"command", command, "failures", count)
		r.metrics.ConnectionReset()
		r.Disconnect()
	}
}

// isNetworkFailure reports whether err is a timeout or a transport I/O
// error. Command errors, message errors, and connection-lost errors pass
// through without affecting the failure counter.
func isNetworkFailure(err error) bool {
	if errors.Is(err, protocol.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	// A lost connection already disposed the session; unwrapping further would
	// find the transport cause and double-count it.
	if errors.Is(err, protocol.ErrConnectionLost) {
		return false
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

var _ Client = (*Rcon)(nil)
