package rcon

import (
	"context"
	"sync"

	"github.com/hlladmin/rcon/protocol"
)

// Connection is a single-use connection to an RCON server. It wraps one
// protocol session and enforces the single-use lifecycle: after a disconnect,
// Execute fails immediately with a *protocol.ConnectionLostError and the
// Connection cannot be revived. For a client that recovers from connection
// issues, use Rcon instead.
type Connection struct {
	Commands

	session *protocol.Session

	mu           sync.Mutex
	disconnected bool
	done         chan struct{}
	onDisconnect func()
}

// Connect dials the RCON server and authenticates. Options are forwarded to
// the underlying protocol session.
func Connect(ctx context.Context, host string, port int, password string, opts ...protocol.Option) (*Connection, error) {
	c := &Connection{
		done: make(chan struct{}),
	}
	c.Commands = Commands{exec: c}

	session, err := protocol.Dial(ctx, host, port, password, opts...)
	if err != nil {
		return nil, err
	}
	c.session = session
	session.SetConnectionLostHandler(c.connectionLost)
	return c, nil
}

// connectionLost marks the connection terminal and fires the disconnect
// hook.
func (c *Connection) connectionLost(error) {
	c.mu.Lock()
	if c.disconnected {
		c.mu.Unlock()
		return
	}
	c.disconnected = true
	hook := c.onDisconnect
	close(c.done)
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// SetOnDisconnect installs a hook called with no arguments when the
// connection is lost. If the connection is already gone, the hook is invoked
// right away instead.
func (c *Connection) SetOnDisconnect(fn func()) {
	c.mu.Lock()
	if !c.disconnected {
		c.onDisconnect = fn
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	fn()
}

// IsConnected reports whether the connection is still active.
func (c *Connection) IsConnected() bool {
	return c.session.IsConnected()
}

// Disconnect closes the connection. Safe to call repeatedly.
func (c *Connection) Disconnect() {
	c.session.Disconnect()
}

// WaitUntilDisconnected blocks until the connection is closed, or until ctx
// is cancelled.
func (c *Connection) WaitUntilDisconnected(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Execute sends a command and returns the response content body verbatim.
// A non-OK status code surfaces as a *protocol.CommandError.
func (c *Connection) Execute(ctx context.Context, command string, version uint32, body any) (string, error) {
	c.mu.Lock()
	disconnected := c.disconnected
	c.mu.Unlock()
	if disconnected {
		return "", &protocol.ConnectionLostError{}
	}

	resp, err := c.session.Execute(ctx, command, version, body)
	if err != nil {
		return "", err
	}
	if err := resp.Err(); err != nil {
		return "", err
	}
	return resp.ContentBody, nil
}
