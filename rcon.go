// Package rcon is a client library for the Hell Let Loose RCON v2 remote
// administration channel.
//
// Three client flavours are provided, all exposing the same command surface:
//
//   - Connection: a single-use connection. Once disconnected it cannot be
//     reused.
//   - Rcon: a resilient client that lazily (re)connects on demand.
//   - pooled.Pool: several lazily connecting workers behind a shared queue.
//     A worker whose connection dies is discarded and replaced by a new one.
//
// Transport-level behaviour (framing, XOR masking, request multiplexing,
// the handshake) lives in the protocol subpackage.
package rcon

import (
	"context"
)

// Executor is the single verb the command surface is built on. Body is
// serialized into the request's content body: strings verbatim, nil as the
// empty string, anything else as compact JSON. The returned string is the response's content body
// verbatim. A non-OK status surfaces as a *protocol.CommandError.
type Executor interface {
	Execute(ctx context.Context, command string, version uint32, body any) (string, error)
}

// Client is the interface shared by the resilient client flavours.
type Client interface {
	Executor

	// IsConnected reports whether a live, authenticated connection is held.
	IsConnected() bool

	// WaitUntilConnected blocks until a connection is established. Useful to
	// verify that a connection can be established before continuing.
	WaitUntilConnected(ctx context.Context) error

	// Disconnect drops the held connection, if any. Safe to call repeatedly.
	Disconnect()

	// WithConnection opens a connection, invokes fn, and guarantees
	// Disconnect runs on all exit paths.
	WithConnection(ctx context.Context, fn func(ctx context.Context) error) error
}
