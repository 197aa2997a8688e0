package pooled

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hlladmin/rcon"
)

// workerAttempt is the shared handle for a worker's single connect attempt.
type workerAttempt struct {
	done chan struct{}
	conn *rcon.Connection
	err  error
}

// Worker is one pooled connection. It connects lazily on first use and is
// terminal once disconnected: a dead worker removes itself from the pool and
// is never handed out again.
type Worker struct {
	id   string
	pool *Pool

	mu           sync.Mutex
	attempt      *workerAttempt
	busy         bool
	disconnected bool
}

func newWorker(pool *Pool) *Worker {
	return &Worker{
		id:   uuid.NewString(),
		pool: pool,
	}
}

// ID returns the worker's identity, used in pool bookkeeping and logs.
func (w *Worker) ID() string {
	return w.id
}

// IsBusy reports whether the worker is currently executing a command.
func (w *Worker) IsBusy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// IsDisconnected reports whether the worker's connection has died. A
// disconnected worker is terminal.
func (w *Worker) IsDisconnected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.disconnected
}

// Execute runs a command over the worker's connection, dialing it first if
// this is the worker's first use.
func (w *Worker) Execute(ctx context.Context, command string, version uint32, body any) (string, error) {
	w.mu.Lock()
	w.busy = true
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
	}()

	conn, err := w.getConnection(ctx)
	if err != nil {
		return "", err
	}
	return conn.Execute(ctx, command, version, body)
}

// getConnection dials the worker's connection on first use. Concurrent and
// subsequent calls share the one attempt; a worker never dials twice.
func (w *Worker) getConnection(ctx context.Context) (*rcon.Connection, error) {
	w.mu.Lock()
	if a := w.attempt; a != nil {
		w.mu.Unlock()
		select {
		case <-a.done:
			return a.conn, a.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	a := &workerAttempt{done: make(chan struct{})}
	w.attempt = a
	w.mu.Unlock()

	conn, err := rcon.Connect(ctx, w.pool.host, w.pool.port, w.pool.password, w.pool.sessionOpts...)
	if err != nil {
		a.err = err
		close(a.done)
		w.onDisconnect()
		return nil, err
	}

	// A connection that died before the hook was installed delivers the loss
	// to the hook immediately.
	conn.SetOnDisconnect(w.onDisconnect)
	a.conn = conn
	close(a.done)
	return conn, nil
}

// onDisconnect flips the terminal disconnected flag and removes the worker
// from the pool. Safe to call more than once.
func (w *Worker) onDisconnect() {
	w.mu.Lock()
	if w.disconnected {
		w.mu.Unlock()
		return
	}
	w.busy = false
	w.disconnected = true
	w.mu.Unlock()

	w.pool.removeWorker(w)
}

// disconnect closes the worker's connection, if one was ever established.
func (w *Worker) disconnect() {
	w.mu.Lock()
	a := w.attempt
	w.mu.Unlock()
	if a == nil {
		w.onDisconnect()
		return
	}
	select {
	case <-a.done:
		if a.err == nil {
			a.conn.Disconnect()
		}
	default:
	}
}