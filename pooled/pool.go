// Package pooled provides a connection pool of RCON workers behind a shared
// queue. Workers are created lazily up to a cap, handed out exclusively, and
// replaced transparently when their connection dies.
package pooled

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hlladmin/rcon"
	"github.com/hlladmin/rcon/internal/metrics"
	"github.com/hlladmin/rcon/protocol"
)

// Pool is a pool of RCON workers sharing one server address and password.
// Acquisition is FIFO over the idle queue; no further fairness is
// guaranteed. Within a single worker, requests are serialised by exclusive
// acquisition; across workers they are concurrent.
type Pool struct {
	rcon.Commands

	host     string
	port     int
	password string

	maxWorkers  int
	sessionOpts []protocol.Option
	logger      *slog.Logger
	metrics     *metrics.Metrics

	mu      sync.Mutex
	workers []*Worker
	// idle holds released workers awaiting reuse. Its capacity equals
	// maxWorkers so putting a worker back never blocks.
	idle chan *Worker
}

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) {
		p.logger = logger
	}
}

// WithMetrics attaches Prometheus instrumentation to the pool. It records
// the number of live workers; the requests and connect attempts of workers
// are not recorded.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pool) {
		p.metrics = m
	}
}

// WithSessionOptions forwards protocol options to every worker session.
func WithSessionOptions(opts ...protocol.Option) Option {
	return func(p *Pool) {
		p.sessionOpts = append(p.sessionOpts, opts...)
	}
}

// New creates a pool that grows lazily up to maxWorkers workers.
func New(host string, port int, password string, maxWorkers int, opts ...Option) (*Pool, error) {
	if maxWorkers <= 0 {
		return nil, fmt.Errorf("pool size must be greater than 0, got %d", maxWorkers)
	}
	p := &Pool{
		host:       host,
		port:       port,
		password:   password,
		maxWorkers: maxWorkers,
		logger:     slog.Default(),
		idle:       make(chan *Worker, maxWorkers),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "rcon-pool")
	p.Commands = rcon.NewCommands(p)
	return p, nil
}

// Execute acquires a worker, runs the command on it, and releases the
// worker. The pool's acquisition has no intrinsic timeout; bound it through
// ctx.
func (p *Pool) Execute(ctx context.Context, command string, version uint32, body any) (string, error) {
	worker, err := p.acquireWorker(ctx)
	if err != nil {
		return "", err
	}
	defer p.releaseWorker(worker)
	return worker.Execute(ctx, command, version, body)
}

// acquireWorker hands out a worker exclusively. It creates a new worker when
// the idle queue is empty and the cap has room; otherwise it blocks on the
// queue. Workers that disconnected while idle are skipped.
func (p *Pool) acquireWorker(ctx context.Context) (*Worker, error) {
	for {
		p.mu.Lock()
		if len(p.idle) == 0 && len(p.workers) < p.maxWorkers {
			worker := newWorker(p)
			p.workers = append(p.workers, worker)
			p.mu.Unlock()
			p.metrics.WorkerAdded()
			p.logger.Debug("worker created", "worker_id", worker.id, "pool_size", p.Size())
			return worker, nil
		}
		p.mu.Unlock()

		select {
		case worker := <-p.idle:
			// The worker may have died between release and reuse.
			if worker.IsDisconnected() {
				continue
			}
			return worker, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// releaseWorker returns a worker to the idle queue, unless it disconnected
// while held, in which case it is discarded.
func (p *Pool) releaseWorker(worker *Worker) {
	if worker.IsDisconnected() {
		return
	}
	p.idle <- worker
}

// removeWorker forgets a worker that observed its own disconnect.
func (p *Pool) removeWorker(worker *Worker) {
	p.mu.Lock()
	for i, w := range p.workers {
		if w == worker {
			p.workers = append(p.workers[:i], p.workers[i+1:]...)
			p.mu.Unlock()
			p.metrics.WorkerRemoved()
			p.logger.Debug("worker removed", "worker_id", worker.id)
			return
		}
	}
	p.mu.Unlock()
}

// Size returns the number of live workers.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.workers)
}

// Disconnect closes every live worker. In-flight commands surface a
// connection-lost error. A worker whose first dial is still in progress is
// not closed.
func (p *Pool) Disconnect() {
	p.mu.Lock()
	workers := make([]*Worker, len(p.workers))
	copy(workers, p.workers)
	p.mu.Unlock()

	for _, worker := range workers {
		worker.disconnect()
	}
}

var _ rcon.Executor = (*Pool)(nil)
