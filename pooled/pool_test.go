package pooled

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/hlladmin/rcon/internal/rcontest"
	"github.com/hlladmin/rcon/protocol"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func echoServer(t *testing.T) *rcontest.Server {
	t.Helper()
	return rcontest.Start(t, func(s *rcontest.Server) {
		s.AutoRespond = func(req rcontest.Request) (int, string, string) {
			return 200, "OK", req.ContentBody
		}
	})
}

func newTestPool(t *testing.T, srv *rcontest.Server, maxWorkers int, opts ...Option) *Pool {
	t.Helper()
	host, port := srv.Addr()
	opts = append(opts, WithSessionOptions(protocol.WithTimeout(2*time.Second)))
	p, err := New(host, port, "pw", maxWorkers, opts...)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(p.Disconnect)
	return p
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestNew_RejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := New("localhost", 1, "pw", size); err == nil {
			t.Errorf("expected an error for pool size %d", size)
		}
	}
}

func TestPool_ExecuteCreatesWorkerLazily(t *testing.T) {
	srv := echoServer(t)
	p := newTestPool(t, srv, 2)

	if p.Size() != 0 {
		t.Fatalf("expected no workers before first use, got %d", p.Size())
	}

	out, err := p.Execute(context.Background(), "Echo", 2, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello" {
		t.Errorf("expected hello, got %q", out)
	}
	if p.Size() != 1 {
		t.Errorf("expected exactly one worker, got %d", p.Size())
	}
}

func TestPool_SequentialCallsReuseWorker(t *testing.T) {
	srv := echoServer(t)
	p := newTestPool(t, srv, 4)

	for range 5 {
		if _, err := p.Execute(context.Background(), "Echo", 2, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if srv.Dials() != 1 {
		t.Errorf("expected sequential calls to reuse one worker, got %d dials", srv.Dials())
	}
	if p.Size() != 1 {
		t.Errorf("expected one worker, got %d", p.Size())
	}
}

func TestPool_CapsWorkerCount(t *testing.T) {
	srv := rcontest.Start(t, func(s *rcontest.Server) {
		s.AutoRespond = func(req rcontest.Request) (int, string, string) {
			time.Sleep(30 * time.Millisecond)
			return 200, "OK", ""
		}
	})
	p := newTestPool(t, srv, 2)

	var wg sync.WaitGroup
	for range 6 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Execute(context.Background(), "Slow", 2, ""); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if size := p.Size(); size > 2 {
		t.Errorf("expected at most 2 workers, got %d", size)
	}
	if dials := srv.Dials(); dials > 2 {
		t.Errorf("expected at most 2 dials, got %d", dials)
	}
}

func TestPool_ReplacesDeadWorker(t *testing.T) {
	srv := echoServer(t)
	p := newTestPool(t, srv, 1)

	if _, err := p.Execute(context.Background(), "Echo", 2, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.mu.Lock()
	first := p.workers[0]
	p.mu.Unlock()

	// Kill the worker's connection; its disconnect callback removes it from
	// the pool.
	srv.CloseConns()
	waitFor(t, "dead worker removal", func() bool { return p.Size() == 0 })
	if !first.IsDisconnected() {
		t.Error("expected the first worker to be terminally disconnected")
	}

	// The next command creates a fresh worker.
	if _, err := p.Execute(context.Background(), "Echo", 2, ""); err != nil {
		t.Fatalf("unexpected error after worker death: %v", err)
	}
	p.mu.Lock()
	second := p.workers[0]
	p.mu.Unlock()
	if first == second || first.ID() == second.ID() {
		t.Error("expected a replacement worker with a new identity")
	}
	if srv.Dials() != 2 {
		t.Errorf("expected a second dial for the replacement, got %d", srv.Dials())
	}
}

func TestPool_FailedDialRemovesWorker(t *testing.T) {
	srv := rcontest.Start(t, func(s *rcontest.Server) {
		s.LoginStatus = 401
	})
	p := newTestPool(t, srv, 1)

	if _, err := p.Execute(context.Background(), "Echo", 2, ""); err == nil {
		t.Fatal("expected the dial failure to surface")
	}
	waitFor(t, "failed worker removal", func() bool { return p.Size() == 0 })

	// The pool has room again for the next attempt.
	if _, err := p.Execute(context.Background(), "Echo", 2, ""); err == nil {
		t.Fatal("expected the dial failure to surface again")
	}
	if srv.Dials() != 2 {
		t.Errorf("expected a fresh dial per attempt, got %d", srv.Dials())
	}
}

func TestPool_AcquireHonoursContext(t *testing.T) {
	srv := rcontest.Start(t, func(s *rcontest.Server) {
		s.AutoRespond = func(req rcontest.Request) (int, string, string) {
			time.Sleep(200 * time.Millisecond)
			return 200, "OK", ""
		}
	})
	p := newTestPool(t, srv, 1)

	// Occupy the only worker.
	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		close(started)
		_, _ = p.Execute(context.Background(), "Slow", 2, "")
	}()
	<-started
	waitFor(t, "worker creation", func() bool { return p.Size() == 1 })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Execute(ctx, "Queued", 2, "")
	if err == nil {
		t.Error("expected acquisition to fail once the context expired")
	}
	<-done
}
