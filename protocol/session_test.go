package protocol

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/hlladmin/rcon/internal/rcontest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func dialTestServer(t *testing.T, srv *rcontest.Server, opts ...Option) *Session {
	t.Helper()
	host, port := srv.Addr()
	session, err := Dial(context.Background(), host, port, "pw", opts...)
	if err != nil {
		t.Fatalf("failed to dial fake server: %v", err)
	}
	t.Cleanup(func() {
		session.Disconnect()
		<-session.Done()
	})
	return session
}

// ---------------------------------------------------------------------------
// Handshake tests
// ---------------------------------------------------------------------------

func TestDial_Handshake(t *testing.T) {
	srv := rcontest.Start(t)
	session := dialTestServer(t, srv)

	if !session.IsConnected() {
		t.Error("expected session to be connected after handshake")
	}
	if token := session.AuthToken(); token != "TOKEN" {
		t.Errorf("expected auth token TOKEN, got %q", token)
	}
	session.mu.Lock()
	key := bytes.Clone(session.xorKey)
	session.mu.Unlock()
	if !bytes.Equal(key, []byte("KEYBYTES")) {
		t.Errorf("expected xor key KEYBYTES, got %q", key)
	}
}

func TestDial_AuthFailure(t *testing.T) {
	srv := rcontest.Start(t, func(s *rcontest.Server) {
		s.LoginStatus = 401
	})
	host, port := srv.Addr()

	_, err := Dial(context.Background(), host, port, "wrong", WithTimeout(time.Second))
	if !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got %v", err)
	}
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %T", err)
	}
	if authErr.StatusCode != StatusUnauthorized {
		t.Errorf("expected status 401, got %d", authErr.StatusCode)
	}
}

func TestDial_ConnectionRefused(t *testing.T) {
	// Grab a port that is guaranteed to have nothing listening on it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	host, portStr, _ := net.SplitHostPort(ln.Addr().String())
	_ = ln.Close()

	var port int
	if _, err := fmt.Sscanf(portStr, "%d", &port); err != nil {
		t.Fatalf("failed to parse port: %v", err)
	}

	_, err = Dial(context.Background(), host, port, "pw")
	if !errors.Is(err, ErrConnectionRefused) {
		t.Fatalf("expected ErrConnectionRefused, got %v", err)
	}
	if !errors.Is(err, ErrConnection) {
		t.Errorf("expected a refused connection to also match ErrConnection")
	}
}

// ---------------------------------------------------------------------------
// Execute tests
// ---------------------------------------------------------------------------

func TestExecute_EchoesContentBody(t *testing.T) {
	srv := rcontest.Start(t, func(s *rcontest.Server) {
		s.AutoRespond = func(req rcontest.Request) (int, string, string) {
			return 200, "OK", req.ContentBody
		}
	})
	session := dialTestServer(t, srv)

	resp, err := session.Execute(context.Background(), "Echo", 2, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ContentBody != "hello" {
		t.Errorf("expected content body hello, got %q", resp.ContentBody)
	}
	if resp.Name != "Echo" {
		t.Errorf("expected name Echo, got %q", resp.Name)
	}
}

func TestExecute_CarriesAuthToken(t *testing.T) {
	var (
		mu     sync.Mutex
		tokens []string
	)
	srv := rcontest.Start(t, func(s *rcontest.Server) {
		s.AutoRespond = func(req rcontest.Request) (int, string, string) {
			mu.Lock()
			tokens = append(tokens, req.AuthToken)
			mu.Unlock()
			return 200, "OK", ""
		}
	})
	session := dialTestServer(t, srv)

	if _, err := session.Execute(context.Background(), "Anything", 2, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(tokens) != 1 || tokens[0] != "TOKEN" {
		t.Errorf("expected the request to carry the auth token, got %v", tokens)
	}
}

func TestExecute_InterleavedResponses(t *testing.T) {
	srv := rcontest.Start(t)
	session := dialTestServer(t, srv)

	type result struct {
		name string
		body string
		err  error
	}
	results := make(chan result, 2)
	for _, name := range []string{"A", "B"} {
		go func() {
			resp, err := session.Execute(context.Background(), name, 2, "")
			if err != nil {
				results <- result{name: name, err: err}
				return
			}
			results <- result{name: name, body: resp.ContentBody}
		}()
	}

	// Collect both requests, then answer them in reverse order within a
	// single TCP chunk.
	reqs := make([]rcontest.Request, 2)
	for i := range reqs {
		select {
		case reqs[i] = <-srv.Requests:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for requests")
		}
	}
	if reqs[0].ID == reqs[1].ID {
		t.Fatalf("request ids must be unique, both were %d", reqs[0].ID)
	}
	srv.RespondBatch(
		[]rcontest.Request{reqs[1], reqs[0]},
		200, "OK",
		[]string{"for-" + reqs[1].Name, "for-" + reqs[0].Name},
	)

	for range 2 {
		res := <-results
		if res.err != nil {
			t.Fatalf("execute %s failed: %v", res.name, res.err)
		}
		if want := "for-" + res.name; res.body != want {
			t.Errorf("caller %s received %q, want %q", res.name, res.body, want)
		}
	}
}

func TestExecute_Timeout(t *testing.T) {
	srv := rcontest.Start(t)
	session := dialTestServer(t, srv, WithTimeout(50*time.Millisecond))

	_, err := session.Execute(context.Background(), "Slow", 2, "")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}

	// The waiter is gone: a late response must be dropped silently and the
	// session stays usable.
	select {
	case req := <-srv.Requests:
		srv.Respond(req, 200, "OK", "late")
	case <-time.After(time.Second):
		t.Fatal("server never saw the request")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		req := <-srv.Requests
		srv.Respond(req, 200, "OK", "second")
	}()
	resp, err := session.Execute(context.Background(), "Second", 2, "")
	if err != nil {
		t.Fatalf("session unusable after timeout: %v", err)
	}
	if resp.ContentBody != "second" {
		t.Errorf("expected second response, got %q", resp.ContentBody)
	}
	<-done
}

func TestExecute_ContextCancellation(t *testing.T) {
	srv := rcontest.Start(t)
	session := dialTestServer(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-srv.Requests
		cancel()
	}()

	_, err := session.Execute(ctx, "Cancelled", 2, "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestExecute_UniqueRequestIDs(t *testing.T) {
	srv := rcontest.Start(t, func(s *rcontest.Server) {
		s.AutoRespond = func(req rcontest.Request) (int, string, string) {
			return 200, "OK", ""
		}
	})
	session := dialTestServer(t, srv)

	seen := make(map[uint32]bool)
	for range 5 {
		resp, err := session.Execute(context.Background(), "Cmd", 2, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[resp.RequestID] {
			t.Fatalf("request id %d was reused", resp.RequestID)
		}
		seen[resp.RequestID] = true
	}
}

// ---------------------------------------------------------------------------
// Connection loss tests
// ---------------------------------------------------------------------------

func TestConnectionLost_FailsOutstandingWaiters(t *testing.T) {
	srv := rcontest.Start(t)
	session := dialTestServer(t, srv)

	errCh := make(chan error, 1)
	go func() {
		_, err := session.Execute(context.Background(), "InFlight", 2, "")
		errCh <- err
	}()

	select {
	case <-srv.Requests:
	case <-time.After(2 * time.Second):
		t.Fatal("server never saw the request")
	}
	srv.CloseConns()

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrConnectionLost) {
			t.Errorf("expected ErrConnectionLost, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("in-flight execute never completed")
	}
	if session.IsConnected() {
		t.Error("expected session to report disconnected")
	}
}

func TestExecute_AfterDisconnect(t *testing.T) {
	srv := rcontest.Start(t)
	session := dialTestServer(t, srv)

	session.Disconnect()
	<-session.Done()

	_, err := session.Execute(context.Background(), "TooLate", 2, "")
	if !errors.Is(err, ErrConnectionLost) {
		t.Errorf("expected ErrConnectionLost, got %v", err)
	}
}

func TestConnectionLostHandler_PanicIsSwallowed(t *testing.T) {
	srv := rcontest.Start(t)
	session := dialTestServer(t, srv, WithConnectionLostHandler(func(error) {
		panic("misbehaving hook")
	}))

	// Must not crash the reader.
	session.Disconnect()
	<-session.Done()
}

func TestConnectionLostHandler_FiresOnce(t *testing.T) {
	var calls int32
	srv := rcontest.Start(t)
	session := dialTestServer(t, srv, WithConnectionLostHandler(func(error) {
		atomic.AddInt32(&calls, 1)
	}))

	session.Disconnect()
	session.Disconnect()
	<-session.Done()

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected the hook to fire exactly once, fired %d times", n)
	}
}
