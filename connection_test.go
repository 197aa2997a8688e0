package rcon

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/hlladmin/rcon/internal/rcontest"
	"github.com/hlladmin/rcon/protocol"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// echoServer starts a fake server that answers every command with its own
// content body.
func echoServer(t *testing.T) *rcontest.Server {
	t.Helper()
	return rcontest.Start(t, func(s *rcontest.Server) {
		s.AutoRespond = func(req rcontest.Request) (int, string, string) {
			return 200, "OK", req.ContentBody
		}
	})
}

func connectTestServer(t *testing.T, srv *rcontest.Server) *Connection {
	t.Helper()
	host, port := srv.Addr()
	conn, err := Connect(context.Background(), host, port, "pw", protocol.WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(conn.Disconnect)
	return conn
}

func TestConnection_Execute(t *testing.T) {
	srv := echoServer(t)
	conn := connectTestServer(t, srv)

	out, err := conn.Execute(context.Background(), "Echo", 2, "ping")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ping" {
		t.Errorf("expected ping, got %q", out)
	}
}

func TestConnection_ExecuteSurfacesCommandError(t *testing.T) {
	srv := rcontest.Start(t, func(s *rcontest.Server) {
		s.AutoRespond = func(req rcontest.Request) (int, string, string) {
			return 400, "no such command", ""
		}
	})
	conn := connectTestServer(t, srv)

	_, err := conn.Execute(context.Background(), "Bogus", 2, "")
	var cmdErr *protocol.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %v", err)
	}
	if cmdErr.StatusCode != protocol.StatusBadRequest {
		t.Errorf("expected status 400, got %d", cmdErr.StatusCode)
	}
}

func TestConnection_ExecuteAfterDisconnect(t *testing.T) {
	srv := echoServer(t)
	conn := connectTestServer(t, srv)

	conn.Disconnect()
	if err := conn.WaitUntilDisconnected(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := conn.Execute(context.Background(), "TooLate", 2, "")
	if !errors.Is(err, protocol.ErrConnectionLost) {
		t.Errorf("expected ErrConnectionLost, got %v", err)
	}
	if conn.IsConnected() {
		t.Error("expected IsConnected to be false after disconnect")
	}
}

func TestConnection_OnDisconnectHook(t *testing.T) {
	srv := echoServer(t)
	host, port := srv.Addr()

	var fired atomic.Int32
	conn, err := Connect(context.Background(), host, port, "pw")
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	conn.SetOnDisconnect(func() { fired.Add(1) })

	srv.CloseConns()
	if err := conn.WaitUntilDisconnected(contextWithTimeout(t)); err != nil {
		t.Fatalf("connection never reported disconnect: %v", err)
	}
	if n := fired.Load(); n != 1 {
		t.Errorf("expected hook to fire once, fired %d times", n)
	}
}

// contextWithTimeout returns a context bounded to keep a stuck test from
// hanging the suite.
func contextWithTimeout(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}
