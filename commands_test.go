package rcon

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hlladmin/rcon/protocol"
)

// recordingExecutor captures executed commands and plays back canned
// responses.
type recordingExecutor struct {
	mu       sync.Mutex
	calls    []recordedCall
	response string
	err      error
}

type recordedCall struct {
	command string
	version uint32
	body    any
}

func (r *recordingExecutor) Execute(_ context.Context, command string, version uint32, body any) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedCall{command: command, version: version, body: body})
	return r.response, r.err
}

func (r *recordingExecutor) recorded() []recordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]recordedCall, len(r.calls))
	copy(out, r.calls)
	return out
}

func bodyMap(t *testing.T, call recordedCall) map[string]any {
	t.Helper()
	m, ok := call.body.(map[string]any)
	if !ok {
		t.Fatalf("expected a structured body, got %T", call.body)
	}
	return m
}

func TestCommands_KickPlayer(t *testing.T) {
	exec := &recordingExecutor{}
	cmds := NewCommands(exec)

	if err := cmds.KickPlayer(context.Background(), "765", "bye"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := exec.recorded()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].command != "Kick" || calls[0].version != 2 {
		t.Errorf("unexpected call: %+v", calls[0])
	}
	body := bodyMap(t, calls[0])
	if body["PlayerId"] != "765" || body["Reason"] != "bye" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestCommands_BanPlayer(t *testing.T) {
	tests := []struct {
		name        string
		duration    int
		wantCommand string
		wantKeys    []string
	}{
		{"temporary", 24, "TemporaryBan", []string{"PlayerId", "Duration", "Reason", "AdminName"}},
		{"permanent", 0, "PermanentBan", []string{"PlayerId", "Reason", "AdminName"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &recordingExecutor{}
			cmds := NewCommands(exec)

			if err := cmds.BanPlayer(context.Background(), "765", "griefing", "admin", tt.duration); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			calls := exec.recorded()
			if len(calls) != 1 || calls[0].command != tt.wantCommand {
				t.Fatalf("expected one %s call, got %+v", tt.wantCommand, calls)
			}
			body := bodyMap(t, calls[0])
			for _, key := range tt.wantKeys {
				if _, ok := body[key]; !ok {
					t.Errorf("expected body key %q, body %v", key, body)
				}
			}
			if tt.duration == 0 {
				if _, ok := body["Duration"]; ok {
					t.Error("permanent ban must not carry a duration")
				}
			}
		})
	}
}

func TestCommands_RemoveBanFansOutBothRemovals(t *testing.T) {
	exec := &recordingExecutor{}
	cmds := NewCommands(exec)

	if err := cmds.RemoveBan(context.Background(), "765"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := exec.recorded()
	if len(calls) != 2 {
		t.Fatalf("expected both removals to run, got %d calls", len(calls))
	}
	seen := map[string]bool{}
	for _, call := range calls {
		seen[call.command] = true
		body := bodyMap(t, call)
		if body["PlayerId"] != "765" {
			t.Errorf("unexpected body for %s: %v", call.command, call.body)
		}
	}
	if !seen["RemoveTempBan"] || !seen["RemovePermanentBan"] {
		t.Errorf("expected RemoveTempBan and RemovePermanentBan, got %v", seen)
	}
}

func TestCommands_RemoveBanSurfacesFirstFailure(t *testing.T) {
	wantErr := &protocol.CommandError{StatusCode: protocol.StatusInternal, StatusMessage: "boom"}
	exec := &recordingExecutor{err: wantErr}
	cmds := NewCommands(exec)

	err := cmds.RemoveBan(context.Background(), "765")
	var cmdErr *protocol.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected the failure to surface, got %v", err)
	}
	// Both branches ran regardless of the failure.
	if calls := exec.recorded(); len(calls) != 2 {
		t.Errorf("expected both removals to run despite the failure, got %d", len(calls))
	}
}

func TestCommands_AdminLogRejectsNegativeSpan(t *testing.T) {
	exec := &recordingExecutor{}
	cmds := NewCommands(exec)

	if _, err := cmds.AdminLog(context.Background(), -1, ""); err == nil {
		t.Fatal("expected an error for a negative span")
	}
	if len(exec.recorded()) != 0 {
		t.Error("expected no request for invalid input")
	}
}

func TestCommands_GetPlayersDecodesResponse(t *testing.T) {
	exec := &recordingExecutor{response: `{
		"players": [
			{"name": "Soldier", "iD": "765", "platform": "steam", "team": 1, "role": 9,
			 "scoreData": {"cOMBAT": 120, "offense": 40, "defense": 10, "support": 5},
			 "worldPosition": {"x": 1.5, "y": -2.5, "z": 0}}
		]
	}`}
	cmds := NewCommands(exec)

	resp, err := cmds.GetPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(resp.Players))
	}
	p := resp.Players[0]
	if p.Name != "Soldier" || p.ID != "765" || p.Platform != PlatformSteam {
		t.Errorf("unexpected player: %+v", p)
	}
	if p.ScoreData.Combat != 120 {
		t.Errorf("expected combat score 120, got %d", p.ScoreData.Combat)
	}
	if p.WorldPosition.Y != -2.5 {
		t.Errorf("expected y -2.5, got %v", p.WorldPosition.Y)
	}

	calls := exec.recorded()
	body := bodyMap(t, calls[0])
	if calls[0].command != "ServerInformation" || body["Name"] != "players" {
		t.Errorf("unexpected request: %+v", calls[0])
	}
}

func TestCommands_MalformedResponseIsMessageError(t *testing.T) {
	exec := &recordingExecutor{response: "not json"}
	cmds := NewCommands(exec)

	_, err := cmds.GetServerSession(context.Background())
	if !errors.Is(err, protocol.ErrMessage) {
		t.Errorf("expected ErrMessage, got %v", err)
	}
}

func TestCommands_SetVoteKickThresholds(t *testing.T) {
	exec := &recordingExecutor{}
	cmds := NewCommands(exec)

	err := cmds.SetVoteKickThresholds(context.Background(), []VoteKickThreshold{
		{PlayerCount: 0, Votes: 3},
		{PlayerCount: 25, Votes: 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := bodyMap(t, exec.recorded()[0])
	if body["ThresholdValue"] != "0,3,25,10" {
		t.Errorf("unexpected threshold encoding: %v", body["ThresholdValue"])
	}
}

func TestCommands_ServerInformationViews(t *testing.T) {
	tests := []struct {
		name     string
		call     func(Commands) error
		wantView string
	}{
		{"session", func(c Commands) error {
			_, err := c.GetServerSession(context.Background())
			return err
		}, "session"},
		{"serverconfig", func(c Commands) error {
			_, err := c.GetServerConfig(context.Background())
			return err
		}, "serverconfig"},
		{"maprotation", func(c Commands) error {
			_, err := c.GetMapRotation(context.Background())
			return err
		}, "maprotation"},
		{"mapsequence", func(c Commands) error {
			_, err := c.GetMapSequence(context.Background())
			return err
		}, "mapsequence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &recordingExecutor{response: "{}"}
			if err := tt.call(NewCommands(exec)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			calls := exec.recorded()
			if len(calls) != 1 || calls[0].command != "ServerInformation" {
				t.Fatalf("expected one ServerInformation call, got %+v", calls)
			}
			if body := bodyMap(t, calls[0]); body["Name"] != tt.wantView {
				t.Errorf("expected view %q, got %v", tt.wantView, body["Name"])
			}
		})
	}
}
