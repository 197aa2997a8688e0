package protocol

import (
	"errors"
	"testing"
)

func TestUnpackResponse(t *testing.T) {
	body := `{"name":"Login","version":2,"statusCode":200,"statusMessage":"OK","contentBody":"TOKEN"}`

	resp, err := unpackResponse(5, []byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RequestID != 5 {
		t.Errorf("expected request id 5, got %d", resp.RequestID)
	}
	if resp.Name != "Login" || resp.Version != 2 {
		t.Errorf("unexpected name/version: %s/%d", resp.Name, resp.Version)
	}
	if resp.StatusCode != StatusOK || resp.StatusMessage != "OK" {
		t.Errorf("unexpected status: %d %s", resp.StatusCode, resp.StatusMessage)
	}
	if resp.ContentBody != "TOKEN" {
		t.Errorf("expected content body TOKEN, got %q", resp.ContentBody)
	}
	if err := resp.Err(); err != nil {
		t.Errorf("expected no command error for 200, got %v", err)
	}
	content, err := resp.StringContent()
	if err != nil || content != "TOKEN" {
		t.Errorf("expected string content TOKEN, got %q, %v", content, err)
	}
}

func TestUnpackResponse_MalformedJSON(t *testing.T) {
	_, err := unpackResponse(1, []byte("{truncated"))
	if !errors.Is(err, ErrProtocol) {
		t.Errorf("expected ErrProtocol, got %v", err)
	}
}

func TestUnpackResponse_NonStringContent(t *testing.T) {
	body := `{"name":"ServerConnect","version":2,"statusCode":200,"statusMessage":"OK","contentBody":{"unexpected":true}}`

	resp, err := unpackResponse(0, []byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := resp.StringContent(); !errors.Is(err, ErrMessage) {
		t.Errorf("expected ErrMessage for non-string content, got %v", err)
	}
	// The content is still delivered, re-encoded as JSON, for callers that
	// can use it.
	if resp.ContentBody != `{"unexpected":true}` {
		t.Errorf("expected re-encoded content, got %q", resp.ContentBody)
	}
}

func TestResponseErr(t *testing.T) {
	tests := []struct {
		name    string
		status  StatusCode
		wantErr bool
	}{
		{"ok", StatusOK, false},
		{"bad request", StatusBadRequest, true},
		{"unauthorized", StatusUnauthorized, true},
		{"internal", StatusInternal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{StatusCode: tt.status, StatusMessage: "msg"}
			err := resp.Err()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var cmdErr *CommandError
			if !errors.As(err, &cmdErr) {
				t.Fatalf("expected *CommandError, got %v", err)
			}
			if cmdErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, cmdErr.StatusCode)
			}
		})
	}
}
