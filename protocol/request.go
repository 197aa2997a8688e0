package protocol

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// Request is a single RCON request. Requests are created by the session and
// are immutable once written to the transport.
type Request struct {
	// ID pairs the eventual response with this request. Unique per session.
	ID uint32
	// Name is the command to execute.
	Name string
	// Version is the protocol version of this command, not of the wire.
	Version uint32
	// AuthToken is the token received during the handshake. Empty until the
	// Login response arrives.
	AuthToken string
	// ContentBody is an additional payload to send along with the command.
	// A string is embedded verbatim and nil as the empty string; any other
	// value is serialized as compact JSON first.
	ContentBody any
}

// requestBody is the JSON shape of a request body on the wire.
type requestBody struct {
	AuthToken   string `json:"authToken"`
	Version     uint32 `json:"version"`
	Name        string `json:"name"`
	ContentBody string `json:"contentBody"`
}

// Pack encodes the request into its wire representation. It returns the
// 8-byte header and the unmasked body separately; the caller applies the
// XOR mask to the body when a key is installed and writes header||body as a
// single write.
func (r *Request) Pack() (header, body []byte, err error) {
	content, err := encodeContentBody(r.ContentBody)
	if err != nil {
		return nil, nil, err
	}

	body, err = json.Marshal(requestBody{
		AuthToken:   r.AuthToken,
		Version:     r.Version,
		Name:        r.Name,
		ContentBody: content,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("encode request body: %w", err)
	}

	header = make([]byte, headerSize)
	binary.LittleEndian.PutUint32(header[0:4], r.ID)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(body)))
	return header, body, nil
}

// encodeContentBody turns the caller-supplied payload into the string the
// wire format requires. Strings pass through untouched; structured values
// are serialized as compact JSON.
func encodeContentBody(v any) (string, error) {
	switch body := v.(type) {
	case nil:
		return "", nil
	case string:
		return body, nil
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("encode content body: %w", err)
		}
		return string(encoded), nil
	}
}
