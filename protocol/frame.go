package protocol

import (
	"encoding/binary"
	"fmt"
)

const (
	// headerSize is the fixed size of the frame header: a little-endian
	// uint32 request ID followed by a little-endian uint32 body length.
	headerSize = 8

	// maxBodyLen bounds the advertised body length of a single frame.
	// Anything larger is treated as a corrupted stream.
	maxBodyLen = 16 << 20
)

// xorMask applies the repeating XOR key to b in place. The byte at position i
// is XORed with key[i%len(key)]. A nil or empty key leaves b untouched.
func xorMask(b, key []byte) {
	if len(key) == 0 {
		return
	}
	for i := range b {
		b[i] ^= key[i%len(key)]
	}
}

// decodeFrames consumes as many complete frames as are present in buf and
// returns the decoded responses together with the unconsumed tail. Bodies are
// unmasked with key before decoding. A partial frame at the end of buf is
// left for the next call; a malformed frame is fatal and returns a
// ProtocolError alongside any responses decoded before it.
func decodeFrames(buf, key []byte) (resps []*Response, rest []byte, err error) {
	rest = buf
	for len(rest) >= headerSize {
		requestID := binary.LittleEndian.Uint32(rest[0:4])
		bodyLen := binary.LittleEndian.Uint32(rest[4:8])
		if bodyLen > maxBodyLen {
			return resps, rest, &ProtocolError{
				Reason: fmt.Sprintf("frame body of %d bytes exceeds limit of %d", bodyLen, maxBodyLen),
			}
		}
		if uint64(len(rest)) < headerSize+uint64(bodyLen) {
			break
		}

		body := make([]byte, bodyLen)
		copy(body, rest[headerSize:headerSize+bodyLen])
		xorMask(body, key)

		resp, err := unpackResponse(requestID, body)
		if err != nil {
			return resps, rest, err
		}
		resps = append(resps, resp)
		rest = rest[headerSize+bodyLen:]
	}
	return resps, rest, nil
}
