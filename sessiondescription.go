// Package sdpjson carries SDP documents inside the {"type","sdp"} envelope
// used by WebRTC signaling and turns them into JSON session documents.
package sdpjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nostressdev/sdpjson/sdp"
)

type SessionDescription struct {
	Type SDPType `json:"type"`
	SDP  string  `json:"sdp"`
}

func NewSessionDescription(sdpType SDPType, sdpString string) (*SessionDescription, error) {
	if !sdpType.valid() {
		return nil, makeError(ErrTypeError, fmt.Sprintf("unknown sdp type %q", sdpType))
	}
	return &SessionDescription{Type: sdpType, SDP: sdpString}, nil
}

// UnmarshalJSON rejects envelopes whose type is missing or unknown.
func (s *SessionDescription) UnmarshalJSON(data []byte) error {
	type envelope SessionDescription

	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return wrapError(ErrSyntaxError, err)
	}
	if !e.Type.valid() {
		return makeError(ErrTypeError, fmt.Sprintf("unknown sdp type %q", e.Type))
	}

	*s = SessionDescription(e)
	return nil
}

// Parse decodes the carried SDP. A rollback has nothing to parse.
func (s *SessionDescription) Parse() (*sdp.Session, error) {
	if s.Type == SDPTypeRollback {
		return nil, makeError(ErrSyntaxError, "rollback carries no session description")
	}

	session, err := sdp.Parse(s.SDP)
	if err != nil {
		return nil, wrapError(ErrSyntaxError, err)
	}
	return session, nil
}

// JSON parses the carried SDP and returns the session document.
func (s *SessionDescription) JSON() ([]byte, error) {
	session, err := s.Parse()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := sdp.NewEncoder(&buf).Encode(session); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
