package sdp

import (
	"strconv"
	"strings"
)

// attribute is a decoded a= line. apply writes it into the session or into
// the open media block; m is nil in session scope.
type attribute interface {
	apply(s *Session, m *Media)
}

type attributeDecoder func(value string) (attribute, error)

var attributeDecoders = map[string]attributeDecoder{
	"ice-ufrag":   decodeIceUfrag,
	"ice-pwd":     decodeIcePwd,
	"fingerprint": decodeFingerprint,
	"candidate":   decodeCandidate,
	"rtpmap":      decodeRtpmap,
	"fmtp":        decodeFmtp,
	"rtcp-fb":     decodeRtcpFb,
	"ptime":       decodePtime,
	"ssrc":        decodeSsrc,

	string(DirectionSendrecv): directionDecoder(DirectionSendrecv),
	string(DirectionSendonly): directionDecoder(DirectionSendonly),
	string(DirectionRecvonly): directionDecoder(DirectionRecvonly),
	string(DirectionInactive): directionDecoder(DirectionInactive),
}

// decodeAttribute splits "name[:value]" and runs the matching decoder.
// Unknown names return a nil attribute and no error.
func decodeAttribute(line string) (attribute, error) {
	name, value, _ := strings.Cut(line, ":")
	decode, ok := attributeDecoders[name]
	if !ok {
		return nil, nil
	}
	return decode(strings.TrimSpace(value))
}

type iceUfrag string

func (a iceUfrag) apply(s *Session, _ *Media) { s.IceUfrag = string(a) }

type icePwd string

func (a icePwd) apply(s *Session, _ *Media) { s.IcePwd = string(a) }

type ptime uint64

func (a ptime) apply(_ *Session, m *Media) {
	if m != nil {
		m.Ptime = uint64(a)
	}
}

// Fingerprint has no per-media storage; a media level line replaces the
// session value.
func (a Fingerprint) apply(s *Session, _ *Media) {
	s.Fingerprint = &a
}

func (a Direction) apply(_ *Session, m *Media) {
	if m != nil {
		m.Direction = &a
	}
}

func (a Candidate) apply(_ *Session, m *Media) {
	if m != nil {
		m.Candidates = append(m.Candidates, a)
	}
}

func (a Rtpmap) apply(_ *Session, m *Media) {
	if m != nil {
		m.Rtpmap = append(m.Rtpmap, a)
	}
}

func (a Fmtp) apply(_ *Session, m *Media) {
	if m != nil {
		m.Fmtp = append(m.Fmtp, a)
	}
}

func (a RtcpFb) apply(_ *Session, m *Media) {
	if m != nil {
		m.RtcpFb = append(m.RtcpFb, a)
	}
}

func (a Ssrc) apply(_ *Session, m *Media) {
	if m != nil {
		m.Ssrc = append(m.Ssrc, a)
	}
}

func decodeIceUfrag(value string) (attribute, error) {
	return iceUfrag(value), nil
}

func decodeIcePwd(value string) (attribute, error) {
	return icePwd(value), nil
}

func directionDecoder(d Direction) attributeDecoder {
	return func(string) (attribute, error) {
		return d, nil
	}
}

func decodePtime(value string) (attribute, error) {
	v, err := parseUint("ptime", value, 64)
	if err != nil {
		return nil, err
	}
	return ptime(v), nil
}

// a=fingerprint:sha-256 49:66:12:17:0D:1C:91:AE
func decodeFingerprint(value string) (attribute, error) {
	fields, err := splitFields("fingerprint", value, 2)
	if err != nil {
		return nil, err
	}
	return Fingerprint{Type: fields[0], Hash: fields[1]}, nil
}

// a=candidate:1467250027 1 udp 2122260223 192.168.0.196 46243 typ host generation 0
func decodeCandidate(value string) (attribute, error) {
	fields, err := splitFieldsAtLeast("candidate", value, 8)
	if err != nil {
		return nil, err
	}

	var candidate Candidate
	candidate.Foundation = fields[0]
	candidate.Component, err = parseUint("candidate component", fields[1], 64)
	if err != nil {
		return nil, err
	}
	candidate.Transport = fields[2]
	candidate.Priority, err = parseUint("candidate priority", fields[3], 64)
	if err != nil {
		return nil, err
	}
	candidate.IP = fields[4]
	candidate.Port, err = parseUint("candidate port", fields[5], 64)
	if err != nil {
		return nil, err
	}
	// fields[6] is the literal "typ"
	candidate.Type = fields[7]

	return candidate, nil
}

// a=rtpmap:111 opus/48000/2
func decodeRtpmap(value string) (attribute, error) {
	fields, err := splitFields("rtpmap", value, 2)
	if err != nil {
		return nil, err
	}

	encoding := strings.Split(fields[1], "/")
	if len(encoding) < 2 {
		return nil, &TokenCountError{Field: "rtpmap encoding", Value: fields[1], Want: 2, Got: len(encoding), AtLeast: true}
	}

	rate, err := parseUint("rtpmap rate", encoding[1], 64)
	if err != nil {
		return nil, err
	}

	return Rtpmap{Codec: encoding[0], Payload: fields[0], Rate: rate}, nil
}

// a=fmtp:111 minptime=10; useinbandfec=1
func decodeFmtp(value string) (attribute, error) {
	payload, config, _ := strings.Cut(value, " ")
	config = strings.TrimSpace(config)
	if payload == "" || config == "" {
		return nil, &TokenCountError{Field: "fmtp", Value: value, Want: 2, Got: len(strings.Fields(value)), AtLeast: true}
	}

	pt, err := parseUint("fmtp payload", payload, 64)
	if err != nil {
		return nil, err
	}

	return Fmtp{Config: config, Payload: pt}, nil
}

// a=rtcp-fb:97 trr-int 100
func decodeRtcpFb(value string) (attribute, error) {
	fields, err := splitFieldsAtLeast("rtcp-fb", value, 2)
	if err != nil {
		return nil, err
	}
	return RtcpFb{Payload: fields[0], Type: fields[1]}, nil
}

// a=ssrc:3570614608 cname:4TOk42mSjXCkVIa6
func decodeSsrc(value string) (attribute, error) {
	id, rest, _ := strings.Cut(value, " ")
	rest = strings.TrimSpace(rest)
	if id == "" || rest == "" {
		return nil, &TokenCountError{Field: "ssrc", Value: value, Want: 2, Got: len(strings.Fields(value)), AtLeast: true}
	}

	var ssrc Ssrc
	var err error
	ssrc.ID, err = parseUint("ssrc id", id, 64)
	if err != nil {
		return nil, err
	}

	name, v, ok := strings.Cut(rest, ":")
	ssrc.Attribute = name
	if ok {
		ssrc.Value = &v
	}

	return ssrc, nil
}

func splitFields(field, value string, want int) ([]string, error) {
	fields := strings.Fields(value)
	if len(fields) != want {
		return nil, &TokenCountError{Field: field, Value: value, Want: want, Got: len(fields)}
	}
	return fields, nil
}

func splitFieldsAtLeast(field, value string, want int) ([]string, error) {
	fields := strings.Fields(value)
	if len(fields) < want {
		return nil, &TokenCountError{Field: field, Value: value, Want: want, Got: len(fields), AtLeast: true}
	}
	return fields, nil
}

func parseUint(field, value string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(value, 10, bitSize)
	if err != nil {
		return 0, &NumericFormatError{Field: field, Value: value, Err: err}
	}
	return v, nil
}
