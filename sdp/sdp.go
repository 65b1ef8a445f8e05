// Package sdp implements Session Description Protocol (SDP), rfc4566, parsing
// into a document shaped for JSON serialization.
package sdp

const (
	VersionField     = 'v'
	OriginField      = 'o'
	SessionNameField = 's'
	TimingField      = 't'
	ConnectionField  = 'c'
	MediaDescField   = 'm'
	AttributeField   = 'a'
)

type Direction string

const (
	DirectionSendrecv Direction = "sendrecv"
	DirectionSendonly Direction = "sendonly"
	DirectionRecvonly Direction = "recvonly"
	DirectionInactive Direction = "inactive"
)

type Origin struct {
	Username       string `json:"username"`
	SessionID      uint64 `json:"session_id"`
	SessionVersion uint64 `json:"session_version"`
	NetworkType    string `json:"network_type"`
	IPType         string `json:"ip_type"`
	IPAddress      string `json:"ip_address"`
}

// Time is the t= line. Bounded is false for the permanent "0 0" session.
type Time struct {
	StartTime uint64 `json:"start_time"`
	StopTime  uint64 `json:"stop_time"`
	Bounded   bool   `json:"bounded"`
}

type Connection struct {
	NetworkType string `json:"network_type"`
	IPType      string `json:"ip_type"`
	IPAddress   string `json:"ip_address"`
}

type Fingerprint struct {
	Type string `json:"type"`
	Hash string `json:"hash"`
}

type Candidate struct {
	Component  uint64 `json:"component"`
	Foundation string `json:"foundation"`
	Transport  string `json:"transport"`
	Priority   uint64 `json:"priority"`
	IP         string `json:"ip"`
	Port       uint64 `json:"port"`
	Type       string `json:"type"`
}

type Rtpmap struct {
	Codec   string `json:"codec"`
	Payload string `json:"payload"`
	Rate    uint64 `json:"rate"`
}

type Fmtp struct {
	Config  string `json:"config"`
	Payload uint64 `json:"payload"`
}

type RtcpFb struct {
	Payload string `json:"payload"`
	Type    string `json:"type"`
}

// Ssrc is one a=ssrc line. Value is nil when the line has no ":value" part.
type Ssrc struct {
	ID        uint64  `json:"id"`
	Attribute string  `json:"attribute"`
	Value     *string `json:"value"`
}

// Media is one m= block. Payloads holds only the first format token of the
// m= line.
type Media struct {
	Type       string      `json:"type"`
	Port       uint64      `json:"port"`
	Protocol   string      `json:"protocol"`
	Payloads   string      `json:"payloads"`
	Candidates []Candidate `json:"candidates"`
	Direction  *Direction  `json:"direction"`
	Fmtp       []Fmtp      `json:"fmtp"`
	Ptime      uint64      `json:"ptime"`
	Rtpmap     []Rtpmap    `json:"rtpmap"`
	RtcpFb     []RtcpFb    `json:"rtc_fb"`
	Ssrc       []Ssrc      `json:"ssrc"`
}

type Session struct {
	Version     uint32       `json:"version"`
	SessionName string       `json:"session_name"`
	IceUfrag    string       `json:"ice_ufrag"`
	IcePwd      string       `json:"ice_pwd"`
	Fingerprint *Fingerprint `json:"fingerprint"`
	Origin      Origin       `json:"origin"`
	Time        Time         `json:"time"`
	Connection  Connection   `json:"connection"`
	Media       []*Media     `json:"media"`
}

func newSession() *Session {
	return &Session{Media: []*Media{}}
}

// newMedia allocates every collection so that empty ones encode as [].
func newMedia() *Media {
	return &Media{
		Candidates: []Candidate{},
		Fmtp:       []Fmtp{},
		Rtpmap:     []Rtpmap{},
		RtcpFb:     []RtcpFb{},
		Ssrc:       []Ssrc{},
	}
}
