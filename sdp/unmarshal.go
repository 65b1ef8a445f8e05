package sdp

import (
	"fmt"
	"io"
	"strings"
)

type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Parse decodes a complete SDP message.
func Parse(sdp string) (*Session, error) {
	return NewDecoder(strings.NewReader(sdp)).Decode()
}

// Decode reads the whole input and returns a new Session. Nothing is returned
// on failure.
func (d *Decoder) Decode() (*Session, error) {
	s := newSession()
	lines := newLineScanner(d.r)
	flags := &flags{}

	// current media block, nil in session scope
	var media *Media

	for lines.next() {
		key, value := splitLine(lines.line)

		var err error
		if key == string(MediaDescField) {
			media, err = parseMediaDesc(value)
			if err == nil {
				s.Media = append(s.Media, media)
			}
		} else {
			err = d.parseLine(s, media, key, value, flags)
		}
		if err != nil {
			return nil, &LineError{Line: lines.lineNum, Text: lines.line, Err: err}
		}
	}

	if err := lines.err(); err != nil {
		return nil, fmt.Errorf("error while reading from reader: %w", err)
	}

	if err := checkFlags(flags); err != nil {
		return nil, err
	}

	return s, nil
}

func (d *Decoder) parseLine(s *Session, media *Media, key, value string, flags *flags) error {
	if len(key) != 1 {
		return nil
	}

	var err error
	switch key[0] {
	case VersionField:
		s.Version, err = parseVersion(value)
	case OriginField:
		s.Origin, err = parseOriginator(value)
		flags.setOriginator = true
	case SessionNameField:
		s.SessionName = value
	case TimingField:
		s.Time, err = parseTiming(value)
		flags.setTiming = true
	case ConnectionField:
		s.Connection, err = parseConnection(value)
	case AttributeField:
		var a attribute
		a, err = decodeAttribute(value)
		if a != nil {
			a.apply(s, media)
		}
	}
	return err
}

func parseVersion(value string) (uint32, error) {
	version, err := parseUint("version", value, 32)
	if err != nil {
		return 0, err
	}
	return uint32(version), nil
}

// o=- 4611731400430051336 2 IN IP4 127.0.0.1
func parseOriginator(value string) (Origin, error) {
	var origin Origin

	fields, err := splitFields("origin", value, 6)
	if err != nil {
		return origin, err
	}

	origin.Username = fields[0]
	origin.SessionID, err = parseUint("origin session id", fields[1], 64)
	if err != nil {
		return origin, err
	}
	origin.SessionVersion, err = parseUint("origin session version", fields[2], 64)
	if err != nil {
		return origin, err
	}
	origin.NetworkType = fields[3]
	origin.IPType = fields[4]
	origin.IPAddress = fields[5]

	return origin, nil
}

func parseTiming(value string) (Time, error) {
	var timing Time

	fields, err := splitFields("timing", value, 2)
	if err != nil {
		return timing, err
	}

	timing.StartTime, err = parseUint("timing start", fields[0], 64)
	if err != nil {
		return timing, err
	}
	timing.StopTime, err = parseUint("timing stop", fields[1], 64)
	if err != nil {
		return timing, err
	}
	timing.Bounded = !(timing.StartTime == 0 && timing.StopTime == 0)

	return timing, nil
}

// c=IN IP4 217.130.243.155
func parseConnection(value string) (Connection, error) {
	fields, err := splitFields("connection", value, 3)
	if err != nil {
		return Connection{}, err
	}
	return Connection{NetworkType: fields[0], IPType: fields[1], IPAddress: fields[2]}, nil
}

// m=video 60372 UDP/TLS/RTP/SAVPF 100 101 116 117 96
//
// Only the first format is kept in Payloads.
func parseMediaDesc(value string) (*Media, error) {
	fields, err := splitFieldsAtLeast("media", value, 4)
	if err != nil {
		return nil, err
	}

	media := newMedia()
	media.Type = fields[0]

	port, portsNum, hasNum := strings.Cut(fields[1], "/")
	media.Port, err = parseUint("media port", port, 64)
	if err != nil {
		return nil, err
	}
	if hasNum {
		if _, err := parseUint("media port count", portsNum, 64); err != nil {
			return nil, err
		}
	}

	media.Protocol = fields[2]
	media.Payloads = fields[3]

	return media, nil
}

type flags struct {
	setOriginator, setTiming bool
}

func checkFlags(flags *flags) error {
	if !flags.setOriginator {
		return &StructuralError{Field: OriginField}
	}
	if !flags.setTiming {
		return &StructuralError{Field: TimingField}
	}
	return nil
}
