package sdp

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
)

type buffer struct {
	data []byte
}

func (b *buffer) writeBytes(v []byte) *buffer {
	b.data = append(b.data, v...)
	return b
}

func (b *buffer) writeNewline() *buffer {
	b.data = append(b.data, '\n')
	return b
}

func (b *buffer) reset() {
	b.data = b.data[:0]
}

var bufferPool = sync.Pool{
	New: func() interface{} { return &buffer{} },
}

// Encoder writes sessions as JSON documents, one per line unless an indent
// is set.
type Encoder struct {
	w      io.Writer
	prefix string
	indent string
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) SetIndent(prefix, indent string) {
	e.prefix = prefix
	e.indent = indent
}

func (e *Encoder) Encode(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if e.prefix != "" || e.indent != "" {
		var out bytes.Buffer
		if err := json.Indent(&out, data, e.prefix, e.indent); err != nil {
			return err
		}
		data = out.Bytes()
	}

	b := bufferPool.Get().(*buffer)
	defer func() {
		b.reset()
		bufferPool.Put(b)
	}()

	b.writeBytes(data).writeNewline()
	return e.flush(b)
}

func (e *Encoder) flush(b *buffer) error {
	written := 0

	for written < len(b.data) {
		w, err := e.w.Write(b.data[written:])
		if err != nil {
			return err
		}
		if w == 0 {
			return io.ErrShortWrite
		}
		written += w
	}

	return nil
}
