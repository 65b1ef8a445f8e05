package sdp

import (
	"bufio"
	"io"
	"strings"
)

const maxLineLength = 1 << 20

// lineScanner yields trimmed, non-empty lines in source order. It is lazy:
// nothing is read before the first call to next.
type lineScanner struct {
	scanner *bufio.Scanner
	line    string
	lineNum int
}

func newLineScanner(r io.Reader) *lineScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &lineScanner{scanner: scanner}
}

func (l *lineScanner) next() bool {
	for l.scanner.Scan() {
		l.lineNum += 1
		line := strings.TrimSpace(l.scanner.Text())
		if line == "" {
			continue
		}
		l.line = line
		return true
	}
	return false
}

func (l *lineScanner) err() error {
	return l.scanner.Err()
}

// splitLine separates the line key from its value. A line without '=' is
// returned whole as the key.
func splitLine(line string) (key, value string) {
	key, value, _ = strings.Cut(line, "=")
	return key, strings.TrimSpace(value)
}
