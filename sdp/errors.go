package sdp

import (
	"errors"
	"fmt"
)

var (
	ErrStructural    = errors.New("sdp: missing mandatory line")
	ErrTokenCount    = errors.New("sdp: wrong token count")
	ErrNumericFormat = errors.New("sdp: invalid numeric value")
)

// StructuralError reports a mandatory line that never appeared.
type StructuralError struct {
	Field byte
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%v: no %c= line", ErrStructural, e.Field)
}

func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}

// TokenCountError reports a payload with the wrong number of space separated
// tokens. Want is a minimum when AtLeast is set.
type TokenCountError struct {
	Field   string
	Value   string
	Want    int
	Got     int
	AtLeast bool
}

func (e *TokenCountError) Error() string {
	want := fmt.Sprint(e.Want)
	if e.AtLeast {
		want = "at least " + want
	}
	return fmt.Sprintf("%v: %s wants %s tokens, got %d in %q", ErrTokenCount, e.Field, want, e.Got, e.Value)
}

func (e *TokenCountError) Is(target error) bool {
	return target == ErrTokenCount
}

type NumericFormatError struct {
	Field string
	Value string
	Err   error
}

func (e *NumericFormatError) Error() string {
	return fmt.Sprintf("%v: %s %q", ErrNumericFormat, e.Field, e.Value)
}

func (e *NumericFormatError) Unwrap() error {
	return e.Err
}

func (e *NumericFormatError) Is(target error) bool {
	return target == ErrNumericFormat
}

// LineError attaches the 1-based source line to a decode failure.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
