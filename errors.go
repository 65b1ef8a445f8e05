package sdpjson

import "fmt"

const (
	ErrTypeError   = "TypeError"
	ErrSyntaxError = "SyntaxError"
)

func makeError(code string, message string) (err error) {
	return fmt.Errorf("%s: %s", code, message)
}

func wrapError(code string, err error) error {
	return fmt.Errorf("%s: %w", code, err)
}
