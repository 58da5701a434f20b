package chompjs

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel wrapped by every parse failure. Use
// errors.Is(err, ErrParse) to detect a rewrite failure regardless of its
// diagnostic details.
var ErrParse = errors.New("chompjs: parse error")

// ParseError carries the 1-based byte offset at which the rewrite failed,
// plus a bounded preview of the input starting at that offset.
type ParseError struct {
	// Offset is the 1-based byte offset into the input at which the
	// error was detected.
	Offset int
	input   []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chompjs: parse error at byte %d: %s", e.Offset, e.Snippet())
}

// Unwrap allows errors.Is(err, ErrParse) to succeed.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Snippet returns a capped (<=30 byte) window of the input starting at the
// failing offset, mirroring the diagnostic window the original Python
// binding copied into its error message.
func (e *ParseError) Snippet() string {
	start := e.Offset - 1
	if start < 0 {
		start = 0
	}
	if start > len(e.input) {
		start = len(e.input)
	}
	end := start + 30
	if end > len(e.input) {
		end = len(e.input)
	}
	return string(e.input[start:end])
}

func newParseError(input []byte, cursor int) *ParseError {
	return &ParseError{Offset: cursor + 1, input: input}
}
