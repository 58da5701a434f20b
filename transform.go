// Package chompjs rewrites text that looks like a JavaScript object
// literal — single quotes, unquoted keys, trailing commas, comments,
// hex/octal/binary/underscore-separated numerals, leading-dot decimals,
// and barewords such as undefined or NaN — into strict JSON text. The
// rewrite rules themselves live in internal/machine.
package chompjs

import (
	"github.com/Nykakin/chompjs/internal/lexer"
	"github.com/Nykakin/chompjs/internal/machine"
)

// Option configures a transform.
type Option func(*options)

type options struct {
	initialStackDepth int
}

// WithInitialStackDepth tunes the starting capacity of the nesting stack,
// the Go-native form of the original C binding's initial_stack_size
// parameter. The stack grows on demand (Go append growth) regardless of
// this setting; it only avoids a few reallocations for deeply nested input.
func WithInitialStackDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialStackDepth = n
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Transform rewrites a single permissive JS-object document into strict
// JSON text. On success the returned bytes contain no trailing sentinel.
// On failure the error is a *ParseError wrapping ErrParse, carrying the
// 1-based byte offset at which the rewrite failed.
func Transform(data []byte, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	l := lexer.New(data, machine.Opening, o.initialStackDepth)
	machine.Run(l)
	if l.Status == lexer.Error {
		return nil, newParseError(data, l.Cursor())
	}
	out := l.Output.Bytes()
	result := make([]byte, len(out))
	copy(result, out)
	return result, nil
}

// TransformIterator returns a function that yields the rewritten form of
// each permissive JS-object document found in data, one call per
// document, in input order. Documents may be whitespace-separated,
// unwrapped, and with or without separators between them (e.g. JSON
// Lines-style input, or bare back-to-back objects). The returned function
// yields (nil, nil) once no further document can be parsed.
//
// Each call drives the transformer until it completes a document, copies
// the accumulated output, then resets the output buffer and rewinds the
// cursor by one byte. Closing is entered right after the document's closer
// is emitted, so the rewind lands on that closer; Opening then discards it
// like any other non-opener byte before reaching the next document.
func TransformIterator(data []byte, opts ...Option) func() ([]byte, error) {
	o := newOptions(opts)
	l := lexer.New(data, machine.Opening, o.initialStackDepth)
	done := false

	return func() ([]byte, error) {
		if done {
			return nil, nil
		}

		machine.Run(l)
		if l.Status == lexer.Error {
			done = true
			return nil, newParseError(data, l.Cursor())
		}

		out := l.Output.Bytes()
		if len(out) == 0 {
			done = true
			return nil, nil
		}

		result := make([]byte, len(out))
		copy(result, out)

		l.Rewind(1)
		l.ResetOutput(machine.Opening)
		return result, nil
	}
}
